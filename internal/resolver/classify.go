package resolver

import (
	"encoding/json"

	"github.com/jmatley/ldtyper/internal/models"
)

// Classify maps a single JSON value to its ValueKind. The function is total
// over everything the parser can produce: null and any unrecognized dynamic
// type map to KindUnsupported. Every downstream typing decision starts here.
func Classify(v models.JSONValue) models.ValueKind {
	switch v.(type) {
	case string:
		return models.KindString
	case json.Number:
		return models.KindNumber
	case bool:
		return models.KindBoolean
	case models.JSONArray:
		return models.KindArray
	case models.JSONObject:
		return models.KindObject
	default:
		return models.KindUnsupported
	}
}
