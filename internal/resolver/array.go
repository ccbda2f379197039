package resolver

import (
	"github.com/jmatley/ldtyper/internal/models"
)

// ResolveArray inspects an array value and produces a field descriptor for
// it. Only the first element determines the element kind; heterogeneous
// arrays are not validated against the rest of the sequence. Empty arrays and
// arrays whose first element is an object, boolean, or null are unsupported:
// no field is emitted and the skip is recorded as a diagnostic by the caller.
func ResolveArray(originalName, identifier string, arr models.JSONArray) (models.FieldDescriptor, bool) {
	if len(arr) == 0 {
		return models.FieldDescriptor{}, false
	}

	switch Classify(arr[0]) {
	case models.KindString:
		return models.FieldDescriptor{
			OriginalName: originalName,
			Identifier:   identifier,
			Kind:         models.FieldStringArray,
		}, true
	case models.KindNumber:
		return models.FieldDescriptor{
			OriginalName: originalName,
			Identifier:   identifier,
			Kind:         models.FieldNumberArray,
		}, true
	default:
		// Object, boolean and null elements are a documented gap.
		return models.FieldDescriptor{}, false
	}
}
