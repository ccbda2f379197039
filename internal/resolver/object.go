package resolver

import (
	"fmt"

	"github.com/jmatley/ldtyper/internal/models"
)

// Property names the object member that introduced a nested object during the
// walk. At the document root both fields are empty.
type Property struct {
	OriginalName string
	Identifier   string
}

// ResolveObject walks an object's members in document order and returns the
// field descriptors that belong to the enclosing type. Hoisted type
// definitions are appended to reg as a side effect.
//
// Only a nested object (non-empty introducing property) that carries the
// discriminator member is ever hoisted. When the discriminator is seen, its
// string value becomes the pending type name and every *subsequent* field of
// this object is routed into the pending type rather than the caller's list;
// the discriminator member itself emits no field. Members that precede the
// discriminator stay in the caller's list; that order-sensitivity is part of
// the observable output and is kept as-is rather than pre-scanning for the
// discriminator. An object without a discriminator contributes its fields
// inline to the caller, which at the root yields the implicit top-level type.
func (r *Resolver) ResolveObject(introducing Property, obj models.JSONObject, reg *models.TypeRegistry) []models.FieldDescriptor {
	caller := make([]models.FieldDescriptor, 0, len(obj))

	pendingName := ""
	var pendingFields []models.FieldDescriptor

	emit := func(f models.FieldDescriptor) {
		if pendingName != "" {
			pendingFields = append(pendingFields, f)
		} else {
			caller = append(caller, f)
		}
	}

	for _, m := range obj {
		identifier := r.fieldIdentifier(m.Key)
		path := memberPath(introducing, m.Key)

		if identifier == "" {
			// A bare "@" or empty key normalizes to nothing usable.
			r.note(path, "property name yields no identifier")
			continue
		}

		switch Classify(m.Value) {
		case models.KindString:
			if introducing.Identifier != "" && m.Key == r.cfg.Discriminator {
				// Begin a new hoisted type named after the discriminator value.
				pendingName = r.cfg.TypeName(m.Value.(string))
				continue
			}
			emit(models.FieldDescriptor{
				OriginalName: m.Key,
				Identifier:   identifier,
				Kind:         models.FieldString,
			})

		case models.KindNumber:
			emit(models.FieldDescriptor{
				OriginalName: m.Key,
				Identifier:   identifier,
				Kind:         models.FieldNumber,
			})

		case models.KindBoolean:
			emit(models.FieldDescriptor{
				OriginalName: m.Key,
				Identifier:   identifier,
				Kind:         models.FieldBoolean,
			})

		case models.KindArray:
			arr := m.Value.(models.JSONArray)
			if field, ok := ResolveArray(m.Key, identifier, arr); ok {
				emit(field)
			} else {
				r.note(path, arrayGapReason(arr))
			}

		case models.KindObject:
			nested := r.ResolveObject(
				Property{OriginalName: m.Key, Identifier: identifier},
				m.Value.(models.JSONObject),
				reg,
			)
			for _, f := range nested {
				emit(f)
			}

		default:
			r.note(path, "null or undefined value has no type")
		}
	}

	if pendingName != "" {
		reg.Append(models.TypeDefinition{Name: pendingName, Fields: pendingFields})
		caller = append(caller, models.FieldDescriptor{
			OriginalName: introducing.OriginalName,
			Identifier:   introducing.Identifier,
			Kind:         models.FieldObjectReference,
			Ref:          pendingName,
		})
	}

	return caller
}

func memberPath(introducing Property, key string) string {
	if introducing.OriginalName == "" {
		return key
	}
	return fmt.Sprintf("%s.%s", introducing.OriginalName, key)
}

func arrayGapReason(arr models.JSONArray) string {
	if len(arr) == 0 {
		return "empty array has no element type"
	}
	return fmt.Sprintf("array of %s elements is unsupported", Classify(arr[0]))
}
