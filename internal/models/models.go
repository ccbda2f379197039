package models

// JSONValue is a generic type to represent any JSON value.
// Primitives decode as string, json.Number, bool, or nil.
type JSONValue interface{}

// Member is a single key/value entry of a JSON object. Keeping members in a
// slice rather than a map preserves document order, which the discriminator
// rule in the resolver depends on.
type Member struct {
	Key   string
	Value JSONValue
}

// JSONObject represents a JSON object as an ordered sequence of members.
type JSONObject []Member

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// Get returns the value for the given key and whether it was present.
// Lookup is linear; sample documents are small.
func (o JSONObject) Get(key string) (JSONValue, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// IntermediateRepresentation holds the parsed JSON document in the form the
// resolver walks.
type IntermediateRepresentation struct {
	Root JSONValue
}

// ValueKind classifies a JSONValue. Null and anything the decoder cannot
// represent map to KindUnsupported.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBoolean
	KindArray
	KindObject
	KindUnsupported
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unsupported"
	}
}

// FieldKind is the inferred type of a single field descriptor.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldNumber
	FieldBoolean
	FieldStringArray
	FieldNumberArray
	FieldObjectReference
	FieldUnsupported
)

func (k FieldKind) String() string {
	switch k {
	case FieldString:
		return "string"
	case FieldNumber:
		return "number"
	case FieldBoolean:
		return "boolean"
	case FieldStringArray:
		return "[]string"
	case FieldNumberArray:
		return "[]number"
	case FieldObjectReference:
		return "reference"
	default:
		return "unsupported"
	}
}

// FieldDescriptor describes one field of a synthesized type.
// OriginalName is the verbatim JSON key and is never rewritten; Identifier is
// derived from it exactly once. Ref names the referenced type when Kind is
// FieldObjectReference.
type FieldDescriptor struct {
	OriginalName string
	Identifier   string
	Kind         FieldKind
	Ref          string
}

// TypeDefinition is one synthesized record type. A definition is created when
// an object requiring a named type is discovered, appended to the registry,
// and never mutated or removed afterwards. Name uniqueness is assumed, not
// enforced.
type TypeDefinition struct {
	Name   string
	Fields []FieldDescriptor
}

// TypeRegistry is the ordered, append-only collection of type definitions
// discovered during one generation run. Hoisted definitions are appended in
// discovery order; the output stays a flat list of independent types linked
// by name, never inline nested declarations. A registry must not be shared
// across runs.
type TypeRegistry struct {
	defs []TypeDefinition
}

// NewTypeRegistry creates an empty registry for a single generation run.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{defs: make([]TypeDefinition, 0)}
}

// Append adds a definition to the registry. No deduplication: two nested
// objects declaring the same @type value yield two entries with equal names.
func (r *TypeRegistry) Append(def TypeDefinition) {
	r.defs = append(r.defs, def)
}

// Types returns the definitions in append order.
func (r *TypeRegistry) Types() []TypeDefinition {
	return r.defs
}

// Len reports the number of registered definitions.
func (r *TypeRegistry) Len() int {
	return len(r.defs)
}
