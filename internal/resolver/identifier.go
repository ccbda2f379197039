package resolver

import "unicode"

// NormalizeIdentifier converts a raw JSON property name into a field
// identifier: a leading '@' discriminator marker is stripped, then the first
// remaining character is upper-cased and the rest left untouched.
// "@type" -> "Type", "addressLocality" -> "AddressLocality", "name" -> "Name".
// The transform is idempotent for names without a leading '@'; the original
// name is always kept alongside the identifier for wire mapping.
func NormalizeIdentifier(raw string) string {
	if raw == "" {
		return ""
	}
	name := raw
	if name[0] == '@' {
		name = name[1:]
	}
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
