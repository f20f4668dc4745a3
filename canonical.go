package localepath

import "golang.org/x/text/language"

// CanonicalizeLocale returns the BCP-47 canonical form of a locale
// identifier (e.g. "EN-us" becomes "en-US"). Identifiers that do not parse
// as language tags are returned unchanged.
//
// It is a convenience for authoring configuration. Matching never applies
// it: a pathname segment matches a configured locale by exact
// case-insensitive equality, and the configured casing is what Match
// reports back.
func CanonicalizeLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	return tag.String()
}
