package localepath

// Fallback selects how Match seeds the detected locale before the pathname
// is inspected. It has exactly two cases, built by FromHostname and
// FromDefaultLocale; the zero value behaves like FromDefaultLocale("").
type Fallback struct {
	hostname string
	locale   string
	byHost   bool
}

// FromHostname seeds the detected locale by resolving hostname against the
// configured domains, falling back to the global default locale when no
// domain matches. The hostname must already be lower-cased by the caller
// (it usually comes straight from a request Host header the caller has
// normalized). Hostname inference always wins in this variant; there is no
// way to combine it with an explicit default.
func FromHostname(hostname string) Fallback {
	return Fallback{hostname: hostname, byHost: true}
}

// FromDefaultLocale seeds the detected locale with the given value verbatim.
// An empty locale means no fallback: Match then reports an empty
// DetectedLocale when the path carries no locale prefix.
func FromDefaultLocale(locale string) Fallback {
	return Fallback{locale: locale}
}
