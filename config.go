package localepath

// Config describes the locale setup the normalizer operates on.
// It is supplied by an external configuration loader and assumed to be
// well-formed: locale identifiers unique under case-insensitive comparison,
// domain entries non-overlapping in their locale subsets. The package
// performs no validation.
type Config struct {
	// Locales is the ordered list of supported locale identifiers in
	// their canonical casing (e.g. "en-US").
	Locales []string `json:"locales" yaml:"locales"`

	// DefaultLocale is the global fallback locale.
	DefaultLocale string `json:"defaultLocale" yaml:"defaultLocale"`

	// Domains optionally binds hostnames to their own default locale
	// and locale subset.
	Domains []Domain `json:"domains,omitempty" yaml:"domains,omitempty"`
}

// Domain binds a hostname to a default locale and an optional subset of the
// configured locales.
type Domain struct {
	// Domain is the hostname, optionally with a ":port" suffix.
	Domain string `json:"domain" yaml:"domain"`

	// DefaultLocale is served when no locale is detected for this domain.
	DefaultLocale string `json:"defaultLocale" yaml:"defaultLocale"`

	// Locales restricts this domain to a subset of the configured locales.
	Locales []string `json:"locales,omitempty" yaml:"locales,omitempty"`

	// HTTP marks the domain as served over plain HTTP. The normalizer
	// never reads it; it is carried for the caller.
	HTTP bool `json:"http,omitempty" yaml:"http,omitempty"`
}
