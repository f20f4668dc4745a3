package localepath

import (
	"slices"
	"strings"
)

// Normalizer detects locale prefixes in URL pathnames and strips them.
// It is immutable after creation, making it safe for concurrent use.
type Normalizer struct {
	// Canonical-case locales, in configured order.
	locales []string

	// Case-folded shadow of locales, positionally aligned so the
	// canonical-case value is recovered by index.
	lowerLocales []string

	// Original-case domain entries, in configured order.
	domains []Domain

	// Case-folded shadow of domains, positionally aligned.
	lowerDomains []domainEntry

	// Global fallback locale.
	defaultLocale string
}

// Result is the outcome of a Match call. DetectedLocale is empty when no
// locale segment matched and no fallback was supplied; that is a legitimate,
// non-error outcome.
type Result struct {
	Pathname       string
	DetectedLocale string
}

// New creates a Normalizer from the given configuration. Case folding
// happens once here; matching never re-folds configured values. The
// configuration is copied, so later mutation of cfg does not affect the
// returned normalizer.
func New(cfg Config) *Normalizer {
	n := &Normalizer{
		locales:       slices.Clone(cfg.Locales),
		lowerLocales:  make([]string, len(cfg.Locales)),
		domains:       make([]Domain, len(cfg.Domains)),
		lowerDomains:  make([]domainEntry, len(cfg.Domains)),
		defaultLocale: cfg.DefaultLocale,
	}

	for i, locale := range cfg.Locales {
		n.lowerLocales[i] = strings.ToLower(locale)
	}

	for i, d := range cfg.Domains {
		d.Locales = slices.Clone(d.Locales)
		n.domains[i] = d
		n.lowerDomains[i] = newDomainEntry(d)
	}

	return n
}

// Match detects the locale for pathname and strips its locale prefix.
// The fallback seeds the detected locale before the path is inspected;
// a matching first path segment overrides the seed with the configured
// canonical casing. The pathname is expected to start with "/".
func (n *Normalizer) Match(pathname string, fb Fallback) Result {
	detected := n.seedLocale(fb)

	if len(n.locales) == 0 {
		return Result{Pathname: pathname, DetectedLocale: detected}
	}

	segments := strings.Split(pathname, "/")
	if len(segments) < 2 || segments[1] == "" {
		return Result{Pathname: pathname, DetectedLocale: detected}
	}

	segment := strings.ToLower(segments[1])
	i := slices.Index(n.lowerLocales, segment)
	if i < 0 {
		return Result{Pathname: pathname, DetectedLocale: detected}
	}

	// Strip the "/<locale>" prefix using the original segment length.
	stripped := pathname[len(segments[1])+1:]
	if stripped == "" {
		stripped = "/"
	}

	return Result{Pathname: stripped, DetectedLocale: n.locales[i]}
}

// Normalize strips a locale prefix from pathname, if present, and returns
// the result. Unlike Match, it applies no fallback and discards the
// detected locale.
func (n *Normalizer) Normalize(pathname string) string {
	return n.Match(pathname, FromDefaultLocale("")).Pathname
}

// seedLocale resolves the fallback locale before path inspection. The
// hostname variant always infers from the domain configuration; the
// default-locale variant is used verbatim.
func (n *Normalizer) seedLocale(fb Fallback) string {
	if fb.byHost {
		return n.inferDefaultLocale(fb.hostname)
	}
	return fb.locale
}
