package localepath

import (
	"slices"
	"strings"
)

// domainEntry is the case-folded shadow of a Domain, built once at
// construction. hostname is the Domain value with any trailing ":port"
// removed.
type domainEntry struct {
	hostname      string
	defaultLocale string
	locales       []string
}

func newDomainEntry(d Domain) domainEntry {
	hostname, _, _ := strings.Cut(d.Domain, ":")
	e := domainEntry{
		hostname:      strings.ToLower(hostname),
		defaultLocale: strings.ToLower(d.DefaultLocale),
		locales:       make([]string, len(d.Locales)),
	}
	for i, locale := range d.Locales {
		e.locales[i] = strings.ToLower(locale)
	}
	return e
}

// ResolveDomain returns the configured domain entry for hostname, which the
// caller must supply already lower-cased. An entry matches when its derived
// hostname (port stripped) equals hostname, when its case-folded default
// locale equals hostname, or when detectedLocale (folded internally, may be
// empty) appears in its locale subset. Entries are scanned in configured
// order and the first match wins; locales are assumed not to repeat across
// domains. The second return value is false when hostname is empty, no
// domains are configured, or nothing matches.
//
// The resolved entry is returned in its original casing so the caller can
// read Domain.HTTP and the canonical DefaultLocale.
func (n *Normalizer) ResolveDomain(hostname, detectedLocale string) (Domain, bool) {
	if hostname == "" || len(n.lowerDomains) == 0 {
		return Domain{}, false
	}

	detected := strings.ToLower(detectedLocale)

	for i, e := range n.lowerDomains {
		if e.hostname == hostname || e.defaultLocale == hostname ||
			(detected != "" && slices.Contains(e.locales, detected)) {
			return n.domains[i], true
		}
	}

	return Domain{}, false
}

// inferDefaultLocale returns the default locale for hostname: the matching
// domain's default when one resolves, the global default otherwise (and
// always when hostname is empty).
func (n *Normalizer) inferDefaultLocale(hostname string) string {
	if hostname == "" {
		return n.defaultLocale
	}
	if d, ok := n.ResolveDomain(hostname, ""); ok {
		return d.DefaultLocale
	}
	return n.defaultLocale
}
