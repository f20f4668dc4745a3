package localepath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localepath"
)

func newDomainNormalizer(t *testing.T) *localepath.Normalizer {
	t.Helper()
	return localepath.New(localepath.Config{
		Locales:       []string{"en-US", "fr", "nl-NL", "nl-BE"},
		DefaultLocale: "en-US",
		Domains: []localepath.Domain{
			{Domain: "example.com", DefaultLocale: "en-US"},
			{Domain: "example.fr:8080", DefaultLocale: "fr", Locales: []string{"fr"}},
			{Domain: "Example.NL", DefaultLocale: "nl-NL", Locales: []string{"nl-NL", "nl-BE"}, HTTP: true},
		},
	})
}

func TestResolveDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		hostname       string
		detectedLocale string
		expectedDomain string
		expectedOK     bool
	}{
		{
			name:           "exact hostname match",
			hostname:       "example.com",
			expectedDomain: "example.com",
			expectedOK:     true,
		},
		{
			name:           "port is stripped from configured domain",
			hostname:       "example.fr",
			expectedDomain: "example.fr:8080",
			expectedOK:     true,
		},
		{
			name:           "configured domain is case-folded",
			hostname:       "example.nl",
			expectedDomain: "Example.NL",
			expectedOK:     true,
		},
		{
			name:           "detected locale matches domain subset",
			hostname:       "unknown.host",
			detectedLocale: "nl-BE",
			expectedDomain: "Example.NL",
			expectedOK:     true,
		},
		{
			name:           "detected locale is folded before subset lookup",
			hostname:       "unknown.host",
			detectedLocale: "NL-be",
			expectedDomain: "Example.NL",
			expectedOK:     true,
		},
		{
			name:           "hostname equal to a domain default locale",
			hostname:       "fr",
			expectedDomain: "example.fr:8080",
			expectedOK:     true,
		},
		{
			name:       "empty hostname never resolves",
			hostname:   "",
			expectedOK: false,
		},
		{
			name:           "empty hostname with detected locale never resolves",
			hostname:       "",
			detectedLocale: "fr",
			expectedOK:     false,
		},
		{
			name:       "unknown hostname without detected locale",
			hostname:   "unknown.host",
			expectedOK: false,
		},
		{
			name:           "detected locale outside every subset",
			hostname:       "unknown.host",
			detectedLocale: "en-US",
			expectedOK:     false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n := newDomainNormalizer(t)
			d, ok := n.ResolveDomain(tt.hostname, tt.detectedLocale)
			require.Equal(t, tt.expectedOK, ok)
			require.Equal(t, tt.expectedDomain, d.Domain)
		})
	}
}

func TestResolveDomainNoDomainsConfigured(t *testing.T) {
	t.Parallel()

	n := localepath.New(localepath.Config{
		Locales:       []string{"en-US", "fr"},
		DefaultLocale: "en-US",
	})

	_, ok := n.ResolveDomain("example.fr", "fr")
	require.False(t, ok)

	// Inference degrades to the global default rather than failing.
	res := n.Match("/about", localepath.FromHostname("example.fr"))
	require.Equal(t, "en-US", res.DetectedLocale)
}

func TestResolveDomainFirstMatchWins(t *testing.T) {
	t.Parallel()

	// Duplicate locale subsets are a configuration error the package does
	// not detect: the entry earliest in configured order is returned.
	n := localepath.New(localepath.Config{
		Locales:       []string{"en-US", "fr"},
		DefaultLocale: "en-US",
		Domains: []localepath.Domain{
			{Domain: "first.example.fr", DefaultLocale: "fr", Locales: []string{"fr"}},
			{Domain: "second.example.fr", DefaultLocale: "fr", Locales: []string{"fr"}},
		},
	})

	d, ok := n.ResolveDomain("no.such.host", "fr")
	require.True(t, ok)
	require.Equal(t, "first.example.fr", d.Domain)
}

func TestResolveDomainReturnsOriginalEntry(t *testing.T) {
	t.Parallel()

	n := newDomainNormalizer(t)

	d, ok := n.ResolveDomain("example.nl", "")
	require.True(t, ok)
	require.Equal(t, "Example.NL", d.Domain)
	require.Equal(t, "nl-NL", d.DefaultLocale)
	require.Equal(t, []string{"nl-NL", "nl-BE"}, d.Locales)
	require.True(t, d.HTTP)
}
