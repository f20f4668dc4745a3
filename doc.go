// Package localepath detects and strips locale prefixes from URL pathnames
// based on an immutable locale configuration.
//
// Given a pathname like "/fr/about" and a configuration listing "fr" among
// its locales, the package reports the detected locale ("fr", in the casing
// the configuration declares) and the pathname with the prefix removed
// ("/about"). Matching is case-insensitive against case-folded tables built
// once at construction, so per-request calls allocate no folded copies of
// the configuration.
//
// # Basic Usage
//
// Create a Normalizer once per configuration and share it across requests:
//
//	n := localepath.New(localepath.Config{
//		Locales:       []string{"en-US", "fr", "nl-NL"},
//		DefaultLocale: "en-US",
//	})
//
//	res := n.Match("/FR/about", localepath.FromDefaultLocale(""))
//	// res.Pathname == "/about", res.DetectedLocale == "fr"
//
//	p := n.Normalize("/nl-NL/")
//	// p == "/"
//
// # Fallback Strategies
//
// Match seeds its detected locale from one of two fallback strategies before
// inspecting the path. FromDefaultLocale supplies an explicit fallback
// (empty for none); FromHostname infers it from the domain configuration:
//
//	n := localepath.New(localepath.Config{
//		Locales:       []string{"en-US", "fr"},
//		DefaultLocale: "en-US",
//		Domains: []localepath.Domain{
//			{Domain: "example.fr", DefaultLocale: "fr", Locales: []string{"fr"}},
//		},
//	})
//
//	res := n.Match("/about", localepath.FromHostname("example.fr"))
//	// res.DetectedLocale == "fr", res.Pathname == "/about"
//
// A locale found in the path always overrides the seeded fallback. Hostnames
// must be lower-cased by the caller; configured domain values may carry a
// ":port" suffix, which is stripped before matching.
//
// # Configuration Files
//
// LoadConfig reads a Config from JSON or YAML on any fs.FS:
//
//	//go:embed locales.yaml
//	var configFS embed.FS
//
//	cfg, err := localepath.LoadConfig(configFS, "locales.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	n := localepath.New(cfg)
//
// The configuration is assumed to be well-formed: locale identifiers unique
// under case-insensitive comparison and domains non-overlapping in their
// locale subsets. Nothing is validated; with duplicate entries the first
// match in configured order wins.
//
// # Error Handling
//
// Matching raises no errors; missing hostnames, unmatched prefixes, and
// empty locale lists all degrade to the fallback value or the unchanged
// pathname. An empty DetectedLocale means no locale was detected and no
// fallback was supplied, which is a normal outcome. Only LoadConfig returns
// errors, checkable with errors.Is against ErrInvalidConfigFile and
// ErrUnsupportedFileType.
//
// # Thread Safety
//
// A Normalizer is immutable after New returns and safe for concurrent use
// without synchronization. Every operation is a pure function of its inputs
// and the precomputed tables.
package localepath
