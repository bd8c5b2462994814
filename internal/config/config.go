// Package config defines the configuration types and defaults for memberlint.
package config

// Config is the top-level configuration.
type Config struct {
	Files FilesConfig `yaml:"files"`
	Lint  LintConfig  `yaml:"lint"`
}

// FilesConfig selects which files under each root are checked.
type FilesConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// LintConfig holds the scanner and classifier tables. These encode project
// conventions and are expected to change with the style guide.
type LintConfig struct {
	MaxIndent       int      `yaml:"max_indent"`
	SuspectIndent   int      `yaml:"suspect_indent"`
	SkipKeywords    []string `yaml:"skip_keywords"`
	SkipSubstrings  []string `yaml:"skip_substrings"`
	SkipPrefixes    []string `yaml:"skip_prefixes"`
	SkipPatterns    []string `yaml:"skip_patterns"`
	BareHeaders     []string `yaml:"bare_headers"`
	HelperFactories []string `yaml:"helper_factories"`
	TestBaseClass   string   `yaml:"test_base_class"`
}

// DefaultConfig returns a Config matching the userscript style guide.
func DefaultConfig() *Config {
	return &Config{
		Files: FilesConfig{
			Include: []string{"**/*.js"},
			Exclude: []string{"**/node_modules/**", "**/.git/**"},
		},
		Lint: LintConfig{
			MaxIndent:     8,
			SuspectIndent: 2,
			SkipKeywords: []string{
				"const", "if", "await", "return", "for", "while",
				"function", "let", "throw", "new", "try",
			},
			SkipSubstrings:  []string{".", "`", "'"},
			SkipPrefixes:    []string{"(", "super("},
			SkipPatterns:    []string{` \+= `},
			BareHeaders:     []string{"static {", "async ()"},
			HelperFactories: []string{"new Shortcut"},
			TestBaseClass:   "NH.xunit.TestCase",
		},
	}
}
