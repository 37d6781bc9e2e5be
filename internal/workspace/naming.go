package workspace

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/scratch/internal/language"
)

// Prefix starts every workspace directory name.
const Prefix = "scratch"

// namePattern matches scratch-<known tag>-... base names.
var namePattern = regexp.MustCompile(`^` + Prefix + `-(` + strings.Join(language.Tags(), "|") + `)-`)

// NamePrefix returns the MkdirTemp pattern prefix for lang ("scratch-py-").
func NamePrefix(lang language.Language) string {
	return Prefix + "-" + string(lang) + "-"
}

// MatchesName reports whether a base name follows the workspace naming convention
// with a supported language tag.
func MatchesName(base string) bool {
	return namePattern.MatchString(base)
}

// LanguageOf extracts the language tag from a workspace base name.
func LanguageOf(base string) (language.Language, bool) {
	m := namePattern.FindStringSubmatch(base)
	if m == nil {
		return "", false
	}
	lang, err := language.Parse(m[1])
	return lang, err == nil
}
