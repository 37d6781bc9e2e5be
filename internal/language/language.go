// Package language defines the language tags a scratch workspace can be created for
// and resolves the tag from the CLI's language flags.
package language

import (
	"strings"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
)

// Language is a supported language tag (ts, js, py, ...).
type Language string

const (
	TypeScript Language = "ts"
	JavaScript Language = "js"
	Python     Language = "py"
	Go         Language = "go"
	C          Language = "c"
	CPP        Language = "cpp"
	Java       Language = "java"
)

// Default is used when no language flag is given.
const Default = TypeScript

// All lists every supported language in flag order.
var All = []Language{TypeScript, JavaScript, Python, Go, C, CPP, Java}

// String returns the tag.
func (l Language) String() string { return string(l) }

// Flag returns the CLI flag selecting the language ("--py").
func (l Language) Flag() string { return "--" + string(l) }

// Valid reports whether l is a supported tag.
func (l Language) Valid() bool {
	for _, known := range All {
		if l == known {
			return true
		}
	}
	return false
}

// Parse converts a tag into a Language.
func Parse(tag string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(tag)))
	if !l.Valid() {
		return "", serrors.UnknownLanguage(tag)
	}
	return l, nil
}

// Tags returns every supported tag as strings, in flag order.
func Tags() []string {
	tags := make([]string, len(All))
	for i, l := range All {
		tags[i] = string(l)
	}
	return tags
}

// Flags mirrors the boolean language switches of the CLI.
type Flags struct {
	TS   bool
	JS   bool
	PY   bool
	Go   bool
	C    bool
	CPP  bool
	Java bool
}

func (f Flags) selected() []Language {
	set := map[Language]bool{
		TypeScript: f.TS,
		JavaScript: f.JS,
		Python:     f.PY,
		Go:         f.Go,
		C:          f.C,
		CPP:        f.CPP,
		Java:       f.Java,
	}
	var out []Language
	for _, l := range All {
		if set[l] {
			out = append(out, l)
		}
	}
	return out
}

// Resolve returns the single language selected by flags, Default when none is set,
// and a configuration error when more than one is set.
func Resolve(f Flags) (Language, error) {
	selected := f.selected()
	switch len(selected) {
	case 0:
		return Default, nil
	case 1:
		return selected[0], nil
	}

	names := make([]string, len(selected))
	for i, l := range selected {
		names[i] = l.Flag()
	}
	accepted := make([]string, len(All))
	for i, l := range All {
		accepted[i] = l.Flag()
	}
	return "", serrors.ConflictingLanguageFlags(names, accepted)
}
