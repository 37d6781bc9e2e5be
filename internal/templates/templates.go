// Package templates provides the starter files materialized into a new scratch
// workspace. The catalogue is static data embedded from catalog/*.yaml; file
// contents may reference the workspace name through text/template.
package templates

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"gopkg.in/yaml.v3"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
	"git.home.luguber.info/inful/scratch/internal/language"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// File is a single file of a template, relative to the workspace root.
type File struct {
	Path       string `yaml:"path"`
	Content    string `yaml:"content"`
	Executable bool   `yaml:"executable,omitempty"`
}

// Template is the starter file set for one language.
type Template struct {
	Language   language.Language `yaml:"language"`
	Entrypoint string            `yaml:"entrypoint"`
	Files      []File            `yaml:"files"`
}

// Provider returns the template for a language.
type Provider interface {
	Get(lang language.Language) (Template, error)
}

// Catalog is the embedded template Provider.
type Catalog struct {
	once      sync.Once
	templates map[language.Language]Template
	err       error
}

// Default is the process-wide embedded catalogue.
var Default = &Catalog{}

// Get returns the template for lang.
func Get(lang language.Language) (Template, error) {
	return Default.Get(lang)
}

// Get implements Provider.
func (c *Catalog) Get(lang language.Language) (Template, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return Template{}, c.err
	}
	tpl, ok := c.templates[lang]
	if !ok {
		return Template{}, serrors.UnknownLanguage(string(lang))
	}
	return tpl, nil
}

func (c *Catalog) load() {
	c.templates = make(map[language.Language]Template, len(language.All))
	for _, lang := range language.All {
		name := path.Join("catalog", string(lang)+".yaml")
		data, err := catalogFS.ReadFile(name)
		if err != nil {
			c.err = serrors.InternalError(fmt.Sprintf("template %s missing", name), err)
			return
		}
		tpl, err := parse(data)
		if err != nil {
			c.err = serrors.InternalError(fmt.Sprintf("template %s invalid", name), err)
			return
		}
		if tpl.Language != lang {
			c.err = serrors.InternalError(fmt.Sprintf("template %s declares language %q", name, tpl.Language), nil)
			return
		}
		c.templates[lang] = tpl
	}
}

func parse(data []byte) (Template, error) {
	var tpl Template
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return Template{}, err
	}
	if tpl.Entrypoint == "" {
		return Template{}, fmt.Errorf("entrypoint is required")
	}
	found := false
	for _, f := range tpl.Files {
		if f.Path == "" {
			return Template{}, fmt.Errorf("file path is required")
		}
		if f.Path == tpl.Entrypoint {
			found = true
		}
	}
	if !found {
		return Template{}, fmt.Errorf("entrypoint %q is not one of the template files", tpl.Entrypoint)
	}
	return tpl, nil
}
