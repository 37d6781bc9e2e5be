package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"git.home.luguber.info/inful/scratch/internal/language"
)

// Data is the context file contents are rendered with.
type Data struct {
	// Name is the workspace directory name, e.g. scratch-go-123456.
	Name     string
	Language language.Language
}

// Render returns a copy of tpl with every file's content executed as a
// text/template against data. Unknown keys are an error.
func Render(tpl Template, data Data) (Template, error) {
	out := tpl
	out.Files = make([]File, len(tpl.Files))
	for i, f := range tpl.Files {
		content, err := renderContent(f.Path, f.Content, data)
		if err != nil {
			return Template{}, err
		}
		f.Content = content
		out.Files[i] = f
	}
	return out, nil
}

func renderContent(name, body string, data Data) (string, error) {
	tpl, err := template.New(name).Option("missingkey=error").Parse(body)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}
