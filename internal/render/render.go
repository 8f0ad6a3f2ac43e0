// Package render turns content entries into HTML pages.
package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/mishasvintus/builder_site/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names.
const (
	TemplatePage       = "page"
	TemplateNotFound   = "not_found"
	TemplateMissingKey = "missing_key"
)

// APIKeyEnvVar is the variable operators must set to enable content.
const APIKeyEnvVar = "NEXT_PUBLIC_BUILDER_API_KEY"

// View is a rendered response: which template to execute with what data.
type View struct {
	Status   int
	Template string
	Data     PageData
}

// PageData is passed to every template.
type PageData struct {
	Meta    domain.PageMetadata
	Model   string
	Content *domain.ContentRecord
	EnvVar  string
}

// Renderer owns the parsed page templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"component":   componentName,
		"option":      option,
		"columns":     columns,
		"trustedHTML": trustedHTML,
		"lower":       strings.ToLower,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Templates returns the template set to install on the HTTP engine.
func (r *Renderer) Templates() *template.Template {
	return r.templates
}

// Page renders a content entry of model. A nil entry renders the not-found
// page.
func (r *Renderer) Page(content *domain.ContentRecord, model string, meta domain.PageMetadata) View {
	if content == nil {
		return View{
			Status:   http.StatusNotFound,
			Template: TemplateNotFound,
			Data:     PageData{Meta: meta, Model: model},
		}
	}
	return View{
		Status:   http.StatusOK,
		Template: TemplatePage,
		Data:     PageData{Meta: meta, Model: model, Content: content},
	}
}

// MissingKey renders the page shown when no API key is configured.
func (r *Renderer) MissingKey() View {
	return View{
		Status:   http.StatusOK,
		Template: TemplateMissingKey,
		Data:     PageData{Meta: domain.DefaultPageMetadata(), EnvVar: APIKeyEnvVar},
	}
}

func componentName(b domain.Block) string {
	if b.Component == nil {
		return ""
	}
	return b.Component.Name
}

func option(b domain.Block, key string) string {
	if b.Component == nil {
		return ""
	}
	v, ok := b.Component.Options[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// columns decodes the "columns" option of a Columns block.
func columns(b domain.Block) [][]domain.Block {
	if b.Component == nil {
		return nil
	}
	raw, ok := b.Component.Options["columns"]
	if !ok {
		return nil
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var cols []struct {
		Blocks []domain.Block `json:"blocks"`
	}
	if err := json.Unmarshal(encoded, &cols); err != nil {
		return nil
	}

	out := make([][]domain.Block, len(cols))
	for i, col := range cols {
		out[i] = col.Blocks
	}
	return out
}

// trustedHTML marks rich text authored in the CMS as safe markup.
func trustedHTML(s string) template.HTML {
	return template.HTML(s) //nolint:gosec // editor-authored content
}
