package ports

import "github.com/FESOM/metis-wizard/internal/namelist"

// TemplateLoader loads a namelist template. An empty path selects the
// bundled default template.
type TemplateLoader interface {
	LoadTemplate(path string) (*namelist.Document, error)
}
