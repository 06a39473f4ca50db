// Package template loads namelist templates: the bundled default shipped
// with the binary, or an explicit path supplied by the operator.
package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/FESOM/metis-wizard/internal/domain"
	"github.com/FESOM/metis-wizard/internal/namelist"
	"github.com/FESOM/metis-wizard/internal/ports"
)

//go:embed templates/namelist.config
var templatesFS embed.FS

const defaultTemplate = "templates/namelist.config"

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.TemplateLoader = (*Loader)(nil)

// LoadTemplate parses the template at path, or the bundled default when
// path is empty.
func (l *Loader) LoadTemplate(path string) (*namelist.Document, error) {
	if path == "" {
		return l.loadBundled()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "template.load",
			Kind: domain.KindTemplateNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %v", domain.ErrTemplateNotFound, err),
		}
	}

	doc, err := namelist.ParseBytes(b)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "template.parse",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return doc, nil
}

func (l *Loader) loadBundled() (*namelist.Document, error) {
	b, err := fs.ReadFile(templatesFS, defaultTemplate)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "template.load_bundled",
			Kind: domain.KindExecution,
			Path: defaultTemplate,
			Err:  err,
		}
	}

	doc, err := namelist.ParseBytes(b)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "template.parse_bundled",
			Kind: domain.KindInvalidConfig,
			Path: defaultTemplate,
			Err:  err,
		}
	}
	return doc, nil
}
