package template

import (
	"path/filepath"
	"testing"

	"github.com/FESOM/metis-wizard/internal/domain"
)

func TestLoadBundledDefault(t *testing.T) {
	doc, err := NewLoader().LoadTemplate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every section the builder touches must be present in the default.
	for _, section := range []string{"paths", "machine", "geometry", "ale_def", "run_config"} {
		if _, ok := doc.Section(section); !ok {
			t.Fatalf("bundled template missing section %q", section)
		}
	}
	if v, ok := doc.Get("machine", "n_part"); !ok || v.Int <= 0 {
		t.Fatalf("bundled template has no usable n_part: %+v", v)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join("testdata", "minimal.nml")
	doc, err := NewLoader().LoadTemplate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := doc.Get("paths", "MeshPath"); v.Str != "/testdata/mesh/" {
		t.Fatalf("unexpected meshpath: %+v", v)
	}
}

func TestLoadMissingPath(t *testing.T) {
	_, err := NewLoader().LoadTemplate(filepath.Join("testdata", "nope.nml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindTemplateNotFound) {
		t.Fatalf("expected template_not_found kind, got %v", err)
	}
}

func TestLoadMalformedTemplate(t *testing.T) {
	_, err := NewLoader().LoadTemplate(filepath.Join("testdata", "broken.nml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
}
