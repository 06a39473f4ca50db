package usecase

import (
	"fmt"

	"github.com/FESOM/metis-wizard/internal/domain"
	"github.com/FESOM/metis-wizard/internal/namelist"
	"github.com/FESOM/metis-wizard/internal/ports"
)

// ConfigBuilder turns a namelist template plus a partition request into a
// finalized configuration document. Apply steps mutate the in-memory
// document only; the sole I/O happens in Load.
type ConfigBuilder struct {
	templates ports.TemplateLoader
}

func NewConfigBuilder(tl ports.TemplateLoader) *ConfigBuilder {
	return &ConfigBuilder{templates: tl}
}

// Load fetches the template; an empty path selects the bundled default.
func (b *ConfigBuilder) Load(path string) (*namelist.Document, error) {
	return b.templates.LoadTemplate(path)
}

// ApplyMesh sets the mesh path field. Opaque passthrough: the path is not
// checked against anything, and repeated calls with the same path are
// idempotent.
func (b *ConfigBuilder) ApplyMesh(doc *namelist.Document, mesh domain.Mesh) error {
	return b.set(doc, "paths", "MeshPath", namelist.String(mesh.Path))
}

// ApplyPartitionCount sets the partition count and forces the level count
// to exactly 1, regardless of what the template carried.
func (b *ConfigBuilder) ApplyPartitionCount(doc *namelist.Document, n int) error {
	if n <= 0 {
		return &domain.OpError{
			Op:   "builder.apply_partition_count",
			Kind: domain.KindInvalidPartitionCount,
			Err:  fmt.Errorf("n_part must be a positive integer, got %d: %w", n, domain.ErrInvalidPartitionCount),
		}
	}
	if err := b.set(doc, "machine", "n_levels", namelist.Int(1)); err != nil {
		return err
	}
	return b.set(doc, "machine", "n_part", namelist.Int(int64(n)))
}

// ApplyRotation sets the three Euler angle fields. A nil rotation is a
// no-op; partial triples never reach this point (domain.RotationFromValues
// rejects them). Angle ranges are not validated.
func (b *ConfigBuilder) ApplyRotation(doc *namelist.Document, rot *domain.Rotation) error {
	if rot == nil {
		return nil
	}
	if err := b.set(doc, "geometry", "alphaEuler", namelist.Float(rot.Alpha)); err != nil {
		return err
	}
	if err := b.set(doc, "geometry", "betaEuler", namelist.Float(rot.Beta)); err != nil {
		return err
	}
	return b.set(doc, "geometry", "gammaEuler", namelist.Float(rot.Gamma))
}

// ApplyCavity enables ice-shelf cavity handling by setting all three
// related flags. Disabling is deliberately a no-op: the template's values
// win, enable is absolute but disable is not.
func (b *ConfigBuilder) ApplyCavity(doc *namelist.Document, enabled bool) error {
	if !enabled {
		return nil
	}
	if err := b.set(doc, "ale_def", "use_partial_cell", namelist.Bool(true)); err != nil {
		return err
	}
	if err := b.set(doc, "run_config", "use_cavity", namelist.Bool(true)); err != nil {
		return err
	}
	return b.set(doc, "run_config", "use_cavity_partial_cell", namelist.Bool(true))
}

// Build runs the full load + apply sequence for one request.
func (b *ConfigBuilder) Build(templatePath string, req domain.PartitionRequest) (*namelist.Document, error) {
	doc, err := b.Load(templatePath)
	if err != nil {
		return nil, err
	}
	if err := b.ApplyMesh(doc, req.Mesh); err != nil {
		return nil, err
	}
	if err := b.ApplyPartitionCount(doc, req.NPart); err != nil {
		return nil, err
	}
	if err := b.ApplyRotation(doc, req.Rotation); err != nil {
		return nil, err
	}
	if err := b.ApplyCavity(doc, req.Cavity); err != nil {
		return nil, err
	}
	return doc, nil
}

func (b *ConfigBuilder) set(doc *namelist.Document, section, key string, v namelist.Value) error {
	if err := doc.Set(section, key, v); err != nil {
		return &domain.OpError{
			Op:   "builder.set",
			Kind: domain.KindInvalidConfig,
			Path: section + "." + key,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidConfig),
		}
	}
	return nil
}
