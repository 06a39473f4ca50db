package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/FESOM/metis-wizard/internal/domain"
	"github.com/FESOM/metis-wizard/internal/ports"
)

// PartitionMesh drives one wizard invocation: resolve the partitioner
// binary once, then run one build + execute pass per requested count.
type PartitionMesh struct {
	builder *ConfigBuilder
	locator ports.ExecutableLocator
	runner  ports.PartitionRunner
	log     *slog.Logger
}

func NewPartitionMesh(b *ConfigBuilder, loc ports.ExecutableLocator, r ports.PartitionRunner, log *slog.Logger) *PartitionMesh {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &PartitionMesh{
		builder: b,
		locator: loc,
		runner:  r,
		log:     log,
	}
}

type PartitionMeshParams struct {
	Mesh     domain.Mesh
	Counts   []int
	Rotation *domain.Rotation
	Cavity   bool

	Template   string // optional template override path
	Executable string // optional binary name/path override
}

// Execute runs the partitioner for every requested count. Binary resolution
// failure is fatal up front, before any configuration is written. After
// that, counts are independent: a failed one is recorded in the report and
// the remaining counts are still attempted.
func (uc *PartitionMesh) Execute(ctx context.Context, p PartitionMeshParams) (domain.RunReport, error) {
	report := domain.RunReport{Mesh: p.Mesh}

	exe, err := uc.locator.Resolve(p.Executable)
	if err != nil {
		uc.log.Error("partition.resolve_failed", "mesh", p.Mesh.Path, "error", err)
		return report, err
	}

	uc.log.Info("partition.start",
		"mesh", p.Mesh.Path,
		"schemes", len(p.Counts),
		"bin", exe,
	)

	for _, n := range p.Counts {
		outcome := domain.PartitionOutcome{NPart: n}

		doc, berr := uc.builder.Build(p.Template, domain.PartitionRequest{
			Mesh:     p.Mesh,
			NPart:    n,
			Rotation: p.Rotation,
			Cavity:   p.Cavity,
		})
		if berr != nil {
			uc.log.Error("partition.build_failed", "mesh", p.Mesh.Path, "n_part", n, "error", berr)
			outcome.Err = berr
			report.Outcomes = append(report.Outcomes, outcome)
			continue
		}

		if rerr := uc.runner.RunPartition(ctx, doc, n, exe); rerr != nil {
			uc.log.Error("partition.run_failed", "mesh", p.Mesh.Path, "n_part", n, "error", rerr)
			outcome.Err = rerr
			report.Outcomes = append(report.Outcomes, outcome)
			continue
		}

		uc.log.Info("partition.done", "mesh", p.Mesh.Path, "n_part", n)
		report.Outcomes = append(report.Outcomes, outcome)
	}

	if failed := report.FailedCount(); failed > 0 {
		return report, fmt.Errorf("partitioning failed for %d of %d count(s)", failed, len(p.Counts))
	}
	return report, nil
}
