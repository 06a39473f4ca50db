package ports

import (
	"context"

	"github.com/FESOM/metis-wizard/internal/namelist"
)

// ExecutableLocator resolves the partitioner binary. An empty name selects
// the well-known default and searches the executable search path.
type ExecutableLocator interface {
	Resolve(nameOrPath string) (string, error)
}

// PartitionRunner executes exactly one partitioning pass: write the
// finalized document, invoke the binary, wait for it to exit.
type PartitionRunner interface {
	RunPartition(ctx context.Context, doc *namelist.Document, npart int, exe string) error
}
