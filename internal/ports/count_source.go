package ports

import "context"

// PartitionCountSource supplies the partition counts to run, so the core
// config/run logic never depends on a terminal. An empty slice with a nil
// error means the operator chose to partition nothing.
type PartitionCountSource interface {
	Counts(ctx context.Context) ([]int, error)
}
