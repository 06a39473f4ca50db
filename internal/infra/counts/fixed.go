// Package counts provides the two partition-count sources: a fixed list
// taken from CLI arguments, and an interactive terminal prompt.
package counts

import (
	"context"

	"github.com/FESOM/metis-wizard/internal/ports"
)

// Fixed returns a predetermined list of counts, for non-interactive runs.
type Fixed struct {
	counts []int
}

func NewFixed(counts []int) *Fixed {
	return &Fixed{counts: append([]int(nil), counts...)}
}

var _ ports.PartitionCountSource = (*Fixed)(nil)

func (f *Fixed) Counts(_ context.Context) ([]int, error) {
	return append([]int(nil), f.counts...), nil
}
