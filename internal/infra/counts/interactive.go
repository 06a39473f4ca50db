package counts

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FESOM/metis-wizard/internal/domain"
	"github.com/FESOM/metis-wizard/internal/ports"
)

// Interactive prompts the operator with a checkbox list of partition
// counts, optional custom additions, and a final confirmation. Declining
// the confirmation yields no counts and no error.
type Interactive struct {
	defaults []int
	log      *slog.Logger
}

func NewInteractive(defaults []int, log *slog.Logger) *Interactive {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Interactive{
		defaults: append([]int(nil), defaults...),
		log:      log,
	}
}

var _ ports.PartitionCountSource = (*Interactive)(nil)

func (i *Interactive) Counts(ctx context.Context) ([]int, error) {
	p := tea.NewProgram(newModel(i.defaults), tea.WithContext(ctx))

	out, err := p.Run()
	if err != nil {
		return nil, &domain.OpError{
			Op:   "counts.interactive",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	m, ok := out.(model)
	if !ok || m.aborted || !m.confirmed {
		i.log.Info("counts.interactive_declined")
		return nil, nil
	}

	sel := m.selected()
	i.log.Info("counts.interactive_selected", "counts", sel)
	return sel, nil
}
