package partitioner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/FESOM/metis-wizard/internal/domain"
	"github.com/FESOM/metis-wizard/internal/namelist"
	"github.com/FESOM/metis-wizard/internal/ports"
)

// ConfigFileName is the fixed filename the partitioner reads from its
// working directory. The binary takes no arguments; this name is the whole
// integration contract and must not change.
const ConfigFileName = "namelist.config"

// Runner writes the finalized namelist and invokes the partitioner as a
// synchronous child process. No timeout is applied: a hung partitioner
// hangs the wizard, an accepted limitation.
type Runner struct {
	workDir string
	log     *slog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

type Option func(*Runner)

// WithWorkDir changes the directory the namelist is written to and the
// child process runs in. Defaults to the current working directory.
func WithWorkDir(dir string) Option {
	return func(r *Runner) { r.workDir = dir }
}

// WithOutput redirects the child process output streams.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

func NewRunner(log *slog.Logger, opts ...Option) *Runner {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	r := &Runner{
		workDir: ".",
		log:     log,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.PartitionRunner = (*Runner)(nil)

// RunPartition serializes doc to namelist.config (overwriting any previous
// run's file), invokes exe with no arguments in the work directory, and
// waits for it to exit. On failure the written file is left in place for
// inspection.
func (r *Runner) RunPartition(ctx context.Context, doc *namelist.Document, npart int, exe string) error {
	path := filepath.Join(r.workDir, ConfigFileName)
	if err := os.WriteFile(path, doc.Bytes(), 0o644); err != nil {
		return &domain.OpError{
			Op:   "partitioner.write_config",
			Kind: domain.KindExecution,
			Path: path,
			Err:  fmt.Errorf("%w: %v", domain.ErrExecution, err),
		}
	}
	r.log.Info("partitioner.config_written", "path", path, "n_part", npart)

	cmd := exec.CommandContext(ctx, exe)
	cmd.Dir = r.workDir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.log.Info("partitioner.start", "bin", exe, "n_part", npart)
	if err := cmd.Run(); err != nil {
		return &domain.OpError{
			Op:   "partitioner.run",
			Kind: domain.KindExecution,
			Path: exe,
			Err:  fmt.Errorf("%w: %v", domain.ErrExecution, err),
		}
	}

	r.log.Info("partitioner.success", "bin", exe, "n_part", npart)
	return nil
}
