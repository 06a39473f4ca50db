// Package partitioner resolves and runs the external FESOM partitioner
// binary. Partitioning itself is entirely delegated: this package only
// writes the configuration file and waits for the child process.
package partitioner

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/FESOM/metis-wizard/internal/domain"
	"github.com/FESOM/metis-wizard/internal/ports"
)

// DefaultBinary is the well-known name of the FESOM partitioner.
const DefaultBinary = "fesom_ini"

type Locator struct{}

func NewLocator() *Locator {
	return &Locator{}
}

var _ ports.ExecutableLocator = (*Locator)(nil)

// Resolve finds the partitioner binary. An empty name falls back to
// DefaultBinary and searches the executable search path; a name containing
// a path separator is checked directly for being executable.
func (l *Locator) Resolve(nameOrPath string) (string, error) {
	name := strings.TrimSpace(nameOrPath)
	if name == "" {
		name = DefaultBinary
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", &domain.OpError{
			Op:   "partitioner.resolve",
			Kind: domain.KindExecutableNotFound,
			Path: name,
			Err:  fmt.Errorf("%w: %v", domain.ErrExecutableNotFound, err),
		}
	}
	return path, nil
}
