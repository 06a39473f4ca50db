// Package toolconfig loads the optional metiswiz.yaml overlay from the
// working directory.
package toolconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/FESOM/metis-wizard/internal/domain"
)

const FileName = "metiswiz.yaml"

// Load reads metiswiz.yaml from dir and applies it on top of the compiled
// defaults. A missing file is not an error: the wizard must run in a bare
// working directory.
func Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(dir, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "toolconfig.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "toolconfig.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Metiswiz.Partitioner.Executable != "" {
		cfg.Partitioner.Executable = y.Metiswiz.Partitioner.Executable
	}
	if y.Metiswiz.Defaults.Template != "" {
		cfg.Defaults.Template = y.Metiswiz.Defaults.Template
	}
	if y.Metiswiz.Defaults.NPart != nil {
		cfg.Defaults.NPart = *y.Metiswiz.Defaults.NPart
	}
	if len(y.Metiswiz.Defaults.Choices) > 0 {
		cfg.Defaults.Choices = y.Metiswiz.Defaults.Choices
	}
	if y.Metiswiz.Paths.LogsDir != "" {
		cfg.Paths.LogsDir = y.Metiswiz.Paths.LogsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Metiswiz struct {
		Partitioner struct {
			Executable string `yaml:"executable"`
		} `yaml:"partitioner"`

		Defaults struct {
			Template string `yaml:"template"`
			NPart    *int   `yaml:"n_part"`
			Choices  []int  `yaml:"choices"`
		} `yaml:"defaults"`

		Paths struct {
			LogsDir string `yaml:"logs_dir"`
		} `yaml:"paths"`
	} `yaml:"metiswiz"`
}
