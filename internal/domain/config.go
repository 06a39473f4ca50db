package domain

import "path/filepath"

// Config represents the minimal metis-wizard configuration loaded from
// metiswiz.yaml in the working directory.
type Config struct {
	Partitioner PartitionerConfig
	Defaults    DefaultsConfig
	Paths       PathsConfig
}

type PartitionerConfig struct {
	Executable string
}

type DefaultsConfig struct {
	Template string // optional namelist template override path
	NPart    int    // used when no counts are requested
	Choices  []int  // interactive selection list
}

type PathsConfig struct {
	LogsDir string
}

// DefaultConfig provides sane defaults if metiswiz.yaml is missing or
// partially filled in.
func DefaultConfig() Config {
	return Config{
		Partitioner: PartitionerConfig{
			Executable: "fesom_ini",
		},
		Defaults: DefaultsConfig{
			NPart:   288,
			Choices: []int{72, 144, 288, 432, 864},
		},
		Paths: PathsConfig{
			LogsDir: filepath.Join(".metiswiz", "logs"),
		},
	}
}
