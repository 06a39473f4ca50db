package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/FESOM/metis-wizard/internal/buildinfo"
	"github.com/FESOM/metis-wizard/internal/domain"
	"github.com/FESOM/metis-wizard/internal/infra/counts"
	"github.com/FESOM/metis-wizard/internal/infra/logger"
	"github.com/FESOM/metis-wizard/internal/infra/partitioner"
	"github.com/FESOM/metis-wizard/internal/infra/template"
	"github.com/FESOM/metis-wizard/internal/infra/toolconfig"
	"github.com/FESOM/metis-wizard/internal/ports"
	"github.com/FESOM/metis-wizard/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug        bool
		interactive  bool
		rotated      []float64
		useCavity    bool
		fesomIni     string
		namelistPath string
	)

	cmd := &cobra.Command{
		Use:          "metiswiz MESH_PATH [N_PART...]",
		Short:        "metis-wizard — namelist wizard for the FESOM mesh partitioner",
		Long:         "Configures and invokes fesom_ini: writes namelist.config for each requested\npartition count and runs the partitioner once per count.",
		Version:      buildinfo.String(),
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			meshPath, err := resolveMeshPath(args[0])
			if err != nil {
				return err
			}

			nparts, err := parseCounts(args[1:])
			if err != nil {
				return err
			}

			rot, err := domain.RotationFromValues(rotated)
			if err != nil {
				return err
			}

			cfg, err := toolconfig.Load(".")
			if err != nil {
				return err
			}

			log, cleanup, lerr := logger.Setup(logger.Config{
				Dir:   cfg.Paths.LogsDir,
				Debug: debug,
			})
			if lerr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", lerr)
			}
			defer func() { _ = cleanup() }()

			var source ports.PartitionCountSource
			switch {
			case len(nparts) > 0:
				source = counts.NewFixed(nparts)
			case interactive:
				source = counts.NewInteractive(cfg.Defaults.Choices, log)
			default:
				source = counts.NewFixed([]int{cfg.Defaults.NPart})
			}

			selected, err := source.Counts(cmd.Context())
			if err != nil {
				return err
			}
			if len(selected) == 0 {
				log.Info("cli.nothing_selected", "mesh", meshPath)
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to partition.")
				return nil
			}

			tmpl := namelistPath
			if tmpl == "" {
				tmpl = cfg.Defaults.Template
			}
			exe := fesomIni
			if exe == "" {
				exe = cfg.Partitioner.Executable
			}

			uc := usecase.NewPartitionMesh(
				usecase.NewConfigBuilder(template.NewLoader()),
				partitioner.NewLocator(),
				partitioner.NewRunner(log),
				log,
			)

			report, runErr := uc.Execute(cmd.Context(), usecase.PartitionMeshParams{
				Mesh:       domain.NewMesh(meshPath),
				Counts:     selected,
				Rotation:   rot,
				Cavity:     useCavity,
				Template:   tmpl,
				Executable: exe,
			})

			printReport(cmd.OutOrStdout(), report)
			return runErr
		},
	}

	cmd.Flags().BoolVar(&interactive, "interactive", false, "Select partition counts via prompt when none are given")
	cmd.Flags().Float64SliceVar(&rotated, "rotated", nil, "Euler angles alpha,beta,gamma (exactly three values)")
	cmd.Flags().BoolVar(&useCavity, "use-cavity", false, "Enable ice-shelf cavity flags in the namelist")
	cmd.Flags().StringVar(&fesomIni, "fesom-ini", "", "Partitioner executable name or path (default: fesom_ini on PATH)")
	cmd.Flags().StringVar(&namelistPath, "namelist", "", "Namelist template path (default: bundled template)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .metiswiz/logs/metiswiz.log")

	return cmd
}

// resolveMeshPath verifies the mesh path exists up front; beyond that the
// path is opaque and handed to the partitioner as-is.
func resolveMeshPath(arg string) (string, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("invalid mesh path %q: %w", arg, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", &domain.OpError{
			Op:   "cli.mesh_path",
			Kind: domain.KindInvalidConfig,
			Path: abs,
			Err:  fmt.Errorf("mesh path does not exist: %w", err),
		}
	}
	return abs, nil
}

func parseCounts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "cli.parse_counts",
				Kind: domain.KindInvalidPartitionCount,
				Err:  fmt.Errorf("%q is not an integer: %w", a, domain.ErrInvalidPartitionCount),
			}
		}
		out = append(out, n)
	}
	return out, nil
}
