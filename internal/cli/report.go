package cli

import (
	"fmt"
	"io"

	"github.com/FESOM/metis-wizard/internal/domain"
)

func printReport(w io.Writer, report domain.RunReport) {
	if len(report.Outcomes) == 0 {
		return
	}

	fmt.Fprintf(w, "Mesh:       %s\n", report.Mesh.Path)
	fmt.Fprintf(w, "Partitions: %d scheme(s)\n", len(report.Outcomes))
	fmt.Fprintln(w)

	for _, o := range report.Outcomes {
		if o.Failed() {
			fmt.Fprintf(w, "- [FAIL] n_part=%d\n", o.NPart)
			fmt.Fprintf(w, "  error: %v\n", o.Err)
			continue
		}
		fmt.Fprintf(w, "- [ OK ] n_part=%d\n", o.NPart)
	}
}
