package cli

import (
	"strings"
	"testing"

	"github.com/FESOM/metis-wizard/internal/domain"
)

func TestParseCounts(t *testing.T) {
	got, err := parseCounts([]string{"72", "144", "288"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != 72 || got[2] != 288 {
		t.Fatalf("unexpected counts: %v", got)
	}
}

func TestParseCountsEmpty(t *testing.T) {
	got, err := parseCounts(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no counts, got %v", got)
	}
}

func TestParseCountsRejectsNonInteger(t *testing.T) {
	_, err := parseCounts([]string{"288", "lots"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidPartitionCount) {
		t.Fatalf("expected invalid_partition_count kind, got %v", err)
	}
}

func TestResolveMeshPathMissing(t *testing.T) {
	_, err := resolveMeshPath("/definitely/not/a/mesh")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
}

func TestResolveMeshPathExisting(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveMeshPath(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}

func TestPrintReport(t *testing.T) {
	report := domain.RunReport{
		Mesh: domain.NewMesh("/data/mesh1"),
		Outcomes: []domain.PartitionOutcome{
			{NPart: 72},
			{NPart: 144, Err: domain.ErrExecution},
		},
	}

	var b strings.Builder
	printReport(&b, report)
	out := b.String()

	if !strings.Contains(out, "/data/mesh1") {
		t.Fatalf("expected mesh path in report:\n%s", out)
	}
	if !strings.Contains(out, "[ OK ] n_part=72") {
		t.Fatalf("expected ok line:\n%s", out)
	}
	if !strings.Contains(out, "[FAIL] n_part=144") {
		t.Fatalf("expected fail line:\n%s", out)
	}
}
