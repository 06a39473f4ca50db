package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/FESOM/metis-wizard/internal/domain"
	"github.com/FESOM/metis-wizard/internal/namelist"
)

type fakeLocator struct {
	path string
	err  error
}

func (f fakeLocator) Resolve(_ string) (string, error) {
	return f.path, f.err
}

type fakeRunner struct {
	calls  []int
	failOn map[int]error
}

func (f *fakeRunner) RunPartition(_ context.Context, doc *namelist.Document, npart int, _ string) error {
	f.calls = append(f.calls, npart)
	if doc == nil {
		return errors.New("nil document")
	}
	if err, ok := f.failOn[npart]; ok {
		return err
	}
	return nil
}

func newTestUsecase(loc fakeLocator, run *fakeRunner) *PartitionMesh {
	return NewPartitionMesh(newTestBuilder(), loc, run, nil)
}

func TestExecuteAllCountsSucceed(t *testing.T) {
	runner := &fakeRunner{}
	uc := newTestUsecase(fakeLocator{path: "/opt/fesom/bin/fesom_ini"}, runner)

	report, err := uc.Execute(context.Background(), PartitionMeshParams{
		Mesh:   domain.NewMesh("/data/mesh1"),
		Counts: []int{72, 144, 288},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Outcomes) != 3 || report.FailedCount() != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(runner.calls) != 3 {
		t.Fatalf("expected 3 runner calls, got %d", len(runner.calls))
	}
}

func TestExecuteResolveFailureIsFatalBeforeAnyRun(t *testing.T) {
	resolveErr := &domain.OpError{
		Op:   "partitioner.resolve",
		Kind: domain.KindExecutableNotFound,
		Err:  domain.ErrExecutableNotFound,
	}
	runner := &fakeRunner{}
	uc := newTestUsecase(fakeLocator{err: resolveErr}, runner)

	report, err := uc.Execute(context.Background(), PartitionMeshParams{
		Mesh:   domain.NewMesh("/data/mesh1"),
		Counts: []int{288},
	})
	if !errors.Is(err, domain.ErrExecutableNotFound) {
		t.Fatalf("expected ErrExecutableNotFound, got %v", err)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no runner calls, got %d", len(runner.calls))
	}
	if len(report.Outcomes) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestExecuteFailedCountDoesNotShortCircuit(t *testing.T) {
	runErr := fmt.Errorf("exit status 1: %w", domain.ErrExecution)
	runner := &fakeRunner{failOn: map[int]error{144: runErr}}
	uc := newTestUsecase(fakeLocator{path: "/usr/bin/fesom_ini"}, runner)

	report, err := uc.Execute(context.Background(), PartitionMeshParams{
		Mesh:   domain.NewMesh("/data/mesh1"),
		Counts: []int{72, 144, 288},
	})
	if err == nil {
		t.Fatalf("expected aggregate error")
	}
	if len(runner.calls) != 3 {
		t.Fatalf("expected all counts attempted, got calls %v", runner.calls)
	}
	if report.FailedCount() != 1 {
		t.Fatalf("expected exactly one failure, got %d", report.FailedCount())
	}
	if !errors.Is(report.Outcomes[1].Err, domain.ErrExecution) {
		t.Fatalf("expected failure recorded for n=144, got %+v", report.Outcomes[1])
	}
}

func TestExecuteInvalidCountRecordedAndSkipsRunner(t *testing.T) {
	runner := &fakeRunner{}
	uc := newTestUsecase(fakeLocator{path: "/usr/bin/fesom_ini"}, runner)

	report, err := uc.Execute(context.Background(), PartitionMeshParams{
		Mesh:   domain.NewMesh("/data/mesh1"),
		Counts: []int{-1, 288},
	})
	if err == nil {
		t.Fatalf("expected aggregate error")
	}
	if len(runner.calls) != 1 || runner.calls[0] != 288 {
		t.Fatalf("expected runner invoked only for valid count, got %v", runner.calls)
	}
	if !domain.IsKind(report.Outcomes[0].Err, domain.KindInvalidPartitionCount) {
		t.Fatalf("expected invalid_partition_count recorded, got %+v", report.Outcomes[0])
	}
}
