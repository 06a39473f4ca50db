package domain

// PartitionOutcome records the result of one partitioning pass.
type PartitionOutcome struct {
	NPart int
	Err   error
}

func (o PartitionOutcome) Failed() bool {
	return o.Err != nil
}

// RunReport aggregates outcomes across all requested partition counts for
// a single mesh. Counts are independent: one failure does not stop the
// others from being attempted.
type RunReport struct {
	Mesh     Mesh
	Outcomes []PartitionOutcome
}

func (r RunReport) FailedCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}
