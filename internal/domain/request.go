package domain

import "fmt"

// Rotation holds the three Euler angles the partitioner applies to the
// mesh coordinates. Angle values are passed through unvalidated.
type Rotation struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// RotationFromValues builds a Rotation from a flat value list. Rotation is
// all-or-nothing: an empty list means no rotation (nil), and anything other
// than exactly three values is rejected rather than partially applied.
func RotationFromValues(vals []float64) (*Rotation, error) {
	switch len(vals) {
	case 0:
		return nil, nil
	case 3:
		return &Rotation{Alpha: vals[0], Beta: vals[1], Gamma: vals[2]}, nil
	default:
		return nil, &OpError{
			Op:   "domain.rotation",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("rotation needs exactly three Euler angles, got %d: %w", len(vals), ErrInvalidConfig),
		}
	}
}

// PartitionRequest is one (mesh, partition count) tuple with optional
// rotation and cavity flags. Ephemeral: one is built per requested count
// and discarded after the partitioner run.
type PartitionRequest struct {
	Mesh     Mesh
	NPart    int
	Rotation *Rotation
	Cavity   bool
}
