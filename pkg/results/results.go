// Package results converts solver result logs into visualization files.
//
// A results document is the JSON the solver writes after a run: an animation
// record with per-timestep vertex snapshots, a shared edge topology, and
// per-timestep scalar state. The package parses and validates the document,
// flattens the time sequence into a Timeline, and exports the timeline as
// two legacy VTK meshes plus an energy CSV.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Document validation errors.
var (
	ErrMissingAnimation = errors.New("results missing animation record")
	ErrMissingVertices  = errors.New("results missing vertices_sequence")
	ErrMissingStates    = errors.New("results missing state_sequence")
	ErrMissingEdges     = errors.New("results missing edges")
	ErrNoTimesteps      = errors.New("results hold no timesteps")
	ErrSequenceLength   = errors.New("state_sequence length differs from vertices_sequence")
	ErrVertexCount      = errors.New("vertex count varies between timesteps")
	ErrEdgeRange        = errors.New("edge references vertex out of range")
	ErrGroupIDLength    = errors.New("group_id length differs from vertex count")
)

// Document is one solver results file.
type Document struct {
	Animation *Animation `json:"animation"`
}

// Animation is the time-indexed simulation record. VerticesSequence holds
// one [x, y] row per vertex per timestep; Edges index into that fixed-size
// vertex set and are shared by every timestep. GroupID optionally labels
// each vertex with its body.
type Animation struct {
	VerticesSequence [][][2]float64 `json:"vertices_sequence"`
	StateSequence    []State        `json:"state_sequence"`
	Edges            [][2]int32     `json:"edges"`
	GroupID          []int32        `json:"group_id"`
}

// State is the scalar diagnostics snapshot of one timestep. MinDistance is
// nil when the solver did not record a separation distance (missing or null
// in the JSON). RigidBodies is empty for runs that did not log body state.
type State struct {
	LinearMomentum  [2]float64  `json:"linear_momentum"`
	AngularMomentum float64     `json:"angular_momentum"`
	KineticEnergy   float64     `json:"kinetic_energy"`
	PotentialEnergy float64     `json:"potential_energy"`
	MinDistance     *float64    `json:"min_distance"`
	RigidBodies     []BodyState `json:"rigid_bodies"`
}

// BodyState is one rigid body's centroid state at one timestep. The solver
// may log a trailing rotational component; only the planar part is kept.
type BodyState struct {
	Position [2]float64 `json:"position"`
	Velocity [2]float64 `json:"velocity"`
}

// Steps returns the number of recorded timesteps.
func (a *Animation) Steps() int {
	return len(a.VerticesSequence)
}

// VertexCount returns the per-timestep vertex count.
func (a *Animation) VertexCount() int {
	if len(a.VerticesSequence) == 0 {
		return 0
	}
	return len(a.VerticesSequence[0])
}

// Validate checks the animation against the invariants the exporter relies
// on: required fields present, matching sequence lengths, a constant vertex
// count, and edge and group id arrays consistent with it.
func (a *Animation) Validate() error {
	if a.VerticesSequence == nil {
		return ErrMissingVertices
	}
	if a.StateSequence == nil {
		return ErrMissingStates
	}
	if a.Edges == nil {
		return ErrMissingEdges
	}
	if len(a.VerticesSequence) == 0 {
		return ErrNoTimesteps
	}
	if len(a.StateSequence) != len(a.VerticesSequence) {
		return fmt.Errorf("%w: %d states for %d timesteps",
			ErrSequenceLength, len(a.StateSequence), len(a.VerticesSequence))
	}

	k := a.VertexCount()
	for i, vertices := range a.VerticesSequence {
		if len(vertices) != k {
			return fmt.Errorf("%w: timestep %d has %d vertices, want %d",
				ErrVertexCount, i, len(vertices), k)
		}
	}
	for i, e := range a.Edges {
		for _, v := range e {
			if v < 0 || int(v) >= k {
				return fmt.Errorf("%w: edge %d references vertex %d of %d",
					ErrEdgeRange, i, v, k)
			}
		}
	}
	if a.GroupID != nil && len(a.GroupID) != k {
		return fmt.Errorf("%w: %d ids for %d vertices", ErrGroupIDLength, len(a.GroupID), k)
	}
	return nil
}

// Parse decodes a results document and validates its animation record.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}
	if doc.Animation == nil {
		return nil, ErrMissingAnimation
	}
	if err := doc.Animation.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseFile reads and parses a results document from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
