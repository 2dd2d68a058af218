// Package fixture builds scene documents for the rigid body solver and
// writes them as JSON fixture files.
//
// A scene pairs global solver parameters with an ordered list of rigid
// bodies. Bodies are either mesh-referencing (3D) or polygon-based (2D).
// The generators (Chainmail, Pyramid, ChainNet) construct scenes
// deterministically from a handful of numeric parameters.
package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
)

// Scene validation errors.
var (
	ErrNoMesh         = errors.New("mesh body needs a mesh path")
	ErrBadDensity     = errors.New("mesh body needs a positive density")
	ErrNoVertices     = errors.New("polygon body needs vertices")
	ErrEdgeIndexRange = errors.New("edge references vertex out of range")
)

// Scene is one solver fixture document.
type Scene struct {
	SceneType                 string            `json:"scene_type"`
	Solver                    string            `json:"solver"`
	Timestep                  float64           `json:"timestep"`
	MaxTime                   float64           `json:"max_time"`
	DistanceBarrierConstraint BarrierConstraint `json:"distance_barrier_constraint"`
	BarrierSolver             *BarrierSolver    `json:"barrier_solver,omitempty"`
	RigidBodyProblem          RigidBodyProblem  `json:"rigid_body_problem"`
}

// BarrierConstraint holds the distance barrier constraint parameters.
type BarrierConstraint struct {
	TrajectoryType       string  `json:"trajectory_type,omitempty"`
	CustomInitialEpsilon float64 `json:"custom_initial_epsilon,omitempty"`
}

// BarrierSolver holds the outer barrier solver parameters.
type BarrierSolver struct {
	InnerSolver       string  `json:"inner_solver,omitempty"`
	MinBarrierEpsilon float64 `json:"min_barrier_epsilon,omitempty"`
}

// RigidBodyProblem groups the problem-level physics parameters with the
// ordered body list.
type RigidBodyProblem struct {
	CoefficientRestitution float64    `json:"coefficient_restitution"`
	Gravity                mgl64.Vec3 `json:"gravity"`
	RigidBodies            []Body     `json:"rigid_bodies"`
}

// Body is one rigid body entry in a scene. Implementations are MeshBody for
// mesh-referencing 3D bodies and PolygonBody for 2D polygon bodies.
type Body interface {
	Validate() error
}

// MeshBody places a mesh file in the scene.
type MeshBody struct {
	Mesh       string     `json:"mesh"`
	Position   mgl64.Vec3 `json:"position"`
	Rotation   mgl64.Vec3 `json:"rotation"`
	Density    float64    `json:"density"`
	IsDOFFixed bool       `json:"is_dof_fixed"`
}

// Validate checks the body's required fields.
func (b *MeshBody) Validate() error {
	if b.Mesh == "" {
		return ErrNoMesh
	}
	if b.Density <= 0 {
		return fmt.Errorf("%w: %g", ErrBadDensity, b.Density)
	}
	return nil
}

// PolygonBody describes a 2D body by its vertex coordinates and edge index
// pairs. Velocity is the initial [vx, vy, omega]; IsDOFFixed pins the x, y
// and rotational degrees of freedom.
type PolygonBody struct {
	Vertices   []mgl64.Vec2 `json:"vertices"`
	Edges      [][2]int     `json:"edges"`
	Oriented   *bool        `json:"oriented,omitempty"`
	Velocity   *mgl64.Vec3  `json:"velocity,omitempty"`
	IsDOFFixed [3]bool      `json:"is_dof_fixed"`
}

// Validate checks that every edge references a vertex of this body.
func (b *PolygonBody) Validate() error {
	if len(b.Vertices) == 0 {
		return ErrNoVertices
	}
	for i, e := range b.Edges {
		for _, v := range e {
			if v < 0 || v >= len(b.Vertices) {
				return fmt.Errorf("%w: edge %d references vertex %d of %d",
					ErrEdgeIndexRange, i, v, len(b.Vertices))
			}
		}
	}
	return nil
}

// Default returns a scene preconfigured for the distance barrier problem and
// the ipc_solver, with no rigid bodies.
func Default() *Scene {
	return &Scene{
		SceneType: "distance_barrier_rb_problem",
		Solver:    "ipc_solver",
		Timestep:  0.01,
		MaxTime:   1.0,
		DistanceBarrierConstraint: BarrierConstraint{
			TrajectoryType: "linearized",
		},
		BarrierSolver: &BarrierSolver{
			InnerSolver: "newton_solver",
		},
		RigidBodyProblem: RigidBodyProblem{
			CoefficientRestitution: -1,
			Gravity:                mgl64.Vec3{0, -9.81, 0},
			RigidBodies:            []Body{},
		},
	}
}

// Validate checks every body in the scene.
func (s *Scene) Validate() error {
	for i, b := range s.RigidBodyProblem.RigidBodies {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("rigid body %d: %w", i, err)
		}
	}
	return nil
}

// Save validates the scene and writes it as indented JSON to path, creating
// parent directories as needed.
func (s *Scene) Save(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
