package fixture

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrRowCount is returned for non-positive pyramid row counts.
var ErrRowCount = errors.New("pyramid needs at least one row")

// pyramidGap is the center-to-center spacing between unit boxes. The extra
// tenth keeps neighbors from starting in contact.
const pyramidGap = 1 + 1e-1

// Pyramid builds a triangular stack of unit boxes resting above a fixed
// ground segment. Row i holds rows-i boxes, so the stack narrows upward.
// All boxes start free and at rest; cor is the coefficient of restitution
// handed to the solver (-1 selects its default contact model).
func Pyramid(rows int, cor float64) (*Scene, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: %d", ErrRowCount, rows)
	}

	scene := Default()
	scene.DistanceBarrierConstraint.CustomInitialEpsilon = 1e-2
	scene.BarrierSolver.MinBarrierEpsilon = 1e-4
	scene.RigidBodyProblem.Gravity = mgl64.Vec3{0, -9.81, 0}
	scene.RigidBodyProblem.CoefficientRestitution = cor

	oriented := false
	bodies := []Body{
		&PolygonBody{
			Vertices:   []mgl64.Vec2{{-10, 0}, {10, 0}},
			Edges:      [][2]int{{0, 1}},
			Oriented:   &oriented,
			IsDOFFixed: [3]bool{true, true, true},
		},
	}

	for i := 0; i < rows; i++ {
		y := pyramidGap*float64(i) + 1e-1
		for j := 0; j < rows-i; j++ {
			x := pyramidGap*float64(j) - pyramidGap*float64(rows-i)/2
			bodies = append(bodies, unitBox(x, y))
		}
	}
	scene.RigidBodyProblem.RigidBodies = bodies

	return scene, nil
}

func unitBox(x, y float64) *PolygonBody {
	velocity := mgl64.Vec3{}
	return &PolygonBody{
		Vertices: []mgl64.Vec2{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}},
		Edges:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		Velocity: &velocity,
	}
}

// PyramidPath returns the default output path for a pyramid fixture with the
// given coefficient of restitution under the fixtures directory.
func PyramidPath(dir string, cor float64) string {
	return filepath.Join(dir, "stacking", fmt.Sprintf("pyramid-cor=%g.json", cor))
}
