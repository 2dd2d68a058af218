package fixture

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPyramid_BodyCount(t *testing.T) {
	tests := []struct {
		rows     int
		expected int // ground plus rows*(rows+1)/2 boxes
	}{
		{1, 2},
		{2, 4},
		{5, 16},
	}

	for _, tc := range tests {
		scene, err := Pyramid(tc.rows, -1)
		if err != nil {
			t.Fatalf("Pyramid(%d) failed: %v", tc.rows, err)
		}
		if got := len(scene.RigidBodyProblem.RigidBodies); got != tc.expected {
			t.Errorf("Pyramid(%d): expected %d bodies, got %d", tc.rows, tc.expected, got)
		}
	}
}

func TestPyramid_Ground(t *testing.T) {
	scene, err := Pyramid(5, -1)
	if err != nil {
		t.Fatalf("Pyramid failed: %v", err)
	}

	ground, ok := scene.RigidBodyProblem.RigidBodies[0].(*PolygonBody)
	if !ok {
		t.Fatalf("expected *PolygonBody ground, got %T", scene.RigidBodyProblem.RigidBodies[0])
	}
	if len(ground.Vertices) != 2 || ground.Vertices[0] != (mgl64.Vec2{-10, 0}) || ground.Vertices[1] != (mgl64.Vec2{10, 0}) {
		t.Errorf("unexpected ground vertices: %v", ground.Vertices)
	}
	if len(ground.Edges) != 1 || ground.Edges[0] != [2]int{0, 1} {
		t.Errorf("unexpected ground edges: %v", ground.Edges)
	}
	if ground.Oriented == nil || *ground.Oriented {
		t.Errorf("expected oriented=false on the ground")
	}
	if ground.IsDOFFixed != [3]bool{true, true, true} {
		t.Errorf("expected fixed ground, got %v", ground.IsDOFFixed)
	}
	if ground.Velocity != nil {
		t.Errorf("ground should not carry a velocity, got %v", *ground.Velocity)
	}
}

func TestPyramid_Boxes(t *testing.T) {
	const rows = 3
	scene, err := Pyramid(rows, -1)
	if err != nil {
		t.Fatalf("Pyramid failed: %v", err)
	}

	boxes := scene.RigidBodyProblem.RigidBodies[1:]
	for i, body := range boxes {
		box := body.(*PolygonBody)
		if len(box.Vertices) != 4 || len(box.Edges) != 4 {
			t.Fatalf("box %d: expected unit box, got %d vertices %d edges",
				i, len(box.Vertices), len(box.Edges))
		}
		if box.IsDOFFixed != [3]bool{false, false, false} {
			t.Errorf("box %d: expected free body, got %v", i, box.IsDOFFixed)
		}
		if box.Velocity == nil || *box.Velocity != (mgl64.Vec3{}) {
			t.Errorf("box %d: expected zero velocity, got %v", i, box.Velocity)
		}

		// Unit extent on both axes.
		w := box.Vertices[1][0] - box.Vertices[0][0]
		h := box.Vertices[2][1] - box.Vertices[1][1]
		if w != 1 || h != 1 {
			t.Errorf("box %d: expected 1x1 extent, got %gx%g", i, w, h)
		}
	}

	// First box of the bottom row sits just above the ground, centered left.
	first := boxes[0].(*PolygonBody)
	if math.Abs(first.Vertices[0][1]-0.1) > 1e-12 {
		t.Errorf("bottom row y: expected 0.1, got %g", first.Vertices[0][1])
	}
	if math.Abs(first.Vertices[0][0]-(-1.1*float64(rows)/2)) > 1e-12 {
		t.Errorf("bottom row first x: expected %g, got %g", -1.1*float64(rows)/2, first.Vertices[0][0])
	}

	// Rows narrow by one box each.
	if len(boxes) != rows*(rows+1)/2 {
		t.Fatalf("expected %d boxes, got %d", rows*(rows+1)/2, len(boxes))
	}
}

func TestPyramid_SolverParameters(t *testing.T) {
	scene, err := Pyramid(5, 0.5)
	if err != nil {
		t.Fatalf("Pyramid failed: %v", err)
	}

	if scene.RigidBodyProblem.CoefficientRestitution != 0.5 {
		t.Errorf("expected restitution 0.5, got %g", scene.RigidBodyProblem.CoefficientRestitution)
	}
	if scene.RigidBodyProblem.Gravity != (mgl64.Vec3{0, -9.81, 0}) {
		t.Errorf("unexpected gravity: %v", scene.RigidBodyProblem.Gravity)
	}
	if scene.DistanceBarrierConstraint.CustomInitialEpsilon != 1e-2 {
		t.Errorf("expected initial epsilon 1e-2, got %g", scene.DistanceBarrierConstraint.CustomInitialEpsilon)
	}
	if scene.BarrierSolver == nil || scene.BarrierSolver.MinBarrierEpsilon != 1e-4 {
		t.Errorf("expected min barrier epsilon 1e-4, got %+v", scene.BarrierSolver)
	}
}

func TestPyramid_InvalidRows(t *testing.T) {
	for _, rows := range []int{0, -3} {
		_, err := Pyramid(rows, -1)
		if !errors.Is(err, ErrRowCount) {
			t.Errorf("Pyramid(%d): expected ErrRowCount, got %v", rows, err)
		}
	}
}

func TestPyramidPath(t *testing.T) {
	tests := []struct {
		cor      float64
		expected string
	}{
		{-1, "pyramid-cor=-1.json"},
		{0.5, "pyramid-cor=0.5.json"},
		{0, "pyramid-cor=0.json"},
	}

	for _, tc := range tests {
		got := PyramidPath("fixtures", tc.cor)
		expected := filepath.Join("fixtures", "stacking", tc.expected)
		if got != expected {
			t.Errorf("PyramidPath(%g): expected %q, got %q", tc.cor, expected, got)
		}
	}
}
