package fixture

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// Net link rotations distinguish the three link roles.
var (
	baseRotation       = mgl64.Vec3{90, 90, 0}
	horizontalRotation = mgl64.Vec3{0, 0, 90}
	verticalRotation   = mgl64.Vec3{90, 0, 90}
)

func netLinksByRotation(t *testing.T, scene *Scene) map[mgl64.Vec3][]*MeshBody {
	t.Helper()
	byRotation := make(map[mgl64.Vec3][]*MeshBody)
	for i, body := range scene.RigidBodyProblem.RigidBodies {
		link, ok := body.(*MeshBody)
		if !ok {
			t.Fatalf("body %d: expected *MeshBody, got %T", i, body)
		}
		byRotation[link.Rotation] = append(byRotation[link.Rotation], link)
	}
	return byRotation
}

func TestChainNet_BodyCount(t *testing.T) {
	tests := []struct {
		rows, cols int
		expected   int // (R*C-4) + (R-2)*(C-1) + (C-2)*(R-1)
	}{
		{2, 2, 0},
		{2, 3, 3},
		{3, 3, 9},
		{8, 8, 144},
	}

	for _, tc := range tests {
		scene, err := ChainNet(tc.rows, tc.cols)
		if err != nil {
			t.Fatalf("ChainNet(%d, %d) failed: %v", tc.rows, tc.cols, err)
		}
		if got := len(scene.RigidBodyProblem.RigidBodies); got != tc.expected {
			t.Errorf("ChainNet(%d, %d): expected %d bodies, got %d", tc.rows, tc.cols, tc.expected, got)
		}
	}
}

func TestChainNet_CornersEmpty(t *testing.T) {
	const rows, cols = 8, 8
	scene, err := ChainNet(rows, cols)
	if err != nil {
		t.Fatalf("ChainNet failed: %v", err)
	}

	stepX := netLinkHeight + netLinkHeight/10
	stepZ := netLinkWidth + netLinkHeight/2.5
	corners := []mgl64.Vec3{
		{0, 0, 0},
		{float64(cols-1) * stepX, 0, 0},
		{0, 0, float64(rows-1) * stepZ},
		{float64(cols-1) * stepX, 0, float64(rows-1) * stepZ},
	}

	base := netLinksByRotation(t, scene)[baseRotation]
	for _, link := range base {
		for _, corner := range corners {
			if link.Position == corner {
				t.Errorf("unexpected base link at corner %v", corner)
			}
		}
	}
}

func TestChainNet_FixedBoundary(t *testing.T) {
	const rows, cols = 8, 8
	scene, err := ChainNet(rows, cols)
	if err != nil {
		t.Fatalf("ChainNet failed: %v", err)
	}

	byRotation := netLinksByRotation(t, scene)

	fixed := 0
	for _, link := range byRotation[baseRotation] {
		if link.IsDOFFixed {
			fixed++
		}
	}
	if expected := 2*(rows+cols) - 8; fixed != expected {
		t.Errorf("expected %d fixed boundary links, got %d", expected, fixed)
	}

	// Connectors always hang free.
	for _, rotation := range []mgl64.Vec3{horizontalRotation, verticalRotation} {
		for i, link := range byRotation[rotation] {
			if link.IsDOFFixed {
				t.Errorf("connector %d with rotation %v is fixed", i, rotation)
			}
		}
	}
}

func TestChainNet_ConnectorCounts(t *testing.T) {
	const rows, cols = 8, 8
	scene, err := ChainNet(rows, cols)
	if err != nil {
		t.Fatalf("ChainNet failed: %v", err)
	}

	byRotation := netLinksByRotation(t, scene)
	if got, expected := len(byRotation[baseRotation]), rows*cols-4; got != expected {
		t.Errorf("expected %d base links, got %d", expected, got)
	}
	if got, expected := len(byRotation[horizontalRotation]), (rows-2)*(cols-1); got != expected {
		t.Errorf("expected %d horizontal connectors, got %d", expected, got)
	}
	if got, expected := len(byRotation[verticalRotation]), (cols-2)*(rows-1); got != expected {
		t.Errorf("expected %d vertical connectors, got %d", expected, got)
	}
}

func TestChainNet_LinkMesh(t *testing.T) {
	scene, err := ChainNet(3, 4)
	if err != nil {
		t.Fatalf("ChainNet failed: %v", err)
	}

	for i, body := range scene.RigidBodyProblem.RigidBodies {
		link := body.(*MeshBody)
		if link.Mesh != "wrecking-ball/link.obj" {
			t.Errorf("body %d: unexpected mesh %q", i, link.Mesh)
		}
		if link.Density != 7680 {
			t.Errorf("body %d: unexpected density %g", i, link.Density)
		}
		if link.Position[1] != 0 {
			t.Errorf("body %d: net must lie in the xz plane, got y=%g", i, link.Position[1])
		}
	}
}

func TestChainNet_InvalidGrid(t *testing.T) {
	tests := [][2]int{{1, 8}, {8, 1}, {0, 0}, {-2, 4}}

	for _, tc := range tests {
		_, err := ChainNet(tc[0], tc[1])
		if !errors.Is(err, ErrGridSize) {
			t.Errorf("ChainNet(%d, %d): expected ErrGridSize, got %v", tc[0], tc[1], err)
		}
	}
}

func TestChainNetPath(t *testing.T) {
	got := ChainNetPath("fixtures")
	expected := filepath.Join("fixtures", "3D", "chain", "chain-net.json")
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
