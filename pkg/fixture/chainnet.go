package fixture

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrGridSize is returned when a chain net grid is smaller than 2x2.
var ErrGridSize = errors.New("chain net needs at least a 2x2 grid")

// Link mesh proportions. The gaps are sized so neighboring links interlock
// without intersecting.
const (
	netLinkMesh   = "wrecking-ball/link.obj"
	netLinkHeight = 1.5
	netLinkWidth  = 1.0
)

// ChainNet builds a woven rows x cols net of interlocking link meshes in the
// xz plane. Base links sit at integer grid cells (the four corners stay
// empty); connecting links are threaded between interior cells at
// half-integer offsets. Links on the boundary rows and columns are fixed so
// the net hangs from its rim.
func ChainNet(rows, cols int) (*Scene, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridSize, rows, cols)
	}

	stepX := netLinkHeight + netLinkHeight/10
	stepZ := netLinkWidth + netLinkHeight/2.5

	scene := Default()
	var bodies []Body
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			onRowEdge := i == 0 || i == rows-1
			onColEdge := j == 0 || j == cols-1
			if onRowEdge && onColEdge {
				continue
			}

			bodies = append(bodies, netLink(
				mgl64.Vec3{float64(j) * stepX, 0, float64(i) * stepZ},
				mgl64.Vec3{90, 90, 0},
				onRowEdge || onColEdge))

			// Horizontal connector toward the next column.
			if !onRowEdge && j < cols-1 {
				bodies = append(bodies, netLink(
					mgl64.Vec3{(float64(j) + 0.5) * stepX, 0, float64(i) * stepZ},
					mgl64.Vec3{0, 0, 90},
					false))
			}
			// Vertical connector toward the next row.
			if !onColEdge && i < rows-1 {
				bodies = append(bodies, netLink(
					mgl64.Vec3{float64(j) * stepX, 0, (float64(i) + 0.5) * stepZ},
					mgl64.Vec3{90, 0, 90},
					false))
			}
		}
	}
	scene.RigidBodyProblem.RigidBodies = bodies

	return scene, nil
}

func netLink(position, rotation mgl64.Vec3, fixed bool) *MeshBody {
	return &MeshBody{
		Mesh:       netLinkMesh,
		Position:   position,
		Rotation:   rotation,
		Density:    7680,
		IsDOFFixed: fixed,
	}
}

// ChainNetPath returns the default output path for the chain net fixture
// under the fixtures directory.
func ChainNetPath(dir string) string {
	return filepath.Join(dir, "3D", "chain", "chain-net.json")
}
