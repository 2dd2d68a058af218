package fixture

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrLinkCount is returned for non-positive chain link counts.
var ErrLinkCount = errors.New("chain needs at least one link")

// One planar chain-mail link. The proportions leave a gap for the next link
// to thread through.
var (
	chainLinkVertices = []mgl64.Vec2{
		{-1.5 * 1.625, 0},
		{0, 0},
		{1.5 * 1.625, 0},
		{-3, -3},
		{0, -3},
		{3, -3},
		{-3, -6},
		{-1.5 * 0.375, -6},
		{1.5 * 0.375, -6},
		{3, -6},
	}
	chainLinkEdges = [][2]int{
		{0, 1}, {1, 2}, {1, 4}, {3, 4}, {4, 5}, {3, 6}, {5, 9}, {6, 7}, {8, 9},
	}

	chainLinkSpacing = 4.5
)

// Chainmail builds a scene of links hanging vertically, each link offset
// below the previous one. The first link is fixed on all degrees of freedom
// and at rest; every other link starts free and moving downward.
func Chainmail(links int) (*Scene, error) {
	if links < 1 {
		return nil, fmt.Errorf("%w: %d", ErrLinkCount, links)
	}

	scene := Default()
	bodies := make([]Body, 0, links)
	for i := 0; i < links; i++ {
		offset := mgl64.Vec2{0, -chainLinkSpacing * float64(i)}
		vertices := make([]mgl64.Vec2, len(chainLinkVertices))
		for j, v := range chainLinkVertices {
			vertices[j] = v.Add(offset)
		}

		velocity := mgl64.Vec3{0, -1, 0}
		if i == 0 {
			velocity = mgl64.Vec3{}
		}
		fixed := i == 0

		bodies = append(bodies, &PolygonBody{
			Vertices:   vertices,
			Edges:      append([][2]int(nil), chainLinkEdges...),
			Velocity:   &velocity,
			IsDOFFixed: [3]bool{fixed, fixed, fixed},
		})
	}
	scene.RigidBodyProblem.RigidBodies = bodies

	return scene, nil
}

// ChainmailPath returns the default output path for a chain of the given
// length under the fixtures directory.
func ChainmailPath(dir string, links int) string {
	return filepath.Join(dir, "chain", fmt.Sprintf("simple_%d_link_chain.json", links))
}
