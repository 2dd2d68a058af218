package results

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hexforge/rigidkit/pkg/vtk"
)

// ErrIterationCutoff is returned for cutoffs outside the recorded range.
var ErrIterationCutoff = errors.New("invalid iteration cutoff")

// Timeline holds the accumulation buffers built from a results document:
// every processed timestep's vertices concatenated into one point array,
// edges re-indexed into it, and the parallel per-step scalar series.
type Timeline struct {
	Steps       int // processed timesteps
	VertexCount int // vertices per timestep

	Points     []mgl64.Vec3 // 2D vertices lifted with z = 0
	Edges      [][]int32    // per-step edges offset by the running point count
	VertexIDs  []float64    // original vertex index per point
	PointTimes []float64    // timestep index per point
	EdgeTimes  []float64    // timestep index per line cell
	GroupIDs   []int32      // per-point body labels, nil when absent

	Kinetic         []float64
	Potential       []float64
	AngularMomentum []float64
	LinearMomentum  [][2]float64
	MinDistance     []float64 // NaN for steps without a recorded distance

	BodyPoints     []mgl64.Vec3 // rigid body centroids, z = 0
	BodyVelocities []mgl64.Vec3
	BodyTimes      []float64
}

// BuildTimeline flattens the first maxSteps timesteps of the animation into
// accumulation buffers. maxSteps 0 processes every recorded timestep; a
// cutoff outside [0, Steps] is an error.
func BuildTimeline(anim *Animation, maxSteps int) (*Timeline, error) {
	if err := anim.Validate(); err != nil {
		return nil, err
	}

	steps := anim.Steps()
	switch {
	case maxSteps < 0:
		return nil, fmt.Errorf("%w: %d", ErrIterationCutoff, maxSteps)
	case maxSteps > steps:
		return nil, fmt.Errorf("%w: %d of %d recorded", ErrIterationCutoff, maxSteps, steps)
	case maxSteps > 0:
		steps = maxSteps
	}

	k := anim.VertexCount()
	edges := len(anim.Edges)
	tl := &Timeline{
		Steps:       steps,
		VertexCount: k,

		Points:     make([]mgl64.Vec3, 0, steps*k),
		Edges:      make([][]int32, 0, steps*edges),
		VertexIDs:  make([]float64, 0, steps*k),
		PointTimes: make([]float64, 0, steps*k),
		EdgeTimes:  make([]float64, 0, steps*edges),

		Kinetic:         make([]float64, 0, steps),
		Potential:       make([]float64, 0, steps),
		AngularMomentum: make([]float64, 0, steps),
		LinearMomentum:  make([][2]float64, 0, steps),
		MinDistance:     make([]float64, 0, steps),

		BodyPoints:     []mgl64.Vec3{},
		BodyVelocities: []mgl64.Vec3{},
		BodyTimes:      []float64{},
	}
	if anim.GroupID != nil {
		tl.GroupIDs = make([]int32, 0, steps*k)
	}

	for s := 0; s < steps; s++ {
		// Offset this step's edges by the points accumulated so far.
		offset := int32(len(tl.Points))
		for _, e := range anim.Edges {
			tl.Edges = append(tl.Edges, []int32{e[0] + offset, e[1] + offset})
			tl.EdgeTimes = append(tl.EdgeTimes, float64(s))
		}

		for v, xy := range anim.VerticesSequence[s] {
			tl.Points = append(tl.Points, mgl64.Vec3{xy[0], xy[1], 0})
			tl.VertexIDs = append(tl.VertexIDs, float64(v))
			tl.PointTimes = append(tl.PointTimes, float64(s))
		}
		if anim.GroupID != nil {
			tl.GroupIDs = append(tl.GroupIDs, anim.GroupID...)
		}

		state := &anim.StateSequence[s]
		tl.Kinetic = append(tl.Kinetic, state.KineticEnergy)
		tl.Potential = append(tl.Potential, state.PotentialEnergy)
		tl.AngularMomentum = append(tl.AngularMomentum, state.AngularMomentum)
		tl.LinearMomentum = append(tl.LinearMomentum, state.LinearMomentum)

		distance := math.NaN()
		if state.MinDistance != nil {
			distance = *state.MinDistance
		}
		tl.MinDistance = append(tl.MinDistance, distance)

		for _, rb := range state.RigidBodies {
			tl.BodyPoints = append(tl.BodyPoints, mgl64.Vec3{rb.Position[0], rb.Position[1], 0})
			tl.BodyVelocities = append(tl.BodyVelocities, mgl64.Vec3{rb.Velocity[0], rb.Velocity[1], 0})
			tl.BodyTimes = append(tl.BodyTimes, float64(s))
		}
	}

	return tl, nil
}

// TotalEnergy returns the per-step kinetic plus potential energy.
func (tl *Timeline) TotalEnergy() []float64 {
	total := make([]float64, tl.Steps)
	for i := range total {
		total[i] = tl.Kinetic[i] + tl.Potential[i]
	}
	return total
}

// EnergyDrift returns the first difference of the total energy series: zero
// for the first step, E[i] - E[i-1] after. A coarse drift proxy, not a
// normalized rate.
func (tl *Timeline) EnergyDrift() []float64 {
	total := tl.TotalEnergy()
	drift := make([]float64, len(total))
	for i := 1; i < len(total); i++ {
		drift[i] = total[i] - total[i-1]
	}
	return drift
}

// LineGrid assembles the accumulated polyline mesh: one line cell per edge
// per timestep, point data vtx (original vertex index) and time, group ids
// when the source carried them, and the per-cell time attribute.
func (tl *Timeline) LineGrid(title string) *vtk.UnstructuredGrid {
	pointData := []vtk.DataArray{
		{Name: "vtx", Components: 1, Floats: tl.VertexIDs},
		{Name: "time", Components: 1, Floats: tl.PointTimes},
	}
	if len(tl.GroupIDs) > 0 {
		pointData = append(pointData, vtk.DataArray{Name: "g_id", Components: 1, Ints: tl.GroupIDs})
	}

	return &vtk.UnstructuredGrid{
		Title:     title,
		Points:    tl.Points,
		CellType:  vtk.CellLine,
		Cells:     tl.Edges,
		PointData: pointData,
		CellData: []vtk.DataArray{
			{Name: "time", Components: 1, Floats: tl.EdgeTimes},
		},
	}
}

// BodyGrid assembles the rigid body centroid point cloud: one vertex cell
// per accumulated body row, with time and velocity point data.
func (tl *Timeline) BodyGrid(title string) *vtk.UnstructuredGrid {
	cells := make([][]int32, len(tl.BodyPoints))
	for i := range cells {
		cells[i] = []int32{int32(i)}
	}

	velocities := make([]float64, 0, 3*len(tl.BodyVelocities))
	for _, v := range tl.BodyVelocities {
		velocities = append(velocities, v[0], v[1], v[2])
	}

	return &vtk.UnstructuredGrid{
		Title:    title,
		Points:   tl.BodyPoints,
		CellType: vtk.CellVertex,
		Cells:    cells,
		PointData: []vtk.DataArray{
			{Name: "time", Components: 1, Floats: tl.BodyTimes},
			{Name: "velocity", Components: 3, Floats: velocities},
		},
	}
}
