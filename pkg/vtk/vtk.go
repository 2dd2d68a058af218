// Package vtk writes meshes in the legacy VTK file format.
//
// Only the slice of the format needed by the results exporter is implemented:
// ASCII unstructured grids made of vertex or line cells, with named point and
// cell data arrays. The output loads in ParaView and other VTK-based viewers.
package vtk

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Legacy VTK cell type codes supported by the writer.
const (
	CellVertex = 1 // a single point
	CellLine   = 3 // a two-point line segment
)

// Writer errors.
var (
	ErrUnknownCellType = errors.New("unsupported cell type")
	ErrCellArity       = errors.New("cell has wrong number of point indices")
	ErrCellIndexRange  = errors.New("cell references point out of range")
	ErrBadDataArray    = errors.New("malformed data array")
)

// DataArray is a named attribute attached to the points or cells of a grid.
// Exactly one of Floats or Ints carries the payload; consecutive Components
// values form one tuple per point or cell.
type DataArray struct {
	Name       string
	Components int
	Floats     []float64
	Ints       []int32
}

// Tuples returns the number of point or cell tuples the array describes.
func (a *DataArray) Tuples() int {
	if a.Components < 1 {
		return 0
	}
	if a.Ints != nil {
		return len(a.Ints) / a.Components
	}
	return len(a.Floats) / a.Components
}

func (a *DataArray) validate(tuples int, kind string) error {
	if a.Name == "" || strings.ContainsAny(a.Name, " \t\n") {
		return fmt.Errorf("%w: %s array name %q", ErrBadDataArray, kind, a.Name)
	}
	if a.Components < 1 {
		return fmt.Errorf("%w: %s array %q has %d components", ErrBadDataArray, kind, a.Name, a.Components)
	}
	if (a.Floats == nil) == (a.Ints == nil) {
		return fmt.Errorf("%w: %s array %q must hold exactly one of Floats or Ints", ErrBadDataArray, kind, a.Name)
	}
	n := len(a.Floats)
	if a.Ints != nil {
		n = len(a.Ints)
	}
	if n != tuples*a.Components {
		return fmt.Errorf("%w: %s array %q has %d values, want %d", ErrBadDataArray, kind, a.Name, n, tuples*a.Components)
	}
	return nil
}

// UnstructuredGrid is an in-memory mesh of uniform cells with optional point
// and cell attributes.
type UnstructuredGrid struct {
	Title     string // second header line; defaults to "rigidkit"
	Points    []mgl64.Vec3
	CellType  int
	Cells     [][]int32
	PointData []DataArray
	CellData  []DataArray
}

// cellArity returns the point count per cell, or 0 for unsupported types.
func cellArity(cellType int) int {
	switch cellType {
	case CellVertex:
		return 1
	case CellLine:
		return 2
	default:
		return 0
	}
}

// Validate checks the grid against the invariants the writer relies on.
func (g *UnstructuredGrid) Validate() error {
	arity := cellArity(g.CellType)
	if arity == 0 {
		return fmt.Errorf("%w: %d", ErrUnknownCellType, g.CellType)
	}
	for i, cell := range g.Cells {
		if len(cell) != arity {
			return fmt.Errorf("%w: cell %d has %d indices, want %d", ErrCellArity, i, len(cell), arity)
		}
		for _, p := range cell {
			if p < 0 || int(p) >= len(g.Points) {
				return fmt.Errorf("%w: cell %d references point %d of %d", ErrCellIndexRange, i, p, len(g.Points))
			}
		}
	}
	for i := range g.PointData {
		if err := g.PointData[i].validate(len(g.Points), "point"); err != nil {
			return err
		}
	}
	for i := range g.CellData {
		if err := g.CellData[i].validate(len(g.Cells), "cell"); err != nil {
			return err
		}
	}
	return nil
}

// Write emits the grid as an ASCII legacy VTK unstructured grid.
func Write(w io.Writer, g *UnstructuredGrid) error {
	if err := g.Validate(); err != nil {
		return err
	}

	title := g.Title
	if title == "" {
		title = "rigidkit"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# vtk DataFile Version 4.2")
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, "ASCII")
	fmt.Fprintln(bw, "DATASET UNSTRUCTURED_GRID")

	fmt.Fprintf(bw, "POINTS %d double\n", len(g.Points))
	for _, p := range g.Points {
		bw.WriteString(formatFloat(p[0]))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(p[1]))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(p[2]))
		bw.WriteByte('\n')
	}

	// Each cell row is its index count followed by the indices.
	arity := cellArity(g.CellType)
	fmt.Fprintf(bw, "CELLS %d %d\n", len(g.Cells), len(g.Cells)*(arity+1))
	for _, cell := range g.Cells {
		bw.WriteString(strconv.Itoa(len(cell)))
		for _, p := range cell {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(int(p)))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "CELL_TYPES %d\n", len(g.Cells))
	for range g.Cells {
		fmt.Fprintln(bw, g.CellType)
	}

	if len(g.PointData) > 0 {
		fmt.Fprintf(bw, "POINT_DATA %d\n", len(g.Points))
		writeFieldData(bw, g.PointData)
	}
	if len(g.CellData) > 0 {
		fmt.Fprintf(bw, "CELL_DATA %d\n", len(g.Cells))
		writeFieldData(bw, g.CellData)
	}

	return bw.Flush()
}

// writeFieldData emits arrays in FIELD form, one tuple per line.
func writeFieldData(w *bufio.Writer, arrays []DataArray) {
	fmt.Fprintf(w, "FIELD FieldData %d\n", len(arrays))
	for i := range arrays {
		a := &arrays[i]
		if a.Ints != nil {
			fmt.Fprintf(w, "%s %d %d int\n", a.Name, a.Components, a.Tuples())
			for j := 0; j < len(a.Ints); j += a.Components {
				for k := 0; k < a.Components; k++ {
					if k > 0 {
						w.WriteByte(' ')
					}
					w.WriteString(strconv.Itoa(int(a.Ints[j+k])))
				}
				w.WriteByte('\n')
			}
			continue
		}
		fmt.Fprintf(w, "%s %d %d double\n", a.Name, a.Components, a.Tuples())
		for j := 0; j < len(a.Floats); j += a.Components {
			for k := 0; k < a.Components; k++ {
				if k > 0 {
					w.WriteByte(' ')
				}
				w.WriteString(formatFloat(a.Floats[j+k]))
			}
			w.WriteByte('\n')
		}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteFile writes the grid to path, creating parent directories as needed.
func WriteFile(path string, g *UnstructuredGrid) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
