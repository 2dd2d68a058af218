package results

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hexforge/rigidkit/pkg/vtk"
)

// Export writes the timeline into dir as three files named after base:
// <base>_all.vtk with the accumulated polylines, <base>_all2.vtk with the
// rigid body centroids, and <base>_energy.csv with the per-step
// diagnostics. The directory is created if absent; existing files are
// overwritten.
func (tl *Timeline) Export(dir, base string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(dir, base+"_all.vtk")
	if err := vtk.WriteFile(path, tl.LineGrid(base)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	path = filepath.Join(dir, base+"_all2.vtk")
	if err := vtk.WriteFile(path, tl.BodyGrid(base)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	path = filepath.Join(dir, base+"_energy.csv")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tl.WriteEnergyCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
