package results

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
)

// EnergyHeader lists the energy CSV columns in order.
var EnergyHeader = []string{
	"kinetic_energy",
	"potential_energy",
	"total_energy",
	"angular_momentum",
	"linear_momentum_x",
	"linear_momentum_y",
	"total_energy_rel",
	"min_distance",
}

// WriteEnergyCSV writes one diagnostics row per processed timestep. The
// header keeps the numpy savetxt comment prefix and the values its %.18e
// rendering so existing plotting pipelines keep reading the file.
func (tl *Timeline) WriteEnergyCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string(nil), EnergyHeader...)
	header[0] = "# " + header[0]
	if err := cw.Write(header); err != nil {
		return err
	}

	total := tl.TotalEnergy()
	drift := tl.EnergyDrift()
	for i := 0; i < tl.Steps; i++ {
		row := []string{
			formatScientific(tl.Kinetic[i]),
			formatScientific(tl.Potential[i]),
			formatScientific(total[i]),
			formatScientific(tl.AngularMomentum[i]),
			formatScientific(tl.LinearMomentum[i][0]),
			formatScientific(tl.LinearMomentum[i][1]),
			formatScientific(drift[i]),
			formatScientific(tl.MinDistance[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatScientific renders v the way numpy's %.18e does, including the
// lowercase nan and inf spellings.
func formatScientific(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'e', 18, 64)
}
