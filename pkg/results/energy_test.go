package results

import (
	"bytes"
	"encoding/csv"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestWriteEnergyCSV_Golden(t *testing.T) {
	tl := &Timeline{
		Steps:           1,
		Kinetic:         []float64{0.5},
		Potential:       []float64{9.5},
		AngularMomentum: []float64{0.25},
		LinearMomentum:  [][2]float64{{1, 2}},
		MinDistance:     []float64{math.NaN()},
	}

	var buf bytes.Buffer
	if err := tl.WriteEnergyCSV(&buf); err != nil {
		t.Fatalf("WriteEnergyCSV failed: %v", err)
	}

	expected := "# kinetic_energy,potential_energy,total_energy,angular_momentum," +
		"linear_momentum_x,linear_momentum_y,total_energy_rel,min_distance\n" +
		"5.000000000000000000e-01,9.500000000000000000e+00,1.000000000000000000e+01," +
		"2.500000000000000000e-01,1.000000000000000000e+00,2.000000000000000000e+00," +
		"0.000000000000000000e+00,nan\n"
	if buf.String() != expected {
		t.Errorf("unexpected CSV:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

func TestWriteEnergyCSV_DriftColumn(t *testing.T) {
	tl := &Timeline{
		Steps:           3,
		Kinetic:         []float64{1, 2, 4},
		Potential:       []float64{10, 10, 9},
		AngularMomentum: []float64{0, 0, 0},
		LinearMomentum:  [][2]float64{{0, 0}, {0, 0}, {0, 0}},
		MinDistance:     []float64{0.5, 0.4, 0.3},
	}

	var buf bytes.Buffer
	if err := tl.WriteEnergyCSV(&buf); err != nil {
		t.Fatalf("WriteEnergyCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d records", len(records))
	}

	expectedDrift := []float64{0, 1, 1}
	for i, record := range records[1:] {
		if len(record) != 8 {
			t.Fatalf("row %d: expected 8 columns, got %d", i, len(record))
		}
		drift, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			t.Fatalf("row %d: bad drift value %q: %v", i, record[6], err)
		}
		if drift != expectedDrift[i] {
			t.Errorf("row %d: expected drift %g, got %g", i, expectedDrift[i], drift)
		}
	}
}

func TestWriteEnergyCSV_RowPerStep(t *testing.T) {
	tl, err := BuildTimeline(makeAnimation(4, 2), 0)
	if err != nil {
		t.Fatalf("BuildTimeline failed: %v", err)
	}

	var buf bytes.Buffer
	if err := tl.WriteEnergyCSV(&buf); err != nil {
		t.Fatalf("WriteEnergyCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "# kinetic_energy,") {
		t.Errorf("header should keep the comment prefix, got %q", lines[0])
	}
}

func TestFormatScientific(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0.5, "5.000000000000000000e-01"},
		{-1, "-1.000000000000000000e+00"},
		{0, "0.000000000000000000e+00"},
		{9.81, "9.810000000000000497e+00"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tc := range tests {
		if got := formatScientific(tc.value); got != tc.expected {
			t.Errorf("formatScientific(%g): expected %q, got %q", tc.value, tc.expected, got)
		}
	}
}
