package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"honnef.co/go/waveguide"
)

const testJob = `
[layout]
cell = "CHIP"

[output]
precision = 3

[[waveguides]]
name = "bus"
layer = "1/0"
points = [[0.0, 0.0], [100.0, 0.0], [100.0, 50.0]]
width = 0.5
radius = 5.0
taper_width = 2.0
taper_length = 10.0

[[waveguides]]
layer = "2"
points = [[0.0, 10.0], [50.0, 10.0]]
width = 0.5
width_end = 1.0
radius = 5.0

[[arcs]]
layer = "1/0"
center = [0.0, 100.0]
radius = 10.0
width = 0.5
start = 0.0
end = 90.0
`

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readJob(t *testing.T, content string) *job {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(writeJob(t, content))
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	j, err := loadJob(v)
	if err != nil {
		t.Fatal(err)
	}
	return j
}

func TestLoadJob(t *testing.T) {
	j := readJob(t, testJob)

	if j.Cell != "CHIP" {
		t.Errorf("got cell %q, want CHIP", j.Cell)
	}
	if j.DBU != waveguide.DefaultDBU || j.ArcTolerance != waveguide.DefaultArcTolerance {
		t.Errorf("got dbu %v and tolerance %v, want defaults", j.DBU, j.ArcTolerance)
	}
	if j.Output != "out.svg" || j.Precision != 3 || j.Merge {
		t.Errorf("unexpected output settings %q %d %t", j.Output, j.Precision, j.Merge)
	}

	want := []waveguideConfig{
		{
			Name:        "bus",
			Layer:       "1/0",
			Points:      [][]float64{{0, 0}, {100, 0}, {100, 50}},
			Width:       0.5,
			Radius:      5,
			TaperWidth:  2,
			TaperLength: 10,
		},
		{
			Name:     "waveguide 1",
			Layer:    "2",
			Points:   [][]float64{{0, 10}, {50, 10}},
			Width:    0.5,
			WidthEnd: 1,
			Radius:   5,
		},
	}
	if d := cmp.Diff(want, j.Waveguides); d != "" {
		t.Errorf("waveguides mismatch (-want +got):\n%s", d)
	}
	if len(j.Arcs) != 1 || j.Arcs[0].Radius != 10 || j.Arcs[0].End != 90 {
		t.Errorf("unexpected arcs %+v", j.Arcs)
	}
}

func TestRoute(t *testing.T) {
	j := readJob(t, testJob)
	cell, err := route(j, waveguide.Logger())
	if err != nil {
		t.Fatal(err)
	}
	if n := cell.Len(); n != 3 {
		t.Errorf("got %d polygons, want 3", n)
	}
	want := []waveguide.Layer{{1, 0}, {2, 0}}
	if d := cmp.Diff(want, cell.Layers()); d != "" {
		t.Errorf("layers mismatch (-want +got):\n%s", d)
	}
}

func TestRouteErrors(t *testing.T) {
	tests := []struct {
		name string
		wc   waveguideConfig
		want string
	}{
		{"bad layer", waveguideConfig{Name: "a", Layer: "x", Points: [][]float64{{0, 0}, {1, 0}}, Width: 0.5, Radius: 5}, "a: "},
		{"bad point", waveguideConfig{Name: "b", Layer: "1", Points: [][]float64{{0, 0}, {1}}, Width: 0.5, Radius: 5}, "two coordinates"},
		{"clearance", waveguideConfig{Name: "c", Layer: "1", Points: [][]float64{{0, 0}, {1, 0}, {1, 10}}, Width: 0.5, Radius: 5}, "insufficient clearance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &job{Cell: "TOP", DBU: waveguide.DefaultDBU, Waveguides: []waveguideConfig{tt.wc}}
			_, err := route(j, waveguide.Logger())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}

	// A fallback width turns the clearance failure into a straight waveguide.
	wc := tests[2].wc
	wc.Fallback = 0.5
	j := &job{Cell: "TOP", DBU: waveguide.DefaultDBU, Waveguides: []waveguideConfig{wc}}
	cell, err := route(j, waveguide.Logger())
	if err != nil || cell.Len() != 1 {
		t.Errorf("got %v, %v, want one polygon", cell, err)
	}
}

func TestRun(t *testing.T) {
	cfg := writeJob(t, testJob)
	out := filepath.Join(t.TempDir(), "routes.svg")
	var stderr bytes.Buffer
	if err := run([]string{"-c", cfg, "-o", out, "-merge"}, &stderr); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr.String())
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(b)
	for _, s := range []string{"<svg", `id="layer-1-0"`, `id="layer-2-0"`, `fill-rule="evenodd"`} {
		if !strings.Contains(svg, s) {
			t.Errorf("output lacks %q", s)
		}
	}
	if !strings.Contains(stderr.String(), "wrote layout") {
		t.Errorf("missing log message in %q", stderr.String())
	}

	if err := run([]string{"-c", filepath.Join(t.TempDir(), "missing.toml")}, &stderr); err == nil {
		t.Error("expected error for missing job file")
	}
	if err := run([]string{"-bogus"}, &stderr); err == nil {
		t.Error("expected error for unknown flag")
	}
}
