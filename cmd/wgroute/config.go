package main

import (
	"fmt"

	"github.com/spf13/viper"

	"honnef.co/go/waveguide"
)

const (
	CfgLayoutCell         = "layout.cell"
	CfgLayoutDBU          = "layout.dbu"
	CfgLayoutArcTolerance = "layout.arc_tolerance"
	CfgLayoutTaperMin     = "layout.taper_min_length"
	CfgLayoutSmooth       = "layout.smooth"
	CfgOutputFile         = "output.file"
	CfgOutputMerge        = "output.merge"
	CfgOutputPrecision    = "output.precision"
	CfgWaveguides         = "waveguides"
	CfgArcs               = "arcs"
)

func setDefaults(v *viper.Viper) {
	v.SetConfigName("wgroute")
	v.AddConfigPath(".")
	v.SetConfigType("toml")

	v.SetDefault(CfgLayoutCell, "TOP")
	v.SetDefault(CfgLayoutDBU, waveguide.DefaultDBU)
	v.SetDefault(CfgLayoutArcTolerance, waveguide.DefaultArcTolerance)
	v.SetDefault(CfgLayoutTaperMin, waveguide.DefaultTaperMinLength)
	v.SetDefault(CfgLayoutSmooth, false)

	v.SetDefault(CfgOutputFile, "out.svg")
	v.SetDefault(CfgOutputMerge, false)
	v.SetDefault(CfgOutputPrecision, 4)
}

// waveguideConfig is one entry of the waveguides list.
type waveguideConfig struct {
	Name   string      `mapstructure:"name"`
	Layer  string      `mapstructure:"layer"`
	Points [][]float64 `mapstructure:"points"`
	Width  float64     `mapstructure:"width"`
	// If set, the width changes linearly to WidthEnd along the waveguide.
	WidthEnd    float64 `mapstructure:"width_end"`
	Radius      float64 `mapstructure:"radius"`
	TaperWidth  float64 `mapstructure:"taper_width"`
	TaperLength float64 `mapstructure:"taper_length"`
	// Fallback is the width of a straight waveguide drawn when rounding
	// fails. Zero turns failures into errors.
	Fallback float64 `mapstructure:"fallback_width"`
}

// arcConfig is one entry of the arcs list. Angles are in degrees.
type arcConfig struct {
	Layer  string    `mapstructure:"layer"`
	Center []float64 `mapstructure:"center"`
	Radius float64   `mapstructure:"radius"`
	Width  float64   `mapstructure:"width"`
	Start  float64   `mapstructure:"start"`
	End    float64   `mapstructure:"end"`
}

type job struct {
	Cell         string
	DBU          float64
	ArcTolerance float64
	TaperMin     float64
	Smooth       bool
	Output       string
	Merge        bool
	Precision    int
	Waveguides   []waveguideConfig
	Arcs         []arcConfig
}

func loadJob(v *viper.Viper) (*job, error) {
	j := &job{
		Cell:         v.GetString(CfgLayoutCell),
		DBU:          v.GetFloat64(CfgLayoutDBU),
		ArcTolerance: v.GetFloat64(CfgLayoutArcTolerance),
		TaperMin:     v.GetFloat64(CfgLayoutTaperMin),
		Smooth:       v.GetBool(CfgLayoutSmooth),
		Output:       v.GetString(CfgOutputFile),
		Merge:        v.GetBool(CfgOutputMerge),
		Precision:    v.GetInt(CfgOutputPrecision),
	}
	if err := v.UnmarshalKey(CfgWaveguides, &j.Waveguides); err != nil {
		return nil, fmt.Errorf("reading %s: %w", CfgWaveguides, err)
	}
	if err := v.UnmarshalKey(CfgArcs, &j.Arcs); err != nil {
		return nil, fmt.Errorf("reading %s: %w", CfgArcs, err)
	}
	for i := range j.Waveguides {
		if j.Waveguides[i].Name == "" {
			j.Waveguides[i].Name = fmt.Sprintf("waveguide %d", i)
		}
	}
	return j, nil
}

func toPoint(xy []float64) (waveguide.Point, error) {
	if len(xy) != 2 {
		return waveguide.Point{}, fmt.Errorf("point %v does not have two coordinates", xy)
	}
	return waveguide.Pt(xy[0], xy[1]), nil
}

func (wc waveguideConfig) points() ([]waveguide.Point, error) {
	pts := make([]waveguide.Point, len(wc.Points))
	for i, xy := range wc.Points {
		pt, err := toPoint(xy)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}

func (wc waveguideConfig) width() waveguide.WidthSpec {
	if wc.WidthEnd > 0 && wc.WidthEnd != wc.Width {
		return waveguide.Interpolated(wc.Width, wc.WidthEnd)
	}
	return waveguide.Constant(wc.Width)
}

func (wc waveguideConfig) options(j *job) []waveguide.Option {
	opts := []waveguide.Option{
		waveguide.WithArcTolerance(j.ArcTolerance),
		waveguide.WithTaperMinLength(j.TaperMin),
		waveguide.WithSmoothing(j.Smooth),
	}
	if wc.TaperWidth > 0 && wc.TaperLength > 0 {
		opts = append(opts, waveguide.WithTaper(wc.TaperWidth, wc.TaperLength))
	}
	if wc.Fallback > 0 {
		opts = append(opts, waveguide.WithStraightFallback(wc.Fallback))
	}
	return opts
}

func (ac arcConfig) spec(j *job) (waveguide.ArcSpec, error) {
	c, err := toPoint(ac.Center)
	if err != nil {
		return waveguide.ArcSpec{}, err
	}
	spec := waveguide.ArcDegrees(c, ac.Radius, ac.Width, ac.Start, ac.End)
	spec.Tolerance = j.ArcTolerance
	spec.DBU = j.DBU
	return spec, nil
}
