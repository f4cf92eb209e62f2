package view_test

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/normdist/internal/config"
	"github.com/san-kum/normdist/internal/density"
	"github.com/san-kum/normdist/internal/view"
)

var _ = Describe("View", func() {
	var v *view.View

	BeforeEach(func() {
		var err error
		v, err = view.New(nil)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("a fresh view", func() {
		It("starts at mean 0 and standard deviation 1", func() {
			Expect(v.Params()).To(Equal(density.Params{Mean: 0, StdDev: 1}))
			Expect(v.Frame().MeanReadout).To(Equal("0.0"))
			Expect(v.Frame().StdDevReadout).To(Equal("1.0"))
		})

		It("has sampleCount+1 points spanning the surface", func() {
			f := v.Frame()
			Expect(f.Samples).To(HaveLen(201))
			Expect(f.Points).To(HaveLen(201))
			Expect(f.Points[0].X).To(Equal(40.0))
			Expect(f.Points[200].X).To(Equal(360.0))
		})

		It("peaks near 1/sqrt(2π) at the sample nearest zero", func() {
			f := v.Frame()
			Expect(f.MaxDensity).To(BeNumerically("~", 0.3989, 1e-4))
			Expect(f.Samples[100].X).To(BeNumerically("~", 0, 1e-12))
			Expect(f.Samples[100].Y).To(Equal(f.MaxDensity))
			Expect(f.Points[100].Y).To(Equal(40.0))
		})

		It("draws the mean guide through the centre of the surface", func() {
			Expect(v.Frame().Guide).To(Equal(view.Line{X1: 200, Y1: 170, X2: 200, Y2: 40}))
		})
	})

	Describe("changing the mean", func() {
		It("replaces the mean and recomputes the frame", func() {
			Expect(v.SetMean(1.5)).To(Succeed())
			f := v.Frame()
			Expect(f.Params.Mean).To(Equal(1.5))
			Expect(f.MeanReadout).To(Equal("1.5"))
			Expect(f.Guide.X1).To(BeNumerically("~", 260, 1e-9))
			Expect(f.Samples[len(f.Samples)-1].Y).To(BeNumerically(">", f.Samples[0].Y))
		})

		It("clamps values outside the slider range", func() {
			Expect(v.SetMean(7)).To(Succeed())
			Expect(v.Params().Mean).To(Equal(2.0))
			Expect(v.SetMean(-7)).To(Succeed())
			Expect(v.Params().Mean).To(Equal(-2.0))
		})

		It("falls back to the default mean on unparseable input", func() {
			Expect(v.SetMean(1)).To(Succeed())
			Expect(v.SetMeanInput("nope")).To(Succeed())
			Expect(v.Params().Mean).To(Equal(0.0))
		})
	})

	Describe("changing the standard deviation", func() {
		It("substitutes 0.5 for unparseable input", func() {
			Expect(v.SetStdDevInput("abc")).To(Succeed())
			Expect(v.Params().StdDev).To(Equal(0.5))
			Expect(math.IsNaN(v.Frame().MaxDensity)).To(BeFalse())
			Expect(v.Frame().StdDevReadout).To(Equal("0.5"))
		})

		It("substitutes 0.5 for NaN and zero", func() {
			Expect(v.SetStdDev(math.NaN())).To(Succeed())
			Expect(v.Params().StdDev).To(Equal(0.5))
			Expect(v.SetStdDev(2)).To(Succeed())
			Expect(v.SetStdDevInput("0")).To(Succeed())
			Expect(v.Params().StdDev).To(Equal(0.5))
		})

		It("never lets the standard deviation reach zero", func() {
			for _, in := range []float64{-1, 1e-9, math.Inf(-1)} {
				Expect(v.SetStdDev(in)).To(Succeed())
				Expect(v.Params().StdDev).To(Equal(0.5))
			}
		})

		It("parses valid slider input", func() {
			Expect(v.SetStdDevInput(" 1.7 ")).To(Succeed())
			Expect(v.Params().StdDev).To(Equal(1.7))
		})
	})

	Describe("both parameters at their upper bound", func() {
		It("renders without leaving the surface", func() {
			Expect(v.Set(density.Params{Mean: 2, StdDev: 2.5})).To(Succeed())
			f := v.Frame()
			Expect(f.Params).To(Equal(density.Params{Mean: 2, StdDev: 2.5}))
			for _, p := range f.Points {
				Expect(p.X).To(BeNumerically(">=", 40))
				Expect(p.X).To(BeNumerically("<=", 360))
				Expect(p.Y).To(BeNumerically(">=", 40))
				Expect(p.Y).To(BeNumerically("<=", 170))
			}
			Expect(f.Guide.X1).To(BeNumerically("~", 280, 1e-9))
		})
	})

	Describe("stepping", func() {
		It("moves by one slider step and snaps", func() {
			Expect(v.Step(view.ParamMean, 1)).To(Succeed())
			Expect(v.Params().Mean).To(BeNumerically("~", 0.1, 1e-12))
			Expect(v.Step(view.ParamStdDev, -3)).To(Succeed())
			Expect(v.Params().StdDev).To(BeNumerically("~", 0.7, 1e-12))
		})

		It("stops at the slider bounds", func() {
			for i := 0; i < 40; i++ {
				Expect(v.Step(view.ParamStdDev, -1)).To(Succeed())
			}
			Expect(v.Params().StdDev).To(Equal(0.5))
		})

		It("resets to defaults", func() {
			Expect(v.Set(density.Params{Mean: -1, StdDev: 2})).To(Succeed())
			Expect(v.Reset()).To(Succeed())
			Expect(v.Params()).To(Equal(density.Params{Mean: 0, StdDev: 1}))
		})
	})

	Describe("observers", func() {
		It("receive the current frame and every recomputation", func() {
			var seen []*view.Frame
			v.Subscribe(view.ObserverFunc(func(f *view.Frame) { seen = append(seen, f) }))
			Expect(seen).To(HaveLen(1))

			Expect(v.SetMean(1)).To(Succeed())
			Expect(v.SetStdDevInput("2")).To(Succeed())
			Expect(seen).To(HaveLen(3))
			Expect(seen[2].Params).To(Equal(density.Params{Mean: 1, StdDev: 2}))
			Expect(seen[2]).To(BeIdenticalTo(v.Frame()))
		})
	})

	Describe("configuration", func() {
		It("rejects an invalid config", func() {
			cfg := config.DefaultConfig()
			cfg.Samples = 0
			_, err := view.New(cfg)
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})

		It("starts at preset defaults", func() {
			cfg := config.DefaultConfig()
			p, ok := config.GetPreset("shifted-left")
			Expect(ok).To(BeTrue())
			p.Apply(cfg)
			pv, err := view.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(pv.Params().Mean).To(Equal(-2.0))
		})
	})
})

var _ = Describe("Frame", func() {
	var f *view.Frame

	BeforeEach(func() {
		var err error
		f, err = view.BuildFrame(config.DefaultConfig(), density.Params{Mean: 0, StdDev: 1})
		Expect(err).NotTo(HaveOccurred())
	})

	It("closes the area path down to the baseline", func() {
		Expect(f.AreaPath).To(HavePrefix("M 40 "))
		Expect(f.AreaPath).To(HaveSuffix(" L 360 170 L 40 170 Z"))
		Expect(strings.Count(f.AreaPath, "M ")).To(Equal(1))
	})

	It("strokes the same points as an open outline", func() {
		Expect(f.OutlinePath).NotTo(ContainSubstring("Z"))
		Expect(f.AreaPath).To(HavePrefix(f.OutlinePath))
		Expect(strings.Count(f.OutlinePath, "L ")).To(Equal(200))
	})

	It("labels seven ticks with μ at zero", func() {
		Expect(f.Ticks).To(HaveLen(7))
		labels := make([]string, len(f.Ticks))
		for i, t := range f.Ticks {
			labels[i] = t.Label
		}
		Expect(labels).To(Equal([]string{"-3", "-2", "-1", "μ", "1", "2", "3"}))

		zero := f.Ticks[3]
		Expect(zero.Line).To(Equal(view.Line{X1: 200, Y1: 170, X2: 200, Y2: 180}))
		Expect(zero.Width).To(Equal(1.5))
		Expect(zero.LabelY).To(Equal(192.0))
		Expect(f.Ticks[0].Line.Y2).To(Equal(176.0))
		Expect(f.Ticks[0].LabelX).To(Equal(80.0))
	})

	It("describes the plot background and axis", func() {
		Expect(f.Plot).To(Equal(view.Rect{X: 40, Y: 40, Width: 320, Height: 130}))
		Expect(f.Axis).To(Equal(view.Line{X1: 40, Y1: 170, X2: 360, Y2: 170}))
	})

	It("formats readouts to one decimal", func() {
		Expect(view.Readout(1.26)).To(Equal("1.3"))
		Expect(view.Readout(-0.04)).To(Equal("0.0"))
		Expect(view.Readout(2.5)).To(Equal("2.5"))
	})
})
