// Command convplot sweeps the convolvers over a range of output sizes and
// renders the mean per-call latencies as an HTML chart.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rs/zerolog"

	"zk-convolution/algebra"
	"zk-convolution/prof"
)

var (
	out    = flag.String("out", "convplot.html", "output HTML file")
	trials = flag.Int("trials", 5, "convolutions per size")
	maxLog = flag.Int("maxlog", 13, "largest size 2^maxlog")
	inputs = flag.Int("n", 64, "number of input points per convolution")
)

func main() {
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	f := algebra.NewFp256()
	rng := algebra.NewRNG(f, 42)

	var sizes []int
	for lg := 7; lg <= *maxLog; lg++ {
		sizes = append(sizes, 1<<lg)
	}

	for _, m := range sizes {
		log.Info().Int("m", m).Msg("sweeping size")

		x := make([]algebra.Elt, *inputs)
		y := make([]algebra.Elt, m)
		z := make([]algebra.Elt, m)
		for i := range x {
			x[i] = rng.Next()
		}
		for i := range y {
			y[i] = rng.Next()
		}

		conv := algebra.NewCRTConvolution(*inputs, m, f, y)
		for t := 0; t < *trials; t++ {
			start := time.Now()
			conv.Convolve(x, z)
			prof.Track(start, "crt", m)
		}

		xn := make([]algebra.Elt, m)
		zn := make([]algebra.Elt, m)
		copy(xn, x)
		for t := 0; t < *trials; t++ {
			start := time.Now()
			algebra.Negacyclic(m, zn, xn, y, f)
			prof.Track(start, "nussbaumer", m)
		}
	}

	means := prof.Mean(prof.SnapshotAndReset())
	crtMeans := make([]time.Duration, len(sizes))
	nussMeans := make([]time.Duration, len(sizes))
	for i, m := range sizes {
		crtMeans[i] = means["crt"][m]
		nussMeans[i] = means["nussbaumer"][m]
		log.Info().
			Int("m", m).
			Dur("crt", crtMeans[i]).
			Dur("nussbaumer", nussMeans[i]).
			Msg("mean latency")
	}

	if err := render(sizes, crtMeans, nussMeans); err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
	log.Info().Str("out", *out).Msg("chart written")
}

func render(sizes []int, crt, nuss []time.Duration) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Convolution latency over Fp256",
			Subtitle: "CRT/NTT vs Nussbaumer negacyclic",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "output points"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "microseconds"}),
	)

	labels := make([]string, len(sizes))
	crtItems := make([]opts.LineData, len(sizes))
	nussItems := make([]opts.LineData, len(sizes))
	for i, m := range sizes {
		labels[i] = fmt.Sprintf("%d", m)
		crtItems[i] = opts.LineData{Value: crt[i].Microseconds()}
		nussItems[i] = opts.LineData{Value: nuss[i].Microseconds()}
	}
	line.SetXAxis(labels).
		AddSeries("CRT/NTT", crtItems).
		AddSeries("Nussbaumer", nussItems)

	page := components.NewPage().SetPageTitle("Convolution sweep")
	page.AddCharts(line)

	fh, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer fh.Close()
	return page.Render(fh)
}
