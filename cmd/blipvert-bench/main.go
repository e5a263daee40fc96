// Command blipvert-bench measures conversion throughput across format
// pairs and frame sizes.
//
// Usage:
//
//	blipvert-bench -src UYVY -dst IYUV -width 1920 -height 1080
//	blipvert-bench -src UYVY -dst IYUV -frames 64 -workers 4
//	blipvert-bench -plot results.png -src UYVY -dst IYUV
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/blipvert-go/blipvert"
	"github.com/blipvert-go/blipvert/internal/kernel"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// trialsPerMeasurement is how many independent benchmark runs back
// each reported throughput figure, so a single slow run (GC pause,
// scheduler noise) doesn't read as a format pair's real throughput.
const trialsPerMeasurement = 5

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "blipvert-bench: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("blipvert-bench", flag.ExitOnError)
	src := fs.String("src", "UYVY", "source format name")
	dst := fs.String("dst", "IYUV", "destination format name")
	width := fs.Int("width", 1920, "frame width")
	height := fs.Int("height", 1080, "frame height")
	frames := fs.Int("frames", 32, "frames converted per measurement")
	workers := fs.Int("workers", 1, "concurrent frame bands (1 disables parallelism)")
	plotPath := fs.String("plot", "", "write a throughput-vs-workers PNG chart here instead of printing one result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	srcId, ok := blipvert.FormatByName(*src)
	if !ok {
		return fmt.Errorf("unknown source format %q", *src)
	}
	dstId, ok := blipvert.FormatByName(*dst)
	if !ok {
		return fmt.Errorf("unknown destination format %q", *dst)
	}
	transform := blipvert.FindVideoTransform(srcId, dstId)
	if transform == nil {
		return fmt.Errorf("no direct conversion registered from %s to %s", *src, *dst)
	}

	if *plotPath != "" {
		return writePlot(*plotPath, srcId, dstId, transform, *width, *height, *frames)
	}

	samples := make([]float64, trialsPerMeasurement)
	for i := range samples {
		elapsed, bytesMoved := benchmark(srcId, dstId, transform, *width, *height, *frames, *workers)
		samples[i] = throughputMBps(bytesMoved, elapsed)
	}
	mean := stat.Mean(samples, nil)
	stddev := stat.StdDev(samples, nil)
	fmt.Printf("%s -> %s, %dx%d, %d frames, %d workers, %d trials: %.1f +/- %.1f MB/s\n",
		*src, *dst, *width, *height, *frames, *workers, trialsPerMeasurement, mean, stddev)
	return nil
}

// benchmark converts frames independent copies of a synthetic source
// frame, splitting the frame range across workers via
// kernel.RunRowBands — the same disjoint-range concurrency helper the
// kernel layer offers callers for a single large buffer, reused here to
// split a batch of independent frames instead of a batch of rows.
func benchmark(srcId, dstId blipvert.FormatId, transform blipvert.Transform, width, height, frames, workers int) (time.Duration, int64) {
	srcStride := blipvert.MinStride(srcId, width)
	dstStride := blipvert.MinStride(dstId, width)
	srcBuf := blipvert.AcquireBuffer(srcId, width, height, srcStride)
	defer blipvert.ReleaseBuffer(srcBuf)
	blipvert.Fill(srcId, 96, 128, 128, 255, width, height, srcBuf, srcStride)

	dstBufs := make([][]byte, frames)
	for i := range dstBufs {
		dstBufs[i] = blipvert.AcquireBuffer(dstId, width, height, dstStride)
	}
	defer func() {
		for _, b := range dstBufs {
			blipvert.ReleaseBuffer(b)
		}
	}()

	start := time.Now()
	kernel.RunRowBands(frames, workers, func(from, to int) error {
		for i := from; i < to; i++ {
			transform(width, height, dstBufs[i], dstStride, srcBuf, srcStride, false, nil)
		}
		return nil
	})
	elapsed := time.Since(start)

	srcSize := blipvert.CalculateBufferSize(srcId, width, height, srcStride)
	return elapsed, int64(srcSize) * int64(frames)
}

func throughputMBps(bytesMoved int64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(bytesMoved) / elapsed.Seconds() / (1024 * 1024)
}

// writePlot sweeps worker counts from 1 to 8 and charts frames/sec
// against worker count, so a reader
// can see where a conversion stops scaling.
func writePlot(path string, srcId, dstId blipvert.FormatId, transform blipvert.Transform, width, height, frames int) error {
	p := plot.New()
	p.Title.Text = "blipvert conversion throughput"
	p.X.Label.Text = "workers"
	p.Y.Label.Text = "frames/sec"

	pts := make(plotter.XYs, 0, 8)
	for workers := 1; workers <= 8; workers++ {
		fpsSamples := make([]float64, trialsPerMeasurement)
		for i := range fpsSamples {
			elapsed, _ := benchmark(srcId, dstId, transform, width, height, frames, workers)
			fpsSamples[i] = float64(frames) / elapsed.Seconds()
		}
		pts = append(pts, plotter.XY{X: float64(workers), Y: stat.Mean(fpsSamples, nil)})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("building plot line: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
