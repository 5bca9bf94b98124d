package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/hull"
)

// Computes the convex hull of a point cloud read from stdin. Input is
// one point per line in the form "x y". Blank lines are ignored.
//
// Optionally renders the cloud and its hull to a PNG, and cats it to
// the terminal on iTerm2-compatible terminals.

var (
	algorithmFlag = kingpin.Flag("algorithm", "Hull algorithm: graham_scan, monotone_chain, jarvis_march or chan.").
			Short('a').Default("graham_scan").String()
	bboxFlag    = kingpin.Flag("bbox", "Also print the axis-aligned bounding box.").Bool()
	drawFlag    = kingpin.Flag("draw", "Render the cloud and hull to this PNG path.").String()
	showFlag    = kingpin.Flag("show", "Cat the rendered image to the terminal.").Bool()
	labelsFlag  = kingpin.Flag("labels", "Label hull vertices with readable debug names.").Bool()
	scaleFlag   = kingpin.Flag("scale", "Render scale in pixels per unit.").Default("8").Float64()
	profileFlag = kingpin.Flag("profile", "Write a CPU profile for the run.").Bool()
)

func main() {
	kingpin.Parse()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	algorithm, err := hull.ParseAlgorithm(*algorithmFlag)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}

	points, err := readPoints(os.Stdin)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}
	fmt.Printf("Read %d points\n", len(points))

	vertices := hull.ConvexHullWith(algorithm, points)
	fmt.Printf("%s (%s): %d vertices\n",
		aurora.Bold("Convex hull"), aurora.Cyan(algorithm.String()), len(vertices))
	for _, p := range vertices {
		fmt.Printf("  %g %g\n", p.X, p.Y)
	}

	if *bboxFlag {
		box := hull.BoundingBox(points)
		fmt.Println(aurora.Bold("Bounding box:"))
		for _, p := range box {
			fmt.Printf("  %g %g\n", p.X, p.Y)
		}
	}

	if *drawFlag != "" {
		opts := hull.DrawOptions{Scale: *scaleFlag, Labels: *labelsFlag}
		if err := hull.RenderPNG(points, vertices, *drawFlag, opts); err != nil {
			kingpin.Fatalf("rendering %s: %v", *drawFlag, err)
		}
		fmt.Printf("Wrote %s\n", aurora.Green(*drawFlag))
		if *showFlag {
			imgcat.CatFile(*drawFlag, os.Stdout)
		}
	}
}

func readPoints(in io.Reader) ([]hull.Point[float64], error) {
	points := []hull.Point[float64]{}
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		point, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(text string) (hull.Point[float64], error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return hull.Point[float64]{}, errors.Errorf("expected \"x y\", got %q", text)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return hull.Point[float64]{}, errors.Wrapf(err, "invalid x in %q", text)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return hull.Point[float64]{}, errors.Wrapf(err, "invalid y in %q", text)
	}
	return hull.Point[float64]{X: x, Y: y}, nil
}
