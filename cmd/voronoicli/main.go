package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	voronoi "github.com/reikathr/fortunes-geokom"
)

func main() {
	cmd := &cli.Command{
		Name:      "voronoicli",
		Usage:     "Builds a planar Voronoi diagram and largest-empty-circle set, outputs results to stdout as JSON",
		UsageText: "voronoicli --file <path> | --number <value> [--perturb] [--seed <value>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Path to a point file: first line a count, following lines 'x y'",
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "number",
				Usage:    "Number of random sites to generate when --file is not given",
				Value:    10,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxcoord",
				Usage:    "Maximum x/y value for randomly generated sites",
				Value:    500,
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "perturb",
				Usage:    "Apply a tiny y-perturbation to every site before construction",
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "seed",
				Usage:    "Seed for random site generation and perturbation",
				Value:    1,
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type output struct {
	Segments []voronoi.LineSegment `json:"segments"`
	Vertices []voronoi.Point       `json:"vertices"`
	Circles  []voronoi.Circle      `json:"largest_empty_circles"`
}

func app(_ context.Context, cmd *cli.Command) error {
	rng := rand.New(rand.NewSource(cmd.Int("seed")))

	var sites []voronoi.Point
	var err error
	if path := cmd.String("file"); path != "" {
		sites, err = loadSites(path)
	} else {
		sites = randomSites(int(cmd.Int("number")), cmd.Int("maxcoord"), rng)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("perturb") {
		sites = voronoi.Perturb(sites, rng)
	}

	v, err := voronoi.New(sites)
	if err != nil {
		return err
	}
	if err := v.Process(); err != nil {
		return err
	}

	circles, err := v.FindLargestEmptyCircle()
	if err != nil {
		return err
	}

	out := output{
		Segments: v.Segments(),
		Vertices: v.VoronoiVertices(),
		Circles:  circles,
	}

	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}

// loadSites reads a point file: a count on the first line, followed by
// that many "x y" lines. It rejects lines that do not contain exactly
// two numeric coordinates, per the loader contract §6 assigns to the
// external collaborator.
func loadSites(path string) ([]voronoi.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("voronoicli: empty point file %q", path)
	}

	var count int
	if _, err := fmt.Sscanf(scanner.Text(), "%d", &count); err != nil {
		return nil, fmt.Errorf("voronoicli: bad count line in %q: %w", path, err)
	}

	sites := make([]voronoi.Point, 0, count)
	for scanner.Scan() {
		line := scanner.Text()
		if len(strings.Fields(line)) != 2 {
			return nil, fmt.Errorf("voronoicli: malformed line %q in %q: want exactly two coordinates", line, path)
		}
		var x, y float64
		if _, err := fmt.Sscanf(line, "%g %g", &x, &y); err != nil {
			return nil, fmt.Errorf("voronoicli: malformed line %q in %q: %w", line, path, err)
		}
		sites = append(sites, voronoi.NewPoint(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sites, nil
}

func randomSites(n int, maxCoord int64, rng *rand.Rand) []voronoi.Point {
	sites := make([]voronoi.Point, n)
	for i := range sites {
		sites[i] = voronoi.NewPoint(
			float64(rng.Int63n(maxCoord+1)),
			float64(rng.Int63n(maxCoord+1)),
		)
	}
	return sites
}
