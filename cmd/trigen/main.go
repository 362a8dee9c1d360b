// Command trigen triangulates a polygon and prints the result, either
// generating the polygon itself (random or regular) or reading one from
// a WKT literal on stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/missinglink/polytri/generate"
	"github.com/missinglink/polytri/geom"
)

func main() {
	seed := flag.Int64("seed", 0, "seed (0 uses the current unix nano epoch)")
	shape := flag.String("shape", "random", "shape to triangulate: random, monotone, regular, or stdin to read WKT from stdin")
	points := flag.Int("points", 12, "number of vertices for random/regular shapes")
	radius := flag.Float64("radius", 10, "circumscribing radius for random/regular shapes")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("starting", zap.Int64("seed", *seed), zap.String("shape", *shape))
	rnd := rand.New(rand.NewSource(*seed))

	pts, err := buildShape(*shape, rnd, *points, float32(*radius))
	if err != nil {
		logger.Fatal("failed to build shape", zap.Error(err))
	}

	tris, indices, err := geom.Triangulate(pts)
	if err != nil {
		logger.Fatal("triangulation failed", zap.Error(err), zap.Int("vertices", len(pts)))
	}

	logger.Info("triangulated", zap.Int("vertices", len(pts)), zap.Int("triangles", len(indices)))
	printTriangles(os.Stdout, tris, indices)
}

func buildShape(shape string, rnd *rand.Rand, numPoints int, radius float32) ([]geom.XY, error) {
	switch shape {
	case "random":
		return generate.RandomPolygon(rnd, geom.XY{}, radius, numPoints), nil
	case "monotone":
		return generate.RandomMonotonePolygon(rnd, geom.XY{}, radius, radius*2, numPoints/2, numPoints/2), nil
	case "regular":
		return generate.RegularPolygon(geom.XY{}, radius, numPoints), nil
	case "stdin":
		return readWKT(os.Stdin)
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
}

func readWKT(r io.Reader) ([]geom.XY, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	return geom.ParsePolygonWKT(string(data))
}

func printTriangles(w io.Writer, pts []geom.Point3, indices [][3]int32) {
	bw := bufio.NewWriter(w)
	defer bw.Flush() //nolint:errcheck

	for _, p := range pts {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, tri := range indices {
		fmt.Fprintf(bw, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
