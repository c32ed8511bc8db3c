// Command iwpdebug is a minimal smoke-test harness for the reconstruction
// and distance-transform packages: it reads a newline-delimited ASCII
// digit grid from stdin, runs one operation against it using nothing but
// the public library API, and prints the resulting grid back to stdout.
//
// It decodes no image file formats and exists purely to let a reader
// exercise the library from a terminal, the way the originating project's
// `examples/` snippets exercise individual algorithms.
//
// Usage:
//
//	iwpdebug reconstruct                  < mask-then-marker grids separated by a blank line
//	iwpdebug distance <metric> <n>        < a binary {0,1} grid; metric is one of
//	                                         euclidean|cityblock|chessboard; n is the
//	                                         tile count (0 or 1 selects the sequential engine)
//	iwpdebug components <threshold> <conn> < a grid; conn is one of four|eight
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/luiz-couto/image-processing-iwp/distance"
	"github.com/luiz-couto/image-processing-iwp/pixelgrid"
	"github.com/luiz-couto/image-processing-iwp/reconstruction"
)

func main() {
	if len(os.Args) < 2 {
		fatalf("usage: iwpdebug reconstruct|distance <metric> <n>")
	}

	switch os.Args[1] {
	case "reconstruct":
		runReconstruct()
	case "distance":
		runDistance()
	case "components":
		runComponents()
	default:
		fatalf("unknown command %q", os.Args[1])
	}
}

func runReconstruct() {
	blocks := readBlocks(os.Stdin)
	if len(blocks) != 2 {
		fatalf("reconstruct expects two grids (mask, then a blank line, then marker), got %d block(s)", len(blocks))
	}

	mask, err := pixelgrid.NewImage8FromRows(blocks[0])
	exitOn(err)
	marker, err := pixelgrid.NewImage8FromRows(blocks[1])
	exitOn(err)

	exitOn(reconstruction.Reconstruct(mask, marker))
	printRows(marker.Rows())
}

func runDistance() {
	if len(os.Args) < 4 {
		fatalf("usage: iwpdebug distance <metric> <n>")
	}

	metric, err := parseMetric(os.Args[2])
	exitOn(err)
	n, err := strconv.Atoi(os.Args[3])
	exitOn(err)

	blocks := readBlocks(os.Stdin)
	if len(blocks) != 1 {
		fatalf("distance expects exactly one grid, got %d block(s)", len(blocks))
	}

	bin, err := pixelgrid.NewImage8FromRows(blocks[0])
	exitOn(err)

	var out *pixelgrid.Image8
	if n <= 1 {
		out, err = distance.Transform(bin, metric)
	} else {
		out, err = distance.TransformParallel(bin, metric, n)
	}
	exitOn(err)

	printRows(out.Rows())
}

// runComponents reads a single grid and prints each connected component
// (pixels at or above the given threshold, grouped under the given
// connectivity) as one line of its member coordinates. It is this binary's
// only caller of pixelgrid.ConnectedComponents, the debug/introspection
// helper the core propagation engine never needs for itself.
func runComponents() {
	if len(os.Args) < 4 {
		fatalf("usage: iwpdebug components <threshold> <conn>")
	}

	threshold, err := strconv.Atoi(os.Args[2])
	exitOn(err)
	conn, err := parseConnectivity(os.Args[3])
	exitOn(err)

	blocks := readBlocks(os.Stdin)
	if len(blocks) != 1 {
		fatalf("components expects exactly one grid, got %d block(s)", len(blocks))
	}

	img, err := pixelgrid.NewImage8FromRows(blocks[0])
	exitOn(err)

	comps := pixelgrid.ConnectedComponents(img, uint32(threshold), conn)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i, comp := range comps {
		fmt.Fprintf(w, "component %d:", i)
		for _, px := range comp {
			fmt.Fprintf(w, " (%d,%d)", px.X, px.Y)
		}
		fmt.Fprintln(w)
	}
}

func parseConnectivity(name string) (pixelgrid.Connectivity, error) {
	switch name {
	case "four":
		return pixelgrid.Four, nil
	case "eight":
		return pixelgrid.Eight, nil
	default:
		return 0, fmt.Errorf("unknown connectivity %q", name)
	}
}

func parseMetric(name string) (distance.Metric, error) {
	switch name {
	case "euclidean":
		return distance.Euclidean, nil
	case "cityblock":
		return distance.CityBlock, nil
	case "chessboard":
		return distance.Chessboard, nil
	default:
		return nil, fmt.Errorf("unknown metric %q", name)
	}
}

// readBlocks splits stdin into grids of ASCII digit rows, each block
// separated by one or more blank lines.
func readBlocks(f *os.File) [][][]uint8 {
	var blocks [][][]uint8
	var current [][]uint8

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, parseRow(line))
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

func parseRow(line string) []uint8 {
	fields := strings.Fields(line)
	row := make([]uint8, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		exitOn(err)
		row[i] = uint8(v)
	}

	return row
}

func printRows(rows [][]uint8) {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, v)
		}
		fmt.Fprintln(w)
	}
}

func exitOn(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "iwpdebug: "+format+"\n", args...)
	os.Exit(1)
}
