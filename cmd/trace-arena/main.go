package main

import (
	"os"

	"arena-drive/internal/arena"
	"arena-drive/internal/logging"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

// Pixels darker than this become walls.
const WallThreshold = 80

func run(args []string) int {
	flags := pflag.NewFlagSet("trace-arena", pflag.ContinueOnError)
	in := flags.StringP("in", "i", "assets/arena.png", "layout image")
	out := flags.StringP("out", "o", "", "output YAML path, stdout when empty")
	cellSize := flags.Float64("cell", 0.5, "world units per pixel")
	height := flags.Float64("height", arena.DefaultWallHeight, "wall height")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	log, err := logging.New(logging.Options{})
	if err != nil {
		return 1
	}
	defer func() { _ = log.Sync() }()

	// 1. Load the image
	img := gocv.IMRead(*in, gocv.IMReadGrayScale)
	if img.Empty() {
		log.Error("read image", zap.String("path", *in))
		return 1
	}
	defer img.Close()

	// 2. Dark pixels to white foreground
	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(img, &mask, WallThreshold, 255, gocv.ThresholdBinaryInv)

	// 3. Label connected wall blobs
	labels := gocv.NewMat()
	defer labels.Close()
	stats := gocv.NewMat()
	defer stats.Close()
	centroids := gocv.NewMat()
	defer centroids.Close()
	n := gocv.ConnectedComponentsWithStats(mask, &labels, &stats, &centroids)

	// 4. Solid rectangles become one box each; anything else (rings,
	//    L-shapes) is merged cell by cell.
	width, rows := img.Cols(), img.Rows()
	var walls []arena.Obstacle
	rest := arena.NewGrid(width, rows)
	for label := 1; label < n; label++ {
		x0 := int(stats.GetIntAt(label, int(gocv.CCStatLeft)))
		y0 := int(stats.GetIntAt(label, int(gocv.CCStatTop)))
		w := int(stats.GetIntAt(label, int(gocv.CCStatWidth)))
		h := int(stats.GetIntAt(label, int(gocv.CCStatHeight)))
		area := int(stats.GetIntAt(label, int(gocv.CCStatArea)))

		if area == w*h {
			walls = append(walls, arena.CellBox(x0, y0, x0+w, y0+h, width, rows, *cellSize, *height))
			continue
		}
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				if int(labels.GetIntAt(y, x)) == label {
					rest.Cells[x][y] = arena.CellWall
				}
			}
		}
	}
	walls = append(walls, rest.Obstacles(*cellSize, *height)...)

	// 5. Save the result
	dst := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Error("create output", zap.String("path", *out), zap.Error(err))
			return 1
		}
		defer f.Close()
		dst = f
	}
	if err := arena.WriteYAML(dst, *in, walls); err != nil {
		log.Error("write arena", zap.Error(err))
		return 1
	}
	log.Info("arena traced", zap.String("image", *in), zap.Int("components", n-1), zap.Int("walls", len(walls)))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
