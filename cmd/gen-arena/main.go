package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"arena-drive/internal/logging"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	ColorFloor = color.RGBA{255, 255, 255, 255} // White
	ColorWall  = color.RGBA{0, 0, 0, 255}       // Black
	ColorSpawn = color.RGBA{255, 0, 0, 255}     // Red
)

// Layout draws a size x size pen: border walls, an optional square pillar
// a quarter of the way in, and a spawn pixel at the centre.
func Layout(size, border, pillar int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fill := func(x0, y0, x1, y1 int, c color.RGBA) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				img.Set(x, y, c)
			}
		}
	}

	fill(0, 0, size, size, ColorFloor)

	fill(0, 0, size, border, ColorWall)
	fill(0, size-border, size, size, ColorWall)
	fill(0, 0, border, size, ColorWall)
	fill(size-border, 0, size, size, ColorWall)

	if pillar > 0 {
		cx, cy := size/2, size/4
		fill(cx-pillar/2, cy-pillar/2, cx-pillar/2+pillar, cy-pillar/2+pillar, ColorWall)
	}

	img.Set(size/2, size/2, ColorSpawn)
	return img
}

func run(args []string) int {
	flags := pflag.NewFlagSet("gen-arena", pflag.ContinueOnError)
	out := flags.StringP("out", "o", "assets/arena.png", "output PNG path")
	size := flags.Int("size", 80, "layout width and height in pixels")
	border := flags.Int("border", 2, "border wall thickness in pixels")
	pillar := flags.Int("pillar", 8, "side of the square pillar in pixels, 0 for none")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	log, err := logging.New(logging.Options{})
	if err != nil {
		return 1
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Create(*out)
	if err != nil {
		log.Error("create output", zap.String("path", *out), zap.Error(err))
		return 1
	}
	defer f.Close()

	if err := png.Encode(f, Layout(*size, *border, *pillar)); err != nil {
		log.Error("encode png", zap.Error(err))
		return 1
	}
	log.Info("arena written", zap.String("path", *out), zap.Int("size", *size))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
