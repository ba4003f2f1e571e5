package render

import (
	"image/color"

	"arena-drive/internal/camera"
	"arena-drive/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ColorSky   = color.RGBA{110, 150, 200, 255}
	ColorPanel = color.RGBA{0, 0, 0, 180}
)

const lineWidth = 1.5

// Draw renders the item tree as seen by the rig. Segments with an end
// behind the camera are skipped.
func Draw(screen *ebiten.Image, rig *camera.Rig, root scene.Item) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	toScreen := func(p mgl64.Vec3) (float32, float32, bool) {
		x, y, ok := rig.Project(p, w, h)
		return float32(x), float32(y), ok
	}

	root.Walk(func(it scene.Item) {
		switch it.Kind {
		case scene.KindWireframe:
			for _, s := range it.Segments {
				x1, y1, ok1 := toScreen(s[0])
				x2, y2, ok2 := toScreen(s[1])
				if !ok1 || !ok2 {
					continue
				}
				vector.StrokeLine(screen, x1, y1, x2, y2, lineWidth, it.Color, true)
			}

		case scene.KindSolid:
			var path vector.Path
			for i, p := range it.Polygon {
				sx, sy, ok := toScreen(p)
				if !ok {
					return
				}
				if i == 0 {
					path.MoveTo(sx, sy)
				} else {
					path.LineTo(sx, sy)
				}
			}
			path.Close()

			var cs ebiten.ColorScale
			cs.ScaleWithColor(it.Color)
			vector.FillPath(screen, &path, nil, &vector.DrawPathOptions{
				AntiAlias:  true,
				ColorScale: cs,
			})
		}
	})
}

// DrawHUD paints the overlay panel in the top-left corner.
func DrawHUD(screen *ebiten.Image, hud scene.HUD) {
	vector.FillRect(screen, 0, 0, 200, 170, ColorPanel, true)
	ebitenutil.DebugPrint(screen, hud.Text())
}
