package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"arena-drive/internal/assets"
	"arena-drive/internal/config"
	"arena-drive/internal/logging"
	"arena-drive/internal/render"
	"arena-drive/internal/scene"
	"arena-drive/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Frames a warning banner stays on screen (2s at 60 TPS).
const BannerFrames = 120

// Key that cycles the body colour.
const ColorKey = ebiten.KeyC

type Game struct {
	Session *sim.Session
	Log     *logging.Logger
	Start   time.Time

	banner  scene.Banner
	warning string
	keys    []ebiten.Key
}

func (g *Game) Update() error {
	// 1. Key transitions since the last tick
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ColorKey {
			g.cycleColor()
			continue
		}
		g.Session.KeyDown(k.String())
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.Session.KeyUp(k.String())
	}

	// 2. Simulation tick
	g.Session.Update(time.Since(g.Start))

	// 3. Overlay state
	g.warning = g.banner.Tick()
	return nil
}

func (g *Game) cycleColor() {
	v := g.Session.Vehicle()
	if v == nil {
		return
	}
	next := scene.NextColor(v.BodyColor)
	if err := g.Session.SetBodyColor(next); err != nil {
		g.Log.Warn("set body color", zap.String("color", next), zap.Error(err))
	}
}

func (g *Game) onWarning(err error) {
	g.banner.Show(err.Error(), BannerFrames)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorSky)

	v := g.Session.Vehicle()
	render.Draw(screen, g.Session.Camera(), scene.Build(v, g.Session.Obstacles()))

	hud := scene.HUD{
		Now:     time.Now(),
		State:   g.Session.State().String(),
		Warning: g.warning,
	}
	if v != nil {
		hud.Vehicle = v.Name
		hud.Color = v.BodyColor
	}
	if err := g.Session.LoadErr(); err != nil {
		hud.Warning = "load failed: " + err.Error()
	}
	render.DrawHUD(screen, hud)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.Session.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func run() int {
	configPath := pflag.StringP("config", "c", "", "path to arena-drive.yaml")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot, _ := logging.New(logging.Options{})
		boot.Error("load config", zap.String("path", *configPath), zap.Error(err))
		_ = boot.Sync()
		return 1
	}

	log, err := logging.New(logging.Options{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	game := &Game{Log: log, Start: time.Now()}
	session, err := sim.New(cfg, log, sim.WithWarningFunc(game.onWarning))
	if err != nil {
		log.Error("create session", zap.Error(err))
		return 1
	}
	game.Session = session

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session.Await(assets.Load(ctx,
		assets.VehicleFromFile(cfg.Vehicle.Path),
		assets.ArenaFromFile(cfg.Arena.Path, cfg.Arena.CellSize, cfg.Arena.Height),
	))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info("starting", zap.String("session", session.ID()), zap.String("config", *configPath))
	if err := ebiten.RunGame(game); err != nil {
		log.Error("run game", zap.Error(err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
