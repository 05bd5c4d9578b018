// Command ebiten-sandbox runs the slider showcase on ebiten instead of the
// GLFW/GL backend. The UI still renders on the CPU; ebiten only presents
// the frame and supplies input.
package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/hubastard/bumpslider/engine/config"
	"github.com/hubastard/bumpslider/engine/core"
	"github.com/hubastard/bumpslider/internal/demo"
)

var log = logrus.WithField("component", "ebiten")

type Game struct {
	eng *core.Engine
	win *window
	in  input
	ui  *demo.UILayer
}

func NewGame(cfg config.Config) (*Game, error) {
	win := &window{w: cfg.Width, h: cfg.Height}
	eng := core.NewHeadless(cfg.DragThreshold)
	eng.Window = win

	l, err := demo.Build(cfg, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	demo.Attach(eng, l)
	return &Game{eng: eng, win: win, ui: l}, nil
}

func (g *Game) dispatch(ev core.Event) { g.eng.Dispatch(nil, ev) }

func (g *Game) Update() error {
	if g.win.resized {
		g.win.resized = false
		g.dispatch(core.EventResize{W: g.win.w, H: g.win.h})
	}
	g.in.poll(g.dispatch)

	const dt = 1.0 / 60
	g.eng.Layers.ForEach(func(l core.Layer) { l.OnUpdate(g.eng, dt) })

	if g.win.closing {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.eng.Layers.ForEach(func(l core.Layer) { l.OnRender(g.eng, 0) })

	frame := g.ui.Frame()
	if frame.Bounds().Size() != screen.Bounds().Size() {
		return
	}
	screen.WritePixels(frame.Pix)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.win.w || outsideHeight != g.win.h {
		g.win.w, g.win.h = outsideWidth, outsideHeight
		g.win.resized = true
	}
	return outsideWidth, outsideHeight
}

func main() {
	if err := config.LoadEnv(); err != nil {
		logrus.Fatal(err)
	}
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Resolve(path)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := cfg.ConfigureLogging(); err != nil {
		logrus.Fatal(err)
	}

	g, err := NewGame(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.VSync)

	err = ebiten.RunGame(g)
	g.eng.Layers.ForEachReverse(func(l core.Layer) bool {
		l.OnDetach(g.eng)
		return false
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run game")
	}
}
