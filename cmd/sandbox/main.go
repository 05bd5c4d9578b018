package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hubastard/bumpslider/engine/config"
	"github.com/hubastard/bumpslider/engine/core"
	glbackend "github.com/hubastard/bumpslider/engine/gfx/gl"
	"github.com/hubastard/bumpslider/engine/platform"
	"github.com/hubastard/bumpslider/internal/demo"
)

type App struct {
	cfg   config.Config
	ui    *demo.UILayer
	debug *demo.DebugLayer
}

func (a *App) OnStart(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l, err := demo.Build(a.cfg, w, h)
	if err != nil {
		logrus.WithError(err).Fatal("build demo")
	}
	a.ui = l
	a.debug = demo.Attach(e, l)
	e.Window.SetTitle(a.cfg.Title + " [T theme, S save, R reset, Space stats]")
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

// OnRender runs after the layers drew into the frame.
func (a *App) OnRender(e *core.Engine, alpha float64) {
	e.Renderer.Present(a.ui.Frame())
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}
func (a *App) OnShutdown(e *core.Engine)             {}

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

	var win *platform.GLFWWindow
	newWindow := func(c core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(c, nil)
		win = w
		return w, err
	}
	newRenderer := func(w core.Window, c core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(w, cfg.ShaderDir)
	}

	app := &App{cfg: cfg}
	err = core.Run(app, cfg.CoreConfig(), newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		logrus.Fatal(err)
	}
}
