// Package demo builds the slider showcase shared by the sandbox hosts and
// the sliderb tool.
package demo

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/geom"
	"github.com/hubastard/bumpslider/engine/gfx/renderer2d"
	"github.com/hubastard/bumpslider/engine/serialize"
	"github.com/hubastard/bumpslider/engine/ui"
)

var log = logrus.WithField("component", "demo")

// Size is the area the showcase is laid out in.
var Size = geom.Size{W: 900, H: 560}

const (
	NameVolume  = "volume"
	NameGain    = "gain"
	NameBalance = "balance"
)

// Demo holds the widget tree: three sliders of the three value types, a
// readout label bound to them and a button cycling the built-in themes.
type Demo struct {
	Root        *ui.UICanvas
	Volume      *ui.SliderB
	Gain        *ui.SliderBD
	Balance     *ui.SliderBF
	Readout     *ui.UILabel
	ThemeButton *ui.UIButton

	theme    *colors.Theme
	themeIdx int
}

// New builds the showcase. liveUpdate applies to the volume slider; the gain
// slider always reports while dragging and the balance slider on release.
func New(liveUpdate bool) *Demo {
	d := &Demo{theme: colors.DefaultTheme()}
	d.themeIdx = slices.Index(colors.BuiltinNames(), d.theme.Name)

	d.Volume = ui.NewSliderB(geom.R(40, 40, 520, 100), 0, 100, 30, ui.Horizontal)
	d.Volume.SetFlags(ui.NewSliderFlags(ui.ShowLabels, ui.HighlightValue)).
		SetLabelInterval(10).
		SetLiveUpdate(liveUpdate)

	d.Gain = ui.NewSliderBD(geom.R(40, 180, 520, 64), 0, 10, 2.5, ui.Horizontal)
	d.Gain.SetFlags(ui.NewSliderFlags(ui.BumpTop)).
		SetLabelInterval(2.5).
		SetLiveUpdate(true)

	d.Balance = ui.NewSliderBF(geom.R(620, 40, 90, 400), -1, 1, 0, ui.Vertical)
	d.Balance.SetFlags(ui.NewSliderFlags(ui.BumpRight, ui.ShowValue)).
		SetLabelInterval(0.5)
	d.Balance.SetFormatter(func(v float32) string { return fmt.Sprintf("%+.2f", v) })

	d.Readout = ui.Label("").Position(40, 290)
	d.ThemeButton = ui.Button("").Position(40, 340).OnClick(d.CycleTheme)

	d.Root = ui.Canvas(d.Volume, d.Gain, d.Balance, d.Readout, d.ThemeButton)

	d.Volume.OnValueChanged(func(int) { d.updateReadout() })
	d.Gain.OnValueChanged(func(float64) { d.updateReadout() })
	d.Balance.OnValueChanged(func(float32) { d.updateReadout() })
	d.updateReadout()
	d.updateButton()
	return d
}

func (d *Demo) updateReadout() {
	d.Readout.SetText(fmt.Sprintf("volume %d   gain %.1f dB   balance %+.2f",
		d.Volume.Value(), d.Gain.Value(), d.Balance.Value()))
}

func (d *Demo) updateButton() { d.ThemeButton.SetText("Theme: " + d.theme.Name) }

func (d *Demo) Theme() *colors.Theme { return d.theme }

// SetTheme switches every widget to t. Handle images bake in their colors,
// so the sliders are told to rebuild them.
func (d *Demo) SetTheme(t *colors.Theme) {
	d.theme = t
	if i := slices.Index(colors.BuiltinNames(), t.Name); i >= 0 {
		d.themeIdx = i
	}
	for _, s := range d.sliders() {
		s.InvalidateHandle()
	}
	d.updateButton()
	d.Root.Node().Damage()
	log.WithField("theme", t.Name).Info("theme applied")
}

// CycleTheme applies the next built-in theme.
func (d *Demo) CycleTheme() {
	names := colors.BuiltinNames()
	d.themeIdx = (d.themeIdx + 1) % len(names)
	t, _ := colors.Builtin(names[d.themeIdx])
	d.SetTheme(t)
}

type invalidator interface{ InvalidateHandle() }

func (d *Demo) sliders() []invalidator {
	return []invalidator{d.Volume, d.Gain, d.Balance}
}

func (d *Demo) serializers() map[string]serialize.Serializer {
	return map[string]serialize.Serializer{
		NameVolume:  d.Volume,
		NameGain:    d.Gain,
		NameBalance: d.Balance,
	}
}

// Document serializes the sliders in a fixed order.
func (d *Demo) Document() []serialize.Node {
	return []serialize.Node{
		serialize.Collect(NameVolume, d.Volume),
		serialize.Collect(NameGain, d.Gain),
		serialize.Collect(NameBalance, d.Balance),
	}
}

// Apply restores the sliders named in nodes. Nodes for unknown names are
// skipped and one bad node does not stop the others.
func (d *Demo) Apply(nodes []serialize.Node) error {
	var errs []error
	targets := d.serializers()
	for _, n := range nodes {
		s, ok := targets[n.Name]
		if !ok {
			log.WithField("node", n.Name).Warn("no widget for node")
			continue
		}
		left, err := serialize.Apply(n, s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(left) > 0 {
			log.WithFields(logrus.Fields{"node": n.Name, "keys": left.Keys()}).Debug("unused properties")
		}
	}
	return errors.Join(errs...)
}

// Reset puts the sliders back to their initial values.
func (d *Demo) Reset() {
	d.Volume.SetValue(30)
	d.Gain.SetValue(2.5)
	d.Balance.SetValue(0)
}

// Context returns the drawing context for a w x h target.
func (d *Demo) Context(p renderer2d.Painter, w, h int) *ui.Context {
	return &ui.Context{Viewport: geom.R(0, 0, float32(w), float32(h)), Painter: p, Theme: d.theme}
}

// Render draws the tree into r when anything changed, clearing the target
// with the theme background first. It reports whether it drew.
func (d *Demo) Render(r *renderer2d.Renderer2D, force bool) bool {
	if !force && !ui.NeedsRedraw(d.Root) {
		return false
	}
	b := r.Target().Bounds()
	r.BeginScene()
	r.Clear(d.theme.Color(colors.ColorBg))
	d.Root.Draw(d.Context(r, b.Dx(), b.Dy()))
	r.EndScene()
	return true
}
