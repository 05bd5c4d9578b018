package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/core"
	"github.com/hubastard/bumpslider/engine/serialize"
	"github.com/hubastard/bumpslider/engine/ui"
)

func newEngine(t *testing.T, d *Demo) (*core.Engine, *UILayer) {
	t.Helper()
	e := core.NewHeadless(3)
	l := NewUILayer(d, int(Size.W), int(Size.H), nil)
	e.Layers.Push(e, l)
	l.OnRender(e, 0)
	require.True(t, l.Drawn())
	return e, l
}

func press(e *core.Engine, x, y float64) {
	e.Dispatch(nil, core.EventMouseMove{X: x, Y: y})
	e.Dispatch(nil, core.EventMouseButton{Button: core.MouseLeft, Down: true})
}

func release(e *core.Engine) {
	e.Dispatch(nil, core.EventMouseButton{Button: core.MouseLeft, Down: false})
}

func TestNewDemo(t *testing.T) {
	d := New(false)
	assert.Equal(t, 30, d.Volume.Value())
	assert.Equal(t, 2.5, d.Gain.Value())
	assert.Equal(t, float32(0), d.Balance.Value())
	assert.Equal(t, ui.Vertical, d.Balance.Orientation())
	assert.True(t, d.Volume.Flags().Has(ui.ShowLabels))
	assert.False(t, d.Volume.LiveUpdate())
	assert.True(t, d.Gain.LiveUpdate())
	assert.Equal(t, "volume 30   gain 2.5 dB   balance +0.00", d.Readout.Text())
}

func TestReadoutFollowsSliders(t *testing.T) {
	d := New(false)
	d.Volume.SetValue(75)
	d.Balance.SetValue(-0.5)
	assert.Equal(t, "volume 75   gain 2.5 dB   balance -0.50", d.Readout.Text())
}

func TestCycleTheme(t *testing.T) {
	d := New(false)
	assert.Equal(t, "default", d.Theme().Name)

	builds := d.Volume.HandleBuilds()
	d.CycleTheme()
	assert.Equal(t, "midnight", d.Theme().Name)
	assert.True(t, ui.NeedsRedraw(d.Root))

	for range colors.BuiltinNames() {
		d.CycleTheme()
	}
	assert.Equal(t, "midnight", d.Theme().Name)

	newEngine(t, d)
	assert.Greater(t, d.Volume.HandleBuilds(), builds)
}

func TestSetThemeFromFile(t *testing.T) {
	d := New(false)
	th, err := colors.ParseTheme([]byte("name = \"mine\"\nbase = \"teal\"\n"))
	require.NoError(t, err)
	d.SetTheme(th)
	assert.Equal(t, "mine", d.Theme().Name)

	// a theme outside the built-ins keeps the cycle position
	d.CycleTheme()
	assert.Equal(t, "midnight", d.Theme().Name)
}

func TestDocumentRoundTrip(t *testing.T) {
	d := New(false)
	d.Volume.SetValue(80)
	d.Gain.SetValue(7.5)
	d.Balance.SetValue(0.25)

	data, err := serialize.Marshal(d.Document())
	require.NoError(t, err)

	other := New(false)
	nodes, err := serialize.Unmarshal(data)
	require.NoError(t, err)
	require.NoError(t, other.Apply(nodes))
	assert.Equal(t, 80, other.Volume.Value())
	assert.Equal(t, 7.5, other.Gain.Value())
	assert.Equal(t, float32(0.25), other.Balance.Value())
}

func TestApplySkipsUnknownAndKeepsGoing(t *testing.T) {
	d := New(false)
	nodes := d.Document()
	nodes[0].Type = "SliderBF"
	nodes[1].Properties = serialize.Properties{{Key: "value", Value: "9"}}
	nodes = append(nodes, serialize.Node{Type: "SliderB", Name: "mystery"})

	err := d.Apply(nodes)
	require.Error(t, err)
	assert.ErrorIs(t, err, serialize.ErrTypeMismatch)
	assert.Equal(t, 9.0, d.Gain.Value())
}

func TestReset(t *testing.T) {
	d := New(false)
	d.Volume.SetValue(99)
	d.Gain.SetValue(0)
	d.Balance.SetValue(1)
	d.Reset()
	assert.Equal(t, 30, d.Volume.Value())
	assert.Equal(t, 2.5, d.Gain.Value())
	assert.Equal(t, float32(0), d.Balance.Value())
}

func TestRenderOnlyWhenDamaged(t *testing.T) {
	d := New(false)
	e, l := newEngine(t, d)

	l.OnRender(e, 0)
	assert.False(t, l.Drawn())

	d.Volume.SetValue(50)
	l.OnRender(e, 0)
	assert.True(t, l.Drawn())

	l.Invalidate()
	l.OnRender(e, 0)
	assert.True(t, l.Drawn())
}

func TestLayerDragsVolume(t *testing.T) {
	d := New(false)
	e, _ := newEngine(t, d)

	var reports []int
	d.Volume.OnValueChanged(func(v int) { reports = append(reports, v) })

	box := d.Volume.HandleBox(d.Volume.Value())
	c := box.Center()
	press(e, float64(c.X), float64(c.Y))
	e.Dispatch(nil, core.EventMouseMove{X: float64(c.X) + 60, Y: float64(c.Y)})
	e.Dispatch(nil, core.EventMouseMove{X: float64(c.X) + 120, Y: float64(c.Y)})
	assert.True(t, d.Volume.Dragging())
	assert.Empty(t, reports)

	release(e)
	require.Len(t, reports, 1)
	assert.Greater(t, reports[0], 30)
	assert.Contains(t, d.Readout.Text(), "volume ")
	assert.False(t, d.Volume.Dragging())
}

func TestLayerButtonCyclesTheme(t *testing.T) {
	d := New(false)
	e, _ := newEngine(t, d)

	b := d.ThemeButton.Node().Bounds()
	c := b.Center()
	press(e, float64(c.X), float64(c.Y))
	release(e)
	assert.Equal(t, "midnight", d.Theme().Name)
}

func TestLayerKeys(t *testing.T) {
	d := New(false)
	e, l := newEngine(t, d)

	key := func(k core.Key) { e.Dispatch(nil, core.EventKey{Key: k, Down: true}) }

	key(core.KeyT)
	assert.Equal(t, "midnight", d.Theme().Name)

	d.Volume.SetValue(1)
	key(core.KeyR)
	assert.Equal(t, 30, d.Volume.Value())

	// no window and no store: both are no-ops
	key(core.KeyEscape)
	key(core.KeyS)

	e.Dispatch(nil, core.EventResize{W: 320, H: 200})
	l.OnRender(e, 0)
	assert.True(t, l.Drawn())
	assert.Equal(t, 320, l.Frame().Bounds().Dx())
}

func TestDebugLayerToggle(t *testing.T) {
	d := New(false)
	e, l := newEngine(t, d)
	dbg := NewDebugLayer(l)
	e.Layers.Push(e, dbg)

	e.Dispatch(nil, core.EventKey{Key: core.KeySpace, Down: true})
	assert.True(t, dbg.Visible())

	stats := l.Renderer().Stats()
	dbg.OnUpdate(e, 0)
	l.OnRender(e, 0)
	require.True(t, l.Drawn())
	dbg.OnRender(e, 0)
	assert.Greater(t, l.Renderer().Stats().Texts, stats.Texts)

	e.Dispatch(nil, core.EventKey{Key: core.KeySpace, Down: true})
	assert.False(t, dbg.Visible())
}
