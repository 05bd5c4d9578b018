package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputClickWithoutDrag(t *testing.T) {
	in := NewInput(3)
	in.Handle(EventMouseMove{X: 10, Y: 10})

	got := in.Handle(EventMouseButton{Button: MouseLeft, Down: true})
	require.Equal(t, []Event{EventPointerDown{X: 10, Y: 10}}, got)

	assert.Empty(t, in.Handle(EventMouseMove{X: 11, Y: 11}))

	got = in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	require.Len(t, got, 1)
	up := got[0].(EventPointerUp)
	assert.False(t, up.Dragged)
	assert.Equal(t, float32(11), up.X)
}

func TestInputDragSequence(t *testing.T) {
	in := NewInput(3)
	in.Handle(EventMouseMove{X: 10, Y: 10})
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})

	got := in.Handle(EventMouseMove{X: 20, Y: 10})
	require.Len(t, got, 2)
	assert.Equal(t, EventPointerDragStart{StartX: 10, StartY: 10, X: 20, Y: 10}, got[0])
	assert.Equal(t, EventPointerDrag{StartX: 10, StartY: 10, X: 20, Y: 10}, got[1])
	assert.True(t, in.Dragging())

	got = in.Handle(EventMouseMove{X: 25, Y: 4})
	assert.Equal(t, []Event{EventPointerDrag{StartX: 10, StartY: 10, X: 25, Y: 4}}, got)

	got = in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	assert.Equal(t, []Event{EventPointerUp{StartX: 10, StartY: 10, X: 25, Y: 4, Dragged: true}}, got)
	assert.False(t, in.Dragging())
}

func TestInputIgnoresOtherButtons(t *testing.T) {
	in := NewInput(0)
	assert.Empty(t, in.Handle(EventMouseButton{Button: MouseRight, Down: true}))
	assert.True(t, in.IsButtonDown(MouseRight))
	assert.Empty(t, in.Handle(EventMouseMove{X: 50, Y: 50}))
	assert.Empty(t, in.Handle(EventMouseButton{Button: MouseLeft, Down: false}))
}

type recordingLayer struct {
	name   string
	stop   bool
	events []Event
	log    *[]string
}

func (l *recordingLayer) OnAttach(*Engine)          { *l.log = append(*l.log, "attach "+l.name) }
func (l *recordingLayer) OnDetach(*Engine)          { *l.log = append(*l.log, "detach "+l.name) }
func (l *recordingLayer) OnUpdate(*Engine, float64) {}
func (l *recordingLayer) OnRender(*Engine, float64) {}
func (l *recordingLayer) OnEvent(_ *Engine, ev Event) bool {
	l.events = append(l.events, ev)
	return l.stop
}

func TestDispatchThroughLayers(t *testing.T) {
	var log []string
	e := NewHeadless(0)
	bottom := &recordingLayer{name: "bottom", log: &log}
	top := &recordingLayer{name: "top", log: &log}
	e.Layers.Push(e, bottom)
	e.Layers.Push(e, top)
	assert.Equal(t, []string{"attach bottom", "attach top"}, log)

	e.Dispatch(nil, EventMouseButton{Button: MouseLeft, Down: true})
	assert.Len(t, top.events, 2)
	assert.Len(t, bottom.events, 2)
	assert.IsType(t, EventPointerDown{}, top.events[1])

	top.stop = true
	e.Dispatch(nil, EventKey{Key: KeySpace, Down: true})
	assert.Len(t, top.events, 3)
	assert.Len(t, bottom.events, 2)
	assert.True(t, e.Input.IsKeyDown(KeySpace))

	l, ok := e.Layers.Pop(e)
	require.True(t, ok)
	assert.Same(t, top, l)
	assert.Equal(t, "detach top", log[len(log)-1])
	assert.Equal(t, 1, e.Layers.Len())
}
