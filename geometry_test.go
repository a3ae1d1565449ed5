package focalcrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowLeft(t *testing.T) {
	tests := []struct {
		name           string
		focalX         float64
		windowWidth    float64
		containerWidth float64
		expected       float64
	}{
		{"centered", 400, 400, 800, 200},
		{"interior mobile", 400, 200, 800, 300},
		{"clamped left", 50, 400, 800, 0},
		{"clamped right", 790, 400, 800, 400},
		{"exact left edge", 200, 400, 800, 0},
		{"exact right edge", 600, 400, 800, 400},
		{"focal at zero", 0, 200, 800, 0},
		{"focal at width", 800, 200, 800, 600},
		{"window equals container", 400, 800, 800, 0},
		{"window wider than container", 400, 900, 800, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WindowLeft(tt.focalX, tt.windowWidth, tt.containerWidth))
		})
	}
}

func TestWindowLeftAlwaysInBounds(t *testing.T) {
	for x := -1000.0; x <= 2000; x += 13 {
		left := WindowLeft(x, 200, 800)
		assert.GreaterOrEqual(t, left, 0.0)
		assert.LessOrEqual(t, left, 600.0)
	}
}

func TestApplyDragScenarios(t *testing.T) {
	l := DefaultLayout()
	initial := CenterFocal(l)
	assert.Equal(t, FocalPoint{X: 400, Y: 200}, initial)

	t.Run("zero delta keeps center", func(t *testing.T) {
		fp := ApplyDrag(initial, DragDelta{}, l)
		assert.Equal(t, FocalPoint{X: 400, Y: 200}, fp)
		state := Project(fp, l)
		assert.Equal(t, 300.0, state.MobileLeft)
		assert.Equal(t, 200.0, state.TabletLeft)
	})

	t.Run("left boundary keeps unsnapped focal", func(t *testing.T) {
		fp := ApplyDrag(initial, DragDelta{DX: -350}, l)
		assert.Equal(t, 50.0, fp.X)
		state := Project(fp, l)
		assert.Equal(t, 0.0, state.MobileLeft)
		assert.Equal(t, 0.0, state.TabletLeft)
	})

	t.Run("extreme right delta clamps to container", func(t *testing.T) {
		fp := ApplyDrag(initial, DragDelta{DX: 1000}, l)
		assert.Equal(t, 800.0, fp.X)
		state := Project(fp, l)
		assert.Equal(t, 600.0, state.MobileLeft)
		assert.Equal(t, 400.0, state.TabletLeft)
	})
}

func TestApplyDragBoundarySnap(t *testing.T) {
	l := DefaultLayout()
	// drive tablet window to the left boundary first
	fp := ApplyDrag(CenterFocal(l), DragDelta{DX: -350}, l)
	assert.Equal(t, 50.0, fp.X)

	// further leftward drags keep moving the focal point while both
	// windows stay at the boundary
	fp = ApplyDrag(fp, DragDelta{DX: -30}, l)
	assert.Equal(t, 20.0, fp.X)
	state := Project(fp, l)
	assert.Equal(t, 0.0, state.MobileLeft)
	assert.Equal(t, 0.0, state.TabletLeft)

	fp = ApplyDrag(fp, DragDelta{DX: -100}, l)
	assert.Equal(t, 0.0, fp.X)
}

func TestApplyDragZeroDeltaIdempotent(t *testing.T) {
	l := DefaultLayout()
	fp := CenterFocal(l)
	for i := 0; i < 5; i++ {
		fp = ApplyDrag(fp, DragDelta{}, l)
		assert.Equal(t, FocalPoint{X: 400, Y: 200}, fp)
	}

	// any committed focal point is a fixed point of the zero delta
	for dx := -900.0; dx <= 900; dx += 37 {
		committed := ApplyDrag(CenterFocal(l), DragDelta{DX: dx, DY: dx / 2}, l)
		again := ApplyDrag(committed, DragDelta{}, l)
		assert.Equal(t, committed, again, "dx %v", dx)
	}
}

func TestApplyDragCenteringInvariant(t *testing.T) {
	l := DefaultLayout()
	for dx := -900.0; dx <= 900; dx += 7 {
		fp := ApplyDrag(CenterFocal(l), DragDelta{DX: dx}, l)
		state := Project(fp, l)
		if state.TabletLeft > 0 && state.TabletLeft < l.ContainerWidth-l.TabletWidth {
			assert.Equal(t, state.MobileLeft+l.MobileWidth/2, fp.X, "dx %v", dx)
		}
	}
}

func TestApplyDragBounds(t *testing.T) {
	l := DefaultLayout()
	deltas := []DragDelta{
		{DX: 1e9, DY: 1e9},
		{DX: -1e9, DY: -1e9},
		{DX: 12345, DY: -9876},
		{DX: -0.5, DY: 0.25},
	}
	fp := CenterFocal(l)
	for _, d := range deltas {
		fp = ApplyDrag(fp, d, l)
		assert.GreaterOrEqual(t, fp.X, 0.0)
		assert.LessOrEqual(t, fp.X, l.ContainerWidth)
		assert.GreaterOrEqual(t, fp.Y, 0.0)
		assert.LessOrEqual(t, fp.Y, l.ContainerHeight)
	}
}

func TestApplyDragYNeverSnapped(t *testing.T) {
	l := DefaultLayout()
	fp := ApplyDrag(CenterFocal(l), DragDelta{DY: -150}, l)
	assert.Equal(t, 50.0, fp.Y)
	fp = ApplyDrag(fp, DragDelta{DY: 1000}, l)
	assert.Equal(t, 400.0, fp.Y)
}

func TestTabletPinned(t *testing.T) {
	l := DefaultLayout()
	assert.False(t, TabletPinned(FocalPoint{X: 400}, l))
	assert.True(t, TabletPinned(FocalPoint{X: 50}, l))
	assert.True(t, TabletPinned(FocalPoint{X: 200}, l))
	assert.True(t, TabletPinned(FocalPoint{X: 750}, l))
}

func TestProjectConsistency(t *testing.T) {
	l := DefaultLayout()
	for x := 0.0; x <= l.ContainerWidth; x += 11 {
		state := Project(FocalPoint{X: x, Y: 100}, l)
		assert.GreaterOrEqual(t, state.MobileLeft, 0.0)
		assert.LessOrEqual(t, state.MobileLeft, l.ContainerWidth-l.MobileWidth)
		assert.GreaterOrEqual(t, state.TabletLeft, 0.0)
		assert.LessOrEqual(t, state.TabletLeft, l.ContainerWidth-l.TabletWidth)
		// the wider tablet window always starts at or before the mobile window
		assert.LessOrEqual(t, state.TabletLeft, state.MobileLeft)
	}
}
