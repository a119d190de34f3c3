package boxflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurface_SetBounds(t *testing.T) {
	type event struct{ moved, resized bool }
	type tc struct {
		from, to Rect
		want     []event
	}

	tests := map[string]tc{
		"unchanged": {from: NewRect(1, 2, 3, 4), to: NewRect(1, 2, 3, 4)},
		"moved":     {from: NewRect(1, 2, 3, 4), to: NewRect(5, 2, 3, 4), want: []event{{moved: true}}},
		"resized":   {from: NewRect(1, 2, 3, 4), to: NewRect(1, 2, 3, 9), want: []event{{resized: true}}},
		"both":      {from: NewRect(1, 2, 3, 4), to: NewRect(0, 0, 0, 0), want: []event{{moved: true, resized: true}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewSurface("Component", 0)
			s.SetBounds(tt.from)

			var got []event
			s.OnMoveOrResize(func(moved, resized bool) {
				got = append(got, event{moved, resized})
			})
			s.SetBounds(tt.to)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.to, s.Bounds())
		})
	}
}

func TestSurface_RemoveDuringCallback(t *testing.T) {
	s := NewSurface("Component", 0)

	calls := 0
	var removeSecond func()
	s.OnMoveOrResize(func(bool, bool) {
		calls++
		removeSecond()
	})
	removeSecond = s.OnMoveOrResize(func(bool, bool) { calls += 10 })

	s.SetBounds(NewRect(0, 0, 1, 1))
	assert.Equal(t, 1, calls)

	s.SetBounds(NewRect(0, 0, 2, 2))
	assert.Equal(t, 2, calls)
}
