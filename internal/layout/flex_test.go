package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func sized(w, h float64) FlexItem {
	it := NewFlexItem()
	it.Width, it.Height = w, h
	return it
}

func grow(g float64) FlexItem {
	it := NewFlexItem()
	it.Grow = g
	return it
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestFlexBox_PerformLayout(t *testing.T) {
	type tc struct {
		box    FlexBox
		bounds Rect
		want   []Rect
	}

	withMin := sized(80, 10)
	withMin.MinWidth = 70
	withMax := grow(1)
	withMax.MaxWidth = 50
	margined := sized(20, NotAssigned)
	margined.Margin = EdgeTRBL(1, 2, 3, 4)
	lateOrder := sized(10, 10)
	lateOrder.Order = 1

	tests := map[string]tc{
		"empty": {box: FlexBox{Direction: Row}, bounds: NewRect(0, 0, 100, 100)},
		"grow in proportion": {
			box:    FlexBox{Direction: Row, Items: []FlexItem{grow(1), grow(3)}},
			bounds: NewRect(0, 0, 200, 10),
			want:   []Rect{NewRect(0, 0, 50, 10), NewRect(50, 0, 150, 10)},
		},
		"fractional grow takes part of the space": {
			box:    FlexBox{Direction: Row, Items: []FlexItem{grow(0.5)}},
			bounds: NewRect(0, 0, 200, 10),
			want:   []Rect{NewRect(0, 0, 100, 10)},
		},
		"max freezes and redistributes": {
			box:    FlexBox{Direction: Row, Items: []FlexItem{withMax, grow(1)}},
			bounds: NewRect(0, 0, 300, 10),
			want:   []Rect{NewRect(0, 0, 50, 10), NewRect(50, 0, 250, 10)},
		},
		"shrink by basis": {
			box:    FlexBox{Direction: Row, AlignItems: AlignStart, Items: []FlexItem{sized(80, 10), sized(80, 10)}},
			bounds: NewRect(0, 0, 100, 50),
			want:   []Rect{NewRect(0, 0, 50, 10), NewRect(50, 0, 50, 10)},
		},
		"min freezes while shrinking": {
			box:    FlexBox{Direction: Row, AlignItems: AlignStart, Items: []FlexItem{withMin, sized(80, 10)}},
			bounds: NewRect(0, 0, 100, 50),
			want:   []Rect{NewRect(0, 0, 70, 10), NewRect(70, 0, 30, 10)},
		},
		"row reverse": {
			box:    FlexBox{Direction: RowReverse, Items: []FlexItem{sized(20, 5), sized(20, 5)}},
			bounds: NewRect(0, 0, 100, 5),
			want:   []Rect{NewRect(80, 0, 20, 5), NewRect(60, 0, 20, 5)},
		},
		"column centred": {
			box:    FlexBox{Direction: Column, JustifyContent: JustifyCenter, AlignItems: AlignCenter, Items: []FlexItem{sized(10, 20)}},
			bounds: NewRect(0, 0, 100, 100),
			want:   []Rect{NewRect(45, 40, 10, 20)},
		},
		"wrap reverse": {
			box: FlexBox{
				Direction: Row, Wrap: WrapReverse, AlignContent: AlignContentStart,
				Items: []FlexItem{sized(40, 20), sized(40, 20), sized(40, 20)},
			},
			bounds: NewRect(0, 0, 100, 100),
			want:   []Rect{NewRect(0, 80, 40, 20), NewRect(40, 80, 40, 20), NewRect(0, 60, 40, 20)},
		},
		"align-content center": {
			box: FlexBox{
				Direction: Row, Wrap: Wrap, AlignContent: AlignContentCenter,
				Items: []FlexItem{sized(60, 20), sized(60, 20)},
			},
			bounds: NewRect(0, 0, 100, 100),
			want:   []Rect{NewRect(0, 30, 60, 20), NewRect(0, 50, 60, 20)},
		},
		"margins are outside the rect": {
			box:    FlexBox{Direction: Row, Items: []FlexItem{margined}},
			bounds: NewRect(0, 0, 100, 50),
			want:   []Rect{NewRect(4, 1, 20, 46)},
		},
		"order sorts stably": {
			box:    FlexBox{Direction: Row, Items: []FlexItem{lateOrder, sized(10, 10), sized(10, 10)}},
			bounds: NewRect(0, 0, 100, 10),
			want:   []Rect{NewRect(20, 0, 10, 10), NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10)},
		},
		"offset bounds": {
			box:    FlexBox{Direction: Row, Items: []FlexItem{sized(10, 10)}},
			bounds: NewRect(7, 9, 100, 10),
			want:   []Rect{NewRect(7, 9, 10, 10)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.box.PerformLayout(tt.bounds)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("PerformLayout() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlexBox_MinimumContentSize(t *testing.T) {
	margined := sized(10, 10)
	margined.Margin = EdgeAll(5)

	type tc struct {
		box        FlexBox
		wantWidth  float64
		wantHeight float64
	}

	tests := map[string]tc{
		"row sums widths":        {box: FlexBox{Direction: Row, Items: []FlexItem{sized(10, 30), sized(20, 5)}}, wantWidth: 30, wantHeight: 30},
		"column sums heights":    {box: FlexBox{Direction: Column, Items: []FlexItem{sized(10, 30), sized(20, 5)}}, wantWidth: 20, wantHeight: 35},
		"wrapping row":           {box: FlexBox{Direction: Row, Wrap: Wrap, Items: []FlexItem{sized(10, 30), sized(20, 5)}}, wantWidth: 20, wantHeight: 35},
		"margins count":          {box: FlexBox{Direction: Row, Items: []FlexItem{margined}}, wantWidth: 20, wantHeight: 20},
		"unassigned sizes are 0": {box: FlexBox{Direction: Row, Items: []FlexItem{NewFlexItem()}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, h := tt.box.MinimumContentSize()
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("MinimumContentSize() = %g, %g; want %g, %g", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestClampSize(t *testing.T) {
	type tc struct {
		v, lo, hi, want float64
	}

	tests := map[string]tc{
		"inside":         {v: 5, lo: 0, hi: 10, want: 5},
		"above":          {v: 15, lo: 0, hi: 10, want: 10},
		"below":          {v: 1, lo: 3, hi: 10, want: 3},
		"min wins":       {v: 5, lo: 8, hi: 4, want: 8},
		"never negative": {v: -5, lo: -10, hi: 10, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := clampSize(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clampSize() = %g, want %g", got, tt.want)
			}
		})
	}
}
