package main

import (
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		n, minN, maxN int
		want          int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.n, tt.minN, tt.maxN); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.n, tt.minN, tt.maxN, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.0, 10.0, 0.5); got != 5.0 {
		t.Errorf("Lerp(0, 10, 0.5) = %f, want 5", got)
	}
	if got := Lerp(2.0, 2.0, 0.3); got != 2.0 {
		t.Errorf("Lerp(2, 2, 0.3) = %f, want 2", got)
	}
}

func TestFPointIn(t *testing.T) {
	rect := FRect(0, 0, 10, 10)

	tests := []struct {
		pt   FPoint
		want bool
	}{
		{FPt(5, 5), true},
		{FPt(0, 0), true},
		{FPt(10, 10), true},
		{FPt(-1, 5), false},
		{FPt(5, 11), false},
	}

	for _, tt := range tests {
		if got := tt.pt.In(rect); got != tt.want {
			t.Errorf("%v.In(%v) = %v, want %v", tt.pt, rect, got, tt.want)
		}
	}
}

func TestMousePosToBoardPos(t *testing.T) {
	boardRect := FRect(100, 100, 200, 200)

	tests := []struct {
		pos          FPoint
		wantX, wantY int
	}{
		{FPt(100, 100), 0, 0},
		{FPt(105, 105), 0, 0},
		{FPt(195, 105), 9, 0},
		{FPt(105, 195), 0, 9},
		{FPt(150, 150), 5, 5},
	}

	for _, tt := range tests {
		x, y := MousePosToBoardPos(boardRect, 10, 10, tt.pos)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("MousePosToBoardPos(%v) = (%d, %d), want (%d, %d)",
				tt.pos, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestGetBoardTileRectCoversBoard(t *testing.T) {
	boardRect := FRect(0, 0, 90, 90)

	// every tile center must map back to its own tile
	for x := 0; x < 9; x++ {
		for y := 0; y < 9; y++ {
			tileRect := GetBoardTileRect(boardRect, 9, 9, x, y)
			center := FRectangleCenter(tileRect)

			gotX, gotY := MousePosToBoardPos(boardRect, 9, 9, center)
			if gotX != x || gotY != y {
				t.Errorf("tile (%d, %d) center maps to (%d, %d)", x, y, gotX, gotY)
			}
		}
	}
}

func TestCenterFRectangle(t *testing.T) {
	rect := CenterFRectangle(FRectWH(10, 20), 50, 50)

	if rect.Dx() != 10 || rect.Dy() != 20 {
		t.Errorf("size changed: %fx%f", rect.Dx(), rect.Dy())
	}

	center := FRectangleCenter(rect)
	if !center.Eq(FPt(50, 50)) {
		t.Errorf("center = %v, want (50, 50)", center)
	}
}

func TestNew2DArray(t *testing.T) {
	arr := New2DArray[int](3, 5)

	if len(arr) != 3 {
		t.Fatalf("width = %d, want 3", len(arr))
	}
	for i := range arr {
		if len(arr[i]) != 5 {
			t.Fatalf("height of column %d = %d, want 5", i, len(arr[i]))
		}
	}
}
