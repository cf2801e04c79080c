package main

import (
	"math/rand/v2"
	"testing"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func countMines(board *Board) int {
	count := 0
	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if board.Mines[x][y] {
			count++
		}
	}
	return count
}

func TestPlaceMinesCount(t *testing.T) {
	tests := []struct {
		width, height int
		mineCount     int
		wantCount     int
	}{
		{9, 9, 10, 10},
		{16, 16, 40, 40},
		{30, 16, 99, 99},
		{4, 4, 3, 3},
		// tiny board, count gets clamped to what fits
		// outside the 3x3 safe area
		{3, 3, 20, 0},
		{4, 3, 20, 3},
	}

	for _, tt := range tests {
		board := NewBoard(tt.width, tt.height, tt.mineCount)
		board.PlaceMines(testRng(), 1, 1)

		if got := countMines(&board); got != tt.wantCount {
			t.Errorf("%dx%d with %d mines: placed %d, want %d",
				tt.width, tt.height, tt.mineCount, got, tt.wantCount)
		}
		if board.MineCount != tt.wantCount {
			t.Errorf("%dx%d: MineCount = %d, want %d",
				tt.width, tt.height, board.MineCount, tt.wantCount)
		}
	}
}

func TestFirstStepNeighborhoodIsSafe(t *testing.T) {
	// placement is random, so try a bunch of seeds
	for seed := uint64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed+1))

		board := NewBoard(9, 9, 10)

		stepX, stepY := 4, 4
		result := board.InteractAt(rng, stepX, stepY, InteractionTypeStep)

		if result == InteractionResultFail {
			t.Fatalf("seed %d: lost on the first step", seed)
		}

		for x := stepX - 1; x <= stepX+1; x++ {
			for y := stepY - 1; y <= stepY+1; y++ {
				if board.Mines[x][y] {
					t.Errorf("seed %d: mine at (%d, %d) next to first step", seed, x, y)
				}
			}
		}
		if !board.Revealed[stepX][stepY] {
			t.Errorf("seed %d: first step cell not revealed", seed)
		}
	}
}

// boardWithMineWall builds a touched board with a full
// vertical wall of mines at the given column.
func boardWithMineWall(width, height, wallX int) Board {
	board := NewBoard(width, height, height)
	for y := 0; y < height; y++ {
		board.Mines[wallX][y] = true
	}
	board.Touched = true
	return board
}

func TestSpreadSafeAreaFloodFill(t *testing.T) {
	// mine wall at x = 3 splits the board into
	// two unconnected zero regions
	board := boardWithMineWall(7, 7, 3)

	board.SpreadSafeArea(0, 0)

	for y := 0; y < board.Height; y++ {
		// zero cells and their numbered border
		for x := 0; x <= 2; x++ {
			if !board.Revealed[x][y] {
				t.Errorf("(%d, %d) should be revealed", x, y)
			}
		}
		// the wall and everything past it stays hidden
		for x := 3; x < board.Width; x++ {
			if board.Revealed[x][y] {
				t.Errorf("(%d, %d) should not be revealed", x, y)
			}
		}
	}
}

func TestSpreadSafeAreaStopsAtNumber(t *testing.T) {
	board := boardWithMineWall(7, 7, 3)

	// revealing a numbered cell opens only that cell
	board.SpreadSafeArea(2, 2)

	revealed := 0
	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if board.Revealed[x][y] {
			revealed++
		}
	}

	if revealed != 1 || !board.Revealed[2][2] {
		t.Errorf("revealed %d cells, want only (2, 2)", revealed)
	}
}

func TestStepOnMineLoses(t *testing.T) {
	board := boardWithMineWall(5, 5, 2)

	result := board.InteractAt(testRng(), 2, 2, InteractionTypeStep)

	if result != InteractionResultFail {
		t.Errorf("InteractAt = %v, want %v", result, InteractionResultFail)
	}
	if !board.Revealed[2][2] {
		t.Error("the stepped mine should be revealed")
	}
}

func TestRevealingEverythingWins(t *testing.T) {
	board := boardWithMineWall(5, 5, 2)

	var result BoardInteractionResult

	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if board.Mines[x][y] {
			continue
		}
		result = board.InteractAt(testRng(), x, y, InteractionTypeStep)
	}

	if result != InteractionResultWin {
		t.Errorf("InteractAt = %v, want %v", result, InteractionResultWin)
	}
}

func TestFlagInteraction(t *testing.T) {
	board := boardWithMineWall(5, 5, 2)

	rng := testRng()

	board.InteractAt(rng, 4, 4, InteractionTypeFlag)
	if !board.Flags[4][4] {
		t.Error("flag should be set")
	}

	board.InteractAt(rng, 4, 4, InteractionTypeFlag)
	if board.Flags[4][4] {
		t.Error("flag should toggle off")
	}

	// flagged cells don't step
	board.InteractAt(rng, 2, 2, InteractionTypeFlag)
	if result := board.InteractAt(rng, 2, 2, InteractionTypeStep); result != InteractionResultContinue {
		t.Errorf("stepping a flagged mine = %v, want %v", result, InteractionResultContinue)
	}
	if board.Revealed[2][2] {
		t.Error("flagged cell should not be revealed")
	}

	// revealed cells don't flag
	board.InteractAt(rng, 0, 0, InteractionTypeStep)
	board.InteractAt(rng, 0, 0, InteractionTypeFlag)
	if board.Flags[0][0] {
		t.Error("revealed cell should not be flaggable")
	}
}

func TestFlagBeforeFirstStepIsIgnored(t *testing.T) {
	board := NewBoard(5, 5, 3)

	board.InteractAt(testRng(), 2, 2, InteractionTypeFlag)

	if board.Flags[2][2] {
		t.Error("flag before the first step should do nothing")
	}
}

func TestFlaggingAllMinesWins(t *testing.T) {
	board := boardWithMineWall(4, 2, 1)

	rng := testRng()

	var result BoardInteractionResult
	for y := 0; y < board.Height; y++ {
		result = board.InteractAt(rng, 1, y, InteractionTypeFlag)
	}

	if result != InteractionResultWin {
		t.Errorf("InteractAt = %v, want %v", result, InteractionResultWin)
	}
}

func TestFlaggingExtraCellsDoesNotWin(t *testing.T) {
	board := boardWithMineWall(4, 2, 1)

	rng := testRng()

	// every mine flagged, plus a wrong one
	var result BoardInteractionResult
	for y := 0; y < board.Height; y++ {
		result = board.InteractAt(rng, 1, y, InteractionTypeFlag)
		if result == InteractionResultWin {
			t.Fatal("won before all mines were flagged")
		}
		result = board.InteractAt(rng, 3, y, InteractionTypeFlag)
	}

	if result == InteractionResultWin {
		t.Error("flagging non-mine cells should not win")
	}
}

func TestCheckInteraction(t *testing.T) {
	// 3x3, single mine in a corner
	board := NewBoard(3, 3, 1)
	board.Mines[0][0] = true
	board.Touched = true

	rng := testRng()

	board.InteractAt(rng, 1, 1, InteractionTypeStep)
	board.InteractAt(rng, 0, 0, InteractionTypeFlag)

	result := board.InteractAt(rng, 1, 1, InteractionTypeCheck)

	if result != InteractionResultWin {
		t.Fatalf("InteractAt = %v, want %v", result, InteractionResultWin)
	}

	iter := NewBoardIterator(0, 0, 2, 2)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if board.Mines[x][y] {
			continue
		}
		if !board.Revealed[x][y] {
			t.Errorf("(%d, %d) should be revealed by check", x, y)
		}
	}
}

func TestCheckInteractionWrongFlagLoses(t *testing.T) {
	board := NewBoard(3, 3, 1)
	board.Mines[0][0] = true
	board.Touched = true

	rng := testRng()

	board.InteractAt(rng, 1, 1, InteractionTypeStep)
	// wrong flag next to the number
	board.InteractAt(rng, 2, 0, InteractionTypeFlag)

	result := board.InteractAt(rng, 1, 1, InteractionTypeCheck)

	if result != InteractionResultFail {
		t.Errorf("InteractAt = %v, want %v", result, InteractionResultFail)
	}
}

func TestNeighborMineCount(t *testing.T) {
	board := NewBoard(4, 4, 3)
	board.Mines[0][0] = true
	board.Mines[1][0] = true
	board.Mines[3][3] = true

	tests := []struct {
		x, y int
		want int
	}{
		{0, 1, 2},
		{1, 1, 2},
		{2, 1, 1},
		{3, 0, 0},
		{2, 2, 1},
		{3, 2, 1},
		{0, 3, 0},
	}

	for _, tt := range tests {
		if got := board.GetNeighborMineCount(tt.x, tt.y); got != tt.want {
			t.Errorf("GetNeighborMineCount(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSaveString(t *testing.T) {
	board := NewBoard(3, 2, 1)
	board.Mines[0][0] = true
	board.Touched = true

	board.SpreadSafeArea(2, 0)
	board.Flags[0][1] = true

	want := ".10\nF10\n"

	if got := board.SaveString(); got != want {
		t.Errorf("SaveString = %q, want %q", got, want)
	}
}

func TestBoardIterator(t *testing.T) {
	iter := NewBoardIterator(1, 1, 2, 3)

	var visited [][2]int
	for iter.HasNext() {
		x, y := iter.GetNext()
		visited = append(visited, [2]int{x, y})
	}

	want := [][2]int{
		{1, 1}, {2, 1},
		{1, 2}, {2, 2},
		{1, 3}, {2, 3},
	}

	if len(visited) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, visited[i], want[i])
		}
	}

	iter.Reset()
	if x, y := iter.GetNext(); x != 1 || y != 1 {
		t.Errorf("after Reset, GetNext = (%d, %d), want (1, 1)", x, y)
	}
}
