package main

import (
	"math/rand/v2"
	"strings"
)

//==============================================
// BOARD STUFFS
//==============================================

type Board struct {
	Width  int
	Height int

	MineCount int

	Mines [][]bool

	Revealed [][]bool
	Flags    [][]bool

	// false until the first step placed the mines
	Touched bool
}

func NewBoard(width int, height int, mineCount int) Board {
	var board Board

	board.Width = width
	board.Height = height
	board.MineCount = mineCount

	board.Mines = New2DArray[bool](width, height)
	board.Revealed = New2DArray[bool](width, height)
	board.Flags = New2DArray[bool](width, height)

	return board
}

// PlaceMines places board.MineCount mines everywhere except
// the 3x3 neighborhood around exceptX, exceptY.
// That way the first step always opens up at least a little area.
func (board *Board) PlaceMines(rng *rand.Rand, exceptX, exceptY int) {
	minePlaces := make([][2]int, 0, board.Width*board.Height)

	iter := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if Abs(x-exceptX) <= 1 && Abs(y-exceptY) <= 1 {
			continue
		}
		minePlaces = append(minePlaces, [2]int{x, y})
	}

	// boards this small simply get fewer mines
	board.MineCount = min(board.MineCount, len(minePlaces))

	rng.Shuffle(len(minePlaces), func(i, j int) {
		minePlaces[i], minePlaces[j] = minePlaces[j], minePlaces[i]
	})

	for i := 0; i < board.MineCount; i++ {
		board.Mines[minePlaces[i][0]][minePlaces[i][1]] = true
		log.Debugf("placed mine at (%d, %d)", minePlaces[i][0], minePlaces[i][1])
	}

	log.Debugf("placed %d mines", board.MineCount)
}

func (board *Board) IsPosInBoard(posX int, posY int) bool {
	return posX >= 0 && posX < board.Width && posY >= 0 && posY < board.Height
}

// SpreadSafeArea reveals the cell at posX, posY and,
// if it has no mine neighbors, flood fills the whole
// zero neighborhood plus its numbered border.
func (board *Board) SpreadSafeArea(posX int, posY int) {
	if !board.IsPosInBoard(posX, posY) {
		return
	}

	if board.Revealed[posX][posY] {
		return
	}

	if board.Mines[posX][posY] {
		return
	}

	if board.Flags[posX][posY] {
		return
	}

	board.Revealed[posX][posY] = true

	if board.GetNeighborMineCount(posX, posY) > 0 {
		return
	}

	iterator := NewBoardIterator(posX-1, posY-1, posX+1, posY+1)
	for iterator.HasNext() {
		x, y := iterator.GetNext()
		if board.IsPosInBoard(x, y) {
			board.SpreadSafeArea(x, y)
		}
	}
}

func (board *Board) GetNeighborMineCount(posX int, posY int) int {
	var mineCount int = 0
	for x := max(posX-1, 0); x < min(posX+2, board.Width); x++ {
		for y := max(posY-1, 0); y < min(posY+2, board.Height); y++ {
			if board.Mines[x][y] {
				mineCount += 1
			}
		}
	}

	return mineCount
}

func (board *Board) GetNeighborFlagCount(posX int, posY int) int {
	var flagCount int = 0
	for x := max(posX-1, 0); x < min(posX+2, board.Width); x++ {
		for y := max(posY-1, 0); y < min(posY+2, board.Height); y++ {
			if board.Flags[x][y] {
				flagCount += 1
			}
		}
	}

	return flagCount
}

func (board *Board) FlagCount() int {
	count := 0

	iterator := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iterator.HasNext() {
		x, y := iterator.GetNext()
		if board.Flags[x][y] {
			count++
		}
	}

	return count
}

// CheckWin reports whether every cell without a mine is revealed,
// or every mine and nothing else is flagged.
func (board *Board) CheckWin() bool {
	if !board.Touched {
		return false
	}

	allRevealed := true
	allMinesFlagged := true

	var iterator BoardIterator = NewBoardIterator(0, 0, board.Width-1, board.Height-1)

	for iterator.HasNext() {
		x, y := iterator.GetNext()

		if !board.Mines[x][y] && !board.Revealed[x][y] {
			allRevealed = false
		}
		if board.Mines[x][y] != board.Flags[x][y] {
			allMinesFlagged = false
		}
	}

	return allRevealed || allMinesFlagged
}

// RevealMines opens every mine cell. Called after a loss.
func (board *Board) RevealMines() {
	iterator := NewBoardIterator(0, 0, board.Width-1, board.Height-1)
	for iterator.HasNext() {
		x, y := iterator.GetNext()
		if board.Mines[x][y] {
			board.Revealed[x][y] = true
			board.Flags[x][y] = false
		}
	}
}

// ==============================================
// BOARD INTERACTION
// ==============================================

type BoardInteractionType int

const (
	InteractionTypeStep BoardInteractionType = iota
	InteractionTypeFlag
	InteractionTypeCheck
)

type BoardInteractionResult int

const (
	InteractionResultContinue BoardInteractionResult = iota
	InteractionResultFail
	InteractionResultWin
)

func (board *Board) InteractAt(
	rng *rand.Rand,
	posX int, posY int,
	interaction BoardInteractionType,
) BoardInteractionResult {
	if !board.IsPosInBoard(posX, posY) {
		return InteractionResultContinue
	}

	defer func() {
		// remove flags where it's revealed
		for x := 0; x < board.Width; x++ {
			for y := 0; y < board.Height; y++ {
				if board.Revealed[x][y] {
					board.Flags[x][y] = false
				}
			}
		}
	}()

	switch interaction {
	case InteractionTypeStep:
		{
			if board.Flags[posX][posY] {
				return InteractionResultContinue
			}
			if !board.Touched {
				board.PlaceMines(rng, posX, posY)
				board.Touched = true
			}
			if !board.Revealed[posX][posY] {
				if board.Mines[posX][posY] {
					log.Debugf("stepped on a mine at (%d, %d)", posX, posY)
					board.Revealed[posX][posY] = true
					return InteractionResultFail
				}
				//we have to spread out
				board.SpreadSafeArea(posX, posY)
			}
			if board.CheckWin() {
				return InteractionResultWin
			}
			return InteractionResultContinue
		}
	case InteractionTypeFlag:
		{
			// there is nothing sensible to flag before the first step
			if !board.Touched {
				return InteractionResultContinue
			}
			if !board.Revealed[posX][posY] {
				board.Flags[posX][posY] = !board.Flags[posX][posY]
			}
			if board.CheckWin() {
				return InteractionResultWin
			}
			return InteractionResultContinue
		}
	case InteractionTypeCheck:
		{
			if board.Revealed[posX][posY] && board.GetNeighborMineCount(posX, posY) > 0 {
				var flagCount int = board.GetNeighborFlagCount(posX, posY)
				if board.GetNeighborMineCount(posX, posY) == flagCount {
					iterator := NewBoardIterator(posX-1, posY-1, posX+1, posY+1)

					for iterator.HasNext() {
						x, y := iterator.GetNext()
						if board.IsPosInBoard(x, y) {
							// user flagged it incorrectly
							if !board.Flags[x][y] && board.Mines[x][y] {
								log.Debugf("wrong flags around (%d, %d)", posX, posY)
								board.Revealed[x][y] = true
								return InteractionResultFail
							}
						}
					}

					//reset iterator
					iterator = NewBoardIterator(posX-1, posY-1, posX+1, posY+1)

					for iterator.HasNext() {
						x, y := iterator.GetNext()
						if board.IsPosInBoard(x, y) {
							board.SpreadSafeArea(x, y)
						}
					}
				}
			}

			if board.CheckWin() {
				return InteractionResultWin
			}
			return InteractionResultContinue
		}
	default:
		panic("UNREACHABLE")
	}
}

// SaveString renders the board as text.
// Used for the clipboard copy and for debug logs.
func (board *Board) SaveString() string {
	var sb strings.Builder

	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			switch {
			case board.Flags[x][y]:
				sb.WriteByte('F')
			case !board.Revealed[x][y]:
				sb.WriteByte('.')
			case board.Mines[x][y]:
				sb.WriteByte('*')
			default:
				count := board.GetNeighborMineCount(x, y)
				sb.WriteByte(byte('0' + count))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

//==============================================
// board iterator
//==============================================

type BoardIterator struct {
	MinX int
	MinY int
	MaxX int
	MaxY int

	CurrentX int
	CurrentY int
}

// inclusive
func NewBoardIterator(x1 int, y1 int, x2 int, y2 int) BoardIterator {
	iterator := BoardIterator{
		MinX: min(x1, x2),
		MinY: min(y1, y2),

		MaxX: max(x1, x2),
		MaxY: max(y1, y2),
	}

	iterator.CurrentX = iterator.MinX
	iterator.CurrentY = iterator.MinY

	return iterator
}

func (bi *BoardIterator) HasNext() bool {
	return bi.CurrentY <= bi.MaxY
}

func (bi *BoardIterator) GetNext() (int, int) {
	x := bi.CurrentX
	y := bi.CurrentY

	bi.CurrentX++
	if bi.CurrentX > bi.MaxX {
		bi.CurrentX = bi.MinX
		bi.CurrentY++
	}

	return x, y
}

func (bi *BoardIterator) Reset() {
	bi.CurrentX = bi.MinX
	bi.CurrentY = bi.MinY
}
