package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

type GameState int

const (
	GameStatePlaying GameState = iota
	GameStateLost
	GameStateWon
)

func (gs GameState) String() string {
	switch gs {
	case GameStatePlaying:
		return "Playing"
	case GameStateLost:
		return "Lost"
	case GameStateWon:
		return "Won"
	default:
		panic("UNREACHABLE")
	}
}

type Game struct {
	// screen area the board occupies
	// updated every frame by GameUI
	Rect FRectangle

	GameState GameState

	Seed uint64

	// fires after the game transitioned to won or lost
	OnGameEnd func(won bool)

	board Board

	boardWidth  int
	boardHeight int
	mineCount   int

	rng *rand.Rand

	playTime time.Duration

	hadInteraction bool
}

func NewGame(boardWidth, boardHeight, mineCount int, seed uint64) *Game {
	g := new(Game)

	g.SetResetParameter(boardWidth, boardHeight, mineCount)
	g.Seed = seed
	g.ResetBoardEx(false)

	return g
}

func (g *Game) SetResetParameter(boardWidth, boardHeight, mineCount int) {
	g.boardWidth = boardWidth
	g.boardHeight = boardHeight
	g.mineCount = mineCount
}

func (g *Game) ResetBoardEx(newSeed bool) {
	if newSeed {
		g.Seed = rand.Uint64()
	}
	g.rng = rand.New(rand.NewPCG(g.Seed, g.Seed+1))

	g.board = NewBoard(g.boardWidth, g.boardHeight, g.mineCount)
	g.GameState = GameStatePlaying
	g.playTime = 0
	g.hadInteraction = false

	log.Debugf("board reset: %dx%d with %d mines, seed %d",
		g.boardWidth, g.boardHeight, g.mineCount, g.Seed)
}

func (g *Game) ResetBoard() {
	g.ResetBoardEx(true)
}

func (g *Game) Update() {
	if g.GameState == GameStatePlaying && g.board.Touched {
		g.playTime += UpdateDelta()
	}

	g.updateMouseInput()
	g.updateKeyInput()

	DebugPrint("GameState", g.GameState.String())
	DebugPrintf("Seed", "%d", g.Seed)
	DebugPrintf("Flags", "%d / %d", g.board.FlagCount(), g.board.MineCount)
}

func (g *Game) updateMouseInput() {
	if g.GameState != GameStatePlaying {
		return
	}

	cursor := CursorFPt()
	if !cursor.In(g.Rect) {
		return
	}

	boardX, boardY := MousePosToBoardPos(
		g.Rect, g.board.Width, g.board.Height, cursor)

	justPressedL := IsMouseButtonJustPressed(eb.MouseButtonLeft)
	justPressedR := IsMouseButtonJustPressed(eb.MouseButtonRight)
	justPressedM := IsMouseButtonJustPressed(eb.MouseButtonMiddle)

	pressedL := IsMouseButtonPressed(eb.MouseButtonLeft)
	pressedR := IsMouseButtonPressed(eb.MouseButtonRight)

	switch {
	case (justPressedL && pressedR) || (justPressedR && pressedL) || justPressedM:
		g.InteractAt(boardX, boardY, InteractionTypeCheck)
	case justPressedL:
		g.InteractAt(boardX, boardY, InteractionTypeStep)
	case justPressedR:
		g.InteractAt(boardX, boardY, InteractionTypeFlag)
	}
}

func (g *Game) updateKeyInput() {
	if IsKeyJustPressed(ResetBoardKey) {
		g.ResetBoard()
	}
	if IsKeyJustPressed(ResetToSameBoardKey) {
		g.ResetBoardEx(false)
	}
	if IsKeyJustPressed(CopyBoardKey) {
		ClipboardWriteText(g.board.SaveString())
		log.Info("copied board to clipboard")
	}
	if HandleKeyRepeat(time.Millisecond*300, time.Millisecond*80, AutoSolveStepKey) &&
		g.GameState == GameStatePlaying {
		solver := NewAutoSolver(&g.board, g.rng)
		if move, ok := solver.NextMove(); ok {
			g.InteractAt(move.X, move.Y, move.Interaction)
		}
	}
	if IsKeyJustPressed(InstantWinKey) && g.GameState == GameStatePlaying {
		g.setBoardForInstantWin()
	}
}

// InteractAt applies an interaction and handles
// the transition to a terminal state.
func (g *Game) InteractAt(boardX, boardY int, interaction BoardInteractionType) {
	if g.GameState != GameStatePlaying {
		return
	}

	g.hadInteraction = true

	result := g.board.InteractAt(g.rng, boardX, boardY, interaction)

	switch result {
	case InteractionResultContinue:
		// keep playing
	case InteractionResultFail:
		g.GameState = GameStateLost
		g.board.RevealMines()
		log.Infof("game lost after %v", g.playTime.Round(time.Millisecond))
	case InteractionResultWin:
		g.GameState = GameStateWon
		g.flagRemainingMines()
		log.Infof("game won after %v", g.playTime.Round(time.Millisecond))
	}

	if result != InteractionResultContinue && g.OnGameEnd != nil {
		g.OnGameEnd(result == InteractionResultWin)
	}
}

// on win, every mine gets a flag for free
func (g *Game) flagRemainingMines() {
	iter := NewBoardIterator(0, 0, g.board.Width-1, g.board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if g.board.Mines[x][y] {
			g.board.Flags[x][y] = true
		}
	}
}

// debugging helper, steps everywhere except the mines
func (g *Game) setBoardForInstantWin() {
	if !g.board.Touched {
		g.InteractAt(g.board.Width/2, g.board.Height/2, InteractionTypeStep)
	}

	iter := NewBoardIterator(0, 0, g.board.Width-1, g.board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		if g.GameState != GameStatePlaying {
			break
		}
		if !g.board.Mines[x][y] && !g.board.Revealed[x][y] {
			g.InteractAt(x, y, InteractionTypeStep)
		}
	}
}

func (g *Game) MineCount() int {
	return g.board.MineCount
}

func (g *Game) FlagCount() int {
	return g.board.FlagCount()
}

func (g *Game) BoardTileCount() (int, int) {
	return g.board.Width, g.board.Height
}

func (g *Game) PlayTime() time.Duration {
	return g.playTime
}

func (g *Game) HadInteraction() bool {
	return g.hadInteraction
}

// =====================
// drawing
// =====================

func (g *Game) Draw(dst *eb.Image) {
	cursor := CursorFPt()
	hoverX, hoverY := -1, -1
	if g.GameState == GameStatePlaying && cursor.In(g.Rect) {
		hoverX, hoverY = MousePosToBoardPos(
			g.Rect, g.board.Width, g.board.Height, cursor)
	}

	iter := NewBoardIterator(0, 0, g.board.Width-1, g.board.Height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()

		tileRect := GetBoardTileRect(g.Rect, g.board.Width, g.board.Height, x, y)

		g.drawTile(dst, x, y, tileRect)

		if x == hoverX && y == hoverY && !g.board.Revealed[x][y] {
			StrokeRect(dst, tileRect.Inset(1), 2, ColorTable[ColorTileRevealedStroke])
		}
	}
}

func (g *Game) drawTile(dst *eb.Image, x, y int, tileRect FRectangle) {
	board := &g.board

	if board.Revealed[x][y] {
		tileColor := ColorTable[ColorTileRevealed1]
		if IsOddTile(x, y) {
			tileColor = ColorTable[ColorTileRevealed2]
		}
		DrawFilledRect(dst, tileRect, tileColor)
		StrokeRect(dst, tileRect, 1, ColorTable[ColorTileRevealedStroke])

		if board.Mines[x][y] {
			center := FRectangleCenter(tileRect)
			radius := min(tileRect.Dx(), tileRect.Dy()) * 0.25
			DrawFilledCircle(dst, center.X, center.Y, radius, ColorTable[ColorMine])
			return
		}

		count := board.GetNeighborMineCount(x, y)
		if count > 0 {
			DrawTextCentered(
				dst,
				fmt.Sprintf("%d", count),
				tileRect,
				0.55,
				ColorTable[ColorNumber1+ColorTableIndex(count-1)],
			)
		}
		return
	}

	tileColor := ColorTable[ColorTileNormal1]
	if IsOddTile(x, y) {
		tileColor = ColorTable[ColorTileNormal2]
	}
	DrawFilledRect(dst, tileRect, tileColor)
	StrokeRect(dst, tileRect, 1, ColorTable[ColorTileNormalStroke])

	if board.Flags[x][y] {
		drawFlag(dst, tileRect)
	}
}

func drawFlag(dst *eb.Image, tileRect FRectangle) {
	center := FRectangleCenter(tileRect)
	size := min(tileRect.Dx(), tileRect.Dy())

	poleTop := FPt(center.X, center.Y-size*0.3)
	poleBottom := FPt(center.X, center.Y+size*0.3)

	StrokeLine(
		dst,
		poleTop.X, poleTop.Y, poleBottom.X, poleBottom.Y,
		max(size*0.08, 1),
		ColorTable[ColorFlag],
	)
	DrawFilledCircle(
		dst,
		center.X, center.Y-size*0.18, size*0.16,
		ColorTable[ColorFlag],
	)
}

// =====================
// board geometry
// =====================

func MousePosToBoardPos(
	boardRect FRectangle,
	boardWidth, boardHeight int,
	mousePos FPoint,
) (int, int) {
	mousePos.X -= boardRect.Min.X
	mousePos.Y -= boardRect.Min.Y

	boardX := int(math.Floor(mousePos.X / (boardRect.Dx() / float64(boardWidth))))
	boardY := int(math.Floor(mousePos.Y / (boardRect.Dy() / float64(boardHeight))))

	boardX = Clamp(boardX, 0, boardWidth-1)
	boardY = Clamp(boardY, 0, boardHeight-1)

	return boardX, boardY
}

func GetBoardTileRect(
	boardRect FRectangle,
	boardWidth, boardHeight int,
	boardX, boardY int,
) FRectangle {
	tileWidth := boardRect.Dx() / f64(boardWidth)
	tileHeight := boardRect.Dy() / f64(boardHeight)

	tileRect := FRectangle{
		Min: FPt(f64(boardX)*tileWidth, f64(boardY)*tileHeight).Add(boardRect.Min),
		Max: FPt(f64(boardX+1)*tileWidth, f64(boardY+1)*tileHeight).Add(boardRect.Min),
	}

	return RectToFRect(FRectToRect(tileRect))
}

func IsOddTile(x, y int) bool {
	if y%2 == 0 {
		return x%2 != 0
	} else {
		return x%2 == 0
	}
}
