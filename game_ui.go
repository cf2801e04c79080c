package main

import (
	"fmt"
	"image"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultySize

	DifficultyCustom Difficulty = -1
)

var DifficultyStrs = [DifficultySize]string{
	"Easy",
	"Medium",
	"Hard",
}

// same numbers as the original game
var (
	DifficultyMineCounts = [DifficultySize]int{10, 40, 99}

	DifficultyBoardTileCounts = [DifficultySize]image.Point{
		image.Pt(9, 9), image.Pt(16, 16), image.Pt(30, 16),
	}
)

func ParseDifficulty(level string) (Difficulty, bool) {
	for d := Difficulty(0); d < DifficultySize; d++ {
		if level == DifficultyStrs[d] ||
			level == "easy" && d == DifficultyEasy ||
			level == "medium" && d == DifficultyMedium ||
			level == "hard" && d == DifficultyHard {
			return d, true
		}
	}
	return DifficultyCustom, false
}

type GameUI struct {
	Game *Game

	Difficulty Difficulty

	// dimensions used when Difficulty is DifficultyCustom
	CustomTileCount image.Point
	CustomMineCount int

	TopUIHeight float64 // constant, relative to ScreenHeight

	BoardSizeRatio float64 // constant, relative to the area below the top ui

	difficultyButtons [DifficultySize]*TextButton
	retryButton       *TextButton
}

func NewGameUI(difficulty Difficulty, customTileCount image.Point, customMineCount int, seed uint64) *GameUI {
	gu := new(GameUI)

	gu.Difficulty = difficulty
	gu.CustomTileCount = customTileCount
	gu.CustomMineCount = customMineCount

	gu.TopUIHeight = 0.09
	gu.BoardSizeRatio = 0.9

	tileCount, mineCount := gu.boardParams()
	gu.Game = NewGame(tileCount.X, tileCount.Y, mineCount, seed)

	for d := Difficulty(0); d < DifficultySize; d++ {
		d := d
		gu.difficultyButtons[d] = NewTextButton(DifficultyStrs[d], func() {
			gu.SetDifficulty(d)
		})
	}

	gu.retryButton = NewTextButton("Retry", func() {
		gu.Game.ResetBoard()
	})

	return gu
}

func (gu *GameUI) boardParams() (image.Point, int) {
	if gu.Difficulty == DifficultyCustom {
		return gu.CustomTileCount, gu.CustomMineCount
	}
	return DifficultyBoardTileCounts[gu.Difficulty], DifficultyMineCounts[gu.Difficulty]
}

func (gu *GameUI) SetDifficulty(difficulty Difficulty) {
	gu.Difficulty = difficulty

	tileCount, mineCount := gu.boardParams()
	gu.Game.SetResetParameter(tileCount.X, tileCount.Y, mineCount)
	gu.Game.ResetBoard()

	log.Infof("difficulty: %s (%dx%d, %d mines)",
		gu.DifficultyStr(), tileCount.X, tileCount.Y, mineCount)
}

func (gu *GameUI) DifficultyStr() string {
	if gu.Difficulty == DifficultyCustom {
		return "Custom"
	}
	return DifficultyStrs[gu.Difficulty]
}

func (gu *GameUI) Update() {
	gu.Game.Rect = gu.BoardRect()

	gu.layoutTopUI()

	for d := Difficulty(0); d < DifficultySize; d++ {
		gu.difficultyButtons[d].Highlight = d == gu.Difficulty
		gu.difficultyButtons[d].Update()
	}
	gu.retryButton.Update()

	gu.Game.Update()
}

func (gu *GameUI) Draw(dst *eb.Image) {
	gu.Game.Draw(dst)

	for d := Difficulty(0); d < DifficultySize; d++ {
		gu.difficultyButtons[d].Draw(dst)
	}
	gu.retryButton.Draw(dst)

	gu.drawCounters(dst)

	if gu.Game.GameState != GameStatePlaying {
		gu.drawResultBanner(dst)
	}
}

func (gu *GameUI) drawCounters(dst *eb.Image) {
	topRect := gu.TopUIRect()

	counterRect := FRect(
		topRect.Min.X+topRect.Dx()*0.56, topRect.Min.Y,
		topRect.Min.X+topRect.Dx()*0.74, topRect.Max.Y,
	)
	timerRect := FRect(
		topRect.Min.X+topRect.Dx()*0.74, topRect.Min.Y,
		topRect.Min.X+topRect.Dx()*0.88, topRect.Max.Y,
	)

	flagsLeft := gu.Game.MineCount() - gu.Game.FlagCount()

	DrawTextCentered(
		dst,
		fmt.Sprintf("Mines: %d", flagsLeft),
		counterRect,
		0.4,
		ColorTable[ColorTopUIText],
	)
	DrawTextCentered(
		dst,
		fmt.Sprintf("%03d", int(gu.Game.PlayTime()/time.Second)),
		timerRect,
		0.4,
		ColorTable[ColorTopUIText],
	)
}

func (gu *GameUI) drawResultBanner(dst *eb.Image) {
	boardRect := gu.BoardRect()

	banner := "You won!"
	if gu.Game.GameState == GameStateLost {
		banner = "BOOM!"
	}

	bannerRect := FRect(
		boardRect.Min.X, boardRect.Min.Y+boardRect.Dy()*0.42,
		boardRect.Max.X, boardRect.Min.Y+boardRect.Dy()*0.58,
	)

	DrawFilledRect(dst, bannerRect, ColorTable[ColorBg])
	DrawTextCentered(dst, banner, bannerRect, 0.5, ColorTable[ColorTopUIText])
}

// =====================
// layout
// =====================

func (gu *GameUI) TopUIRect() FRectangle {
	return FRect(0, 0, ScreenWidth, ScreenHeight*gu.TopUIHeight)
}

func (gu *GameUI) layoutTopUI() {
	topRect := gu.TopUIRect()

	buttonW := topRect.Dx() * 0.13
	buttonH := topRect.Dy() * 0.8
	buttonY := topRect.Min.Y + (topRect.Dy()-buttonH)*0.5

	x := topRect.Min.X + topRect.Dx()*0.02
	for d := Difficulty(0); d < DifficultySize; d++ {
		gu.difficultyButtons[d].Rect = FRect(x, buttonY, x+buttonW, buttonY+buttonH)
		x += buttonW + topRect.Dx()*0.015
	}

	retryW := topRect.Dx() * 0.1
	gu.retryButton.Rect = FRect(
		topRect.Max.X-retryW-topRect.Dx()*0.02, buttonY,
		topRect.Max.X-topRect.Dx()*0.02, buttonY+buttonH,
	)
}

// BoardRect keeps the board centered below the top ui
// with the tile aspect ratio intact.
func (gu *GameUI) BoardRect() FRectangle {
	parentRect := FRect(
		0, ScreenHeight*gu.TopUIHeight,
		ScreenWidth, ScreenHeight,
	)

	boardTileWidth, boardTileHeight := gu.Game.BoardTileCount()

	scale := min(
		parentRect.Dx()/f64(boardTileWidth),
		parentRect.Dy()/f64(boardTileHeight),
	) * gu.BoardSizeRatio

	boardWidth := scale * f64(boardTileWidth)
	boardHeight := scale * f64(boardTileHeight)

	center := FRectangleCenter(parentRect)

	return CenterFRectangle(
		FRectWH(boardWidth, boardHeight), center.X, center.Y)
}
