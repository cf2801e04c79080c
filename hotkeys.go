package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey = eb.KeyF1

	InstantWinKey = eb.KeyF8

	ResetBoardKey       eb.Key = eb.KeyR
	ResetToSameBoardKey eb.Key = eb.KeyT

	AutoSolveStepKey eb.Key = eb.KeySpace

	CopyBoardKey eb.Key = eb.KeyC
)
