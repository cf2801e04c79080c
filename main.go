package main

import (
	"flag"
	"fmt"
	"image"
	"math/rand/v2"
	"os"

	"net/http"
	_ "net/http/pprof"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 600
	ScreenHeight float64 = 600
)

var (
	FlagLevel string

	FlagRows  int
	FlagCols  int
	FlagMines int

	FlagDebug   bool
	FlagLogFile string
	FlagTheme   string
	FlagSeed    uint64

	FlagSolve bool
	FlagGames int

	FlagPProf bool
)

func init() {
	flag.StringVar(&FlagLevel, "level", "", "game level (easy, medium, hard)")

	flag.IntVar(&FlagRows, "rows", 0, "number of rows in the game grid")
	flag.IntVar(&FlagCols, "cols", 0, "number of columns in the game grid")
	flag.IntVar(&FlagMines, "mines", 0, "number of mines in the game grid")

	flag.BoolVar(&FlagDebug, "debug", false, "enable debug logging")
	flag.StringVar(&FlagLogFile, "logfile", "", "also log to a rotating file")
	flag.StringVar(&FlagTheme, "theme", "", "path to a json theme file")
	flag.Uint64Var(&FlagSeed, "seed", 0, "board seed (0 picks a random one)")

	flag.BoolVar(&FlagSolve, "solve", false, "let the auto solver play without a window")
	flag.IntVar(&FlagGames, "games", 1, "number of games the auto solver plays")

	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
}

func usageError(format string, values ...any) {
	fmt.Fprintf(flag.CommandLine.Output(), "error: "+format+"\n", values...)
	flag.Usage()
	os.Exit(2)
}

// parseGridFlags turns the CLI flags into a difficulty
// or a custom grid, rejecting invalid combinations.
func parseGridFlags() (Difficulty, image.Point, int) {
	customArgs := FlagRows != 0 || FlagCols != 0 || FlagMines != 0

	if FlagLevel != "" && customArgs {
		usageError("cannot use -level and a custom grid at the same time")
	}

	if FlagLevel != "" {
		difficulty, ok := ParseDifficulty(FlagLevel)
		if !ok {
			usageError("invalid level %q", FlagLevel)
		}
		return difficulty, image.Point{}, 0
	}

	if !customArgs {
		// no selection, just play medium
		return DifficultyMedium, image.Point{}, 0
	}

	if FlagRows <= 0 || FlagCols <= 0 || FlagMines <= 0 {
		usageError("invalid number of rows, columns or mines")
	}
	if FlagMines >= FlagRows*FlagCols {
		usageError("number of mines must be less than number of cells")
	}

	return DifficultyCustom, image.Pt(FlagCols, FlagRows), FlagMines
}

type App struct {
	ShowDebugConsole bool

	GameUI *GameUI
}

func NewApp(gameUI *GameUI) *App {
	a := new(App)
	a.GameUI = gameUI
	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("Minesweeper FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	// ==========================
	// debug showing
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	a.GameUI.Update()

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	dst.Fill(ColorTable[ColorBg])

	a.GameUI.Draw(dst)

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return outsideWidth, outsideHeight
}

// runSolver plays games headlessly and reports the win rate.
func runSolver(difficulty Difficulty, customTileCount image.Point, customMineCount int, seed uint64) {
	tileCount := customTileCount
	mineCount := customMineCount
	if difficulty != DifficultyCustom {
		tileCount = DifficultyBoardTileCounts[difficulty]
		mineCount = DifficultyMineCounts[difficulty]
	}

	rng := rand.New(rand.NewPCG(seed, seed+1))

	won := 0
	for i := 0; i < FlagGames; i++ {
		board := NewBoard(tileCount.X, tileCount.Y, mineCount)
		solver := NewAutoSolver(&board, rng)

		result := solver.Solve()
		if result == InteractionResultWin {
			won++
			log.Info("game won!")
		} else {
			log.Info("game lost!")
		}
	}

	fmt.Printf("Games won: %d/%d (%.2f%%)\n",
		won, FlagGames, f64(won)/f64(FlagGames)*100)
}

func main() {
	flag.Parse()

	setupLogging(FlagDebug, FlagLogFile)

	difficulty, customTileCount, customMineCount := parseGridFlags()

	if FlagGames <= 0 {
		usageError("invalid number of games")
	}

	if FlagTheme != "" {
		if err := LoadColorTable(FlagTheme); err != nil {
			log.Fatal("unable to load theme: ", err)
		}
	}

	seed := FlagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debugf("seed: %d", seed)

	if FlagSolve {
		runSolver(difficulty, customTileCount, customMineCount, seed)
		return
	}

	if FlagPProf {
		go func() {
			log.Info("initializing pprof")
			log.Info(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()

	gameUI := NewGameUI(difficulty, customTileCount, customMineCount, seed)
	app := NewApp(gameUI)

	log.Infof("game grid: %dx%d with %d mines",
		gameUI.Game.board.Width, gameUI.Game.board.Height, gameUI.Game.MineCount())

	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Minesweeper")

	if err := eb.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
