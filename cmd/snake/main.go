package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/core"
)

var (
	tickFlag   = flag.Duration("tick", constants.GameUpdateInterval, "Step interval")
	gridFlag   = flag.Int("grid", constants.DefaultGridSize, "Maximum board side in cells")
	seedFlag   = flag.Uint64("seed", 0, "Food placement seed, 0 = time based")
	keymapFlag = flag.String("keymap", "", "TOML key binding overrides")
	dataFlag   = flag.String("data", constants.DefaultDataDir, "Directory for the best score")
	feedFlag   = flag.String("feed", "", "WebSocket feed address, e.g. :8080")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/snake.log")
)

func main() {
	// Panic recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if *tickFlag < constants.MinTickInterval {
		fmt.Fprintf(os.Stderr, "tick must be at least %v\n", constants.MinTickInterval)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	core.SetCrashScreen(screen)
	defer screen.Fini()

	a := newApp(screen, options{
		tick:     *tickFlag,
		maxGrid:  *gridFlag,
		seed:     *seedFlag,
		keymap:   *keymapFlag,
		dataDir:  *dataFlag,
		feedAddr: *feedFlag,
		mute:     *muteFlag,
	})
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.run(ctx)
}
