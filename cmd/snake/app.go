package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-arcade/audio"
	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/core"
	"github.com/lixenwraith/snake-arcade/engine"
	"github.com/lixenwraith/snake-arcade/events"
	"github.com/lixenwraith/snake-arcade/feed"
	"github.com/lixenwraith/snake-arcade/input"
	"github.com/lixenwraith/snake-arcade/layout"
	"github.com/lixenwraith/snake-arcade/persistence"
	"github.com/lixenwraith/snake-arcade/render"
)

type options struct {
	tick     time.Duration
	maxGrid  int
	seed     uint64
	keymap   string
	dataDir  string
	feedAddr string
	mute     bool
}

// app wires the engine to the screen, sound, feed and input router
// Everything except the pollers runs on the run loop goroutine
type app struct {
	opts   options
	screen tcell.Screen

	eng      *engine.Engine
	renderer *render.Renderer
	router   *input.Router
	events   *events.Router[engine.Frame]
	sound    *audio.SoundManager
	hub      *feed.Hub

	ticks chan func()
	done  chan struct{}
}

func newApp(screen tcell.Screen, opts options) *app {
	a := &app{
		opts:   opts,
		screen: screen,
		ticks:  make(chan func(), 16),
		done:   make(chan struct{}),
	}

	w, h := screen.Size()
	l := layout.Compute(w, h, constants.TileWidth, opts.maxGrid)
	a.renderer = render.NewRenderer(screen, l)

	store := persistence.NewHighScoreStore(persistence.NewManager(opts.dataDir))
	queue := events.NewEventQueue()

	a.eng = engine.NewEngine(
		engine.Config{GridSize: l.GridSize, TickInterval: opts.tick, Seed: opts.seed},
		engine.WithScheduler(engine.NewClockScheduler(a.post)),
		engine.WithStore(store),
		engine.WithRenderer(a.renderer),
		engine.WithEvents(queue),
	)
	store.SetRunSource(a.eng.RunID)

	a.sound = audio.NewSoundManager(audio.LoadAudioConfig())
	if err := a.sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	a.sound.SetMuted(opts.mute)
	a.renderer.SetMuted(opts.mute)

	a.events = events.NewRouter[engine.Frame](queue)
	a.events.Register(a.sound)
	if opts.feedAddr != "" {
		a.hub = feed.NewHub()
		a.events.Register(a.hub)
	}

	a.router = input.NewRouter(a.eng, l,
		input.WithKeyTable(loadKeyTable(opts.keymap)),
		input.WithMuteHandler(func() { a.renderer.SetMuted(a.sound.ToggleMute()) }),
		input.WithFeedbackHandler(a.renderer.SetDragFeedback),
		input.WithResizeHandler(a.resize),
	)

	return a
}

// loadKeyTable returns the defaults with an optional keymap file merged over them
// Errors fall back to the defaults
func loadKeyTable(path string) *input.KeyTable {
	if path == "" {
		return input.DefaultKeyTable()
	}
	kt, err := input.LoadKeyConfigFile(path)
	if err != nil {
		log.Printf("keymap ignored: %v", err)
		return input.DefaultKeyTable()
	}
	return kt
}

// post hands a scheduler callback to the run loop
func (a *app) post(fn func()) {
	select {
	case a.ticks <- fn:
	case <-a.done:
	}
}

// resize recomputes the geometry for the current screen size
func (a *app) resize() {
	a.screen.Sync()
	w, h := a.screen.Size()
	l := layout.Compute(w, h, constants.TileWidth, a.opts.maxGrid)
	a.renderer.Resize(l)
	a.router.SetLayout(l)
	a.eng.Resize(l.GridSize)
	log.Printf("resize %dx%d, grid %d", w, h, l.GridSize)
}

// dispatch routes queued engine events and mirrors the frame to the feed
func (a *app) dispatch() {
	f := a.eng.Frame()
	batch := a.events.DispatchAll(f)
	if len(batch) > 0 && a.hub != nil {
		a.hub.Broadcast(f)
	}
}

// run owns the loop until quit or ctx is cancelled
func (a *app) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	evCh := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evCh <- ev:
			case <-a.done:
				return
			}
		}
	})

	var commands <-chan input.Command
	if a.hub != nil {
		commands = a.hub.Commands()
		core.Go(func() {
			if err := a.hub.Serve(ctx, a.opts.feedAddr); err != nil {
				log.Printf("feed disabled: %v", err)
			}
		})
		a.hub.Broadcast(a.eng.Frame())
	}

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	a.eng.Redraw()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-evCh:
			if !a.router.HandleEvent(ev) {
				return
			}
		case fn := <-a.ticks:
			fn()
		case cmd := <-commands:
			a.router.HandleCommand(cmd)
		case <-frameTicker.C:
		}
		a.dispatch()
	}
}

// close stops the tick schedule and releases audio
func (a *app) close() {
	select {
	case <-a.done:
		return
	default:
	}
	close(a.done)
	a.eng.Reset()
	a.sound.Cleanup()
	if a.hub != nil {
		a.hub.Close()
	}
}
