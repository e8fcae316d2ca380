package engine

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/events"
)

// Engine owns one board and the run state machine
// All methods are safe for concurrent use; Draw is always called outside the lock
type Engine struct {
	mu sync.Mutex

	cfg      Config
	sched    Scheduler
	store    ScoreStore
	renderer Renderer
	queue    *events.EventQueue
	rng      *rand.Rand

	gridSize int
	pendingN int // deferred resize, applied on Start/Reset

	state   State
	snake   []Cell
	food    Cell
	hasFood bool

	dir        Direction
	moving     bool
	pending    Direction
	hasPending bool

	score     int
	highScore int
	baseline  int // high score when the run started
	newHigh   bool

	runID    string
	ticks    uint64
	interval time.Duration

	// Tick schedule; gen is bumped on every cancel so in-flight callbacks of an old schedule are dropped
	cancel func()
	gen    uint64
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithScheduler sets the tick source
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithStore sets the best-score store
func WithStore(s ScoreStore) Option {
	return func(e *Engine) { e.store = s }
}

// WithRenderer sets the draw target
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithEvents sets the queue that receives game events
func WithEvents(q *events.EventQueue) Option {
	return func(e *Engine) { e.queue = q }
}

// WithRand overrides the food placement source
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// NewEngine creates an Idle engine and loads the stored best score
func NewEngine(cfg Config, opts ...Option) *Engine {
	cfg = cfg.normalized()
	e := &Engine{
		cfg:      cfg,
		gridSize: cfg.GridSize,
		state:    StateIdle,
		dir:      Right,
		interval: cfg.TickInterval,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.sched == nil {
		e.sched = NewClockScheduler(nil)
	}
	if e.store == nil {
		e.store = NewMemoryStore(0)
	}
	if e.renderer == nil {
		e.renderer = nopRenderer{}
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(cfg.Seed))
	}

	best, err := e.store.Load()
	if err != nil {
		log.Printf("engine: load high score: %v", err)
		best = 0
	}
	if best < 0 {
		best = 0
	}
	e.highScore = best

	return e
}

// Start begins a new run from Idle or Over
func (e *Engine) Start() {
	e.mu.Lock()
	if e.state != StateIdle && e.state != StateOver {
		e.mu.Unlock()
		return
	}

	e.cancelLocked()
	e.applyResizeLocked()

	c := e.gridSize / 2
	e.snake = []Cell{{X: c, Y: c}}
	e.dir = Right
	e.moving = false
	e.hasPending = false
	e.score = 0
	e.baseline = e.highScore
	e.newHigh = false
	e.ticks = 0
	e.runID = uuid.NewString()
	e.interval = e.cfg.TickInterval
	e.placeFoodLocked()

	e.emit(events.EventGameStarted, &events.GameStartedPayload{RunID: e.runID, GridSize: e.gridSize})
	e.transitionLocked(StateRunning)
	e.scheduleLocked()
	e.emit(events.EventScoreChanged, &events.ScorePayload{Score: 0})

	f := e.frameLocked()
	e.mu.Unlock()
	e.renderer.Draw(f)
}

// Pause toggles Running and Paused; other states are untouched
func (e *Engine) Pause() {
	e.mu.Lock()
	switch e.state {
	case StateRunning:
		e.cancelLocked()
		e.transitionLocked(StatePaused)
	case StatePaused:
		e.transitionLocked(StateRunning)
		e.scheduleLocked()
	default:
		e.mu.Unlock()
		return
	}
	f := e.frameLocked()
	e.mu.Unlock()
	e.renderer.Draw(f)
}

// Resume continues a paused run; no-op in every other state
func (e *Engine) Resume() {
	e.mu.Lock()
	if e.state != StatePaused {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()
	e.Pause()
}

// Reset clears the board and returns to Idle from any state
func (e *Engine) Reset() {
	e.mu.Lock()
	e.cancelLocked()
	e.applyResizeLocked()

	e.snake = nil
	e.hasFood = false
	e.dir = Right
	e.moving = false
	e.hasPending = false
	e.score = 0
	e.newHigh = false
	e.ticks = 0
	e.runID = ""

	e.emit(events.EventGameReset, nil)
	e.transitionLocked(StateIdle)
	e.emit(events.EventScoreChanged, &events.ScorePayload{Score: 0})

	f := e.frameLocked()
	e.mu.Unlock()
	e.renderer.Draw(f)
}

// SetDirection buffers a heading for the next tick
// Ignored unless Running, and ignored when d reverses the direction of travel
func (e *Engine) SetDirection(d Direction) {
	if !d.Valid() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateRunning {
		return
	}
	if e.moving && d == e.dir.Opposite() {
		return
	}
	e.pending = d
	e.hasPending = true
}

// Tick performs one update and draw; no-op unless Running
func (e *Engine) Tick() {
	e.mu.Lock()
	e.tickLocked()
}

// tickGen is the scheduled callback; ticks from a cancelled schedule are dropped
func (e *Engine) tickGen(gen uint64) {
	e.mu.Lock()
	if gen != e.gen {
		e.mu.Unlock()
		return
	}
	e.tickLocked()
}

// tickLocked runs with e.mu held and releases it before drawing
func (e *Engine) tickLocked() {
	if e.state != StateRunning || len(e.snake) == 0 {
		e.mu.Unlock()
		return
	}

	if e.hasPending {
		e.dir = e.pending
		e.hasPending = false
	}
	e.moving = true
	e.ticks++

	next := e.snake[0].Add(e.dir)
	if !next.In(e.gridSize) {
		e.gameOverLocked(events.CauseWall)
		return
	}
	// Tail cell counts: the body has not moved yet when the head arrives
	for _, c := range e.snake {
		if c == next {
			e.gameOverLocked(events.CauseSelf)
			return
		}
	}

	save := -1
	e.snake = append(e.snake, Cell{})
	copy(e.snake[1:], e.snake)
	e.snake[0] = next

	if e.hasFood && next == e.food {
		e.score += constants.FoodScore
		e.emit(events.EventFoodEaten, &events.FoodEatenPayload{X: next.X, Y: next.Y, Length: len(e.snake)})
		e.emit(events.EventScoreChanged, &events.ScorePayload{Score: e.score})
		if e.score > e.highScore {
			e.highScore = e.score
			save = e.score
			e.emit(events.EventHighScoreChanged, &events.ScorePayload{Score: e.score})
		}
		e.placeFoodLocked()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}
	e.emit(events.EventSnakeMoved, &events.MovedPayload{Tick: e.ticks, X: next.X, Y: next.Y, Length: len(e.snake)})

	f := e.frameLocked()
	store := e.store
	e.mu.Unlock()

	if save >= 0 {
		if err := store.Save(save); err != nil {
			log.Printf("engine: save high score %d: %v", save, err)
		}
	}
	e.renderer.Draw(f)
}

// gameOverLocked freezes the board; releases e.mu before drawing
func (e *Engine) gameOverLocked(cause events.CollisionCause) {
	e.cancelLocked()
	e.newHigh = e.score > e.baseline && e.score == e.highScore

	e.emit(events.EventGameOver, &events.GameOverPayload{
		RunID:     e.runID,
		Score:     e.score,
		HighScore: e.highScore,
		NewHigh:   e.newHigh,
		Cause:     cause,
	})
	e.transitionLocked(StateOver)

	f := e.frameLocked()
	e.mu.Unlock()
	e.renderer.Draw(f)
}

// Resize changes the board side; deferred to the next Start or Reset during a run
func (e *Engine) Resize(n int) {
	if n <= 0 {
		return
	}
	n = max(constants.MinGridSize, min(n, constants.MaxGridSize))

	e.mu.Lock()
	if e.state == StateRunning || e.state == StatePaused {
		if n != e.gridSize {
			e.pendingN = n
		} else {
			e.pendingN = 0
		}
		e.mu.Unlock()
		return
	}
	e.pendingN = 0
	e.gridSize = n
	f := e.frameLocked()
	e.mu.Unlock()
	e.renderer.Draw(f)
}

// Redraw sends the current frame to the renderer
func (e *Engine) Redraw() {
	f := e.Frame()
	e.renderer.Draw(f)
}

func (e *Engine) applyResizeLocked() {
	if e.pendingN > 0 {
		e.gridSize = e.pendingN
		e.pendingN = 0
	}
}

func (e *Engine) scheduleLocked() {
	gen := e.gen
	e.cancel = e.sched.Every(e.interval, func() { e.tickGen(gen) })
}

func (e *Engine) cancelLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.gen++
}

// placeFoodLocked samples uniformly from free cells; leaves no food on a full board
func (e *Engine) placeFoodLocked() {
	n := e.gridSize
	occupied := make(map[Cell]struct{}, len(e.snake))
	for _, c := range e.snake {
		occupied[c] = struct{}{}
	}

	free := n*n - len(occupied)
	if free <= 0 {
		e.hasFood = false
		return
	}

	k := e.rng.Intn(free)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := Cell{X: x, Y: y}
			if _, ok := occupied[c]; ok {
				continue
			}
			if k == 0 {
				e.food = c
				e.hasFood = true
				return
			}
			k--
		}
	}
}

func (e *Engine) emit(t events.EventType, payload any) {
	if e.queue != nil {
		e.queue.Emit(t, payload)
	}
}

// transitionLocked moves the state machine along a legal edge and announces it
// Illegal edges are refused and logged; a self edge changes nothing
func (e *Engine) transitionLocked(to State) bool {
	from := e.state
	if from == to {
		return true
	}
	if !CanTransition(from, to) {
		log.Printf("engine: refused transition %s -> %s", from, to)
		return false
	}
	e.state = to
	e.emit(events.EventStateChanged, &events.StateChangedPayload{From: from.String(), To: to.String()})
	return true
}

func (e *Engine) frameLocked() Frame {
	snake := make([]Cell, len(e.snake))
	copy(snake, e.snake)
	return Frame{
		GridSize:  e.gridSize,
		Snake:     snake,
		Food:      e.food,
		HasFood:   e.hasFood,
		Direction: e.dir,
		Moving:    e.moving,
		Score:     e.score,
		HighScore: e.highScore,
		NewHigh:   e.newHigh,
		State:     e.state,
		RunID:     e.runID,
		Ticks:     e.ticks,
	}
}

// Frame returns a snapshot of the board
func (e *Engine) Frame() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameLocked()
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

func (e *Engine) HighScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.highScore
}

// Snake returns a copy of the body, head first
func (e *Engine) Snake() []Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Cell, len(e.snake))
	copy(out, e.snake)
	return out
}

// Food returns the food cell, ok=false when none is placed
func (e *Engine) Food() (Cell, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.food, e.hasFood
}

// Direction returns the current direction of travel
func (e *Engine) Direction() Direction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dir
}

// Moving reports whether the first step of the run has happened
func (e *Engine) Moving() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.moving
}

func (e *Engine) GridSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gridSize
}

// TickInterval returns the step period of the current or next run
func (e *Engine) TickInterval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interval
}

// RunID returns the current run id, empty when Idle
func (e *Engine) RunID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runID
}
