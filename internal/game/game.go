package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minefield/internal/engine"
	"github.com/samdwyer/minefield/internal/gamedata"
	"github.com/samdwyer/minefield/internal/telemetry"
	"github.com/samdwyer/minefield/internal/ui"
)

const (
	noticeLost = "Game Over"
	noticeWon  = "You Win!"
)

// Game holds the terminal session: screen, current engine and cursor.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *engine.Engine
	board    engine.Config
	rng      *rand.Rand
	logger   zerolog.Logger
	tracer   trace.Tracer
	state    State
	notice   string
	running  bool

	cursorRow, cursorCol int
	lastButtons          tcell.ButtonMask
	changed              int // cells changed by the current action
}

// New creates a game on a fresh terminal screen. The first board is built
// before the screen is initialized, so a bad configuration is reported on a
// normal terminal.
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (*Game, error) {
	g, err := newGame(cfg, logger)
	if err != nil {
		return nil, err
	}

	ctx, span := g.tracer.Start(ctx, "game.init")
	defer span.End()

	if err := g.newRound(ctx); err != nil {
		span.RecordError(err)
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, gamedata.MustLoadTheme())
	return g, nil
}

// newGame builds everything except the screen.
func newGame(cfg Config, logger zerolog.Logger) (*Game, error) {
	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return nil, err
	}
	board, err := cfg.Board(presets)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().Int64("seed", seed).Msg("session seed")

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("game")
	}

	return &Game{
		board:   board,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger,
		tracer:  tracer,
		state:   StatePlaying,
		running: true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	for g.running {
		g.renderer.Render(g.engine, g.cursorRow, g.cursorCol, g.notice)
		g.handleInput(ctx)
	}

	g.Close()
	return nil
}

// newRound replaces the engine with a fresh board of the configured size.
// Each round draws its own seed from the session RNG and logs it, so any
// board can be replayed.
func (g *Game) newRound(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.new")
	defer span.End()

	seed := g.rng.Int63()
	e, err := engine.New(ctx, g.board,
		engine.WithRand(rand.New(rand.NewSource(seed))),
		engine.WithListener(g),
		engine.WithLogger(g.logger),
		engine.WithTracer(g.tracer),
	)
	if err != nil {
		return err
	}

	g.engine = e
	g.state = StatePlaying
	g.notice = ""
	g.cursorRow, g.cursorCol = e.Rows()/2, e.Columns()/2

	span.SetAttributes(
		attribute.String("game.id", e.ID()),
		attribute.Int64("game.seed", seed),
		attribute.Int("board.rows", e.Rows()),
		attribute.Int("board.columns", e.Columns()),
		attribute.Int("board.bombs", e.BombCount()),
	)
	g.logger.Info().
		Str("game_id", e.ID()).
		Int64("seed", seed).
		Int("rows", e.Rows()).
		Int("columns", e.Columns()).
		Int("bombs", e.BombCount()).
		Msg("new game")
	return nil
}

// CellChanged implements engine.Listener.
func (g *Game) CellChanged(row, column int) {
	g.changed++
}

// GameOver implements engine.Listener.
func (g *Game) GameOver() {
	g.state = StateNotice
	g.notice = noticeLost
	g.logger.Info().Str("game_id", g.engine.ID()).Int("revealed", g.engine.RevealedCount()).Msg("game lost")
}

// GameWon implements engine.Listener.
func (g *Game) GameWon() {
	g.state = StateNotice
	g.notice = noticeWon
	g.logger.Info().Str("game_id", g.engine.ID()).Msg("game won")
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case nil:
		// Screen finalized
		g.running = false
	case *tcell.EventKey:
		action, dRow, dCol := keyAction(ev.Key(), ev.Rune())
		g.dispatch(ctx, action, dRow, dCol)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleMouseEvent acts on button presses over the board. Held buttons and
// releases are ignored so a single click acts once.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	buttons := ev.Buttons() & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	pressed := buttons &^ g.lastButtons
	g.lastButtons = buttons
	if pressed == 0 {
		return
	}

	x, y := ev.Position()
	row, col, ok := ui.CellAtPoint(x, y, g.engine.Rows(), g.engine.Columns())
	if !ok {
		if g.state == StateNotice {
			g.dismissNotice()
		}
		return
	}
	g.cursorRow, g.cursorCol = row, col
	g.dispatch(ctx, mouseAction(pressed), 0, 0)
}

// dispatch applies an action at the cursor.
func (g *Game) dispatch(ctx context.Context, action Action, dRow, dCol int) {
	switch action {
	case ActionNone:
		return
	case ActionQuit:
		g.running = false
		return
	case ActionNewGame:
		if err := g.newRound(ctx); err != nil {
			g.logger.Error().Err(err).Msg("failed to start new game")
		}
		return
	}

	// Any other input dismisses the notice; the finished board stays visible.
	if g.state == StateNotice {
		g.dismissNotice()
		return
	}

	if action == ActionMove {
		g.moveCursor(dRow, dCol)
		return
	}

	g.changed = 0
	var err error
	switch action {
	case ActionReveal:
		_, err = g.engine.Reveal(ctx, g.cursorRow, g.cursorCol)
	case ActionMark:
		_, err = g.engine.ToggleMark(ctx, g.cursorRow, g.cursorCol)
	case ActionChord:
		_, err = g.engine.Chord(ctx, g.cursorRow, g.cursorCol)
	}
	if err != nil {
		g.logger.Error().Err(err).Stringer("action", action).Msg("action rejected")
		return
	}
	g.logger.Debug().
		Stringer("action", action).
		Int("row", g.cursorRow).
		Int("column", g.cursorCol).
		Int("cells_changed", g.changed).
		Msg("action")
}

// dismissNotice closes the Game Over / You Win modal.
func (g *Game) dismissNotice() {
	g.state = StatePlaying
	g.notice = ""
}

// moveCursor moves the cursor, clamped to the board.
func (g *Game) moveCursor(dRow, dCol int) {
	g.cursorRow = clamp(g.cursorRow+dRow, 0, g.engine.Rows()-1)
	g.cursorCol = clamp(g.cursorCol+dCol, 0, g.engine.Columns()-1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
