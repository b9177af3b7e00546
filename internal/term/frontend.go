// Package term is the terminal frontend: the same game drawn with tcell,
// typed on the keyboard and steered with the arrow keys.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"go-typeball/internal/app"
	"go-typeball/internal/assets"
	"go-typeball/internal/audio"
	"go-typeball/internal/config"
	"go-typeball/internal/event"
	"go-typeball/internal/keyboard"
	"go-typeball/internal/types"
	"go-typeball/internal/utils"
	"go-typeball/pkg/render"
)

const (
	frameTime     = 16 * time.Millisecond
	headerRows    = 2 // status line, word line
	keyCols       = 3
	statusRow     = 0
	wordRow       = 1
	footerRows    = 1
	minArenaRows  = 6
	eventQueueLen = 64
)

// Options configure a Frontend.
type Options struct {
	Settings config.Settings
	Content  *assets.Content
	Log      zerolog.Logger
	Sink     audio.Sink // nil plays nothing
	Now      func() time.Time
}

// Frontend owns the screen and the running game.
type Frontend struct {
	screen tcell.Screen
	opts   Options
	game   *app.Game
	source *KeySource
	view   Viewport
	keys   *keyboard.Layout
	rows   []string // on-screen keyboard rows for the loaded bank
	music  *audio.Music
	paused bool
	down   bool
	words  []render.Span

	goal, notGoal tcell.Color
}

func New(screen tcell.Screen, opts Options) (*Frontend, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	f := &Frontend{
		screen: screen,
		opts:   opts,
		source: NewKeySource(opts.Now),
	}
	goal, err := colorful.Hex(opts.Settings.Colors.Goal)
	if err != nil {
		return nil, &types.ConfigurationError{Field: "colors.goal", Reason: err.Error()}
	}
	f.goal = rgb(goal)
	f.notGoal = tcell.ColorDefault
	if opts.Settings.Colors.NotGoal != "" {
		c, err := colorful.Hex(opts.Settings.Colors.NotGoal)
		if err != nil {
			return nil, &types.ConfigurationError{Field: "colors.not_goal", Reason: err.Error()}
		}
		f.notGoal = rgb(c)
	}

	f.rows = keyboard.Rows
	if opts.Content != nil {
		f.rows = keyboard.RowsFor(opts.Content.Words)
	}
	f.layout()
	if err := f.Restart(); err != nil {
		return nil, err
	}
	return f, nil
}

// Restart begins a new play-through.
func (f *Frontend) Restart() error {
	events := event.NewDispatcher()
	rng := utils.NewPRNGService(f.opts.Settings.Seed)
	if f.opts.Sink != nil {
		audio.NewListener(f.opts.Sink, rng, f.opts.Log).Attach(events)
	}
	if l, ok := f.opts.Sink.(audio.Looper); ok {
		if f.music == nil {
			f.music = audio.NewMusic(l)
		}
		f.music.Attach(events)
	}
	f.source.Reset()
	g, err := app.New(app.Options{
		Settings: f.opts.Settings,
		Content:  f.opts.Content,
		Input:    f.source,
		Log:      f.opts.Log,
		Events:   events,
		Rng:      rng,
	})
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	f.game = g
	f.paused = false
	f.down = false
	f.setMarkup(g.Markup())
	events.SubscribeFunc(event.TextChanged, func(e event.Event) {
		if p, ok := e.Data.(event.TextPayload); ok {
			f.setMarkup(p.Markup)
		}
	})
	return nil
}

func (f *Frontend) setMarkup(markup string) {
	spans, err := render.ParseMarkup(markup)
	if err != nil {
		f.opts.Log.Warn().Err(err).Msg("bad word markup")
		return
	}
	f.words = spans
}

// Game is the running play-through.
func (f *Frontend) Game() *app.Game { return f.game }

// Paused reports whether the game clock is stopped.
func (f *Frontend) Paused() bool { return f.paused }

func (f *Frontend) layout() {
	w, h := f.screen.Size()
	keyboardRows := 2 * len(f.rows) // key line plus gap line per row
	rows := max(minArenaRows, h-headerRows-keyboardRows-footerRows)
	f.view = Viewport{X: 0, Y: headerRows, Cols: max(1, w), Rows: rows, World: types.Vec2{X: config.WorldWidth, Y: config.WorldHeight}}
	f.keys = keyboard.NewLayout(f.rows, float64(w)/2, float64(headerRows+rows+1), keyCols, 1, 1)
}

// HandleEvent applies one tcell event and reports whether to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.Key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		f.Mouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		f.layout()
		f.screen.Sync()
	}
	return false
}

// Key handles a key press and reports whether to quit.
func (f *Frontend) Key(k tcell.Key, r rune) bool {
	if k == tcell.KeyCtrlC {
		return true
	}
	if !f.game.InPlay() {
		switch {
		case k == tcell.KeyEscape:
			return true
		case k == tcell.KeyEnter, k == tcell.KeyRune && (r == 'r' || r == 'R'):
			if err := f.Restart(); err != nil {
				f.opts.Log.Error().Err(err).Msg("restart")
				return true
			}
		}
		return false
	}
	if k == tcell.KeyEscape {
		f.paused = !f.paused
		f.game.DragEnd()
		return false
	}
	if !f.paused {
		f.source.Press(k, r)
	}
	return false
}

// Mouse handles the primary button at cell (x, y).
func (f *Frontend) Mouse(x, y int, pressed bool) {
	if f.paused {
		return
	}
	switch {
	case pressed && !f.down:
		f.down = true
		if f.game.KeyboardVisible() {
			if r, ok := f.keys.HitTest(float64(x), float64(y)); ok {
				f.game.InputLetters(string(r))
				return
			}
		}
		if f.view.Contains(x, y) {
			f.game.DragStart(f.view.ToWorld(x, y))
		}
	case pressed:
		f.game.DragTo(f.view.ToWorld(x, y))
	case f.down:
		f.down = false
		f.game.DragEnd()
	}
}

// Tick advances the game unless paused.
func (f *Frontend) Tick(deltaTime float64) error {
	if f.paused {
		return nil
	}
	return f.game.Tick(deltaTime)
}

// Run drives the game until ctx ends or the player quits. One goroutine
// forwards tcell events; everything else happens on the calling goroutine.
func (f *Frontend) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan tcell.Event, eventQueueLen)
	go f.forward(ctx, events)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	last := f.opts.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			now := f.opts.Now()
			if err := f.Tick(now.Sub(last).Seconds()); err != nil {
				return err
			}
			last = now
			f.Draw()
		}
	}
}

// forward moves screen events onto events until the screen is finalised
// or ctx is done.
func (f *Frontend) forward(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func rgb(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func rgba(c interface{ RGBA() (r, g, b, a uint32) }) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
