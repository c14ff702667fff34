// Package app runs the interactive editor loop: it translates tcell
// input events into drag-engine calls and board edits, and redraws
// after every handled event. All work happens synchronously inside
// the event handlers; nothing runs in the background.
package app

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lus720/TierMaker-sub001/board"
	"github.com/lus720/TierMaker-sub001/config"
	"github.com/lus720/TierMaker-sub001/dnd"
	"github.com/lus720/TierMaker-sub001/sound"
	"github.com/lus720/TierMaker-sub001/ui"
)

// wheelStep is how many cells one wheel notch scrolls
const wheelStep = 2

// App owns the editor session: screen, engine, view, and board
type App struct {
	screen tcell.Screen
	engine *dnd.Engine
	view   *ui.View
	board  *board.Board
	cfg    config.Config
	snd    *sound.Player
	logger *log.Logger
	path   string

	buttons tcell.ButtonMask // Previous button state, for edge detection
	dirty   bool             // Unsaved board changes
	dropped bool             // A drop landed during the current gesture
	quit    bool

	prompting bool // Inline "add item" prompt active
	prompt    []rune
}

// New wires an editor over an initialized screen
func New(screen tcell.Screen, b *board.Board, cfg config.Config, snd *sound.Player, logger *log.Logger, path string) *App {
	engine := dnd.NewEngine(dnd.Options{
		DragThreshold: cfg.DragThreshold,
		RowTolerance:  cfg.RowTolerance,
	})

	a := &App{
		screen: screen,
		engine: engine,
		board:  b,
		cfg:    cfg,
		snd:    snd,
		logger: logger,
		path:   path,
	}

	a.view = ui.New(b, engine, cfg)
	a.view.OnMoved = func() {
		a.dirty = true
		a.dropped = true
	}
	engine.SetCallbacks(
		func() {
			snd.Pickup()
			logger.Debug("drag started")
		},
		func() {
			if a.dropped {
				snd.Drop()
			} else {
				snd.Cancel()
			}
			logger.Debug("drag ended", "dropped", a.dropped)
			a.dropped = false
		},
	)
	a.view.Attach()
	return a
}

// Run polls events until quit. The caller owns screen lifecycle
func (a *App) Run() error {
	w, h := a.screen.Size()
	a.view.Layout(w, h-1)
	a.render()

	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			a.view.Layout(w, h-1)
			// Geometry shifted under a possibly unmoved pointer
			a.engine.Reposition()
			a.screen.Sync()
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventKey:
			a.handleKey(ev)
		}
		a.afterEvent()
		a.render()
	}
	return nil
}

// handleMouse routes presses, motion, releases and wheel events.
// Press and release are edge-detected from the reported button mask
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		a.view.Scroll(-wheelStep)
		a.engine.Reposition()
	}
	if buttons&tcell.WheelDown != 0 {
		a.view.Scroll(wheelStep)
		a.engine.Reposition()
	}

	pressed := buttons&tcell.Button1 != 0
	wasPressed := a.buttons&tcell.Button1 != 0
	a.buttons = buttons

	switch {
	case pressed && !wasPressed:
		if node, id, idx, ok := a.view.HitTest(x, y); ok {
			item, _ := node.Ref.(board.Item)
			a.engine.StartDrag(
				dnd.PointerEvent{X: x, Y: y, Primary: true},
				node,
				dnd.Payload{Item: item, SourceID: id, Index: idx},
			)
		}
	case !pressed && wasPressed:
		a.engine.PointerUp(x, y)
	default:
		a.engine.PointerMove(x, y)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.prompting {
		a.handlePromptKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		a.engine.Cancel()
	case tcell.KeyCtrlC:
		a.engine.Cancel()
		a.quit = true
	case tcell.KeyCtrlS:
		a.save()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			a.engine.Cancel()
			a.quit = true
		case 'a':
			if !a.engine.IsDragging() {
				a.prompting = true
				a.prompt = a.prompt[:0]
			}
		case 's':
			a.save()
		}
	}
}

func (a *App) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.prompting = false
	case tcell.KeyEnter:
		name := string(a.prompt)
		a.prompting = false
		if name != "" {
			a.board.AddUnranked(name)
			a.dirty = true
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.prompt) > 0 {
			a.prompt = a.prompt[:len(a.prompt)-1]
		}
	case tcell.KeyRune:
		a.prompt = append(a.prompt, ev.Rune())
	}
}

// afterEvent re-syncs the view once no gesture is in flight, so board
// mutations (drops, added items) become visible. Resync is a no-op
// mid-drag by design
func (a *App) afterEvent() {
	a.view.Resync()
	w, h := a.screen.Size()
	a.view.Layout(w, h-1)
}

func (a *App) save() {
	if err := board.Save(a.board, a.path); err != nil {
		a.logger.Error("save failed", "path", a.path, "err", err)
		return
	}
	a.dirty = false
	a.logger.Info("board saved", "path", a.path)
}

func (a *App) render() {
	w, h := a.screen.Size()
	a.view.Draw(a.screen)

	status := fmt.Sprintf("%s — drag with mouse · a add · s save · q quit", a.board.Title)
	if a.dirty {
		status += " · [unsaved]"
	}
	if a.prompting {
		status = "new item: " + string(a.prompt) + "▏ (enter to add, esc to cancel)"
	}
	ui.DrawStatus(a.screen, h-1, w, status)
	a.screen.Show()
}
