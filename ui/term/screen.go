// Package term shows the game in a terminal using tcell. Each board cell
// becomes two terminal columns so cells look roughly square.
package term

import (
	"fmt"
	"time"

	"greedy-snake/game"
	"greedy-snake/game/entity"
	"greedy-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellColumns = 2 // Terminal columns per board cell
	eventBuffer = 64
)

// Grid size in board cells: the play area plus one cell of wall on each side
const (
	GridCols = types.BoardCols + 2
	GridRows = types.BoardRows + 2
)

// Screen is the terminal frontend. Input is read on a separate goroutine
// and drained once per tick; a ticker paces the frames.
type Screen struct {
	screen  tcell.Screen
	surface *Surface
	events  chan tcell.Event
	quit    chan struct{}
	ticker  *time.Ticker
}

// NewScreen takes over the terminal
func NewScreen(fps int) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	return newScreen(screen, fps), nil
}

// newScreen wraps an initialised tcell screen
func newScreen(screen tcell.Screen, fps int) *Screen {
	if fps <= 0 {
		fps = 1
	}
	screen.HideCursor()
	s := &Screen{
		screen:  screen,
		surface: NewSurface(screen),
		events:  make(chan tcell.Event, eventBuffer),
		quit:    make(chan struct{}),
		ticker:  time.NewTicker(time.Second / time.Duration(fps)),
	}
	go s.readEvents()
	return s
}

func (s *Screen) readEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Close restores the terminal
func (s *Screen) Close() {
	close(s.quit)
	s.ticker.Stop()
	s.screen.Fini()
}

// Poll drains pending terminal events without blocking
func (s *Screen) Poll() []game.Command {
	var cmds []game.Command
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if cmd, ok := keyCommand(ev.Key(), ev.Rune()); ok {
					cmds = append(cmds, cmd)
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return cmds
		}
	}
}

func (s *Screen) BeginFrame() entity.Surface {
	return s.surface
}

// EndFrame shows the frame and waits for the next tick
func (s *Screen) EndFrame() {
	s.screen.Show()
	<-s.ticker.C
}

func keyCommand(key tcell.Key, r rune) (game.Command, bool) {
	switch key {
	case tcell.KeyUp:
		return game.Turn(types.Up), true
	case tcell.KeyRight:
		return game.Turn(types.Right), true
	case tcell.KeyDown:
		return game.Turn(types.Down), true
	case tcell.KeyLeft:
		return game.Turn(types.Left), true
	case tcell.KeyF2:
		return game.Restart(), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit(), true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.Turn(types.Up), true
		case 'd', 'D':
			return game.Turn(types.Right), true
		case 's', 'S':
			return game.Turn(types.Down), true
		case 'a', 'A':
			return game.Turn(types.Left), true
		case 'r', 'R':
			return game.Restart(), true
		case 'q', 'Q':
			return game.Quit(), true
		}
	}
	return game.Command{}, false
}
