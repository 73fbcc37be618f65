// Command tui plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/tetro/world"
)

func main() {
	levelFile := flag.String("level", "", "YAML level file, empty for a "+
		"default empty grid")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	gravity := flag.Duration("gravity", time.Second, "time between two "+
		"gravity ticks")
	record := flag.String("record", "", "file to write the playthrough to "+
		"when the program ends")
	logFile := flag.String("log", "tui.log", "log file, the terminal is "+
		"taken by the game")
	flag.Parse()

	f, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	Check(err)
	defer func(f *os.File) { Check(f.Close()) }(f)
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))

	var level world.Level
	if *levelFile != "" {
		data, err := os.ReadFile(*levelFile)
		Check(err)
		level, err = world.ParseLevel(data)
		Check(err)
		Check(level.Validate(world.NewDefaultCatalog()))
	}
	if *gravity <= 0 {
		Check(fmt.Errorf("invalid gravity: %v", *gravity))
	}

	p := world.NewPlaythrough(*seed, level, 0)
	slog.Info("starting", "seed", p.Seed, "level", *levelFile, "id", p.Id)
	g := run(&p, *gravity)

	slog.Info("finished",
		"frames", len(p.History),
		"pieces", g.world.NLockedPieces,
		"rows", g.world.NClearedRows,
		"games", g.world.NResets+1)
	if *record != "" {
		Check(os.WriteFile(*record, p.Serialize(), 0644))
		slog.Info("recorded playthrough", "file", *record)
	}
}

// run takes over the terminal for the duration of the game and gives it back
// even if the game crashes.
func run(p *world.Playthrough, gravity time.Duration) *Game {
	screen, err := tcell.NewScreen()
	Check(err)
	Check(screen.Init())
	defer screen.Fini()

	g := NewGame(screen, p)
	Play(g, gravity)
	return g
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

// Game connects a World with a terminal. Every input that reaches the World
// is also appended to the playthrough, so a terminal game can be replayed in
// the GUI.
type Game struct {
	world       world.World
	playthrough *world.Playthrough
	renderer    *Renderer
}

func NewGame(screen tcell.Screen, p *world.Playthrough) *Game {
	g := &Game{playthrough: p}
	g.world = p.NewWorld()
	g.renderer = NewRenderer(screen, &g.world)
	g.renderer.Invalidate(&g.world)
	g.renderer.Draw(&g.world)
	return g
}

func (g *Game) Step(input world.PlayerInput) {
	g.playthrough.History = append(g.playthrough.History, input)
	g.world.Step(input)
	if g.world.JustClearedRows > 0 {
		slog.Info("rows cleared", "rows", g.world.JustClearedRows)
	}
	if g.world.JustReset && !input.Restart {
		slog.Info("game over", "pieces", g.world.NLockedPieces)
	}
	g.renderer.Draw(&g.world)
}

// Play runs the game until the player quits. Terminal events arrive on a
// channel filled by tcell on its own goroutine. Key presses and gravity ticks
// are handled one at a time on this goroutine, which is the only one that
// touches the World.
func Play(g *Game, gravity time.Duration) {
	screen := g.renderer.screen
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(gravity)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				input, stop := KeyInput(ev)
				if stop {
					return
				}
				if input.EventOccurred() {
					g.Step(input)
				}
			case *tcell.EventResize:
				screen.Sync()
				g.renderer.Invalidate(&g.world)
				g.renderer.Draw(&g.world)
			}
		case <-ticker.C:
			g.Step(world.PlayerInput{Tick: true})
		}
	}
}
