package main

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/tetro/world"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play, either as a native executable or a .wasm in the browser. It labels
// the experience a player got.
// ReleaseVersion must change when SimulationVersion or InputVersion change.
// It also changes for things that leave the simulation and the input format
// alone:
// - communication with the server is enabled or disabled
// - asserts are enabled or disabled
// - graphics change
// Every variation is a separate executable, which is what makes recordings
// traceable to what the player actually saw.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	Playback
	DebugCrash
)

type Gui struct {
	Config
	world            world.World
	visWorld         VisWorld
	FSys             FS
	folderWatcher    FolderWatcher
	defaultFont      font.Face
	playthrough      world.Playthrough
	frameIdx         int64
	state            GameState
	playbackPaused   bool
	pressedKeys      []ebiten.Key
	justPressedKeys  []ebiten.Key // keys pressed in this frame
	FrameSkipArrow   int64
	FrameSkipShift   int64
	enableDebugAreas bool
	gameArea         Rectangle
	boardArea        Rectangle
	panelArea        Rectangle
	debugArea        Rectangle
	playButton       Rectangle
	playBar          Rectangle
	boardImg         *ebiten.Image
	username         string
	uploadChannel    chan *world.Playthrough
	devModeEnabled   bool
}

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	LoadLevel     bool   `yaml:"LoadLevel"`
	LevelFile     string `yaml:"LevelFile"`
	GravityFrames int64  `yaml:"GravityFrames"`
	CellPixelSize int64  `yaml:"CellPixelSize"`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	ebiten.SetWindowPosition(100, 100)

	var g Gui
	g.username = getUsername()
	// A channel size of 10 means the channel will buffer 10 playthroughs
	// before it is full and it blocks. Game overs are at least seconds apart,
	// so this is plenty.
	g.uploadChannel = make(chan *world.Playthrough, 10)
	go UploadPlaythroughs(g.username, g.uploadChannel)
	g.FrameSkipArrow = 1
	g.FrameSkipShift = 10

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher with the current timestamps so that the
		// first Update doesn't reload everything for nothing.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Playback":
		g.state = Playback
		g.enableDebugAreas = true
		g.playthrough = g.loadPlaythrough(g.PlaybackFile)
	case "DebugCrash":
		g.state = DebugCrash
		g.enableDebugAreas = true
		// Don't crash when we are debugging the crash. If the crash came from
		// a Check() inside the frame that crashed, we now get to step through
		// that frame and see the results.
		CheckCrashes = false
		g.playthrough = g.loadPlaythrough(g.PlaybackFile)
	case "Play":
		g.state = PlayScreen
		var level world.Level
		if g.LoadLevel {
			var err error
			level, err = world.LoadLevel(g.FSys, g.LevelFile)
			Check(err)
			Check(level.Validate(world.NewDefaultCatalog()))
		}
		g.playthrough = world.NewPlaythrough(time.Now().UnixNano(), level,
			ReleaseVersion)
		if g.RecordToFile {
			MakeDir(filepath.Dir(g.RecordingFile))
		}
	default:
		Check(fmt.Errorf("invalid StartState: %s", g.StartState))
	}

	g.world = g.playthrough.NewWorld()
	slog.Info("starting",
		"user", g.username,
		"release", ReleaseVersion,
		"state", g.StartState,
		"id", g.playthrough.Id,
		"seed", g.playthrough.Seed,
		"width", g.world.Grid.Width(),
		"height", g.world.Grid.Height())

	// The last input caused the crash, so run the whole playthrough except the
	// last input. This gives me a chance to see the state of the world before
	// the bug, maybe place a breakpoint, and then trigger the bug.
	if g.state == DebugCrash {
		g.frameIdx = max(int64(len(g.playthrough.History))-1, 0)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}

	g.UpdateWindowSize()
	err := ebiten.RunGame(&g)
	Check(err)
}

func (g *Gui) loadPlaythrough(name string) world.Playthrough {
	p, err := world.DeserializePlaythrough(ReadFile(name))
	Check(err)
	if p.SimulationVersion != world.SimulationVersion {
		slog.Warn("playthrough was recorded with a different simulation, "+
			"it will probably not replay correctly",
			"file", name,
			"recorded", p.SimulationVersion,
			"current", world.SimulationVersion)
	}
	slog.Info("loaded playthrough", "file", name, "id", p.Id,
		"frames", len(p.History), "release", p.ReleaseVersion)
	return p
}
