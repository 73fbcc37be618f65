package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err != nil {
		return false
	}
	Check(file.Close())
	return true
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(data, v)
	Check(err)
}

// FolderWatcher reports when any file in Folder was added, removed or
// modified since the last call.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if err != nil {
			// The file was deleted after the folder was listed.
			changed = true
			continue
		}
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}

// CrashFile is where the playthrough goes when the game crashes. Set
// StartState to DebugCrash and PlaybackFile to this file to step through the
// frames that led to the crash.
const CrashFile = "crash.tetro"

// HandlePanic saves the current playthrough if the game is crashing, then lets
// the panic continue. It must be deferred by every function that ebiten calls.
func (g *Gui) HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	// Only a live game produces new input worth saving. Playback and debug
	// sessions already have their input in a file.
	if g.state == PlayScreen {
		slog.Error("game crashed, saving playthrough",
			"file", CrashFile,
			"frames", len(g.playthrough.History),
			"error", fmt.Sprint(r))
		WriteFile(CrashFile, g.playthrough.Serialize())
	}
	panic(r)
}
