package main

import (
	"log/slog"

	"github.com/marisvali/tetro/world"
)

// UploadPlaythroughs sends every playthrough it receives to the server, one at
// a time, until the channel is closed. It runs on its own goroutine so that a
// slow connection never stalls the game. Playthroughs are uploaded by id, so
// uploading the same playthrough again after it grew replaces the old data.
func UploadPlaythroughs(user string, ch <-chan *world.Playthrough) {
	for p := range ch {
		err := UploadPlaythroughHttp(user, p)
		if err != nil {
			slog.Error("upload failed", "id", p.Id, "error", err)
			continue
		}
		slog.Info("uploaded playthrough", "id", p.Id,
			"frames", len(p.History))
	}
}
