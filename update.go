package main

import (
	"log/slog"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marisvali/tetro/world"
)

// Holding a key down repeats its command after KeyRepeatDelay frames, then
// every KeyRepeatInterval frames.
const KeyRepeatDelay = 12
const KeyRepeatInterval = 3

func (g *Gui) Update() error {
	defer g.HandlePanic()

	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
		// The cell size might have changed.
		g.boardImg = nil
		g.world.Grid.MarkAllDirty()
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	return nil
}

// KeyRepeats says if a key that has been held for duration frames triggers
// its command in the current frame.
func KeyRepeats(duration int) bool {
	if duration == 1 {
		return true
	}
	if duration < KeyRepeatDelay {
		return false
	}
	return (duration-KeyRepeatDelay)%KeyRepeatInterval == 0
}

// GravityTicks says if gravity pulls the piece down during frame frameIdx.
func GravityTicks(frameIdx int64, gravityFrames int64) bool {
	return (frameIdx+1)%gravityFrames == 0
}

func (g *Gui) Repeating(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if KeyRepeats(inpututil.KeyPressDuration(key)) {
			return true
		}
	}
	return false
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if slices.Contains(g.justPressedKeys, key) {
			return true
		}
	}
	return false
}

func (g *Gui) JustClicked(button Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return button.ContainsPt(Pt{int64(x), int64(y)})
}

func (g *Gui) LeftClickPressedOn(button Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return button.ContainsPt(Pt{int64(x), int64(y)})
}

func (g *Gui) UpdatePlayScreen() {
	// Get the player input.
	var input world.PlayerInput
	input.MoveLeft = g.Repeating(ebiten.KeyLeft, ebiten.KeyA)
	input.MoveRight = g.Repeating(ebiten.KeyRight, ebiten.KeyD)
	input.MoveDown = g.Repeating(ebiten.KeyDown, ebiten.KeyS)
	input.Rotate = g.JustPressed(ebiten.KeyUp, ebiten.KeyW)
	input.Restart = g.JustPressed(ebiten.KeyR)
	input.Tick = GravityTicks(g.frameIdx, g.GravityFrames)

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile && input.EventOccurred() {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	g.world.Step(input)
	g.visWorld.Step(&g.world)
	g.reportEvents(input)
	g.frameIdx++
}

func (g *Gui) reportEvents(input world.PlayerInput) {
	w := &g.world
	if w.JustClearedRows > 0 {
		slog.Info("rows cleared",
			"rows", w.JustClearedRows,
			"total", w.NClearedRows,
			"frame", g.frameIdx)
	}
	if !w.JustReset {
		return
	}
	if input.Restart {
		slog.Info("restart", "frame", g.frameIdx)
	} else {
		slog.Info("game over",
			"frame", g.frameIdx,
			"pieces", w.NLockedPieces,
			"rows", w.NClearedRows)
	}

	// The uploader gets its own copy, the history keeps growing here.
	select {
	case g.uploadChannel <- g.playthrough.Clone():
	default:
		slog.Warn("upload queue full, skipping upload", "id",
			g.playthrough.Id)
	}
}

// rewind brings the world to the state it had after the first frameIdx
// inputs. There is no way back other than replaying everything from the
// start.
func (g *Gui) rewind(frameIdx int64) {
	g.world = g.playthrough.NewWorld()
	g.visWorld = NewVisWorld()
	for i := range frameIdx {
		g.world.Step(g.playthrough.History[i])
	}
	g.frameIdx = frameIdx
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))

	userRequestedPlaybackPause := g.JustPressed(ebiten.KeySpace) ||
		g.JustClicked(g.playButton)
	if userRequestedPlaybackPause {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.playBar) && g.playBar.Width() > 0 {
		x, _ := ebiten.CursorPosition()
		dx := int64(x) - g.playBar.Min.X
		targetFrameIdx = dx * nFrames / g.playBar.Width()
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShift
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShift
	}

	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	targetFrameIdx = max(0, min(targetFrameIdx, nFrames))

	if targetFrameIdx < g.frameIdx {
		g.rewind(targetFrameIdx)
	}
	for g.frameIdx < targetFrameIdx {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}

	if !g.playbackPaused && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.visWorld.Step(&g.world)
		g.frameIdx++
	}
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD, ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.visWorld.Step(&g.world)
		g.frameIdx++
	}

	// Go to the previous frame.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA, ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.rewind(g.frameIdx - 1)
	}
}
