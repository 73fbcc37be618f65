package main

import (
	"fmt"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const DefaultGravityFrames = 60
const DefaultCellPixelSize = 40

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// It's a hack but possibly a quick and very useful one.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible. We might be in the browser, in which
	// case we want to see an error in the developer console instead of a page
	// that keeps trying to load and reports nothing.
	previousVal := CheckCrashes
	if g.FSys != &embeddedFiles {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		var cfg Config
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &cfg)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &cfg)
		}
		if CheckFailed == nil {
			Check(cfg.Validate())
		}

		if CheckFailed == nil {
			g.Config = cfg.WithDefaults()
			break
		}
	}
	CheckCrashes = previousVal
	slog.Info("loaded config", "config", fmt.Sprintf("%+v", g.Config))

	g.visWorld = NewVisWorld()

	// Load the font.
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    28,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}

func (c Config) WithDefaults() Config {
	if c.GravityFrames == 0 {
		c.GravityFrames = DefaultGravityFrames
	}
	if c.CellPixelSize == 0 {
		c.CellPixelSize = DefaultCellPixelSize
	}
	return c
}

func (c Config) Validate() error {
	switch c.StartState {
	case "Play", "Playback", "DebugCrash":
	default:
		return fmt.Errorf("invalid StartState: %q", c.StartState)
	}
	if c.GravityFrames < 0 {
		return fmt.Errorf("invalid GravityFrames: %d", c.GravityFrames)
	}
	if c.CellPixelSize < 0 {
		return fmt.Errorf("invalid CellPixelSize: %d", c.CellPixelSize)
	}
	if c.RecordToFile && c.RecordingFile == "" {
		return fmt.Errorf("RecordToFile is set but RecordingFile is empty")
	}
	if c.LoadLevel && c.LevelFile == "" {
		return fmt.Errorf("LoadLevel is set but LevelFile is empty")
	}
	return nil
}
