package main

import (
	"testing"
	"testing/fstest"

	"github.com/marisvali/tetro/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"data/config.yaml": {Data: []byte(`
StartState: Play
RecordToFile: true
RecordingFile: recordings/last.tetro
GravityFrames: 30
`)},
	}
	var cfg Config
	LoadYAML(fsys, "data/config.yaml", &cfg)
	require.NoError(t, cfg.Validate())
	cfg = cfg.WithDefaults()
	assert.Equal(t, "Play", cfg.StartState)
	assert.True(t, cfg.RecordToFile)
	assert.Equal(t, "recordings/last.tetro", cfg.RecordingFile)
	assert.Equal(t, int64(30), cfg.GravityFrames)
	assert.Equal(t, int64(DefaultCellPixelSize), cfg.CellPixelSize)
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, Config{}.Validate())
	assert.Error(t, Config{StartState: "Home"}.Validate())
	assert.Error(t, Config{StartState: "Play", GravityFrames: -1}.Validate())
	assert.Error(t, Config{StartState: "Play", RecordToFile: true}.Validate())
	assert.Error(t, Config{StartState: "Play", LoadLevel: true}.Validate())
	assert.NoError(t, Config{StartState: "Playback"}.Validate())
}

// Are the files we ship usable?
func TestEmbeddedData(t *testing.T) {
	for _, name := range []string{"data/config.yaml", "data/config-dev.yaml"} {
		var cfg Config
		LoadYAML(&embeddedFiles, name, &cfg)
		assert.NoError(t, cfg.Validate(), name)
		if cfg.LoadLevel {
			_, err := world.LoadLevel(&embeddedFiles, cfg.LevelFile)
			assert.NoError(t, err, name)
		}
	}

	entries, err := embeddedFiles.ReadDir("data/levels")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	catalog := world.NewDefaultCatalog()
	for _, e := range entries {
		l, err := world.LoadLevel(&embeddedFiles, "data/levels/"+e.Name())
		require.NoError(t, err, e.Name())
		assert.NoError(t, l.Validate(catalog), e.Name())
	}
}
