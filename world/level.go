package world

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"
)

const DefaultWidth = 10
const DefaultHeight = 22

var ErrInvalidLevel = errors.New("invalid level")

// Level is the starting setup of a World.
// Rows pre-fill the bottom of the grid. Each row is a string with one
// character per column: '.' or '0' for an empty cell, '1'..'9' for a locked
// cell of that color. The last row given is the bottom row of the grid.
// LockedValue is the value written to the grid when a piece locks. 0 keeps
// the color of the piece.
type Level struct {
	Width       int64    `yaml:"Width"`
	Height      int64    `yaml:"Height"`
	LockedValue int64    `yaml:"LockedValue"`
	Rows        []string `yaml:"Rows"`
}

func (l Level) WithDefaults() Level {
	if l.Width == 0 {
		l.Width = DefaultWidth
	}
	if l.Height == 0 {
		l.Height = DefaultHeight
	}
	return l
}

// Validate checks the level against the catalog it will be played with. Colors
// must exist in the palette and every shape must fit on the grid where it
// spawns.
func (l Level) Validate(c *Catalog) error {
	paletteSize := c.PaletteSize()
	l = l.WithDefaults()
	if l.Width < 0 || l.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	if l.LockedValue < 0 || l.LockedValue >= paletteSize {
		return fmt.Errorf("%w: LockedValue %d outside palette of %d colors",
			ErrInvalidLevel, l.LockedValue, paletteSize)
	}
	if int64(len(l.Rows)) > l.Height {
		return fmt.Errorf("%w: %d rows for a grid of height %d",
			ErrInvalidLevel, len(l.Rows), l.Height)
	}
	for i, row := range l.Rows {
		if int64(len(row)) != l.Width {
			return fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrInvalidLevel, i, len(row), l.Width)
		}
		for _, c := range row {
			val, ok := cellValue(c)
			if !ok {
				return fmt.Errorf("%w: row %d has invalid cell %q",
					ErrInvalidLevel, i, c)
			}
			if val >= paletteSize {
				return fmt.Errorf("%w: row %d has color %d outside palette of "+
					"%d colors", ErrInvalidLevel, i, val, paletteSize)
			}
		}
	}
	for _, s := range c.Shapes {
		for pt := range s.Occupied(SpawnPos(l.Width, s)) {
			if pt.X < 0 || pt.X >= l.Width || pt.Y >= l.Height {
				return fmt.Errorf("%w: shape %s does not fit on a %dx%d grid",
					ErrInvalidLevel, s.Name, l.Width, l.Height)
			}
		}
	}
	return nil
}

func cellValue(c rune) (int64, bool) {
	if c == '.' {
		return 0, true
	}
	if c >= '0' && c <= '9' {
		return int64(c - '0'), true
	}
	return 0, false
}

// NewGrid creates the grid described by the level. The level must be valid.
func (l Level) NewGrid() Grid {
	l = l.WithDefaults()
	g := NewGrid(l.Width, l.Height)
	top := l.Height - int64(len(l.Rows))
	for i, row := range l.Rows {
		for x, c := range []rune(row) {
			val, _ := cellValue(c)
			g.set(Pt{int64(x), top + int64(i)}, val)
		}
	}
	return g
}

func ParseLevel(data []byte) (l Level, err error) {
	if err = yaml.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	return l, nil
}

// LoadLevel reads a level from a YAML file.
func LoadLevel(fsys fs.FS, name string) (Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("reading level %s: %w", name, err)
	}
	l, err := ParseLevel(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing level %s: %w", name, err)
	}
	return l, nil
}
