package world

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If serializing a Playthrough produces different bytes than
// before, InputVersion must change.
const InputVersion = 1

var ErrInputVersion = errors.New("unsupported input version")

// Playthrough is everything needed to replay a game: the level, the seed and
// the input of every frame. Given a compatible simulation, replaying it always
// leads to the same World.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Level
	Id      uuid.UUID
	Seed    int64
	History []PlayerInput
}

func NewPlaythrough(seed int64, l Level, releaseVersion int64) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = releaseVersion
	p.Level = l
	p.Id = uuid.New()
	p.Seed = seed
	return
}

// NewWorld creates the World this playthrough starts from.
func (p *Playthrough) NewWorld() World {
	return NewWorld(p.Seed, p.Level)
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	s := &serializer{w: buf}
	s.write(p.InputVersion)
	s.write(p.SimulationVersion)
	s.write(p.ReleaseVersion)
	s.write(p.Width)
	s.write(p.Height)
	s.write(p.LockedValue)
	s.write(int64(len(p.Rows)))
	for _, row := range p.Rows {
		s.writeString(row)
	}
	s.write(p.Id)
	s.write(p.Seed)
	writeSlice(s, p.History)
	if s.err != nil {
		// Writing fixed-size values to a bytes.Buffer only fails on a
		// programming error.
		panic(s.err)
	}
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.Rows = slices.Clone(p.Rows)
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough, err error) {
	raw, err := Unzip(data)
	if err != nil {
		return Playthrough{}, fmt.Errorf("unzipping playthrough: %w", err)
	}
	d := &deserializer{r: bytes.NewReader(raw)}
	d.read(&p.InputVersion)
	if d.err == nil && p.InputVersion != InputVersion {
		return Playthrough{}, fmt.Errorf("%w: we are at InputVersion %d and "+
			"the playthrough was generated with InputVersion %d",
			ErrInputVersion, InputVersion, p.InputVersion)
	}
	d.read(&p.SimulationVersion)
	d.read(&p.ReleaseVersion)
	d.read(&p.Width)
	d.read(&p.Height)
	d.read(&p.LockedValue)
	nRows := d.readLen()
	for range nRows {
		p.Rows = append(p.Rows, d.readString())
	}
	d.read(&p.Id)
	d.read(&p.Seed)
	p.History = readSlice[PlayerInput](d)
	if d.err != nil {
		return Playthrough{}, fmt.Errorf("reading playthrough: %w", d.err)
	}
	if err = p.Level.Validate(NewDefaultCatalog()); err != nil {
		return Playthrough{}, fmt.Errorf("reading playthrough: %w", err)
	}
	return p, nil
}
