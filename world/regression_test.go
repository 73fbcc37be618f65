package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegressionId_Stable(t *testing.T) {
	p := randomPlaythrough(11, Level{}, 2000)
	id1 := RegressionId(&p)
	id2 := RegressionId(&p)
	assert.Equal(t, id1, id2)
	assert.Len(t, id1, 64)

	// Does the id survive writing the playthrough to disk?
	p2, err := DeserializePlaythrough(p.Serialize())
	require.NoError(t, err)
	assert.Equal(t, id1, RegressionId(&p2))
}

func TestRegressionId_DependsOnEverything(t *testing.T) {
	p := randomPlaythrough(11, Level{}, 500)
	id := RegressionId(&p)

	other := *p.Clone()
	other.Seed++
	assert.NotEqual(t, id, RegressionId(&other))

	other = *p.Clone()
	other.Level = Level{Width: 12}
	assert.NotEqual(t, id, RegressionId(&other))

	other = *p.Clone()
	other.History = other.History[:len(other.History)-50]
	assert.NotEqual(t, id, RegressionId(&other))
}

// Does replaying a playthrough give the same World as the one that was played
// live?
func TestRegressionId_ReplayMatchesLiveGame(t *testing.T) {
	p := randomPlaythrough(3, Level{}, 1000)

	live := p.NewWorld()
	for _, input := range p.History {
		live.Step(input)
	}

	replay := p.NewWorld()
	for _, input := range p.History {
		replay.Step(input)
	}
	assert.Equal(t, live.StateBytes(), replay.StateBytes())
	assert.Equal(t, live.NLockedPieces, replay.NLockedPieces)
}

func BenchmarkRegressionId(b *testing.B) {
	p := randomPlaythrough(0, Level{}, 5000)
	for b.Loop() {
		RegressionId(&p)
	}
}
