package world

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is the state of the World as perceived from the outside: the
// locked cells and the falling piece. Two Worlds with the same StateBytes are
// considered the same, no matter how they are implemented.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	s := &serializer{w: buf}
	s.write(w.Grid.Size())
	s.write(w.Grid.cells.cells)
	if w.Piece == nil {
		s.write(false)
	} else {
		s.write(true)
		s.write(w.Piece.Pos)
		s.write(w.Piece.Shape.Size())
		s.write(w.Piece.Shape.cells.cells)
	}
	if s.err != nil {
		panic(s.err)
	}
	return buf.Bytes()
}

// RegressionId returns a hash of every state the World goes through while
// replaying the playthrough. It is meant for refactoring the World: if the
// RegressionId of a playthrough did not change, the refactoring did not
// change the game.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	w := p.NewWorld()
	hash.Write(w.StateBytes())
	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
