package world

// PlayerInput is everything that reaches the World during one frame. Tick is
// set by whoever keeps time for gravity, not by the player, but it is
// recorded the same way so that a playthrough replays exactly.
type PlayerInput struct {
	MoveLeft  bool
	MoveRight bool
	MoveDown  bool
	Rotate    bool
	Tick      bool
	Restart   bool
}

func (p *PlayerInput) EventOccurred() bool {
	return p.MoveLeft || p.MoveRight || p.MoveDown || p.Rotate || p.Tick ||
		p.Restart
}
