package component

// Timer runs Fire once after Frames update ticks, then its entity is
// destroyed. Seq orders timers expiring on the same tick.
type Timer struct {
	Frames int
	Seq    uint64
	Fire   func()
}

var TimerComponent = NewComponent[Timer]()
