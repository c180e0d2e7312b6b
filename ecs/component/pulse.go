package component

// AttentionPulse is the ring around the first star that invites a click.
type AttentionPulse struct {
	Target  int
	Hidden  bool
	Scale   float64
	Opacity float64
}

var AttentionPulseComponent = NewComponent[AttentionPulse]()

// Aura is the heart-shaped glow behind the selected star.
type Aura struct {
	Visible bool
	Scale   float64
	Opacity float64
}

var AuraComponent = NewComponent[Aura]()
