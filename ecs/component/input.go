package component

import "github.com/milk9111/memorystars/common"

// Input stores the per-tick input sample. Pointer is in NDC.
type Input struct {
	Pointer common.Vec2
	Touch   bool

	Click bool
	Next  bool
	Close bool
	Copy  bool
	Start bool

	// UIBlocked is set when the overlay consumed this tick's click.
	UIBlocked bool
}

var InputComponent = NewComponent[Input]()
