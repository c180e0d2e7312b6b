package component

import "github.com/milk9111/memorystars/tween"

// Fade drives Value along Tween one tick at a time.
type Fade struct {
	Tween   tween.Tween
	Elapsed float64
	Value   float64
}

var FadeComponent = NewComponent[Fade]()
