// Package tween evaluates animation curves at an explicit elapsed time, so
// callers decide how time advances and tests can pass synthetic values.
package tween

import "math"

// Ease maps progress in [0,1] to an eased value, usually in [0,1].
type Ease func(t float64) float64

func Linear(t float64) float64 {
	return t
}

// OutCubic starts fast and settles slowly.
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

var named = map[string]Ease{
	"linear":       Linear,
	"out_cubic":    OutCubic,
	"in_out_cubic": InOutCubic,
	"out_quad":     OutQuad,
	"in_out_sine":  InOutSine,
}

// Named looks up an easing function by its config name. An empty name is
// OutCubic.
func Named(name string) (Ease, bool) {
	if name == "" {
		return OutCubic, true
	}
	ease, ok := named[name]
	return ease, ok
}

// Tween interpolates From to To over Duration time units.
type Tween struct {
	From     float64
	To       float64
	Duration float64
	Ease     Ease
}

// At returns the value after elapsed time units. Elapsed is clamped to
// [0, Duration]; a zero duration jumps straight to To.
func (tw Tween) At(elapsed float64) float64 {
	return tw.From + (tw.To-tw.From)*tw.Progress(elapsed)
}

// Progress returns the eased progress after elapsed time units.
func (tw Tween) Progress(elapsed float64) float64 {
	if tw.Duration <= 0 {
		return 1
	}
	t := elapsed / tw.Duration
	if t <= 0 {
		t = 0
	} else if t >= 1 {
		t = 1
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	return ease(t)
}

// Done reports whether elapsed has reached the end of the tween.
func (tw Tween) Done(elapsed float64) bool {
	return elapsed >= tw.Duration
}
