package tween

import "math"

// beatPeriodMs is one lub-dub cycle.
const beatPeriodMs = 1000.0

const (
	heartbeatBase = 1.5
	heartbeatPeak = 5.0
)

// BeatPhase returns the position within the current beat in [0,1).
func BeatPhase(elapsedMs float64) float64 {
	p := math.Mod(elapsedMs, beatPeriodMs) / beatPeriodMs
	if p < 0 {
		p += 1
	}
	return p
}

// HeartbeatLevel is the raw lub-dub shape at beat phase p: a fast beat to 1,
// a short rest at 0.3, a smaller beat to 0.85, then rest.
func HeartbeatLevel(p float64) float64 {
	switch {
	case p < 0.15:
		return p / 0.15
	case p < 0.25:
		return 1 - (p-0.15)/0.1*0.7
	case p < 0.4:
		return 0.3
	case p < 0.52:
		return 0.3 + (p-0.4)/0.12*0.55
	case p < 0.62:
		return 0.85 - (p-0.52)/0.1*0.55
	default:
		return 0.3
	}
}

// Heartbeat returns the glow intensity of the selected star elapsedMs after
// the beat started. level maps beat phase to [0,1]; nil uses HeartbeatLevel.
func Heartbeat(elapsedMs float64, level func(float64) float64) float64 {
	if level == nil {
		level = HeartbeatLevel
	}
	l := min(max(level(BeatPhase(elapsedMs)), 0), 1)
	return heartbeatBase + l*(heartbeatPeak-heartbeatBase)
}

// AuraPulse returns scale and opacity of the heart aura for the same rhythm.
func AuraPulse(elapsedMs float64) (scale, opacity float64) {
	p := BeatPhase(elapsedMs)
	switch {
	case p < 0.15:
		f := p / 0.15
		return 1 + f*0.15, 0.7 + f*0.1
	case p < 0.25:
		f := (p - 0.15) / 0.1
		return 1.15 - f*0.15, 0.8 - f*0.1
	case p < 0.4:
		return 1, 0.7
	case p < 0.52:
		f := (p - 0.4) / 0.12
		return 1 + f*0.12, 0.7 + f*0.08
	case p < 0.62:
		f := (p - 0.52) / 0.1
		return 1.12 - f*0.12, 0.78 - f*0.08
	default:
		return 1, 0.7
	}
}

// Breathing is the idle scale factor of an unhovered star.
func Breathing(elapsedMs float64) float64 {
	return 1 + math.Sin(elapsedMs*0.002)*0.02
}

// Flicker is the idle glow of a star with its own speed and offset.
func Flicker(elapsedMs, speed, offset float64) float64 {
	return heartbeatBase + math.Sin(elapsedMs*speed+offset)*0.3
}
