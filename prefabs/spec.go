package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/memorystars/common"
	"github.com/milk9111/memorystars/focus"
	"github.com/milk9111/memorystars/memory"
	"github.com/milk9111/memorystars/proximity"
	"github.com/milk9111/memorystars/reveal"
	"github.com/milk9111/memorystars/spiral"
)

const (
	SceneFile       = "scene.yaml"
	MemoriesFile    = "memories.yaml"
	HeartbeatScript = "heartbeat.tengo"
)

var ErrNoItems = errors.New("prefabs: memories has no items")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() common.Vec3 {
	return common.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

type SpiralSpec struct {
	StartRadius float64 `yaml:"start_radius"`
	RadiusStep  float64 `yaml:"radius_step"`
	// AngleDivisor gives the angle step as pi / divisor.
	AngleDivisor float64 `yaml:"angle_divisor"`
	ZStep        float64 `yaml:"z_step"`
}

type CameraSpec struct {
	Rest     Vec3Spec `yaml:"rest"`
	Look     Vec3Spec `yaml:"look"`
	Frame    Vec3Spec `yaml:"frame"`
	Standoff Vec3Spec `yaml:"standoff"`
	Damping  float64  `yaml:"damping"`
	PanLimit float64  `yaml:"pan_limit"`
	ZoomIn   float64  `yaml:"zoom_in"`
	ZoomOut  float64  `yaml:"zoom_out"`
}

type ProximitySpec struct {
	HoverTolerance float64 `yaml:"hover_tolerance"`
	ClickTolerance float64 `yaml:"click_tolerance"`
	HitRadius      float64 `yaml:"hit_radius"`
}

type RevealSpec struct {
	CenterDelay  int    `yaml:"center_delay"`
	MessageDelay int    `yaml:"message_delay"`
	MessageGap   int    `yaml:"message_gap"`
	FadeFrames   int    `yaml:"fade_frames"`
	FadeEase     string `yaml:"fade_ease"`
}

type StarSpec struct {
	Radius     float64  `yaml:"radius"`
	HoverScale float64  `yaml:"hover_scale"`
	FlickerMin float64  `yaml:"flicker_min"`
	FlickerMax float64  `yaml:"flicker_max"`
	Colors     []string `yaml:"colors"`
	Center     string   `yaml:"center"`
}

type TrailSpec struct {
	Divisions   int     `yaml:"divisions"`
	Speed       float64 `yaml:"speed"`
	BaseOpacity float64 `yaml:"base_opacity"`
	OpacityGain float64 `yaml:"opacity_gain"`
	Color       string  `yaml:"color"`
}

type StardustSpec struct {
	Count    int     `yaml:"count"`
	Jitter   float64 `yaml:"jitter"`
	BurstMin float64 `yaml:"burst_min"`
	BurstMax float64 `yaml:"burst_max"`
	Damping  float64 `yaml:"damping"`
	Seed     int64   `yaml:"seed"`
	Color    string  `yaml:"color"`
}

type BackdropSpec struct {
	Count  int     `yaml:"count"`
	Extent float64 `yaml:"extent"`
	Spin   float64 `yaml:"spin"`
	Seed   int64   `yaml:"seed"`
}

type MusicSpec struct {
	Track      string  `yaml:"track"`
	Volume     float64 `yaml:"volume"`
	FadeFrames int     `yaml:"fade_frames"`
}

// SceneSpec is scene.yaml: geometry, timings and look of the scene.
type SceneSpec struct {
	Spiral    SpiralSpec    `yaml:"spiral"`
	Camera    CameraSpec    `yaml:"camera"`
	Proximity ProximitySpec `yaml:"proximity"`
	Reveal    RevealSpec    `yaml:"reveal"`
	Stars     StarSpec      `yaml:"stars"`
	Trail     TrailSpec     `yaml:"trail"`
	Stardust  StardustSpec  `yaml:"stardust"`
	Backdrop  BackdropSpec  `yaml:"backdrop"`
	Music     MusicSpec     `yaml:"music"`
	// PulseTarget is the item index wearing the attention ring.
	PulseTarget int `yaml:"pulse_target"`
}

type ItemSpec struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// MemoriesSpec is memories.yaml: the narrative content.
type MemoriesSpec struct {
	Items    []ItemSpec `yaml:"items"`
	Phantom  ItemSpec   `yaml:"phantom"`
	Messages []string   `yaml:"messages"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadMemoriesSpec loads the narrative from name, defaulting to memories.yaml.
func LoadMemoriesSpec(name string) (*MemoriesSpec, error) {
	if name == "" {
		name = MemoriesFile
	}
	spec, err := LoadSpec[MemoriesSpec](name)
	if err != nil {
		return nil, err
	}
	if len(spec.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoItems, name)
	}
	return &spec, nil
}

func (s *SceneSpec) SpiralParams() spiral.Params {
	p := spiral.DefaultParams()
	if s.Spiral.StartRadius > 0 {
		p.StartRadius = s.Spiral.StartRadius
	}
	if s.Spiral.RadiusStep > 0 {
		p.RadiusStep = s.Spiral.RadiusStep
	}
	if s.Spiral.AngleDivisor != 0 {
		p.AngleStep = math.Pi / s.Spiral.AngleDivisor
	}
	if s.Spiral.ZStep != 0 {
		p.ZStep = s.Spiral.ZStep
	}
	return p
}

func (s *SceneSpec) FocusConfig() focus.Config {
	cfg := focus.DefaultConfig()
	if v := s.Camera.Rest.Vec3(); v != (common.Vec3{}) {
		cfg.Rest = v
	}
	cfg.RestLook = s.Camera.Look.Vec3()
	if v := s.Camera.Frame.Vec3(); v != (common.Vec3{}) {
		cfg.Frame = v
	}
	if v := s.Camera.Standoff.Vec3(); v != (common.Vec3{}) {
		cfg.Standoff = v
	}
	if s.Camera.Damping > 0 {
		cfg.Damping = s.Camera.Damping
	}
	if s.Camera.PanLimit > 0 {
		cfg.PanLimit = s.Camera.PanLimit
	}
	if s.Camera.ZoomIn > 0 {
		cfg.ZoomIn = s.Camera.ZoomIn
	}
	if s.Camera.ZoomOut > 0 {
		cfg.ZoomOut = s.Camera.ZoomOut
	}
	return cfg
}

func (s *SceneSpec) ProximityConfig() proximity.Config {
	cfg := proximity.DefaultConfig()
	if s.Proximity.HoverTolerance > 0 {
		cfg.HoverTolerance = s.Proximity.HoverTolerance
	}
	if s.Proximity.ClickTolerance > 0 {
		cfg.ClickTolerance = s.Proximity.ClickTolerance
	}
	if s.Proximity.HitRadius > 0 {
		cfg.HitRadius = s.Proximity.HitRadius
	}
	return cfg
}

// RevealConfig combines scene timings with the narrative's phantom text and
// closing messages.
func (s *SceneSpec) RevealConfig(m *MemoriesSpec) reveal.Config {
	cfg := reveal.DefaultConfig()
	if s.Reveal.CenterDelay > 0 {
		cfg.CenterDelay = s.Reveal.CenterDelay
	}
	if s.Reveal.MessageDelay > 0 {
		cfg.MessageDelay = s.Reveal.MessageDelay
	}
	if s.Reveal.MessageGap > 0 {
		cfg.MessageGap = s.Reveal.MessageGap
	}
	if m != nil {
		cfg.Phantom = m.PhantomItem()
		cfg.Messages = append([]string(nil), m.Messages...)
	}
	return cfg
}

// PhantomItem returns the hidden final item without a position.
func (m *MemoriesSpec) PhantomItem() memory.Item {
	return memory.Item{Title: m.Phantom.Title, Body: m.Phantom.Body, Final: true}
}

// MemoryItems returns the narrative items without positions.
func (m *MemoriesSpec) MemoryItems() []memory.Item {
	out := make([]memory.Item, 0, len(m.Items))
	for _, it := range m.Items {
		out = append(out, memory.Item{Title: it.Title, Body: it.Body})
	}
	return out
}

// ParseColor accepts a colornames entry ("plum") or hex ("#ffb6ff", "ffb6ff").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("prefabs: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("prefabs: invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ColorOr parses s and returns fallback when s is empty or invalid.
func ColorOr(s string, fallback color.RGBA) color.RGBA {
	if s == "" {
		return fallback
	}
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
