// Command layout prints the computed spiral layout as yaml: item positions,
// the phantom point and the trail length.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/milk9111/memorystars/prefabs"
	"github.com/milk9111/memorystars/spiral"
	"gopkg.in/yaml.v3"
)

type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type itemOut struct {
	Index    int    `yaml:"index"`
	Title    string `yaml:"title"`
	Position point  `yaml:"position"`
}

type layoutOut struct {
	Items       []itemOut `yaml:"items"`
	Phantom     point     `yaml:"phantom"`
	Divisions   int       `yaml:"divisions"`
	TrailLength float64   `yaml:"trail_length"`
}

func main() {
	content := flag.String("content", prefabs.MemoriesFile, "memories file in prefabs/")
	divisions := flag.Int("divisions", 0, "trail samples (0 uses scene.yaml)")
	flag.Parse()

	scene, err := prefabs.LoadSceneSpec()
	if err != nil {
		log.Fatalf("layout: load scene: %v", err)
	}
	mem, err := prefabs.LoadMemoriesSpec(*content)
	if err != nil {
		log.Fatalf("layout: load %s: %v", *content, err)
	}

	layout, err := spiral.Build(scene.SpiralParams(), mem.MemoryItems())
	if err != nil {
		log.Fatalf("layout: %v", err)
	}

	div := *divisions
	if div <= 0 {
		div = scene.Trail.Divisions
	}
	if div <= 0 {
		div = spiral.DefaultDivisions
	}
	lengths := spiral.NewCurve(layout).Lengths(div)

	out := layoutOut{
		Phantom:     point{layout.Phantom.X, layout.Phantom.Y, layout.Phantom.Z},
		Divisions:   div,
		TrailLength: lengths[len(lengths)-1],
	}
	for i, it := range layout.Items {
		out.Items = append(out.Items, itemOut{
			Index:    i,
			Title:    it.Title,
			Position: point{it.Position.X, it.Position.Y, it.Position.Z},
		})
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		log.Fatalf("layout: encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		log.Fatalf("layout: encode: %v", err)
	}
}
