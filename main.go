package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/memorystars/ecs/entity"
	"github.com/milk9111/memorystars/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (overlay stats, prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mobile := flag.Bool("mobile", false, "use the screen-center ray for selection, as on touch devices")
	content := flag.String("content", prefabs.MemoriesFile, "memories file in prefabs/")
	flag.Parse()

	if os.Getenv("MOBILE") != "" {
		*mobile = true
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	scene, err := prefabs.LoadSceneSpec()
	if err != nil {
		log.Fatalf("main: load scene: %v", err)
	}
	mem, err := prefabs.LoadMemoriesSpec(*content)
	if err != nil {
		log.Fatalf("main: load %s: %v", *content, err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("memory stars")

	game, err := NewGame(scene, mem, *content, entity.Options{Mobile: *mobile, Debug: *debug})
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
