package main

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/system"
	"github.com/milk9111/memorystars/memory"
	"github.com/milk9111/memorystars/prefabs"
	"github.com/milk9111/memorystars/tween"
)

// Reloader applies edits to the on-disk prefabs while the game runs:
// narrative text and the heartbeat script.
type Reloader struct {
	watcher *prefabs.Watcher
	world   *ecs.World
	content string
	visuals *system.VisualSystem
}

func NewReloader(w *ecs.World, content string, visuals *system.VisualSystem) (*Reloader, error) {
	watcher, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		return nil, err
	}
	return &Reloader{watcher: watcher, world: w, content: filepath.Base(content), visuals: visuals}, nil
}

// Poll applies every change queued since the last call. It runs on the game
// loop goroutine.
func (r *Reloader) Poll() {
	for _, change := range r.watcher.Pending() {
		switch {
		case change.Kind == prefabs.ChangeSpec && change.Name == r.content:
			r.reloadContent()
		case change.Kind == prefabs.ChangeScript && change.Name == "scripts/"+prefabs.HeartbeatScript:
			r.reloadHeartbeat()
		case change.Kind == prefabs.ChangeSpec:
			log.Printf("reload: %s changed; restart to apply", change.Name)
		}
	}
	select {
	case err := <-r.watcher.Errors:
		log.Printf("reload: watcher: %v", err)
	default:
	}
}

func (r *Reloader) reloadContent() {
	mem, err := prefabs.LoadMemoriesSpec(r.content)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	err = system.ApplyContent(r.world, mem.MemoryItems(), mem.PhantomItem(), mem.Messages)
	switch {
	case errors.Is(err, memory.ErrCountChanged):
		log.Printf("reload: %s: item count changed; restart to re-layout", r.content)
	case err != nil:
		log.Printf("reload: %v", err)
	default:
		log.Printf("reload: applied %s", r.content)
	}
}

func (r *Reloader) reloadHeartbeat() {
	src, err := prefabs.LoadScript(prefabs.HeartbeatScript)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	script, err := tween.CompileScript(prefabs.HeartbeatScript, src)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	r.visuals.SetHeartbeat(&tween.Curve{Script: script, Fallback: tween.HeartbeatLevel})
	log.Printf("reload: applied %s", prefabs.HeartbeatScript)
}

func (r *Reloader) Close() {
	if err := r.watcher.Close(); err != nil {
		log.Printf("reload: close watcher: %v", err)
	}
}
