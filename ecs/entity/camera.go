package entity

import (
	"fmt"

	"github.com/milk9111/memorystars/ecs"
	"github.com/milk9111/memorystars/ecs/component"
	"github.com/milk9111/memorystars/focus"
	"github.com/milk9111/memorystars/prefabs"
)

func NewCamera(w *ecs.World, scene *prefabs.SceneSpec) (ecs.Entity, error) {
	ctrl := focus.NewController(scene.FocusConfig())

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Controller: ctrl,
		View:       ctrl.Camera(),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
