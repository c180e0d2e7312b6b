package component

import "github.com/milk9111/memorystars/common"

type Transform struct {
	Position common.Vec3
	Scale    float64
}

var TransformComponent = NewComponent[Transform]()
