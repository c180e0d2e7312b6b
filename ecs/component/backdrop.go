package component

import "github.com/milk9111/memorystars/common"

// Backdrop is the slowly turning field of distant stars.
type Backdrop struct {
	Points   []common.Vec3
	Rotation float64
	Spin     float64
}

var BackdropComponent = NewComponent[Backdrop]()
