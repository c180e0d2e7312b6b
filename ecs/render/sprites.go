package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const glowSize = 64

// images caches generated sprites by key.
var images = map[string]*ebiten.Image{}

func cachedImage(key string, build func() *ebiten.Image) *ebiten.Image {
	if img, ok := images[key]; ok {
		return img
	}
	img := build()
	images[key] = img
	return img
}

// GlowImage returns a white radial falloff, opaque at the center and clear
// at the edge. Tint it with ColorScale.
func GlowImage() *ebiten.Image {
	return cachedImage(fmt.Sprintf("glow:%d", glowSize), func() *ebiten.Image {
		return ebiten.NewImageFromImage(radialFalloff(glowSize, 2))
	})
}

// radialFalloff renders a size x size premultiplied alpha disc whose alpha
// drops as (1-r)^power.
func radialFalloff(size int, power float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			r := math.Sqrt(dx*dx+dy*dy) / c
			if r >= 1 {
				continue
			}
			a := uint8(math.Pow(1-r, power) * 0xff)
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	return img
}
