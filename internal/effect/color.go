package effect

import (
	"image/color"

	"node-zero/internal/component"
	"node-zero/internal/config"
)

// ShapeColor is the palette entry of a node shape.
func ShapeColor(shape component.NodeShape) color.RGBA {
	if int(shape) < 0 || int(shape) >= len(config.ShapeColors) {
		return config.TextLightColor
	}
	return config.ShapeColors[shape]
}
