package cube

// RGB is an 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Float returns the color as normalized components.
func (c RGB) Float() [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// Palette fill per face.
var faceColors = [Count]RGB{
	Front:     {0xFF, 0xFF, 0xFF},
	Music:     {0x1a, 0x1a, 0x2e},
	Building:  {0xf5, 0xe6, 0xd3},
	Community: {0xf5, 0xf5, 0xf0},
	Thinking:  {0xec, 0xec, 0xec},
	Back:      {0x00, 0x00, 0x00},
}

var (
	lightText = RGB{0xFF, 0xFF, 0xFF}
	darkText  = RGB{0x33, 0x33, 0x33}
)

// Color returns the palette fill of the face.
func (f Face) Color() RGB {
	if !f.Valid() {
		return RGB{}
	}
	return faceColors[f]
}

// LabelColor returns the text color drawn on top of Color.
func (f Face) LabelColor() RGB {
	switch f {
	case Music, Back:
		return lightText
	default:
		return darkText
	}
}
