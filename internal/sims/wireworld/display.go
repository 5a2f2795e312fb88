package wireworld

import "image/color"

var palette = []color.RGBA{
	Empty:        {R: 20, G: 12, B: 36, A: 255},
	ElectronHead: {R: 230, G: 50, B: 40, A: 255},
	ElectronTail: {R: 235, G: 235, B: 240, A: 255},
	Conductor:    {R: 240, G: 200, B: 40, A: 255},
}

// Palette exposes the colors used to render each state, indexed by State.
func (e *Engine) Palette() []color.RGBA {
	return palette
}
