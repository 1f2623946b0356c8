// Package leveldata provides TMX landing site parsing.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// Site holds the geometry of one landing site parsed from a TMX file.
type Site struct {
	Name  string // file stem
	Title string // display name, from the spawn object's name

	MapWidth  int
	MapHeight int

	// FloorY is the top edge of the floor.
	FloorY     float64
	FloorX     float64
	FloorWidth float64

	// The pad is a strip on the floor; touchdown is judged on X only.
	PadX      float64
	PadY      float64
	PadWidth  float64
	PadHeight float64

	SpawnX float64
	SpawnY float64
}

// PadCenter returns the x coordinate of the pad's midpoint.
func (s *Site) PadCenter() float64 {
	return s.PadX + s.PadWidth/2
}

// FloorHeight returns the floor's extent from FloorY down to the bottom of
// the map, never less than one pixel.
func (s *Site) FloorHeight() float64 {
	h := float64(s.MapHeight) - s.FloorY
	if h < 1 {
		return 1
	}
	return h
}
