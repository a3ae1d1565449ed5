package focalcrop

// Layout fixed container bounds plus the two crop window widths.
// Immutable for the session, passed by value into every engine call.
type Layout struct {
	ContainerWidth  float64 `json:"container_width"`
	ContainerHeight float64 `json:"container_height"`
	MobileWidth     float64 `json:"mobile_width"`
	TabletWidth     float64 `json:"tablet_width"`
}

// DefaultLayout 800x400 container with 200 mobile and 400 tablet crop windows
func DefaultLayout() Layout {
	return Layout{
		ContainerWidth:  800,
		ContainerHeight: 400,
		MobileWidth:     200,
		TabletWidth:     400,
	}
}

// FocalPoint anchor coordinate in container-local pixels
type FocalPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DragDelta cumulative pointer displacement of one completed drag gesture
type DragDelta struct {
	DX float64 `json:"delta_x"`
	DY float64 `json:"delta_y"`
}

// CropState committed focal point with both crop window offsets derived from it
type CropState struct {
	FocalPoint FocalPoint `json:"focal_point"`
	MobileLeft float64    `json:"mobile_left"`
	TabletLeft float64    `json:"tablet_left"`
}
