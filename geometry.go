package focalcrop

// WindowLeft computes the left offset of a crop window of windowWidth
// centered on focalX, clamped to [0, containerWidth-windowWidth].
// A window wider than the container clamps to 0.
func WindowLeft(focalX, windowWidth, containerWidth float64) float64 {
	bound := containerWidth - windowWidth
	if bound < 0 {
		return 0
	}
	left := focalX - windowWidth/2
	if left < 0 {
		return 0
	}
	if left > bound {
		return bound
	}
	return left
}

// ApplyDrag transitions the focal point by one drag delta.
// The tablet window is resolved first since it is wider and hits the
// container bounds sooner. While the tablet window sits strictly inside
// the container, the focal point re-snaps to the center of the mobile
// window so both windows stay centered on it. Once the tablet window is
// pinned at either edge the provisional X is kept as-is, which lets the
// focal point travel all the way to the container edge while the windows
// stay put.
func ApplyDrag(fp FocalPoint, d DragDelta, l Layout) FocalPoint {
	x := clampAxis(fp.X+d.DX, l.ContainerWidth)
	y := clampAxis(fp.Y+d.DY, l.ContainerHeight)

	tabletLeft := WindowLeft(x, l.TabletWidth, l.ContainerWidth)
	atLeft := tabletLeft == 0
	atRight := tabletLeft == l.ContainerWidth-l.TabletWidth
	if !atLeft && !atRight {
		mobileLeft := WindowLeft(x, l.MobileWidth, l.ContainerWidth)
		x = mobileLeft + l.MobileWidth/2
	}
	// Y axis never re-snaps, the windows span the full container height
	return FocalPoint{X: x, Y: y}
}

// Project derives both crop window offsets fresh from the committed
// focal point so the rendered windows are always consistent with it.
func Project(fp FocalPoint, l Layout) CropState {
	return CropState{
		FocalPoint: fp,
		MobileLeft: WindowLeft(fp.X, l.MobileWidth, l.ContainerWidth),
		TabletLeft: WindowLeft(fp.X, l.TabletWidth, l.ContainerWidth),
	}
}

// TabletPinned reports whether the tablet window is clamped at either
// container edge for the given focal point
func TabletPinned(fp FocalPoint, l Layout) bool {
	tabletLeft := WindowLeft(fp.X, l.TabletWidth, l.ContainerWidth)
	return tabletLeft == 0 || tabletLeft == l.ContainerWidth-l.TabletWidth
}

// CenterFocal session-start focal point at the container center
func CenterFocal(l Layout) FocalPoint {
	return FocalPoint{X: l.ContainerWidth / 2, Y: l.ContainerHeight / 2}
}

func clampAxis(v, bound float64) float64 {
	if v < 0 {
		return 0
	}
	if v > bound {
		return bound
	}
	return v
}
