package orrery

// ShapeID identifies a shape created on a Surface.
type ShapeID int

// Surface is the drawing collaborator the orrery renders onto. Coordinates
// are viewport units with the origin at the top-left corner.
//
// Every shape returned by a create call is removed again on Teardown, and the
// frame callback is cancelled, so a Surface never holds state for an orrery
// that has been torn down.
type Surface interface {
	// Circle creates a filled disk.
	Circle(cx, cy, r float64, fill string) ShapeID
	// Ellipse creates an unfilled, dashed outline.
	Ellipse(cx, cy, rx, ry float64, stroke string) ShapeID
	// Text creates a label centred horizontally on (x, y).
	Text(x, y float64, content string) ShapeID

	// Move sets a shape's anchor point.
	Move(id ShapeID, x, y float64)
	// PlaceBefore reorders id to draw immediately before sibling, so that
	// sibling occludes it.
	PlaceBefore(id, sibling ShapeID)
	// BringToFront reorders id to draw after every other shape.
	BringToFront(id ShapeID)
	// Remove destroys a shape.
	Remove(id ShapeID)

	// OnPointer subscribes to pointer enter and leave events on a shape.
	OnPointer(id ShapeID, enter, leave func())
	// OffPointer drops the subscription made by OnPointer.
	OffPointer(id ShapeID)

	// OnFrame registers fn to run once per animation frame until the
	// returned cancel func is called.
	OnFrame(fn func()) (cancel func())
}
