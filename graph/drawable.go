package graph

// Drawable is a layer that can contribute one rune per cell
type Drawable interface {
	// PrepareFrame runs once per frame before any SampleAt call
	// Layers may rebuild caches here but must not read other layers' state
	PrepareFrame(size Size, scaleFactor float64, offset Coord)

	// SampleAt returns the rune drawn at a cell, or false to let lower layers show
	// Both representations of the same cell are supplied; must not mutate state
	SampleAt(graph, term Coord) (rune, bool)
}
