package views

// Rect is a screen rectangle in terminal cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a clickable area carrying a grid slot
type Region struct {
	Rect Rect
	Slot int
}

// HitMap resolves mouse coordinates to grid slots
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region. Later regions win where regions overlap.
func (h *HitMap) Add(slot int, r Rect) {
	h.regions = append(h.regions, Region{Rect: r, Slot: slot})
}

// Clear removes all regions
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Test returns the slot under (x, y)
func (h *HitMap) Test(x, y int) (int, bool) {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return h.regions[i].Slot, true
		}
	}
	return 0, false
}

// Regions returns a copy of the registered regions
func (h *HitMap) Regions() []Region {
	out := make([]Region, len(h.regions))
	copy(out, h.regions)
	return out
}
