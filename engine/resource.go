package engine

// ResourceTracker accounts for renderable resources (geometry/material
// equivalents) owned by nodes, particles and ripples. Every entity acquires
// exactly one handle at creation and must release it exactly once at
// retirement or forced clear. Leaks and double releases are both defects;
// the tracker makes either visible to tests
type ResourceTracker struct {
	acquired       int64
	released       int64
	doubleReleases int64
}

// NewResourceTracker creates an empty tracker
func NewResourceTracker() *ResourceTracker {
	return &ResourceTracker{}
}

// Handle is a release-once token for one renderable resource
type Handle struct {
	tracker  *ResourceTracker
	released bool
}

// Acquire hands out a new live handle
func (t *ResourceTracker) Acquire() *Handle {
	t.acquired++
	return &Handle{tracker: t}
}

// Release frees the handle. The second and later calls are counted as
// double releases and otherwise ignored
func (h *Handle) Release() {
	if h == nil {
		return
	}
	if h.released {
		h.tracker.doubleReleases++
		return
	}
	h.released = true
	h.tracker.released++
}

// Live returns the number of unreleased handles
func (t *ResourceTracker) Live() int64 {
	return t.acquired - t.released
}

// DoubleReleases returns the number of redundant release calls observed
func (t *ResourceTracker) DoubleReleases() int64 {
	return t.doubleReleases
}
