package cardtilt

import "github.com/hajimehoshi/ebiten/v2"

// faceKey identifies one rendered card face: the printed data, the style,
// the visible-field set, and which side.
type faceKey struct {
	data   CardData
	style  Style
	fields FieldSet
	back   bool
}

// faceCache is a bounded cache of rendered face images, owned by one
// renderer instance — never a process-wide singleton. Eviction is
// least-recently-used via a plain access counter (no atomics — cardtilt is
// single-threaded). Evicted images are deallocated so swapping styles in a
// long-lived carousel does not leak GPU textures.
type faceCache struct {
	capacity int
	entries  map[faceKey]*faceEntry
	tick     uint64
}

type faceEntry struct {
	img  *ebiten.Image
	used uint64
}

func newFaceCache(capacity int) *faceCache {
	if capacity < 1 {
		capacity = 1
	}
	return &faceCache{
		capacity: capacity,
		entries:  make(map[faceKey]*faceEntry, capacity),
	}
}

// get returns the cached image for key, or nil. A hit refreshes the entry's
// recency.
func (c *faceCache) get(key faceKey) *ebiten.Image {
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.tick++
	e.used = c.tick
	return e.img
}

// put stores an image, evicting the least recently used entry if the cache
// is full. Storing over an existing key replaces and deallocates the old
// image.
func (c *faceCache) put(key faceKey, img *ebiten.Image) {
	if old, ok := c.entries[key]; ok {
		if old.img != nil && old.img != img {
			old.img.Deallocate()
		}
		c.tick++
		old.img = img
		old.used = c.tick
		return
	}

	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.tick++
	c.entries[key] = &faceEntry{img: img, used: c.tick}
}

func (c *faceCache) evictOldest() {
	var oldestKey faceKey
	var oldest *faceEntry
	for k, e := range c.entries {
		if oldest == nil || e.used < oldest.used {
			oldestKey = k
			oldest = e
		}
	}
	if oldest == nil {
		return
	}
	if oldest.img != nil {
		oldest.img.Deallocate()
	}
	delete(c.entries, oldestKey)
}

// len reports the number of cached faces.
func (c *faceCache) len() int { return len(c.entries) }
