package colorize

import (
	"container/list"

	"logcat/internal/style"
)

// Palette is the eviction order colors start in, least recently used first.
var Palette = []style.Color{style.Red, style.Green, style.Yellow, style.Blue, style.Magenta, style.Cyan}

// Allocator hands out a color per tag, recycling the least recently used
// color once the palette runs out. Two tags may end up sharing a color.
type Allocator struct {
	known map[string]style.Color
	queue *list.List
	index map[style.Color]*list.Element
}

// NewAllocator seeds the allocator with pinned tags and the default palette.
func NewAllocator(pinned map[string]style.Color) *Allocator {
	a := &Allocator{
		known: make(map[string]style.Color, len(pinned)),
		queue: list.New(),
		index: make(map[style.Color]*list.Element, len(Palette)),
	}
	for tag, color := range pinned {
		a.known[tag] = color
	}
	for _, color := range Palette {
		if _, dup := a.index[color]; dup {
			continue
		}
		a.index[color] = a.queue.PushBack(color)
	}
	return a
}

// Allocate returns the color for tag. Unseen tags take the color at the
// front of the queue; whatever color is returned moves to the back if it is
// queued.
func (a *Allocator) Allocate(tag string) style.Color {
	color, ok := a.known[tag]
	if !ok {
		color = a.queue.Front().Value.(style.Color)
		a.known[tag] = color
	}
	if elem, queued := a.index[color]; queued {
		a.queue.MoveToBack(elem)
	}
	return color
}

// Queue returns the colors in eviction order, next victim first.
func (a *Allocator) Queue() []style.Color {
	out := make([]style.Color, 0, a.queue.Len())
	for e := a.queue.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(style.Color))
	}
	return out
}

// Lookup returns the color already assigned to tag without touching the queue.
func (a *Allocator) Lookup(tag string) (style.Color, bool) {
	color, ok := a.known[tag]
	return color, ok
}
