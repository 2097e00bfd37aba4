package sketch

import "fmt"

// layerStack is the ordered layer list, bottom first. The active layer is
// tracked by identity so it survives reordering.
type layerStack struct {
	layers []*layer
	active LayerID
}

func (s *layerStack) len() int {
	return len(s.layers)
}

// at returns the layer at index i. The index must be valid.
func (s *layerStack) at(i int) *layer {
	return s.layers[i]
}

// indexOf returns the index of the layer with the given id, or -1.
func (s *layerStack) indexOf(id LayerID) int {
	for i, l := range s.layers {
		if l.id == id {
			return i
		}
	}
	return -1
}

// mustIndex returns the index of id. A missing id means a history entry or
// the active pointer refers to a layer that no longer exists.
func (s *layerStack) mustIndex(id LayerID) int {
	i := s.indexOf(id)
	if i < 0 {
		panic(fmt.Sprintf("sketch: unknown layer %s", id))
	}
	return i
}

func (s *layerStack) byID(id LayerID) *layer {
	return s.layers[s.mustIndex(id)]
}

func (s *layerStack) activeIndex() int {
	return s.mustIndex(s.active)
}

func (s *layerStack) activeLayer() *layer {
	return s.byID(s.active)
}

// checkIndex validates i for op.
func (s *layerStack) checkIndex(op string, i int) error {
	if i < 0 || i >= len(s.layers) {
		return indexError(op, i, len(s.layers))
	}
	return nil
}

// insert places l at index i, shifting later layers up. i may equal len.
func (s *layerStack) insert(i int, l *layer) {
	s.layers = append(s.layers, nil)
	copy(s.layers[i+1:], s.layers[i:])
	s.layers[i] = l
}

// remove deletes and returns the layer at index i.
func (s *layerStack) remove(i int) *layer {
	l := s.layers[i]
	copy(s.layers[i:], s.layers[i+1:])
	s.layers[len(s.layers)-1] = nil
	s.layers = s.layers[:len(s.layers)-1]
	return l
}

// move takes the layer at from and reinserts it at to.
func (s *layerStack) move(from, to int) {
	l := s.remove(from)
	s.insert(to, l)
}

// reset replaces the whole stack.
func (s *layerStack) reset(layers []*layer, active LayerID) {
	s.layers = layers
	s.active = active
}
