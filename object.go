package moonquakes

import "unsafe"

// objectOverhead is the heap charge for an object's bookkeeping, on top of
// whatever payload it declares.
const objectOverhead = 64

// An object is one heap allocation owned by a state. It is a placeholder
// for the real object types (tables, closures, userdata) that attach here
// once the executor exists; for now it carries only its identity, its
// accounted size, and the values it references, which is enough for the
// collector to trace.
type object struct {
	id   uintptr
	size int64
	refs []Value
}

// uniqueID returns the object's address, which is stable for its lifetime
// and distinct among live objects.
func (o *object) uniqueID() uintptr {
	return uintptr(unsafe.Pointer(o))
}

// A heap tracks every object a state owns and the approximate bytes they
// account for, against an optional limit.
type heap struct {
	limit   int64
	used    int64
	objects map[uintptr]*object
}

func newHeap(limit int64) *heap {
	return &heap{
		limit:   limit,
		objects: make(map[uintptr]*object),
	}
}

// reserve accounts n more bytes. It reports false, changing nothing, when
// the heap's limit cannot hold them.
func (h *heap) reserve(n int64) bool {
	if h.limit > 0 && h.used+n > h.limit {
		return false
	}
	h.used += n
	return true
}

// release gives back n accounted bytes.
func (h *heap) release(n int64) {
	h.used -= n
	if h.used < 0 {
		h.used = 0
	}
}

// releaseAll drops every object and all accounting. Used by Close.
func (h *heap) releaseAll() {
	h.objects = nil
	h.used = 0
}

// reserveValue accounts the heap cost of placing v on the stack. Only
// string payloads carry a cost; objects are charged once at allocation.
func (h *heap) reserveValue(v Value) bool {
	if v.kind == KindString {
		return h.reserve(int64(len(v.s)))
	}
	return true
}

// releaseValue undoes reserveValue for a slot being cleared.
func (h *heap) releaseValue(v Value) {
	if v.kind == KindString {
		h.release(int64(len(v.s)))
	}
}

// newObject allocates a placeholder heap object holding the given
// references and pushes it onto the stack. Internal until real object
// types exist; the collector and its tests exercise it.
func (s *State) newObject(payload int64, refs ...Value) (*object, error) {
	if !s.heap.reserve(objectOverhead + payload) {
		return nil, memErrorf("not enough memory for object of %d bytes", payload)
	}
	o := &object{size: objectOverhead + payload, refs: refs}
	o.id = o.uniqueID()
	s.heap.objects[o.id] = o
	s.push(objectValue(o))
	return o, nil
}
