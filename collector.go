package moonquakes

import "github.com/zephyrtronium/contains"

// Moonquakes owns its heap explicitly rather than leaning on Go's
// collector, so object lifetime is decided here: a full cycle marks
// everything reachable from the value stack and sweeps the rest.

// GCStats describes the work the collector has done for one state.
type GCStats struct {
	// Cycles is the number of full collection cycles run.
	Cycles int
	// Swept is the total number of objects reclaimed over the state's
	// lifetime.
	Swept int
	// Live is the number of heap objects that survived the most recent
	// cycle, or the current object count if no cycle has run.
	Live int
}

// Collect forces a full, synchronous collection cycle: every heap object
// unreachable from the state's stack is reclaimed and its bytes given
// back. Reachable values are never altered, so consecutive cycles observe
// the same stack. Safe at any time the state is valid, including on a
// fresh state whose heap is empty.
func (s *State) Collect() {
	set := contains.Set{}
	var work []*object
	for _, v := range s.stack {
		if v.kind == KindObject && set.Add(v.obj.id) {
			work = append(work, v.obj)
		}
	}
	for len(work) > 0 {
		o := work[len(work)-1]
		work = work[:len(work)-1]
		for _, r := range o.refs {
			if r.kind == KindObject && set.Add(r.obj.id) {
				work = append(work, r.obj)
			}
		}
	}
	for id, o := range s.heap.objects {
		// Add reports true only for ids the mark phase never saw.
		if set.Add(id) {
			delete(s.heap.objects, id)
			s.heap.release(o.size)
			s.gc.Swept++
		}
	}
	s.gc.Cycles++
	s.gc.Live = len(s.heap.objects)
}

// Stats reports the collector's counters for this state.
func (s *State) Stats() GCStats {
	st := s.gc
	if st.Cycles == 0 {
		st.Live = len(s.heap.objects)
	}
	return st
}
