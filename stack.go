package moonquakes

// Top returns the number of occupied slots in the state's value stack.
// It is a pure query; a fresh state reports 0.
func (s *State) Top() int {
	return len(s.stack)
}

// SetTop sets the occupied slot count to exactly n. When n is larger than
// the current top, the newly exposed slots hold nil; when it is smaller,
// the slots at or above index n are cleared so whatever they referenced
// becomes collectable.
//
// A negative n addresses the top relative to the current count: the new
// top is top+n+1, so -1 leaves the stack unchanged and -(k+1) removes the
// top k entries. A target below zero is rejected with a StatusErrRun
// error and the stack is left untouched.
func (s *State) SetTop(n int) error {
	top := len(s.stack)
	if n < 0 {
		n = top + n + 1
		if n < 0 {
			return runErrorf("stack underflow: top %d cannot drop %d entries", top, top-n)
		}
	}
	if n <= top {
		for i := n; i < top; i++ {
			s.heap.releaseValue(s.stack[i])
			s.stack[i] = Value{}
		}
		s.stack = s.stack[:n]
		return nil
	}
	for i := top; i < n; i++ {
		s.stack = append(s.stack, nilValue())
	}
	return nil
}

// Pop removes the top n entries from the stack. It is the same operation
// as SetTop(-n-1), so popping more entries than the stack holds is
// rejected and leaves the stack unchanged.
func (s *State) Pop(n int) error {
	return s.SetTop(-n - 1)
}

func (s *State) push(v Value) {
	s.stack = append(s.stack, v)
}

// PushNil pushes the nil value.
func (s *State) PushNil() {
	s.push(nilValue())
}

// PushBoolean pushes b.
func (s *State) PushBoolean(b bool) {
	s.push(booleanValue(b))
}

// PushNumber pushes the number n.
func (s *State) PushNumber(n float64) {
	s.push(numberValue(n))
}

// PushString pushes str. The string's bytes are charged against the
// state's memory limit; under exhaustion the push is rejected with a
// StatusErrMem error and the stack is unchanged.
func (s *State) PushString(str string) error {
	v := stringValue(str)
	if !s.heap.reserveValue(v) {
		return memErrorf("not enough memory for string of %d bytes", len(str))
	}
	s.push(v)
	return nil
}

// valueAt resolves a boundary index to a stack slot. Positive indexes
// count from 1 at the bottom; negative indexes count back from the top.
// Anything outside the occupied range resolves to the absent value.
func (s *State) valueAt(idx int) Value {
	top := len(s.stack)
	switch {
	case idx > 0 && idx <= top:
		return s.stack[idx-1]
	case idx < 0 && -idx <= top:
		return s.stack[top+idx]
	}
	return Value{}
}

// Type reports the kind of the value at idx. Indexes outside the occupied
// stack report KindNone.
func (s *State) Type(idx int) Kind {
	return s.valueAt(idx).Kind()
}

// IsNil reports whether the value at idx is nil. An absent value is not
// nil.
func (s *State) IsNil(idx int) bool {
	return s.valueAt(idx).Kind() == KindNil
}

// ToBoolean converts the value at idx to a boolean: nil and false are
// false, every other value is true. An absent value is false.
func (s *State) ToBoolean(idx int) bool {
	return s.valueAt(idx).truthy()
}

// ToNumber returns the number at idx. The second result reports whether
// the slot actually held a number.
func (s *State) ToNumber(idx int) (float64, bool) {
	v := s.valueAt(idx)
	if v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

// ToString returns the string at idx. The second result reports whether
// the slot actually held a string.
func (s *State) ToString(idx int) (string, bool) {
	v := s.valueAt(idx)
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}
