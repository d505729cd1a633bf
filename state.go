package moonquakes

// version is the identifying string for this runtime build. It never
// changes at runtime.
const version = "Moonquakes 0.1.1"

// minStack is the slot capacity a new state's stack starts with, matching
// the room Lua guarantees a fresh C call.
const minStack = 20

// stateFootprint is the baseline heap charge for the state itself: the
// stack header, the heap bookkeeping, and the initial slot array. A memory
// limit smaller than this cannot hold a state at all.
const stateFootprint = 512

// A State is one isolated interpreter instance. It owns exactly one value
// stack and one managed heap; no two live states share either. All methods
// assume single-threaded access per state.
type State struct {
	stack  []Value
	heap   *heap
	gc     GCStats
	closed bool
}

// An Option adjusts how New builds a state.
type Option func(*config)

type config struct {
	memLimit int64
}

// WithMemoryLimit caps the number of heap bytes the state may account,
// including its own baseline footprint. A limit of 0 (the default) means
// unlimited. New fails when the limit cannot hold even the baseline.
func WithMemoryLimit(n int64) Option {
	return func(c *config) { c.memLimit = n }
}

// New creates a fully initialized interpreter state with an empty value
// stack and an empty heap. It returns nil when allocation cannot be
// satisfied; a nil handle is the only failure mode, and no partially
// initialized state is ever returned.
func New(opts ...Option) *State {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	h := newHeap(cfg.memLimit)
	if !h.reserve(stateFootprint) {
		return nil
	}
	return &State{
		stack: make([]Value, 0, minStack),
		heap:  h,
	}
}

// Close releases every resource the state owns: its stack storage and all
// heap objects. Closing a nil state is a no-op, as is closing the same
// state twice. After Close the handle must not be used for any other
// operation; that precondition is the host's to keep, not re-validated
// here.
func (s *State) Close() {
	if s == nil || s.closed {
		return
	}
	s.stack = nil
	s.heap.releaseAll()
	s.closed = true
}

// Version returns the identifying string for the runtime build. It is pure,
// has no side effects, and needs no state; every call returns the same
// value.
func Version() string {
	return version
}
