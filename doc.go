/*
Package moonquakes implements the embedding boundary of Moonquakes, a
clean-room interpretation of the Lua 5.4 language.

Moonquakes is written with clarity, structural boundaries, and explicit
ownership as primary design goals. This package is the seam between host
programs and the runtime: the interpreter state, the value stack it owns,
and the hook that triggers garbage collection. Every future subsystem
(lexer, parser, bytecode compiler and executor, standard library) attaches
behind this boundary; hosts never depend on internal representation.

To start, use New to create an interpreter state:

	L := moonquakes.New()
	if L == nil {
		// allocation failed; there is no usable state
	}
	defer L.Close()

The state owns a value stack used to pass values across the boundary.
Values are pushed with PushNil, PushBoolean, PushNumber, and PushString,
read back with Type, ToBoolean, ToNumber, and ToString, and discarded with
Pop or SetTop. Stack slots are addressed with 1-based indexes from the
bottom or negative indexes from the top, so -1 is always the most recently
pushed value.

Collect forces a full, synchronous collection cycle over every heap object
reachable from the state. It never alters reachable values and is safe to
call at any time the state is valid, including immediately after New.

A State and everything it owns belong to exactly one logical owner at a
time. The package defines no internal locking: accessing one State from
multiple goroutines without external synchronization is a host error.
Distinct states are fully independent and may be used concurrently.
*/
package moonquakes
