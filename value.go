package moonquakes

import "strconv"

// A Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNone marks the absence of a value, such as a read outside the
	// occupied stack. It is distinct from KindNil, which is a real value.
	KindNone Kind = iota
	// KindNil is the nil value.
	KindNil
	// KindBoolean is true or false.
	KindBoolean
	// KindNumber is a float64 number.
	KindNumber
	// KindString is an immutable byte string.
	KindString
	// KindObject is a reference to a heap object.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "no value"
	case KindNil:
		return "nil"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	}
	return "unknown kind " + strconv.Itoa(int(k))
}

// A Value is the content of one stack slot. The zero Value is KindNone.
// Only the variant selected by the kind is meaningful; the others hold
// their zero values.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	obj  *object
}

func nilValue() Value {
	return Value{kind: KindNil}
}

func booleanValue(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

func numberValue(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

func stringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

func objectValue(o *object) Value {
	return Value{kind: KindObject, obj: o}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// truthy applies the Lua notion of truth: everything is true except nil
// and false. An absent value is not true either.
func (v Value) truthy() bool {
	switch v.kind {
	case KindNone, KindNil:
		return false
	case KindBoolean:
		return v.b
	}
	return true
}

// String renders the value for human eyes. It is not the boundary string
// conversion; see State.ToString for that.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindObject:
		return "object: " + strconv.FormatUint(uint64(v.obj.id), 16)
	}
	return "no value"
}
