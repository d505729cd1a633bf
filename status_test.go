package moonquakes

import (
	"errors"
	"fmt"
	"testing"
)

// TestStatusValues tests that the outcome codes keep the values the C
// boundary fixed for them.
func TestStatusValues(t *testing.T) {
	want := map[Status]int{
		StatusOK:        0,
		StatusYield:     1,
		StatusErrRun:    2,
		StatusErrSyntax: 3,
		StatusErrMem:    4,
		StatusErrErr:    5,
		StatusErrFile:   6,
	}
	for st, v := range want {
		if int(st) != v {
			t.Errorf("%v = %d, want %d", st, int(st), v)
		}
	}
}

// TestStatusStrings tests that every code renders a distinct, non-empty
// name.
func TestStatusStrings(t *testing.T) {
	all := []Status{
		StatusOK, StatusYield, StatusErrRun, StatusErrSyntax,
		StatusErrMem, StatusErrErr, StatusErrFile,
	}
	seen := make(map[string]Status, len(all))
	for _, st := range all {
		name := st.String()
		if name == "" {
			t.Errorf("status %d has empty name", int(st))
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("status %d and %d share name %q", int(prev), int(st), name)
		}
		seen[name] = st
	}
}

// TestStatusOf tests the mapping from boundary errors into the code
// space.
func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Status
	}{
		{"Nil", nil, StatusOK},
		{"Run", runErrorf("boom"), StatusErrRun},
		{"Mem", memErrorf("oom"), StatusErrMem},
		{"Foreign", errors.New("boom"), StatusErrRun},
		{"Wrapped", fmt.Errorf("outer: %w", memErrorf("oom")), StatusErrMem},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StatusOf(c.err); got != c.want {
				t.Fatalf("StatusOf = %v, want %v", got, c.want)
			}
		})
	}
}
