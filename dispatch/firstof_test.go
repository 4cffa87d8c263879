package dispatch

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type (
	first  struct{}
	second struct{}
	third  struct{}
)

type named string

func (n named) String() string { return string(n) }

func mustFirstOf(t *testing.T, d *Dispatcher, candidates ...any) *Overloads {
	t.Helper()
	o, err := d.FirstOf(candidates...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return o
}

func TestFirstOf_Basics(t *testing.T) {
	f := mustFirstOf(t, Default,
		func(first) int { return 1 },
		func(second) int { return 2 },
		func(third) int { return 3 },
	)

	tests := []struct {
		in   any
		want int
	}{
		{first{}, 1},
		{second{}, 2},
		{third{}, 3},
	}

	for _, tt := range tests {
		out, err := f.Call(tt.in)
		if err != nil {
			t.Fatalf("%T: unexpected error %v", tt.in, err)
		}
		if out[0] != tt.want {
			t.Errorf("%T: expected %d, got %v", tt.in, tt.want, out[0])
		}
	}
}

func TestFirstOf_OnlyFirstMatchRuns(t *testing.T) {
	var calls []string
	f := mustFirstOf(t, Default,
		func(s fmt.Stringer) { calls = append(calls, "stringer") },
		func(n named) { calls = append(calls, "named") },
		func(v any) { calls = append(calls, "any") },
	)

	if _, err := f.Call(named("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.Call(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Join(calls, ",") != "stringer,any" {
		t.Errorf("expected 'stringer,any', got %q", calls)
	}
}

func TestFirstOf_DeletedOverload(t *testing.T) {
	f := mustFirstOf(t, Default,
		func(first) int { return 1 },
		Deleted(func(second) int { return 2 }),
		func(third) int { return 3 },
	)

	if f.Invocable(second{}) {
		t.Error("deleted shape should not be invocable")
	}
	if Invocable(f, second{}) {
		t.Error("deleted shape should not be invocable through Invoke")
	}
	if _, err := f.Call(second{}); !errors.Is(err, ErrDeleted) {
		t.Errorf("expected ErrDeleted, got %v", err)
	}
	if out, _ := f.Call(first{}); out[0] != 1 {
		t.Errorf("expected 1, got %v", out[0])
	}
	if out, _ := f.Call(third{}); out[0] != 3 {
		t.Errorf("expected 3, got %v", out[0])
	}
}

func TestFirstOf_DeletedDoesNotFallThrough(t *testing.T) {
	called := false
	f := mustFirstOf(t, Default,
		Deleted(func(int) string { return "int" }),
		func(any) string { called = true; return "any" },
	)

	if _, err := f.Call(1); !errors.Is(err, ErrDeleted) {
		t.Errorf("expected ErrDeleted, got %v", err)
	}
	if called {
		t.Error("later candidates must not run")
	}
	if out, _ := f.Call("x"); out[0] != "any" {
		t.Errorf("expected 'any', got %v", out[0])
	}
}

func TestFirstOf_ImplicitConversions(t *testing.T) {
	candidates := []any{
		func(float64) int { return 1 },
		Deleted(func(int) int { return 2 }),
		func(third) int { return 3 },
	}

	strict := mustFirstOf(t, Default, candidates...)
	if _, err := strict.Call(1); !errors.Is(err, ErrDeleted) {
		t.Errorf("strict: expected ErrDeleted, got %v", err)
	}
	if out, _ := strict.Call(1.5); out[0] != 1 {
		t.Errorf("strict: expected 1, got %v", out[0])
	}

	// With conversions the float64 candidate swallows ints first.
	loose := mustFirstOf(t, New(WithConversions()), candidates...)
	if !loose.Invocable(1) {
		t.Error("loose: expected int to be invocable")
	}
	if out, _ := loose.Call(1); out[0] != 1 {
		t.Errorf("loose: expected 1, got %v", out[0])
	}
	if out, _ := loose.Call(third{}); out[0] != 3 {
		t.Errorf("loose: expected 3, got %v", out[0])
	}
}

func TestFirstOf_NoMatch(t *testing.T) {
	f := mustFirstOf(t, Default, func(first) int { return 1 })

	_, err := f.Call("x")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "string") {
		t.Errorf("expected the argument types in %q", err)
	}
}

func TestFirstOf_Select(t *testing.T) {
	f := mustFirstOf(t, Default,
		func(int, int) string { return "two" },
		func(int) string { return "one" },
		Deleted(func() string { return "none" }),
	)

	tests := []struct {
		args []any
		want int
		err  error
	}{
		{[]any{1, 2}, 0, nil},
		{[]any{1}, 1, nil},
		{nil, 2, ErrDeleted},
		{[]any{1, 2, 3}, -1, ErrNoMatch},
	}

	for _, tt := range tests {
		i, err := f.Select(tt.args...)
		if i != tt.want {
			t.Errorf("Select(%v): expected %d, got %d", tt.args, tt.want, i)
		}
		if !errors.Is(err, tt.err) {
			t.Errorf("Select(%v): expected %v, got %v", tt.args, tt.err, err)
		}
	}
	if f.Len() != 3 {
		t.Errorf("expected 3 candidates, got %d", f.Len())
	}
}

func TestFirstOf_Nested(t *testing.T) {
	inner := mustFirstOf(t, Default,
		func(first) string { return "inner first" },
		Deleted(func(second) string { return "inner second" }),
	)
	outer := mustFirstOf(t, Default,
		inner,
		func(any) string { return "outer" },
	)

	if out, _ := outer.Call(first{}); out[0] != "inner first" {
		t.Errorf("expected 'inner first', got %v", out[0])
	}
	// A shape deleted inside the nested set is not invocable there, so the
	// outer set moves on.
	if out, _ := outer.Call(second{}); out[0] != "outer" {
		t.Errorf("expected 'outer', got %v", out[0])
	}
}

func TestFirstOf_MemberCandidates(t *testing.T) {
	f := mustFirstOf(t, Default,
		FieldOf("Label"),
		Method("Area"),
	)

	if out, _ := f.Call(labeled{Label: "l"}); out[0] != "l" {
		t.Errorf("expected 'l', got %v", out[0])
	}
	if out, _ := f.Call(&rect{W: 2, H: 2}); out[0] != 4.0 {
		t.Errorf("expected 4, got %v", out[0])
	}
}

func TestFirstOf_Errors(t *testing.T) {
	if _, err := FirstOf(); !errors.Is(err, ErrArity) {
		t.Errorf("expected ErrArity, got %v", err)
	}
	if _, err := FirstOf(func() {}, 42); !errors.Is(err, ErrNotCallable) {
		t.Errorf("expected ErrNotCallable, got %v", err)
	}
	if _, err := FirstOf(Deleted(nil)); !errors.Is(err, ErrNotCallable) {
		t.Errorf("expected ErrNotCallable, got %v", err)
	}
}

func TestFirstOf_Logger(t *testing.T) {
	var logs []string
	d := New(WithLogger(func(msg string) { logs = append(logs, msg) }))
	f := mustFirstOf(t, d,
		func(first) int { return 1 },
		Deleted(func(second) int { return 2 }),
	)

	f.Call(first{})
	f.Call(second{})

	if len(logs) != 2 {
		t.Fatalf("expected 2 log lines, got %q", logs)
	}
	if !strings.Contains(logs[0], "candidate 0") || !strings.Contains(logs[0], "selected for (dispatch.first)") {
		t.Errorf("unexpected selection log %q", logs[0])
	}
	if !strings.Contains(logs[1], "candidate 1") || !strings.Contains(logs[1], "is deleted") {
		t.Errorf("unexpected deletion log %q", logs[1])
	}
}

func TestFirstOf_AsFunc(t *testing.T) {
	f := mustFirstOf(t, Default,
		func(n int) int { return n * 2 },
		func(s string) int { return len(s) },
	)

	composed, err := Compose(func(n int) bool { return n > 3 }, f.Func())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out, _ := composed(2); out[0] != true {
		t.Error("expected 2*2 > 3")
	}
	if out, _ := composed("ab"); out[0] != false {
		t.Error("expected len(ab) <= 3")
	}
}

func TestFirstOf_PointerArguments(t *testing.T) {
	n := 5

	f := mustFirstOf(t, Default,
		func(int) string { return "int" },
		func(*int) string { return "ptr" },
	)
	if out, err := f.Call(&n); err != nil || out[0] != "ptr" {
		t.Errorf("expected the exact *int candidate, got %v (%v)", out, err)
	}
	if out, _ := f.Call(n); out[0] != "int" {
		t.Errorf("expected 'int', got %v", out[0])
	}

	guarded := mustFirstOf(t, Default,
		Deleted(func(int) string { return "int" }),
		func(*int) string { return "ptr" },
	)
	if out, err := guarded.Call(&n); err != nil || out[0] != "ptr" {
		t.Errorf("a deleted int candidate must not capture *int, got %v (%v)", out, err)
	}
	if _, err := guarded.Call(n); !errors.Is(err, ErrDeleted) {
		t.Errorf("expected ErrDeleted, got %v", err)
	}
}

func TestFirstOf_ReceiverCandidates(t *testing.T) {
	r := rect{W: 2, H: 3}
	f := mustFirstOf(t, Default,
		func(*rect) string { return "pointer" },
		Receiver(func(r rect) string { return "receiver" }),
	)

	if out, _ := f.Call(&r); out[0] != "pointer" {
		t.Errorf("expected 'pointer', got %v", out[0])
	}
	if out, _ := f.Call(box[rect]{v: &r}); out[0] != "receiver" {
		t.Errorf("expected 'receiver', got %v", out[0])
	}
}

func TestFirstOf_CurriedCandidate(t *testing.T) {
	add, _ := Curry(func(x, y int) int { return x + y })
	inc, _ := add.Apply(1)

	f := mustFirstOf(t, Default,
		inc,
		func(s string) int { return len(s) },
	)

	if out, _ := f.Call(2); out[0] != 3 {
		t.Errorf("expected 3, got %v", out[0])
	}
	if out, _ := f.Call("abcd"); out[0] != 4 {
		t.Errorf("expected 4, got %v", out[0])
	}

	plus10, err := BindFront(add, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out, _ := plus10(5); out[0] != 15 {
		t.Errorf("expected 15, got %v", out[0])
	}
}
