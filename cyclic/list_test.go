package cyclic

import "testing"

func TestListWrapsAtEnd(t *testing.T) {
	l := New([]string{"a", "b", "c"})

	want := []string{"a", "b", "c", "a", "b"}
	for i, w := range want {
		got, ok := l.Cur()
		if !ok || got != w {
			t.Fatalf("step %d: got %q (ok=%v), want %q", i, got, ok, w)
		}
		l.Next()
	}
}

func TestListReset(t *testing.T) {
	l := New([]int{1, 2, 3})
	l.Next()
	l.Next()

	l.Reset()
	if got, _ := l.Cur(); got != 1 {
		t.Errorf("Cur after Reset = %d, want 1", got)
	}
}

func TestListEmpty(t *testing.T) {
	l := New[string](nil)

	if _, ok := l.Cur(); ok {
		t.Error("Cur on empty list reported ok")
	}
	if _, ok := l.Next(); ok {
		t.Error("Next on empty list reported ok")
	}
	if l.Len() != 0 {
		t.Errorf("Len = %d, want 0", l.Len())
	}
}

func TestListCopiesInput(t *testing.T) {
	src := []string{"x", "y"}
	l := New(src)
	src[0] = "mutated"

	if got, _ := l.Cur(); got != "x" {
		t.Errorf("Cur = %q, want %q", got, "x")
	}
}
