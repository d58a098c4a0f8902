package debug

import "testing"

func TestAssert(t *testing.T) {
	t.Parallel()

	// a true condition never panics
	Assert(true, "unused %d", 1)

	defer func() {
		r := recover()
		if Enabled && r == nil {
			t.Error("expected panic from failed assertion in debug build")
		}
		if !Enabled && r != nil {
			t.Errorf("unexpected panic without debug tag: %v", r)
		}
	}()
	Assert(false, "idx %d", 3)
}
