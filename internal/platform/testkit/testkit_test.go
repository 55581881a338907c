package testkit

import "testing"

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	MustContain(t, "alpha beta gamma", "beta")
}

var swapTarget = 10

func TestSwap_Restores(t *testing.T) {
	t.Run("swap-in-subtest", func(t *testing.T) {
		Swap(t, &swapTarget, 42)
		if swapTarget != 42 {
			t.Fatalf("swap failed, got %d want 42", swapTarget)
		}
	})
	if swapTarget != 10 {
		t.Fatalf("swap did not restore original, got %d want 10", swapTarget)
	}
}
