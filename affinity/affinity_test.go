package affinity

import "testing"

func TestPin_NegativeIsNoop(t *testing.T) {
	if err := Pin(-1); err != nil {
		t.Errorf("expected Pin(-1) to be a no-op, got %v", err)
	}
	Unpin()
}

func TestNumCPU_Positive(t *testing.T) {
	if NumCPU() <= 0 {
		t.Errorf("expected NumCPU() > 0, got %d", NumCPU())
	}
}

func TestPin_FirstCPU(t *testing.T) {
	if err := Pin(0); err != nil {
		t.Logf("Pin(0) failed on this platform/environment: %v", err)
	}
	Unpin()
}
