package control

import "testing"

func TestSurface_ConfigAndStats(t *testing.T) {
	s := NewSurface()

	s.SetConfig(map[string]any{"max_threads": 8})
	cfg := s.GetConfig()
	if cfg["max_threads"] != 8 {
		t.Errorf("expected max_threads=8, got %v", cfg["max_threads"])
	}

	s.SetStat("active_threads", 3)
	stats := s.Stats()
	if stats["active_threads"] != 3 {
		t.Errorf("expected active_threads=3, got %v", stats["active_threads"])
	}
}

func TestSurface_Health(t *testing.T) {
	s := NewSurface()
	if !s.Healthy() {
		t.Errorf("expected new surface to be healthy")
	}
	s.MarkUnhealthy()
	if s.Healthy() {
		t.Errorf("expected surface to be unhealthy after MarkUnhealthy")
	}
}

func TestSurface_DebugProbes(t *testing.T) {
	s := NewSurface()
	s.RegisterDebugProbe("answer", func() any { return 42 })

	dump := s.DumpState()
	if dump["answer"] != 42 {
		t.Errorf("expected probe answer=42, got %v", dump["answer"])
	}
	if _, ok := dump["runtime.cpus"]; !ok {
		t.Errorf("expected default runtime.cpus probe to be present")
	}
}
