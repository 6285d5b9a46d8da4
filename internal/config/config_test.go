package config

import "testing"

func TestLoadFallsBackToDefaults(t *testing.T) {
	// No config file exists relative to the test's working directory, so
	// Load must return a usable config, not an error.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected a config")
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.RoomCapacity != 4 {
		t.Errorf("expected default room capacity 4, got %d", cfg.RoomCapacity)
	}
	if cfg.MediaPeers != 2 {
		t.Errorf("expected default media peers 2, got %d", cfg.MediaPeers)
	}
	if cfg.PendingSignals != 8 {
		t.Errorf("expected default pending signals 8, got %d", cfg.PendingSignals)
	}
}
