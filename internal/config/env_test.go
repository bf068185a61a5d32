package config

import "testing"

func TestLoadCLIDefaults(t *testing.T) {
	t.Setenv("BGLOGIC_SEED", "")
	t.Setenv("BGLOGIC_PLAYER1", "")

	cfg, err := LoadCLI()
	if err != nil {
		t.Fatalf("LoadCLI: %v", err)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.Player2 != "white" {
		t.Errorf("Player2 = %q, want white", cfg.Player2)
	}
}

func TestLoadCLIFromEnv(t *testing.T) {
	t.Setenv("BGLOGIC_SEED", "1234")
	t.Setenv("BGLOGIC_TRANSCRIPT", "/tmp/game.txt")
	t.Setenv("BGLOGIC_PLAYER1", "alice")

	cfg, err := LoadCLI()
	if err != nil {
		t.Fatalf("LoadCLI: %v", err)
	}
	if cfg.Seed != 1234 || cfg.Transcript != "/tmp/game.txt" || cfg.Player1 != "alice" {
		t.Errorf("LoadCLI = %+v", cfg)
	}
}

func TestLoadCLIBadSeed(t *testing.T) {
	t.Setenv("BGLOGIC_SEED", "many")
	if _, err := LoadCLI(); err == nil {
		t.Error("LoadCLI should reject a non-numeric seed")
	}
}
