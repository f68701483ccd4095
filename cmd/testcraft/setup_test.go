package main

import (
	"testing"

	"github.com/vovakirdan/testcraft/internal/storage"
)

func TestParseDifficultyArg(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, "", false},
		{[]string{"easy"}, "easy", false},
		{[]string{"fixed"}, "fixed", false},
		{[]string{storage.DefaultDifficulty}, storage.DefaultDifficulty, false},
		{[]string{"insane"}, "", true},
	}

	for _, tt := range tests {
		got, err := parseDifficultyArg(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDifficultyArg(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDifficultyArg(%v) = %q, expected %q", tt.args, got, tt.want)
		}
	}
}

func TestGameConfigPreset(t *testing.T) {
	t.Cleanup(func() { flagDifficulty = "" })

	flagDifficulty = "hard"
	cfg, label, err := gameConfig()
	if err != nil {
		t.Fatalf("gameConfig() error: %v", err)
	}
	if label != "hard" {
		t.Errorf("label = %q, expected hard", label)
	}
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}

	flagDifficulty = ""
	_, label, err = gameConfig()
	if err != nil {
		t.Fatalf("gameConfig() error: %v", err)
	}
	if label != storage.DefaultDifficulty {
		t.Errorf("label = %q, expected %q", label, storage.DefaultDifficulty)
	}

	flagDifficulty = "insane"
	if _, _, err := gameConfig(); err == nil {
		t.Error("unknown difficulty should fail")
	}
}
