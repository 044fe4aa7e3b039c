package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/cave-loot/internal/config"
)

func TestEnvironmentDefaultsFlags(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CAVELOOT_FPS", "30")
	t.Setenv("CAVELOOT_LOG_LEVEL", "debug")
	t.Cleanup(func() {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	})

	rootCmd.SetArgs([]string{"list", "--db", filepath.Join(home, "x.db")})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if flagFPS != 30 {
		t.Errorf("fps = %d, want 30 from the environment", flagFPS)
	}
	if flagLogLevel != "debug" {
		t.Errorf("log level = %q, want debug", flagLogLevel)
	}
	if flagDBPath != filepath.Join(home, "x.db") {
		t.Errorf("db = %q, an explicit flag must win", flagDBPath)
	}
	if _, err := os.Stat(filepath.Join(home, config.AppDir, "caveloot.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
