package main

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetupLogger(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	setupLogger("debug")
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %s", log.GetLevel())
	}

	setupLogger("warn")
	if log.GetLevel() != log.WarnLevel {
		t.Errorf("expected warn level, got %s", log.GetLevel())
	}

	// Некорректный уровень откатывается к info.
	setupLogger("loud")
	if log.GetLevel() != log.InfoLevel {
		t.Errorf("expected info fallback, got %s", log.GetLevel())
	}
}
