package main

import (
	"testing"

	"github.com/lixenwraith/facefall/config"
)

func TestParseHostOverridesEnv(t *testing.T) {
	base := config.Host{Limit: "beginner", DBPath: "data/facefall.db"}

	h, err := parseHost([]string{"-limit", "advanced", "-mute", "-seed", "7", "-listen", ":9000"}, base)
	if err != nil {
		t.Fatalf("parseHost failed: %v", err)
	}
	if h.Limit != "advanced" {
		t.Errorf("Expected limit advanced, got %s", h.Limit)
	}
	if !h.Mute {
		t.Error("Expected mute set")
	}
	if h.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", h.Seed)
	}
	if h.Listen != ":9000" {
		t.Errorf("Expected listen :9000, got %s", h.Listen)
	}
	if h.DBPath != "data/facefall.db" {
		t.Errorf("Expected env db path kept, got %s", h.DBPath)
	}
}

func TestParseHostDisableDB(t *testing.T) {
	h, err := parseHost([]string{"-db", ""}, config.Host{DBPath: "data/facefall.db"})
	if err != nil {
		t.Fatalf("parseHost failed: %v", err)
	}
	if h.DBPath != "" {
		t.Errorf("Expected empty db path, got %s", h.DBPath)
	}
}

func TestParseHostRejects(t *testing.T) {
	if _, err := parseHost([]string{"-nope"}, config.Host{}); err == nil {
		t.Error("Expected error for unknown flag")
	}
	if _, err := parseHost([]string{"extra"}, config.Host{}); err == nil {
		t.Error("Expected error for positional argument")
	}
	if _, err := parseHost([]string{"-seed", "x"}, config.Host{}); err == nil {
		t.Error("Expected error for bad seed")
	}
}
