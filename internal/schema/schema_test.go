package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"levelgen.dev/internal/schema"
)

const sample = `{
  "id": "level-1",
  "seed": 42,
  "width": 3,
  "height": 2,
  "next": "level-2",
  "terrain": ["wgw", "wcE"],
  "territory": ["~0~", "~00"],
  "territory_legend": {"~": "Water", "0": "Red Queen"},
  "tiles": {
    "g": {"key": "GRASS", "char": ".", "name": "Grass", "color": "#008000", "walkable": true, "opaque": false, "tileset": "5-0"}
  },
  "continents": [{"name": "Red Queen", "cx": 1, "cy": 1, "rx": 2, "ry": 2, "rotation": 0.5, "amplitude": 0.2, "seed": 9, "cells": 3}],
  "docks": [{"continent": "Red Queen", "facing": "east", "position": {"x": 2, "y": 1}, "terrain": "BOAT_EAST"}],
  "boat_links": {},
  "clusters": [],
  "cities": {"Red Queen": {"x": 1, "y": 1}},
  "beings": [{"race": "RAT", "intent": "RANDOM", "position": {"x": 1, "y": 0}}],
  "items": [],
  "exits": [{"kind": "STAIRS_UP", "target": "level-2", "position": {"x": 1, "y": 0}}],
  "player_start": {"x": 1, "y": 0},
  "connectivity": {"start_continent": "Red Queen", "connected": true, "unreachable": [], "reachable_land": 3, "walkable_land": 3},
  "created_at": "2024-03-01T12:00:00Z"
}`

func decode(t *testing.T, doc string) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func TestLevelSchemaCompiles(t *testing.T) {
	if _, err := schema.Level(); err != nil {
		t.Fatalf("compile: %v", err)
	}
}

func TestValidateLevel(t *testing.T) {
	if err := schema.ValidateLevel(decode(t, sample)); err != nil {
		t.Fatalf("valid sample rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing id", func(v map[string]any) { delete(v, "id") }},
		{"bad terrain code", func(v map[string]any) { v["terrain"] = []any{"wxw"} }},
		{"bad link key", func(v map[string]any) { v["boat_links"] = map[string]any{"2,1": "0-0"} }},
		{"negative position", func(v map[string]any) { v["player_start"] = map[string]any{"x": -1, "y": 0} }},
		{"unknown facing", func(v map[string]any) {
			v["docks"] = []any{map[string]any{
				"continent": "Red Queen", "facing": "up",
				"position": map[string]any{"x": 0, "y": 0}, "terrain": "BOAT_EAST",
			}}
		}},
		{"bad timestamp", func(v map[string]any) { v["created_at"] = "yesterday" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decode(t, sample)
			tt.mutate(v)
			err := schema.ValidateLevel(v)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), "does not match schema") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
