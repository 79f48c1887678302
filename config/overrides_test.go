package config

import (
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T) {
	t.Helper()
	player, enemy, dungeon, boss := Player, Enemy, Dungeon, Boss
	enemy.Types = maps.Clone(Enemy.Types)
	t.Cleanup(func() {
		Player, Enemy, Dungeon, Boss = player, enemy, dungeon, boss
	})
}

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Validate())
}

func TestFrames(t *testing.T) {
	assert.Equal(t, 30, Frames(0.5))
	assert.Equal(t, 600, Frames(10))
	assert.Equal(t, 90, Frames(1.5))
	assert.Equal(t, 0, Frames(0))
}

func TestLoadOverridesKeepsUnsetFields(t *testing.T) {
	snapshot(t)
	goblin := Enemy.Types["Goblin"]

	err := LoadOverrides(strings.NewReader(`
player:
  health: 250
enemy:
  red_mark_chance: 0.5
  types:
    Goblin:
      health: 99
      behavior: multi_hit
`))
	require.NoError(t, err)

	assert.Equal(t, 250, Player.Health)
	assert.Equal(t, 60, Player.MP, "unset player fields keep defaults")
	assert.Equal(t, 0.5, Enemy.RedMarkChance)
	assert.NotEmpty(t, Enemy.Pools)

	updated := Enemy.Types["Goblin"]
	assert.Equal(t, 99, updated.Health)
	assert.Equal(t, BehaviorMultiHit, updated.Behavior)
	assert.Equal(t, goblin.AttackRange, updated.AttackRange)
	assert.Equal(t, "Goblin", updated.Name)
	assert.Contains(t, Enemy.Types, "Slime", "other types survive")
}

func TestLoadOverridesRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown section", "weather:\n  rain: true\n", "unknown section"},
		{"unknown behavior", "enemy:\n  types:\n    Slime:\n      behavior: teleport\n", "unknown behavior"},
		{"room budget", "dungeon:\n  min_rooms: 12\n  max_rooms: 8\n", "min_rooms"},
		{"dangling split", "enemy:\n  types:\n    Slime:\n      split_into: Dragon\n", "Dragon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot(t)
			err := LoadOverrides(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadOverridesEmpty(t *testing.T) {
	snapshot(t)
	require.NoError(t, LoadOverrides(strings.NewReader("")))
}

func TestClipLibrarySkipsMoveForStationary(t *testing.T) {
	lib := ClipLibrary()
	assert.Contains(t, lib, Clip("slime", Move))
	assert.Contains(t, lib, Clip("turret", Attack))
	assert.NotContains(t, lib, Clip("turret", Move))
	assert.Contains(t, lib, FallbackClip)
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Offset()
		ox, oy := d.Opposite().Offset()
		assert.Equal(t, -dx, ox, d.String())
		assert.Equal(t, -dy, oy, d.String())
	}
}
