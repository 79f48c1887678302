package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML lets tuning files name behaviors instead of numbering them.
func (b *BehaviorKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	kind, ok := ParseBehavior(name)
	if !ok {
		return fmt.Errorf("unknown behavior %q", name)
	}
	*b = kind
	return nil
}

// LoadOverridesFile applies a YAML tuning file on top of the defaults.
func LoadOverridesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open overrides %s: %w", path, err)
	}
	defer f.Close()

	if err := LoadOverrides(f); err != nil {
		return fmt.Errorf("load overrides %s: %w", path, err)
	}
	return nil
}

// LoadOverrides decodes YAML sections over the current configuration. Keys
// that are absent keep their current value, including inside single enemy
// types.
func LoadOverrides(r io.Reader) error {
	var sections map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&sections); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode yaml: %w", err)
	}

	targets := map[string]any{
		"player":  &Player,
		"status":  &Status,
		"combat":  &Combat,
		"room":    &Room,
		"dungeon": &Dungeon,
		"boss":    &Boss,
	}
	for name, node := range sections {
		if name == "enemy" {
			if err := decodeEnemySection(&node); err != nil {
				return fmt.Errorf("section enemy: %w", err)
			}
			continue
		}
		target, ok := targets[name]
		if !ok {
			return fmt.Errorf("unknown section %q", name)
		}
		if err := node.Decode(target); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
	}
	return Validate()
}

func decodeEnemySection(node *yaml.Node) error {
	types := Enemy.Types
	Enemy.Types = nil
	err := node.Decode(&Enemy)
	Enemy.Types = types
	if err != nil {
		return err
	}

	var section struct {
		Types map[string]yaml.Node `yaml:"types"`
	}
	if err := node.Decode(&section); err != nil {
		return err
	}
	for name, typeNode := range section.Types {
		t := Enemy.Types[name]
		if err := typeNode.Decode(&t); err != nil {
			return fmt.Errorf("type %s: %w", name, err)
		}
		t.Name = name
		Enemy.Types[name] = t
	}
	return nil
}

// Validate checks cross-field constraints of the active configuration.
func Validate() error {
	var errs []error

	cells := Dungeon.GridSize * Dungeon.GridSize
	if Dungeon.GridSize < 2 {
		errs = append(errs, fmt.Errorf("dungeon.grid_size must be at least 2, got %d", Dungeon.GridSize))
	}
	if Dungeon.MinRooms < 2 || Dungeon.MinRooms > Dungeon.MaxRooms {
		errs = append(errs, fmt.Errorf("dungeon.min_rooms must be in [2, max_rooms], got %d", Dungeon.MinRooms))
	}
	if Dungeon.MaxRooms > cells {
		errs = append(errs, fmt.Errorf("dungeon.max_rooms %d exceeds grid capacity %d", Dungeon.MaxRooms, cells))
	}
	if Status.PoisonMaxStacks <= 0 {
		errs = append(errs, errors.New("status.poison_max_stacks must be positive"))
	}
	if Frames(Status.PoisonTickInterval) <= 0 {
		errs = append(errs, errors.New("status.poison_tick_interval must last at least one frame"))
	}
	for i, pool := range Enemy.Pools {
		for _, name := range pool {
			if _, ok := Enemy.Types[name]; !ok {
				errs = append(errs, fmt.Errorf("enemy.pools[%d] references unknown type %q", i, name))
			}
		}
	}
	for name, t := range Enemy.Types {
		for _, ref := range []string{t.SplitInto, t.MarkedSpawn} {
			if ref == "" {
				continue
			}
			if _, ok := Enemy.Types[ref]; !ok {
				errs = append(errs, fmt.Errorf("enemy type %s spawns unknown type %q", name, ref))
			}
		}
		if t.DamageReduction < 0 || t.DamageReduction >= 1 {
			errs = append(errs, fmt.Errorf("enemy type %s damage_reduction must be in [0,1)", name))
		}
	}
	if _, ok := Enemy.Types[Boss.TypeName]; !ok {
		errs = append(errs, fmt.Errorf("boss.type_name %q is not an enemy type", Boss.TypeName))
	}
	return errors.Join(errs...)
}
