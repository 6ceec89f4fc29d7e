package config

import (
	"fmt"
	"log"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/facefall/component"
)

// fileItems names each item row so partial files overlay individual fields
type fileItems struct {
	Hazard    component.ItemProfile `toml:"hazard"`
	BonusA    component.ItemProfile `toml:"bonus_a"`
	BonusB    component.ItemProfile `toml:"bonus_b"`
	Recovery  component.ItemProfile `toml:"recovery"`
	RareBonus component.ItemProfile `toml:"rare_bonus"`
}

type fileLimits struct {
	Beginner     Limit `toml:"beginner"`
	Intermediate Limit `toml:"intermediate"`
	Advanced     Limit `toml:"advanced"`
}

// fileTable is the on-disk layout of Table
type fileTable struct {
	Field   Field      `toml:"field"`
	Items   fileItems  `toml:"items"`
	Bands   []Band     `toml:"bands"`
	Spawn   Spawn      `toml:"spawn"`
	Caps    CapGrowth  `toml:"caps"`
	Health  Health     `toml:"health"`
	Combo   Combo      `toml:"combo"`
	Session Session    `toml:"session"`
	Limits  fileLimits `toml:"limits"`
}

func toFile(t *Table) fileTable {
	return fileTable{
		Field: t.Field,
		Items: fileItems{
			Hazard:    t.Items[component.ItemHazard],
			BonusA:    t.Items[component.ItemBonusA],
			BonusB:    t.Items[component.ItemBonusB],
			Recovery:  t.Items[component.ItemRecovery],
			RareBonus: t.Items[component.ItemRareBonus],
		},
		Spawn:   t.Spawn,
		Caps:    t.Caps,
		Health:  t.Health,
		Combo:   t.Combo,
		Session: t.Session,
		Limits: fileLimits{
			Beginner:     t.Limits[LimitBeginner],
			Intermediate: t.Limits[LimitIntermediate],
			Advanced:     t.Limits[LimitAdvanced],
		},
	}
}

func (f *fileTable) apply(t *Table) {
	t.Field = f.Field
	t.Items[component.ItemHazard] = f.Items.Hazard
	t.Items[component.ItemBonusA] = f.Items.BonusA
	t.Items[component.ItemBonusB] = f.Items.BonusB
	t.Items[component.ItemRecovery] = f.Items.Recovery
	t.Items[component.ItemRareBonus] = f.Items.RareBonus
	if len(f.Bands) > 0 {
		t.Bands = f.Bands
	}
	t.Spawn = f.Spawn
	t.Caps = f.Caps
	t.Health = f.Health
	t.Combo = f.Combo
	t.Session = f.Session
	t.Limits[LimitBeginner] = f.Limits.Beginner
	t.Limits[LimitIntermediate] = f.Limits.Intermediate
	t.Limits[LimitAdvanced] = f.Limits.Advanced
}

// Overlay decodes TOML text over a copy of base; absent keys keep base values
// A present [[bands]] array replaces the whole band list
func Overlay(base *Table, data string) (*Table, error) {
	t := base.Clone()
	f := toFile(t)

	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("[config] ignoring unknown key %s", key)
	}

	f.apply(t)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a TOML file over the default table
// Empty path returns the defaults
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	t := Default()
	f := toFile(t)
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("[config] %s: ignoring unknown key %s", path, key)
	}

	f.apply(t)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("load table %s: %w", path, err)
	}
	log.Printf("[config] loaded table from %s", path)
	return t, nil
}
