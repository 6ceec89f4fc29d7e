package component

import (
	"fmt"

	"github.com/lixenwraith/facefall/core"
)

// ItemType identifies a falling item kind
type ItemType uint8

const (
	ItemHazard ItemType = iota
	ItemBonusA
	ItemBonusB
	ItemRecovery
	ItemRareBonus
	ItemTypeCount // Sentinel for array sizing

	// ItemNone marks a spawn band that produces no regular item
	ItemNone ItemType = 0xFF
)

var itemTypeNames = [ItemTypeCount]string{
	ItemHazard:    "hazard",
	ItemBonusA:    "bonus_a",
	ItemBonusB:    "bonus_b",
	ItemRecovery:  "recovery",
	ItemRareBonus: "rare_bonus",
}

// String returns the stable lowercase name used in config files, metrics and events
func (t ItemType) String() string {
	if t < ItemTypeCount {
		return itemTypeNames[t]
	}
	if t == ItemNone {
		return "none"
	}
	return "unknown"
}

// ParseItemType maps a config name back to its ItemType
func ParseItemType(name string) (ItemType, bool) {
	if name == "none" {
		return ItemNone, true
	}
	for i, n := range itemTypeNames {
		if n == name {
			return ItemType(i), true
		}
	}
	return ItemNone, false
}

// Valid reports whether t indexes a real item kind
func (t ItemType) Valid() bool {
	return t < ItemTypeCount
}

// Item is one falling, collidable object
// Position is mutated only by motion, Active only by motion and collision
type Item struct {
	ID     uint64
	Type   ItemType
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64 // Units per second, fixed at spawn
	Active bool
}

// Area returns the visual bounding box
func (it *Item) Area() core.Area {
	return core.Area{X: it.X, Y: it.Y, Width: it.Width, Height: it.Height}
}

// HitArea returns the collision box after applying the inward inset
func (it *Item) HitArea(inset float64) core.Area {
	return it.Area().Inset(inset)
}

// MarshalText encodes the type by its config name
func (t ItemType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a config name, rejecting unknown kinds
func (t *ItemType) UnmarshalText(b []byte) error {
	v, ok := ParseItemType(string(b))
	if !ok {
		return fmt.Errorf("unknown item type %q", string(b))
	}
	*t = v
	return nil
}
