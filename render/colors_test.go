package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/facefall/component"
)

func TestGetHealthMeterColor(t *testing.T) {
	tests := []struct {
		name   string
		health float64
		empty  bool
	}{
		{"Negative health", -0.1, true},
		{"Zero health", 0.0, true},
		{"Low health", 0.1, false},
		{"Half health", 0.5, false},
		{"Full health", 1.0, false},
		{"Over full health", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := GetHealthMeterColor(tt.health)
			if tt.empty && color != RgbMeterEmpty {
				t.Errorf("Expected empty meter color for health %f, got %v", tt.health, color)
			}
			if !tt.empty && color == RgbMeterEmpty {
				t.Errorf("Expected filled meter color for health %f", tt.health)
			}
		})
	}
}

func TestHealthMeterGradientDirection(t *testing.T) {
	rLow, gLow, _ := GetHealthMeterColor(0.1).RGB()
	rFull, gFull, _ := GetHealthMeterColor(1.0).RGB()

	if rLow <= rFull {
		t.Errorf("Expected low health redder than full, got r=%d vs %d", rLow, rFull)
	}
	if gLow >= gFull {
		t.Errorf("Expected full health greener than low, got g=%d vs %d", gFull, gLow)
	}
}

func TestGetStyleForItem(t *testing.T) {
	for it := component.ItemType(0); it < component.ItemTypeCount; it++ {
		t.Run(it.String(), func(t *testing.T) {
			fg, bg, _ := GetStyleForItem(it).Decompose()
			if fg == tcell.ColorDefault {
				t.Errorf("Foreground color is default for %s", it)
			}
			if bg != RgbBackground {
				t.Errorf("Expected background RgbBackground for %s, got %v", it, bg)
			}
			if ItemGlyph(it) == '?' {
				t.Errorf("Expected glyph for %s", it)
			}
		})
	}

	if ItemGlyph(component.ItemNone) != '?' {
		t.Error("Expected placeholder glyph for invalid type")
	}
}

func TestGetStateBackground(t *testing.T) {
	tests := map[string]tcell.Color{
		"idle":      RgbStateIdleBg,
		"countdown": RgbStateWaitBg,
		"playing":   RgbStatePlayingBg,
		"game_over": RgbStateEndBg,
		"error":     RgbStateEndBg,
	}
	for state, want := range tests {
		if got := GetStateBackground(state); got != want {
			t.Errorf("Expected %v for %s, got %v", want, state, got)
		}
	}
}
