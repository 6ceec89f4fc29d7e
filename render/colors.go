package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/facefall/component"
)

// RGB color definitions
var (
	RgbHazard    = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbBonusA    = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbBonusB    = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbRecovery  = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbRareBonus = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow

	RgbRegion      = tcell.NewRGBColor(0, 200, 200)   // Vibrant Cyan
	RgbBorder      = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbMeterEmpty  = tcell.NewRGBColor(50, 50, 50)    // Very dark gray
	RgbCountdown   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGameOver    = tcell.NewRGBColor(255, 0, 0)     // Error Red
	RgbOverlayText = tcell.NewRGBColor(255, 255, 255) // Bright white

	// Status bar backgrounds
	RgbStateIdleBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatePlayingBg = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStateWaitBg    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStateEndBg     = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbScoreBg        = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbTimerBg        = tcell.NewRGBColor(255, 192, 203) // Pink
)

var itemColors = [component.ItemTypeCount]tcell.Color{
	component.ItemHazard:    RgbHazard,
	component.ItemBonusA:    RgbBonusA,
	component.ItemBonusB:    RgbBonusB,
	component.ItemRecovery:  RgbRecovery,
	component.ItemRareBonus: RgbRareBonus,
}

var itemGlyphs = [component.ItemTypeCount]rune{
	component.ItemHazard:    'X',
	component.ItemBonusA:    'o',
	component.ItemBonusB:    '@',
	component.ItemRecovery:  '+',
	component.ItemRareBonus: '*',
}

// ItemGlyph returns the fill rune for an item kind
func ItemGlyph(t component.ItemType) rune {
	if !t.Valid() {
		return '?'
	}
	return itemGlyphs[t]
}

// GetStyleForItem returns the style used to fill an item
func GetStyleForItem(t component.ItemType) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	if !t.Valid() {
		return base
	}
	return base.Foreground(itemColors[t]).Bold(t == component.ItemRareBonus)
}

// GetHealthMeterColor returns the meter color for health in [0, 1]
// Red below half, through yellow, to green at full
func GetHealthMeterColor(health float64) tcell.Color {
	if health <= 0 {
		return RgbMeterEmpty
	}
	if health > 1 {
		health = 1
	}

	if health < 0.5 { // Red to Yellow
		t := health / 0.5
		return tcell.NewRGBColor(255, int32(60+(215-60)*t), 0)
	}
	// Yellow to Green
	t := (health - 0.5) / 0.5
	return tcell.NewRGBColor(int32(255-(255-34)*t), int32(215-(215-200)*t), int32(34*t))
}

// GetStateBackground returns the status bar background for a state name
func GetStateBackground(state string) tcell.Color {
	switch state {
	case "playing":
		return RgbStatePlayingBg
	case "initializing", "loading_model", "acquiring_capture", "countdown":
		return RgbStateWaitBg
	case "game_over", "error":
		return RgbStateEndBg
	default:
		return RgbStateIdleBg
	}
}
