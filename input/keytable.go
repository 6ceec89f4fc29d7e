package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/facefall/parameter"
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Intent IntentType
	DX     int
	DY     int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	fast := parameter.TrackerFastMultiplier
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyEnter:  {Intent: IntentRestart},
			tcell.KeyUp:     {Intent: IntentMove, DY: -1},
			tcell.KeyDown:   {Intent: IntentMove, DY: 1},
			tcell.KeyLeft:   {Intent: IntentMove, DX: -1},
			tcell.KeyRight:  {Intent: IntentMove, DX: 1},
		},

		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'r': {Intent: IntentRestart},
			'm': {Intent: IntentToggleMute},

			'h': {Intent: IntentMove, DX: -1},
			'j': {Intent: IntentMove, DY: 1},
			'k': {Intent: IntentMove, DY: -1},
			'l': {Intent: IntentMove, DX: 1},
			'H': {Intent: IntentMove, DX: -fast},
			'J': {Intent: IntentMove, DY: fast},
			'K': {Intent: IntentMove, DY: -fast},
			'L': {Intent: IntentMove, DX: fast},

			'+': {Intent: IntentGrow},
			'=': {Intent: IntentGrow},
			'-': {Intent: IntentShrink},
		},
	}
}
