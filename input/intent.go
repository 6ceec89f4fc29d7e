package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentRestart    // r, Enter
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Region tracker
	IntentMove   // h,j,k,l, arrows; DX/DY in steps
	IntentGrow   // +, =
	IntentShrink // -
	IntentPoint  // Mouse press or drag; X/Y in screen cells
)

var intentNames = map[IntentType]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentRestart:    "restart",
	IntentToggleMute: "toggle_mute",
	IntentResize:     "resize",
	IntentMove:       "move",
	IntentGrow:       "grow",
	IntentShrink:     "shrink",
	IntentPoint:      "point",
}

func (t IntentType) String() string {
	if n, ok := intentNames[t]; ok {
		return n
	}
	return "unknown"
}

// Intent is a parsed user action
type Intent struct {
	Type IntentType
	DX   int // Move: horizontal steps
	DY   int // Move: vertical steps
	X    int // Point: screen column
	Y    int // Point: screen row
}
