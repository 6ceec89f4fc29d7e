package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic Intents
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a new input machine with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Process parses a terminal event and returns an Intent
// Returns nil for unbound keys and ignored events
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keyTable.Runes[ev.Rune()]
	} else {
		entry, ok = m.keyTable.SpecialKeys[ev.Key()]
	}
	if !ok || entry.Intent == IntentNone {
		return nil
	}
	return &Intent{Type: entry.Intent, DX: entry.DX, DY: entry.DY}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	if ev.Buttons()&tcell.Button1 == 0 {
		return nil
	}
	x, y := ev.Position()
	return &Intent{Type: IntentPoint, X: x, Y: y}
}
