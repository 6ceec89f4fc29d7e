package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestProcessKeys(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		name   string
		ev     tcell.Event
		intent IntentType
		dx, dy int
	}{
		{"quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit, 0, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit, 0, 0},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit, 0, 0},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentRestart, 0, 0},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute, 0, 0},
		{"left h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), IntentMove, -1, 0},
		{"down j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), IntentMove, 0, 1},
		{"fast right", tcell.NewEventKey(tcell.KeyRune, 'L', tcell.ModNone), IntentMove, 3, 0},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentMove, 0, -1},
		{"grow", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), IntentGrow, 0, 0},
		{"shrink", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), IntentShrink, 0, 0},
		{"resize", tcell.NewEventResize(80, 24), IntentResize, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := m.Process(tt.ev)
			if in == nil {
				t.Fatalf("Expected %s intent, got nil", tt.intent)
			}
			if in.Type != tt.intent {
				t.Errorf("Expected %s, got %s", tt.intent, in.Type)
			}
			if in.DX != tt.dx || in.DY != tt.dy {
				t.Errorf("Expected delta (%d,%d), got (%d,%d)", tt.dx, tt.dy, in.DX, in.DY)
			}
		})
	}
}

func TestProcessUnboundKey(t *testing.T) {
	m := NewMachine()
	if in := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); in != nil {
		t.Errorf("Expected nil for unbound key, got %s", in.Type)
	}
}

func TestProcessMouse(t *testing.T) {
	m := NewMachine()

	in := m.Process(tcell.NewEventMouse(12, 7, tcell.Button1, tcell.ModNone))
	if in == nil || in.Type != IntentPoint {
		t.Fatalf("Expected point intent, got %v", in)
	}
	if in.X != 12 || in.Y != 7 {
		t.Errorf("Expected (12,7), got (%d,%d)", in.X, in.Y)
	}

	if in := m.Process(tcell.NewEventMouse(12, 7, tcell.ButtonNone, tcell.ModNone)); in != nil {
		t.Errorf("Expected nil for mouse motion without button, got %s", in.Type)
	}
}
