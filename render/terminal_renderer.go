package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/config"
	"github.com/lixenwraith/facefall/engine"
	"github.com/lixenwraith/facefall/engine/fsm"
)

const (
	hudRows       = 1 // Top score bar
	statusRows    = 1 // Bottom status bar
	healthBarSize = 20
)

// HUD carries host-side values drawn next to the session snapshot
type HUD struct {
	Best    int    // Best score for the selected time limit
	Status  string // Free-form metrics line
	Message string // Error or notice shown in the overlay
	Muted   bool
}

// TerminalRenderer draws session snapshots on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	// Field viewport in cells, inside the border
	fieldX int
	fieldY int
	fieldW int
	fieldH int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize recomputes the layout from the current screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.fieldX = 1
	r.fieldY = hudRows + 1
	r.fieldW = max(r.width-2, 0)
	r.fieldH = max(r.height-hudRows-statusRows-2, 0)
}

// FieldRect returns the field viewport in cells
func (r *TerminalRenderer) FieldRect() (x, y, w, h int) {
	return r.fieldX, r.fieldY, r.fieldW, r.fieldH
}

// CellToField maps a screen cell to the center of its field area
// Returns ok=false for cells outside the field viewport
func (r *TerminalRenderer) CellToField(cx, cy int, field config.Field) (x, y float64, ok bool) {
	if r.fieldW <= 0 || r.fieldH <= 0 {
		return 0, 0, false
	}
	col, row := cx-r.fieldX, cy-r.fieldY
	if col < 0 || row < 0 || col >= r.fieldW || row >= r.fieldH {
		return 0, 0, false
	}
	x = (float64(col) + 0.5) * field.Width / float64(r.fieldW)
	y = (float64(row) + 0.5) * field.Height / float64(r.fieldH)
	return x, y, true
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, hud HUD) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawScoreBar(snap, defaultStyle)
	r.drawBorder(defaultStyle)

	if r.fieldW > 0 && r.fieldH > 0 && snap.Field.Width > 0 && snap.Field.Height > 0 {
		for _, reg := range snap.Regions {
			r.drawRegion(snap, reg, defaultStyle)
		}
		for i := range snap.Items {
			r.drawItem(snap, &snap.Items[i])
		}
	}

	r.drawOverlay(snap, hud, defaultStyle)
	r.drawStatusBar(snap, hud, defaultStyle)

	r.screen.Show()
}

// cellSpan maps a field interval onto cell columns or rows, clipped to [0, cells)
// Returns ok=false when nothing is visible
func cellSpan(pos, size, fieldSize float64, cells int) (from, to int, ok bool) {
	n := float64(cells)
	from = int(math.Floor(pos * n / fieldSize))
	to = int(math.Ceil((pos+size)*n/fieldSize)) - 1
	if to < from {
		to = from
	}
	if to < 0 || from >= cells {
		return 0, 0, false
	}
	return max(from, 0), min(to, cells-1), true
}

func (r *TerminalRenderer) cellRect(snap engine.Snapshot, x, y, w, h float64) (x0, y0, x1, y1 int, ok bool) {
	x0, x1, okX := cellSpan(x, w, snap.Field.Width, r.fieldW)
	y0, y1, okY := cellSpan(y, h, snap.Field.Height, r.fieldH)
	if !okX || !okY {
		return 0, 0, 0, 0, false
	}
	return r.fieldX + x0, r.fieldY + y0, r.fieldX + x1, r.fieldY + y1, true
}

func (r *TerminalRenderer) drawItem(snap engine.Snapshot, it *component.Item) {
	x0, y0, x1, y1, ok := r.cellRect(snap, it.X, it.Y, it.Width, it.Height)
	if !ok {
		return
	}
	style := GetStyleForItem(it.Type)
	glyph := ItemGlyph(it.Type)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawRegion(snap engine.Snapshot, reg component.Region, defaultStyle tcell.Style) {
	x0, y0, x1, y1, ok := r.cellRect(snap, reg.X, reg.Y, reg.Width, reg.Height)
	if !ok {
		return
	}
	style := defaultStyle.Foreground(RgbRegion)
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, style)
		r.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, style)
		r.screen.SetContent(x1, y, '│', nil, style)
	}
	r.screen.SetContent(x0, y0, '┌', nil, style)
	r.screen.SetContent(x1, y0, '┐', nil, style)
	r.screen.SetContent(x0, y1, '└', nil, style)
	r.screen.SetContent(x1, y1, '┘', nil, style)
}

func (r *TerminalRenderer) drawBorder(defaultStyle tcell.Style) {
	if r.fieldW <= 0 || r.fieldH <= 0 {
		return
	}
	style := defaultStyle.Foreground(RgbBorder)
	left, right := r.fieldX-1, r.fieldX+r.fieldW
	top, bottom := r.fieldY-1, r.fieldY+r.fieldH
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, '═', nil, style)
		r.screen.SetContent(x, bottom, '═', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '║', nil, style)
		r.screen.SetContent(right, y, '║', nil, style)
	}
}

// drawScoreBar draws score, health meter, combo and remaining time on the top row
func (r *TerminalRenderer) drawScoreBar(snap engine.Snapshot, defaultStyle tcell.Style) {
	x := 0
	scoreStyle := defaultStyle.Foreground(RgbStatusText).Background(RgbScoreBg)
	x = r.drawText(x, 0, fmt.Sprintf(" SCORE %d ", snap.Score), scoreStyle)
	x++

	labelStyle := defaultStyle.Foreground(RgbStatusBar)
	x = r.drawText(x, 0, "HP ", labelStyle)
	filled := int(math.Round(snap.Health * healthBarSize))
	meter := defaultStyle.Foreground(GetHealthMeterColor(snap.Health))
	empty := defaultStyle.Foreground(RgbMeterEmpty)
	for i := 0; i < healthBarSize && x < r.width; i++ {
		style := empty
		if i < filled {
			style = meter
		}
		r.screen.SetContent(x, 0, '█', nil, style)
		x++
	}
	x++

	x = r.drawText(x, 0, fmt.Sprintf("x%.1f", snap.Combo), labelStyle)
	x++

	timerStyle := defaultStyle.Foreground(RgbStatusText).Background(RgbTimerBg)
	r.drawText(x, 0, fmt.Sprintf(" %ds ", snap.Remaining), timerStyle)
}

// drawStatusBar draws state, limit, best score and the metrics line on the bottom row
func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, hud HUD, defaultStyle tcell.Style) {
	y := r.height - 1
	if y <= 0 {
		return
	}

	stateStyle := defaultStyle.Foreground(RgbStatusText).Background(GetStateBackground(snap.StateName))
	x := r.drawText(0, y, " "+strings.ToUpper(snap.StateName)+" ", stateStyle)
	x++

	info := fmt.Sprintf("%s  best %d", snap.Limit, hud.Best)
	if hud.Muted {
		info += "  muted"
	}
	if hud.Status != "" {
		info += "  " + hud.Status
	}
	r.drawText(x, y, info, defaultStyle.Foreground(RgbStatusBar))
}

// drawOverlay draws centered state text over the field
func (r *TerminalRenderer) drawOverlay(snap engine.Snapshot, hud HUD, defaultStyle tcell.Style) {
	var lines []string
	style := defaultStyle.Foreground(RgbOverlayText).Bold(true)

	switch snap.State {
	case fsm.StateIdle:
		lines = []string{"FACEFALL", "r start   q quit"}
	case fsm.StateInitializing, fsm.StateLoadingModel, fsm.StateAcquiringCapture:
		lines = []string{"getting ready..."}
	case fsm.StateCountdown:
		style = defaultStyle.Foreground(RgbCountdown).Bold(true)
		if snap.Countdown > 0 {
			lines = []string{fmt.Sprintf("%d", snap.Countdown)}
		} else {
			lines = []string{"START"}
		}
	case fsm.StateGameOver:
		style = defaultStyle.Foreground(RgbGameOver).Bold(true)
		lines = []string{
			"GAME OVER",
			snap.EndReason,
			fmt.Sprintf("score %d   best %d", snap.Score, max(hud.Best, snap.Score)),
			"r restart   q quit",
		}
	case fsm.StateError:
		style = defaultStyle.Foreground(RgbGameOver).Bold(true)
		lines = []string{"ERROR", hud.Message, "r retry   q quit"}
	}

	if len(lines) == 0 {
		return
	}
	top := r.fieldY + (r.fieldH-len(lines))/2
	for i, line := range lines {
		x := r.fieldX + (r.fieldW-len([]rune(line)))/2
		r.drawText(max(x, 0), top+i, line, style)
	}
}

// drawText writes s starting at (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
