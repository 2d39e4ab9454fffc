package viewport

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/console"
)

const (
	barHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLength    = 200
)

var (
	// Reused every frame to avoid per-frame color allocations.
	barColor     = rl.NewColor(40, 40, 40, 255)
	barLineColor = rl.NewColor(80, 80, 80, 255)
	historyColor = rl.NewColor(24, 24, 24, 240)
)

// updateConsole toggles the console with the grave key and, when open, feeds
// it typed text. It reports whether the console swallowed the keyboard.
func updateConsole(c *console.Console) bool {
	if rl.IsKeyPressed(rl.KeyGrave) {
		c.Toggle()
		// the toggle key is also queued as a char
		for rl.GetCharPressed() != 0 {
		}
		return true
	}
	if !c.IsOpen() {
		return false
	}
	actionKey := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if rl.IsKeyPressed(rl.KeyV) && actionKey {
		c.Type(rl.GetClipboardText())
	} else {
		for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
			c.Type(string(rune(ch)))
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyBackspace):
		c.Backspace()
	case rl.IsKeyPressed(rl.KeyUp):
		c.Prev()
	case rl.IsKeyPressed(rl.KeyDown):
		c.Next()
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		_ = c.Submit() // failures are logged by the console
	}
	return true
}

// consoleTop returns the y of the console's top edge, or the screen height
// when the console is closed.
func consoleTop(c *console.Console) int32 {
	screenH := int32(rl.GetScreenHeight())
	if !c.IsOpen() {
		return screenH
	}
	top := screenH - barHeight - maxLinesOnScreen*lineHeight
	if top < 0 {
		top = 0
	}
	return top
}

// drawConsole draws the input bar at the bottom and the recent log lines above it.
func drawConsole(c *console.Console, lines []string) {
	if !c.IsOpen() {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - barHeight
	top := consoleTop(c)
	if top < barY {
		rl.DrawRectangle(0, top, screenW, barY-top, historyColor)
	}

	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i, line := range lines[start:] {
		if len(line) > maxLineLength {
			line = line[:maxLineLength-3] + "..."
		}
		rl.DrawText(line, padding, top+int32(i)*lineHeight+padding, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, barHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, barLineColor)
	rl.DrawText(prompt+c.Input()+"|", padding, barY+padding, fontSize, rl.White)
}
