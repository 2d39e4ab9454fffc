package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run opens a resizable window and runs the main loop. Each frame it calls
// update (input), then clears the screen and calls draw.
// Escape is a shortcut, not the quit key; close via the window button.
func Run(title string, width, height int32, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 24, 28, 255))
		draw()
		rl.EndDrawing()
	}
}
