package main

import (
	"fmt"
	"os"

	"scene-editor/internal/debug"
	"scene-editor/internal/editor"
	"scene-editor/internal/editorconfig"
	"scene-editor/internal/graphics"
	"scene-editor/internal/logger"
	"scene-editor/internal/scene"
	"scene-editor/internal/viewport"
)

func main() {
	prefs := editorconfig.Load()

	log, err := logger.New(prefs.LogPath, prefs.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log = logger.NewMemory(prefs.LogLevel)
	}
	defer log.Close()

	w, h := float32(prefs.WindowWidth), float32(prefs.WindowHeight)
	scn, err := scene.Load(prefs.ScenePath, w, h)
	if err != nil {
		log.WithError(err).Warn("starting with an empty scene")
		scn = scene.New(w, h)
	}
	scn.SetGridVisible(prefs.GridVisible)

	ed := editor.New(editor.Options{Scene: scn, Prefs: prefs, Log: log})
	vp := viewport.New(ed)
	overlay := debug.New()
	log.WithField("objects", scn.Len()).Info("editor started")

	draw := func() {
		vp.Draw()
		lines := log.Lines()
		overlay.Draw(ed.ShowStats && !ed.Console.IsOpen(), ed.Stats(), lines)
		vp.DrawConsole(lines)
	}
	graphics.Run("scene editor", prefs.WindowWidth, prefs.WindowHeight, vp.Update, draw)

	prefs.GridVisible = scn.GridVisible
	prefs.ShowStats = ed.ShowStats
	if err := editorconfig.Save(prefs); err != nil {
		log.WithError(err).Warn("preferences not saved")
	}
}
