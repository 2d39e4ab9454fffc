package editorconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Path is the editor config file, relative to the process working directory.
const Path = "config/editor.json"

// Prefs holds editor preferences (overlays, grid, selection tuning, files).
// Persisted across runs.
type Prefs struct {
	ShowStats        bool    `json:"show_stats"`
	GridVisible      bool    `json:"grid_visible"`
	DragThreshold    float32 `json:"drag_threshold"`
	MinRectSize      float32 `json:"min_rect_size"`
	MaxPassiveGrants int     `json:"max_passive_grants"`
	RectDragDistance float32 `json:"rect_drag_distance"`
	ScenePath        string  `json:"scene_path"`
	LogPath          string  `json:"log_path"`
	LogLevel         string  `json:"log_level"`
	WindowWidth      int32   `json:"window_width"`
	WindowHeight     int32   `json:"window_height"`
}

// Default returns default preferences (stats off, grid on).
func Default() Prefs {
	return Prefs{
		ShowStats:        false,
		GridVisible:      true,
		DragThreshold:    4,
		MinRectSize:      3,
		MaxPassiveGrants: 2,
		RectDragDistance: 6,
		ScenePath:        "assets/scenes/demo.yaml",
		LogPath:          "logs/editor.txt",
		LogLevel:         "info",
		WindowWidth:      1280,
		WindowHeight:     720,
	}
}

// Normalize replaces zero or negative numbers and empty strings with defaults.
func (p Prefs) Normalize() Prefs {
	d := Default()
	if p.DragThreshold <= 0 {
		p.DragThreshold = d.DragThreshold
	}
	if p.MinRectSize <= 0 {
		p.MinRectSize = d.MinRectSize
	}
	if p.MaxPassiveGrants <= 0 {
		p.MaxPassiveGrants = d.MaxPassiveGrants
	}
	if p.RectDragDistance <= 0 {
		p.RectDragDistance = d.RectDragDistance
	}
	if p.ScenePath == "" {
		p.ScenePath = d.ScenePath
	}
	if p.LogPath == "" {
		p.LogPath = d.LogPath
	}
	if p.LogLevel == "" {
		p.LogLevel = d.LogLevel
	}
	if p.WindowWidth <= 0 {
		p.WindowWidth = d.WindowWidth
	}
	if p.WindowHeight <= 0 {
		p.WindowHeight = d.WindowHeight
	}
	return p
}

// Load reads preferences from Path. See LoadFrom.
func Load() Prefs {
	return LoadFrom(Path)
}

// LoadFrom reads preferences from path. If the file is missing or invalid it
// returns Default() and does not create a file. Fields absent from the file
// keep their defaults.
func LoadFrom(path string) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p.Normalize()
}

// Save writes preferences to Path. See SaveTo.
func Save(p Prefs) error {
	return SaveTo(Path, p)
}

// SaveTo writes preferences to path, creating the directory if needed.
func SaveTo(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "editorconfig: create directory")
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return errors.Wrap(err, "editorconfig: encode")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "editorconfig: write %s", path)
}
