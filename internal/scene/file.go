package scene

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"scene-editor/internal/camera"
)

// cameraDef is the camera section of a scene file. Viewport size is not
// stored; it comes from the window.
type cameraDef struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Up       [3]float32 `yaml:"up,omitempty"`
	FovY     float32    `yaml:"fovy,omitempty"`
}

// fileDef is the YAML layout of a scene file (e.g. assets/scenes/demo.yaml).
type fileDef struct {
	Camera  *cameraDef `yaml:"camera,omitempty"`
	Grid    *bool      `yaml:"grid,omitempty"`
	Objects []Object   `yaml:"objects"`
}

// Parse builds a scene from YAML. Objects are added in file order, so a
// parent must be listed before its children.
func Parse(data []byte, width, height float32) (*Scene, error) {
	var def fileDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, "scene: parse")
	}
	s := New(width, height)
	if c := def.Camera; c != nil {
		s.Camera.Position = camera.FromArray(c.Position)
		s.Camera.Target = camera.FromArray(c.Target)
		if c.Up != ([3]float32{}) {
			s.Camera.Up = camera.FromArray(c.Up)
		}
		if c.FovY > 0 {
			s.Camera.FovY = c.FovY
		}
	}
	if def.Grid != nil {
		s.GridVisible = *def.Grid
	}
	for _, o := range def.Objects {
		if err := s.Add(o); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Load reads and parses the scene file at path.
func Load(path string, width, height float32) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "scene: read %s", path)
	}
	return Parse(data, width, height)
}

// Marshal encodes the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	grid := s.GridVisible
	c := s.Camera
	def := fileDef{
		Camera: &cameraDef{
			Position: [3]float32{c.Position.X, c.Position.Y, c.Position.Z},
			Target:   [3]float32{c.Target.X, c.Target.Y, c.Target.Z},
			Up:       [3]float32{c.Up.X, c.Up.Y, c.Up.Z},
			FovY:     c.FovY,
		},
		Grid:    &grid,
		Objects: s.Objects(),
	}
	data, err := yaml.Marshal(&def)
	if err != nil {
		return nil, errors.Wrap(err, "scene: encode")
	}
	return data, nil
}

// Save writes the scene to path, creating the directory if needed.
func (s *Scene) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "scene: create directory")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "scene: write %s", path)
}
