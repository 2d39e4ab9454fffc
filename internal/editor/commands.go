package editor

import (
	"flag"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"scene-editor/internal/gesture"
	"scene-editor/internal/keys"
	"scene-editor/internal/selection"
	"scene-editor/internal/terrain"
)

// exactlyOne fails unless exactly one of flags is set.
func exactlyOne(flags ...*bool) error {
	n := 0
	for _, f := range flags {
		if *f {
			n++
		}
	}
	if n != 1 {
		return errors.New("need exactly one flag")
	}
	return nil
}

func (e *Editor) registerCommands() {
	e.Commands.Register("select", "select --all|--none|--invert|--list", func(fs *flag.FlagSet) func() error {
		all := fs.Bool("all", false, "select every object")
		none := fs.Bool("none", false, "clear the selection")
		invert := fs.Bool("invert", false, "invert the selection")
		list := fs.Bool("list", false, "log the selection")
		return func() error {
			if err := exactlyOne(all, none, invert, list); err != nil {
				return err
			}
			switch {
			case *all:
				e.Selection.SetIDs(e.selectable())
			case *none:
				e.Selection.SetActive(selection.None, false)
			case *invert:
				ids := e.selectable()
				out := ids[:0]
				for _, id := range ids {
					if !e.Selection.Contains(id) {
						out = append(out, id)
					}
				}
				e.Selection.SetIDs(out)
			case *list:
				for _, id := range e.Selection.IDs() {
					o, _ := e.Scene.Object(id)
					e.log.WithFields(logrus.Fields{"id": id, "name": o.Name, "kind": o.Kind}).Info("selected")
				}
				return nil
			}
			e.log.WithField("selected", e.Selection.Len()).Info("selection changed")
			return nil
		}
	})

	e.Commands.Register("grid", "grid --show|--hide", func(fs *flag.FlagSet) func() error {
		show := fs.Bool("show", false, "show the grid")
		hide := fs.Bool("hide", false, "hide the grid")
		return func() error {
			if err := exactlyOne(show, hide); err != nil {
				return err
			}
			e.Scene.SetGridVisible(*show)
			return nil
		}
	})

	e.Commands.Register("stats", "stats --show|--hide", func(fs *flag.FlagSet) func() error {
		show := fs.Bool("show", false, "show the stats overlay")
		hide := fs.Bool("hide", false, "hide the stats overlay")
		return func() error {
			if err := exactlyOne(show, hide); err != nil {
				return err
			}
			e.ShowStats = *show
			return nil
		}
	})

	e.Commands.Register("terrain", "terrain [--width n] [--depth n] [--height h] [--seed s]", func(fs *flag.FlagSet) func() error {
		d := terrain.DefaultOptions()
		width := fs.Int("width", d.Width, "tiles along X")
		depth := fs.Int("depth", d.Depth, "tiles along Z")
		height := fs.Float64("height", float64(d.HeightScale), "maximum tile height")
		seed := fs.Int64("seed", 0, "noise seed, 0 for random")
		return func() error {
			if *width <= 0 || *depth <= 0 {
				return errors.Errorf("bad terrain size %dx%d", *width, *depth)
			}
			opts := d
			opts.Width, opts.Depth = *width, *depth
			opts.HeightScale = float32(*height)
			opts.Seed = *seed
			objs := terrain.Generate(opts, e.Scene.NextID())
			for _, o := range objs {
				if err := e.Scene.Add(o); err != nil {
					return err
				}
			}
			e.log.WithFields(logrus.Fields{"root": objs[0].ID, "objects": len(objs)}).Info("terrain added")
			return nil
		}
	})

	e.Commands.Register("scene", "scene --save [--path file]", func(fs *flag.FlagSet) func() error {
		save := fs.Bool("save", false, "write the scene file")
		path := fs.String("path", e.prefs.ScenePath, "scene file")
		return func() error {
			if err := exactlyOne(save); err != nil {
				return err
			}
			if err := e.Scene.Save(*path); err != nil {
				return err
			}
			e.log.WithField("path", *path).Info("scene saved")
			return nil
		}
	})
}

// selectable returns every object id that may be selected.
func (e *Editor) selectable() []selection.ObjectID {
	ids := e.Scene.IDs()
	out := ids[:0]
	for _, id := range ids {
		if !e.Scene.IsGenerated(id) {
			out = append(out, id)
		}
	}
	return out
}

func (e *Editor) bindKeys() {
	run := func(line string) func() error {
		return func() error { return e.Commands.Run(line) }
	}
	e.Keys.Bind(keys.Chord{Key: keys.KeyEscape}, "select --none", run("select --none"))
	e.Keys.Bind(keys.Chord{Key: keys.KeyI, ActionKey: true}, "select --invert", run("select --invert"))
	e.Keys.Bind(keys.Chord{Key: keys.KeyA, ActionKey: true}, gesture.CommandSelectAll, func() error {
		e.Queue(gesture.CommandSelectAll)
		return nil
	})
	e.Keys.Bind(keys.Chord{Key: keys.KeyG}, "toggle grid", func() error {
		if e.Scene.GridVisible {
			return e.Commands.Run("grid --hide")
		}
		return e.Commands.Run("grid --show")
	})
}
