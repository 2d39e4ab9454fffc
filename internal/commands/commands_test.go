package commands

import (
	"flag"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridCommand(shown *bool) Build {
	return func(fs *flag.FlagSet) func() error {
		show := fs.Bool("show", false, "show the grid")
		hide := fs.Bool("hide", false, "hide the grid")
		return func() error {
			switch {
			case *show == *hide:
				return errors.New("need exactly one of --show or --hide")
			case *show:
				*shown = true
			default:
				*shown = false
			}
			return nil
		}
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	var shown bool
	r.Register("grid", "grid --show|--hide", gridCommand(&shown))

	require.NoError(t, r.Run("grid --show"))
	assert.True(t, shown)

	// flags from the previous run do not carry over
	require.NoError(t, r.Run("grid --hide"))
	assert.False(t, shown)

	err := r.Run("grid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid: need exactly one")
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	var shown bool
	r.Register("grid", "grid --show|--hide", gridCommand(&shown))

	assert.EqualError(t, r.Execute(nil), "missing subcommand")
	assert.EqualError(t, r.Run("nope"), "unknown command: nope")
	assert.Error(t, r.Run("grid --bogus"))
	assert.Error(t, r.Run("grid --show extra"))
}

func TestNames(t *testing.T) {
	r := NewRegistry()
	noop := func(*flag.FlagSet) func() error { return func() error { return nil } }
	r.Register("stats", "stats --show|--hide", noop)
	r.Register("grid", "grid --show|--hide", noop)

	assert.Equal(t, []string{"grid", "stats"}, r.Names())
	assert.True(t, r.Has("grid"))
	assert.False(t, r.Has("select"))
	assert.Equal(t, "stats --show|--hide", r.Usage("stats"))
	assert.Empty(t, r.Usage("select"))
	assert.Empty(t, Parse("   "))
}
