package commands

import (
	"flag"
	"io"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Build defines a command's flags on fs and returns the function to run once
// they are parsed. It is called for every execution, so flag values never
// leak from one run into the next.
type Build func(fs *flag.FlagSet) func() error

// Command is a subcommand with a one-line usage string.
type Command struct {
	Name  string
	Usage string
	build Build
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand, replacing any command with the same name.
func (r *Registry) Register(name, usage string, build Build) {
	r.cmds[name] = &Command{Name: name, Usage: usage, build: build}
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.cmds[name]
	return ok
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Usage returns the usage line of name.
func (r *Registry) Usage(name string) string {
	if cmd, ok := r.cmds[name]; ok {
		return cmd.Usage
	}
	return ""
}

// Parse splits a command line on whitespace.
func Parse(line string) []string {
	return strings.Fields(line)
}

// Execute runs the subcommand in args[0] with args[1:] as flag arguments.
// Returns an error for an unknown command, a parse error, or from the run.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return errors.New("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return errors.Errorf("unknown command: %s", name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.build(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	if fs.NArg() > 0 {
		return errors.Errorf("%s: unexpected argument %q", name, fs.Arg(0))
	}
	return errors.WithMessage(run(), name)
}

// Run parses line and executes it.
func (r *Registry) Run(line string) error {
	return r.Execute(Parse(line))
}
