// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ethanolivertroy/depcheck/internal/runner"
)

// Response is the scripted outcome of one command line
type Response struct {
	Result runner.Result
	Err    error
}

// Call records one Run invocation
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Line renders the call as "name arg1 arg2"
func (c Call) Line() string {
	return Key(c.Name, c.Args...)
}

// Fake answers Run from Responses keyed by Key(name, args...). Unscripted
// commands succeed with no output. LookPath resolves only names in Paths.
type Fake struct {
	Paths     map[string]string
	Responses map[string]Response
	Calls     []Call
}

// Key builds the Responses lookup key for a command line
func Key(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// On scripts the response for a command line and returns f for chaining
func (f *Fake) On(res Response, name string, args ...string) *Fake {
	if f.Responses == nil {
		f.Responses = make(map[string]Response)
	}
	f.Responses[Key(name, args...)] = res
	return f
}

func (f *Fake) Run(_ context.Context, dir, name string, args ...string) (runner.Result, error) {
	f.Calls = append(f.Calls, Call{Dir: dir, Name: name, Args: args})
	res := f.Responses[Key(name, args...)]
	return res.Result, res.Err
}

func (f *Fake) LookPath(name string) (string, error) {
	if p, ok := f.Paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Lines returns every recorded call rendered with Call.Line
func (f *Fake) Lines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.Line())
	}
	return lines
}
