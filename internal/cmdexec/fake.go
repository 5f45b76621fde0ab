package cmdexec

import (
	"context"
	"fmt"
	"strings"
)

// Fake is a scriptable Runner for tests. Commands listed in Present are
// treated as installed; Errors maps a full command line (or just the
// command name) to the error its execution should return.
type Fake struct {
	Present map[string]bool
	Errors  map[string]error
	Outputs map[string][]byte
	Calls   [][]string
}

func NewFake(present ...string) *Fake {
	f := &Fake{
		Present: make(map[string]bool),
		Errors:  make(map[string]error),
		Outputs: make(map[string][]byte),
	}
	for _, name := range present {
		f.Present[name] = true
	}
	return f
}

func key(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

func (f *Fake) Run(ctx context.Context, name string, args ...string) error {
	f.Calls = append(f.Calls, append([]string{name}, args...))
	if err, ok := f.Errors[key(name, args)]; ok {
		return err
	}
	if err, ok := f.Errors[name]; ok {
		return err
	}
	return nil
}

func (f *Fake) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.Calls = append(f.Calls, append([]string{name}, args...))
	if err, ok := f.Errors[key(name, args)]; ok {
		return nil, err
	}
	return f.Outputs[key(name, args)], nil
}

func (f *Fake) LookPath(name string) (string, error) {
	if f.Present[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

// CalledWith reports whether a recorded call starts with the given argv
// prefix.
func (f *Fake) CalledWith(argv ...string) bool {
	for _, call := range f.Calls {
		if len(call) < len(argv) {
			continue
		}
		match := true
		for i, arg := range argv {
			if call[i] != arg {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
