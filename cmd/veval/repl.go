package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/robbyt/go-veval/scope"
)

const (
	prompt      = "veval> "
	historyName = ".veval_history"
	helpText    = `Enter an expression to evaluate it. Commands:
  :let name = expr   bind name to expr
  :unset name        remove a binding
  :names             list bound names
  :postfix expr      show the compiled postfix program
  :help              show this help
  :quit              leave
`
)

var errQuit = errors.New("quit")

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyName)
}

// session executes REPL input against one scope.
type session struct {
	scope  *scope.Context
	out    io.Writer
	errOut io.Writer
}

// handle executes one line. It returns errQuit for :quit.
func (s *session) handle(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if !strings.HasPrefix(line, ":") {
		v, err := s.scope.TryEval(line)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			return nil
		}
		fmt.Fprintln(s.out, v)
		return nil
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case ":quit", ":q":
		return errQuit
	case ":help":
		fmt.Fprint(s.out, helpText)
	case ":names":
		for _, name := range s.scope.Names() {
			fmt.Fprintln(s.out, name)
		}
	case ":unset":
		if rest == "" {
			fmt.Fprintln(s.errOut, "usage: :unset name")
			return nil
		}
		s.scope.Remove(rest)
	case ":let":
		name, src, ok := strings.Cut(rest, "=")
		if !ok {
			fmt.Fprintln(s.errOut, "usage: :let name = expr")
			return nil
		}
		if err := s.scope.Insert(strings.TrimSpace(name), src); err != nil {
			fmt.Fprintln(s.errOut, err)
		}
	case ":postfix":
		p, err := s.scope.Compile(rest)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			return nil
		}
		fmt.Fprintln(s.out, p)
	default:
		fmt.Fprintf(s.errOut, "unknown command %s, try :help\n", cmd)
	}
	return nil
}

func runREPL(sc *scope.Context, historyPath string, stdout, stderr io.Writer) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	s := &session{scope: sc, out: stdout, errOut: stderr}
	for {
		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(stdout)
			return 0
		case err != nil:
			fmt.Fprintln(stderr, err)
			return 1
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if err := s.handle(line); errors.Is(err, errQuit) {
			return 0
		}
	}
}
