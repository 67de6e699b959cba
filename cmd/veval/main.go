// Command veval evaluates expressions once or in an interactive session.
//
//	veval -e 'limit * 2' -bindings vars.yaml
//	veval -f rule.expr -json
//	veval -f https://example.com/rule.expr
//	echo '1 + 1' | veval -f -
//	veval                     # interactive
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/robbyt/go-veval"
	"github.com/robbyt/go-veval/engine/evaluator"
	"github.com/robbyt/go-veval/options"
	"github.com/robbyt/go-veval/scope"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type config struct {
	expr     string
	file     string
	bindings string
	asJSON   bool
	verbose  bool
	history  string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sc := scope.New()
	if cfg.bindings != "" {
		if err := loadBindings(sc, cfg.bindings); err != nil {
			fmt.Fprintf(stderr, "bindings: %v\n", err)
			return 1
		}
		logger.Debug("bindings loaded", "file", cfg.bindings, "names", sc.Len())
	}

	if cfg.expr == "" && cfg.file == "" {
		return runREPL(sc, cfg.history, stdout, stderr)
	}

	opts := []options.Option{options.WithScope(sc), options.WithSlog(logger)}
	var e *evaluator.Evaluator
	switch {
	case cfg.file == "-":
		e, err = veval.FromSource(stdin, opts...)
	case strings.Contains(cfg.file, "://"):
		e, err = veval.FromSource(cfg.file, opts...)
	case cfg.file != "":
		e, err = veval.FromFile(cfg.file, opts...)
	default:
		e, err = veval.FromString(cfg.expr, opts...)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	resp, err := e.Eval(context.Background())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if cfg.asJSON {
		b, err := json.Marshal(resp)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, string(b))
		return 0
	}
	fmt.Fprintln(stdout, resp.Inspect())
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("veval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.expr, "e", "", "expression to evaluate")
	fs.StringVar(&cfg.file, "f", "", "file or URL holding the expression to evaluate, - for stdin")
	fs.StringVar(&cfg.bindings, "bindings", "", "YAML file of name: expression bindings")
	fs.BoolVar(&cfg.asJSON, "json", false, "print the result as JSON")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	fs.StringVar(&cfg.history, "history", defaultHistoryPath(), "interactive history file, empty to disable")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.expr != "" && cfg.file != "" {
		fmt.Fprintln(stderr, "-e and -f are mutually exclusive")
		return nil, errors.New("conflicting flags")
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return nil, errors.New("unexpected arguments")
	}
	return cfg, nil
}

func loadBindings(sc *scope.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return sc.LoadYAML(f)
}
