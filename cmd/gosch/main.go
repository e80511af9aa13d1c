// Command gosch is the evaluator's CLI and interactive REPL, grounded in
// go-lisp's cmd/golisp main: -e evaluates an expression, -f executes a
// file, and with neither it drops into a readline-backed loop.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrosila/gosch/pkg/builtins"
	"github.com/mrosila/gosch/pkg/frame"
	"github.com/mrosila/gosch/pkg/interp"
	"github.com/mrosila/gosch/pkg/reader"
	"github.com/mrosila/gosch/pkg/repl"
	"github.com/mrosila/gosch/pkg/value"
)

func main() {
	var (
		help        = flag.Bool("help", false, "Show help message")
		eval        = flag.String("e", "", "Evaluate code directly instead of reading from a file")
		filename    = flag.String("f", "", "File to execute")
		noColor     = flag.Bool("no-color", false, "Disable colored REPL output")
		dotsAreCons = flag.Bool("dots-are-cons", false, "Relax a cons-stream tail's force to accept any value instead of requiring a pair or ()")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                     # Start interactive REPL\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f script.scm       # Execute a file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -e '(+ 1 2 3)'      # Evaluate code directly\n", os.Args[0])
	}
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	cfg := interp.Config{DotsAreCons: *dotsAreCons, Out: os.Stdout}
	in := interp.New(cfg)
	global := frame.NewGlobalFrame()
	builtins.Register(global, in)

	runSource := func(src string) (value.Value, error) {
		exprs, err := reader.ReadAll(src)
		if err != nil {
			return nil, err
		}
		var last value.Value = value.Nil
		for _, expr := range exprs {
			v, err := in.Evaluate(expr, global)
			if err != nil {
				return nil, err
			}
			last = v
		}
		return last, nil
	}

	if *eval != "" {
		result, err := runSource(*eval)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error evaluating code: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(value.Repr(result))
		return
	}

	if *filename != "" {
		src, err := os.ReadFile(*filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", *filename, err)
			os.Exit(1)
		}
		if _, err := runSource(string(src)); err != nil {
			fmt.Fprintf(os.Stderr, "Error executing file %s: %v\n", *filename, err)
			os.Exit(1)
		}
		return
	}

	if err := repl.Run(in, global, !*noColor); err != nil {
		fmt.Fprintf(os.Stderr, "REPL error: %v\n", err)
		os.Exit(1)
	}
}
