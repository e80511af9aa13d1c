// Package repl implements the interactive read-eval-print loop, grounded in
// go-lisp's pkg/repl: chzyer/readline for line editing and history,
// fatih/color for result/error coloring.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mrosila/gosch/pkg/interp"
	"github.com/mrosila/gosch/pkg/reader"
	"github.com/mrosila/gosch/pkg/value"
)

// Run starts the REPL against in/global until EOF or an explicit quit/exit.
func Run(in *interp.Interp, global value.Env, enableColors bool) error {
	color.NoColor = !enableColors

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "gosch> ",
		HistoryFile:     historyFile(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("initializing readline: %w", err)
	}
	defer rl.Close()

	printWelcome()
	formatter := NewErrorFormatter()

	for {
		input, err := readCompleteExpression(rl)
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				break
			}
			fmt.Printf("input error: %v\n", err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		expr, err := reader.Read(input)
		if err != nil {
			fmt.Println(formatter.FormatErrorWithSmartSuggestion(err))
			continue
		}
		result, err := in.Evaluate(expr, global)
		if err != nil {
			fmt.Println(formatter.FormatErrorWithSmartSuggestion(err))
			continue
		}
		resultColor := color.New(color.FgGreen)
		fmt.Printf("=> %s\n", resultColor.Sprint(value.Repr(result)))
	}

	printGoodbye()
	return nil
}

// readCompleteExpression reads lines until parentheses balance, so a form
// spanning several lines can be entered naturally.
func readCompleteExpression(rl *readline.Instance) (string, error) {
	var b strings.Builder
	depth := 0
	started := false

	for {
		prompt := "gosch> "
		if started {
			prompt = "   ... "
		}
		rl.SetPrompt(prompt)
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteString("\n")
		depth += parenBalance(line)
		started = true
		if depth <= 0 {
			return b.String(), nil
		}
	}
}

func parenBalance(line string) int {
	balance := 0
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inString = !inString
		case ';':
			if !inString {
				return balance
			}
		case '(':
			if !inString {
				balance++
			}
		case ')':
			if !inString {
				balance--
			}
		}
	}
	return balance
}

func historyFile() string {
	return "/tmp/gosch_history"
}

func printWelcome() {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Println("gosch — a Scheme-dialect evaluator")
	fmt.Println("Type an expression, or 'quit'/'exit' to leave.")
}

func printGoodbye() {
	fmt.Println("goodbye")
}
