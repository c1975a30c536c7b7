// File: cmd/hello/main.go
package main

import (
	"bufio"
	"fmt"
	"os"

	"session-guard/internal/greeting"

	"golang.org/x/term"
)

var (
	isTerminal = term.IsTerminal
	exitFunc   = os.Exit
)

func run(args []string) error {
	cmd := &greeting.Command{Out: os.Stdout}
	// 只有在終端機上才互動提問
	if isTerminal(int(os.Stdin.Fd())) {
		cmd.Prompter = greeting.LinePrompter{In: bufio.NewReader(os.Stdin), Out: os.Stdout}
	}
	return cmd.Run(args)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
