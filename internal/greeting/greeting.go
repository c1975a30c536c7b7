// Package greeting implements the say-hello command.
package greeting

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Greet 依年齡回傳問候語
func Greet(name string, age int) string {
	switch {
	case age < 13:
		return fmt.Sprintf("Hello %s, you're still rather young!", name)
	case age < 50:
		return fmt.Sprintf("Hello %s, you're in the prime of your life!", name)
	default:
		return fmt.Sprintf("Hello %s, getting up there in age, huh? Well, you're only as young as you feel!", name)
	}
}

// Prompter 互動式詢問缺少的參數
type Prompter interface {
	Ask(question string) (string, error)
}

// LinePrompter 從 reader 逐行讀取回答
type LinePrompter struct {
	In  *bufio.Reader
	Out io.Writer
}

func (p LinePrompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.Out, question+"\n> "); err != nil {
		return "", err
	}
	line, err := p.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Command 解析 -n/-a，缺少的值在有 Prompter 時改用提問取得
type Command struct {
	Out      io.Writer
	Prompter Prompter
}

func (c *Command) Run(args []string) error {
	fs := flag.NewFlagSet("say-hello", flag.ContinueOnError)
	fs.SetOutput(c.Out)
	name := fs.String("n", "", "person name")
	ageStr := fs.String("a", "", "age")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if *name == "" {
		if *name, err = c.ask("What is your name?"); err != nil {
			return err
		}
	}
	if *ageStr == "" {
		if *ageStr, err = c.ask("How old are you?"); err != nil {
			return err
		}
	}

	age, err := strconv.Atoi(strings.TrimSpace(*ageStr))
	if err != nil {
		return fmt.Errorf("invalid age %q", *ageStr)
	}
	_, err = fmt.Fprintln(c.Out, Greet(*name, age))
	return err
}

func (c *Command) ask(question string) (string, error) {
	if c.Prompter == nil {
		return "", fmt.Errorf("missing answer for %q", question)
	}
	return c.Prompter.Ask(question)
}
