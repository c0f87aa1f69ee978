package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line is a prompter that reads one answer per input line.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a line prompter. The reader is buffered once and shared by
// every question so that answers typed ahead are not lost.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (l *Line) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Select prints a numbered list and reads the chosen number. An empty answer
// picks the first option. pageSize is ignored; every option is printed.
func (l *Line) Select(ctx context.Context, message string, options []Option, pageSize int) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", message)
	}

	fmt.Fprintf(l.out, "? %s\n", message)
	for i, opt := range options {
		fmt.Fprintf(l.out, "  %d) %s\n", i+1, opt.Label)
	}

	for {
		fmt.Fprintf(l.out, "  Answer [1-%d] (1): ", len(options))
		answer, err := l.readLine(ctx)
		if err != nil {
			return "", err
		}

		answer = strings.TrimSpace(answer)
		idx := 1
		if answer != "" {
			n, convErr := strconv.Atoi(answer)
			if convErr != nil || n < 1 || n > len(options) {
				fmt.Fprintf(l.out, ">> Please enter a number between 1 and %d\n", len(options))
				continue
			}
			idx = n
		}

		chosen := options[idx-1]
		fmt.Fprintf(l.out, "? %s %s\n", message, chosen.Short)
		return chosen.Value, nil
	}
}

// Input reads free text, re-asking until validate passes. The answer is
// validated and returned as typed.
func (l *Line) Input(ctx context.Context, message, defaultValue string, validate ValidateFunc) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(l.out, "? %s (%s) ", message, defaultValue)
		} else {
			fmt.Fprintf(l.out, "? %s ", message)
		}

		answer, err := l.readLine(ctx)
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = defaultValue
		}

		if validate != nil {
			if err := validate(answer); err != nil {
				fmt.Fprintf(l.out, ">> %s\n", err)
				continue
			}
		}
		return answer, nil
	}
}

// Confirm reads y/yes or n/no. An empty answer takes defaultValue.
func (l *Line) Confirm(ctx context.Context, message string, defaultValue bool) (bool, error) {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(l.out, "? %s (%s) ", message, hint)
		answer, err := l.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return defaultValue, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintf(l.out, ">> Please answer y or n\n")
		}
	}
}
