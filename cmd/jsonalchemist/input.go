package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const stdinName = "<stdin>"

// readInput reads the file named by args[0], or stdin when no argument or
// "-" is given.
func (c *cli) readInput(args []string) (text, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return "", stdinName, fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), stdinName, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", args[0], fmt.Errorf("reading input: %w", err)
	}
	return string(data), args[0], nil
}

// writeOutput writes text to path, or to stdout when path is empty. A
// trailing newline is added if missing.
func (c *cli) writeOutput(text, path string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if path == "" {
		_, err := io.WriteString(c.stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
