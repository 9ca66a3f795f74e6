package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompt asks for a value on the terminal and returns the trimmed answer,
// falling back to def when the answer is empty.
func prompt(in io.Reader, out io.Writer, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(out, "%s (default: %s): ", label, def)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		if def != "" {
			return def, nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		answer = def
	}
	return answer, nil
}
