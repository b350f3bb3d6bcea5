package tui

import (
	"bufio"
	"os"
	"strings"

	ansi "github.com/jhunt/go-ansi"
)

// Processor validates one answer, turning the raw string into whatever
// the caller actually wants.  Returning an error re-prompts; bad input
// never leaves the prompt layer.
type Processor func(value string) (interface{}, error)

var stdin = bufio.NewReader(os.Stdin)

// Ask prompts until the processor accepts an answer.  An empty answer is
// handed to the processor as-is; contexts where empty means something
// (like "use the rest of the disk") deal with it there.
func Ask(label, hint string, fn Processor) (interface{}, error) {
	for {
		if hint != "" {
			ansi.Printf("@W{%s} (%s): ", label, hint)
		} else {
			ansi.Printf("@W{%s}: ", label)
		}

		v, err := stdin.ReadString('\n')
		if err != nil {
			return nil, err
		}

		final, err := fn(strings.TrimSpace(v))
		if err != nil {
			ansi.Fprintf(os.Stderr, "@R{!! %s}\n", err)
			continue
		}
		return final, nil
	}
}

// AnswerIsRequired accepts anything that is not blank.
func AnswerIsRequired(value string) (interface{}, error) {
	if value == "" {
		return nil, ansi.Errorf("an answer is required here")
	}
	return value, nil
}
