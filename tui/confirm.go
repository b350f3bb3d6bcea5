package tui

import (
	"os"
	"strings"

	ansi "github.com/jhunt/go-ansi"
)

// Confirm asks a yes/no question and keeps asking until it gets one.
func Confirm(prompt string) bool {
	for {
		ansi.Printf("@Y{%s [y/n]} ", prompt)
		v, err := stdin.ReadString('\n')
		if err != nil {
			ansi.Fprintf(os.Stderr, "failed: @R{%s}\n", err)
			return false
		}

		switch strings.ToLower(strings.TrimSpace(v)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}
