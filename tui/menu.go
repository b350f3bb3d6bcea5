package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Menu shows a numbered table and returns the object attached to the row
// the operator picks.  Out-of-range and non-numeric answers just ask
// again.
func Menu(intro string, t *Table, prompt string) interface{} {
	fmt.Printf("%s\n\n", intro)
	t.OutputWithIndices(os.Stdout)
	fmt.Printf("\n")

	for {
		fmt.Printf("  %s [1-%d] ", prompt, t.Rows())
		v, err := stdin.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s\n", err)
			return nil
		}

		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || n <= 0 || n > int64(t.Rows()) {
			continue
		}
		fmt.Printf("\n")
		return t.Object(int(n - 1))
	}
}
