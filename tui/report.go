package tui

import (
	"fmt"
	"io"
	"strings"
)

// Report renders aligned key/value pairs; carve uses it to show the
// finalized partition plan before asking for the point of no return.
type Report struct {
	values [][]string
	width  int
}

func NewReport() Report {
	return Report{}
}

func (r *Report) Add(key, value string) {
	if r.width < len(key) {
		r.width = len(key)
	}
	r.values = append(r.values, []string{key, value})
}

func (r *Report) Break() {
	r.values = append(r.values, []string{"", ""})
}

func (r *Report) Output(out io.Writer) {
	keyf := fmt.Sprintf("%%-%ds %%s\n", r.width+1)
	blank := strings.Repeat(" ", r.width+2)

	for _, p := range r.values {
		if p[0] != "" {
			fmt.Fprintf(out, keyf, p[0]+":", p[1])
		} else {
			fmt.Fprintf(out, "%s%s\n", blank, p[1])
		}
	}
}
