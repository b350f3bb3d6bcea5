package disk

import (
	"fmt"
	"strings"
)

type ExecFailure struct {
	Command string
	Output  string
	Err     error
}

func (e ExecFailure) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("`%s` failed: %s", e.Command, e.Err)
	}
	return fmt.Sprintf("`%s` failed: %s\n%s", e.Command, e.Err, out)
}

type DependencyError struct {
	Command string
}

func (e DependencyError) Error() string {
	return fmt.Sprintf("required external command '%s' was not found in $PATH", e.Command)
}
