package disk

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/jhunt/go-log"
	shellwords "github.com/mattn/go-shellwords"
)

// run executes a single external command, with no shell in between, and
// captures everything the command prints for the audit log.  The combined
// output rides along in the ExecFailure so that the operator sees the
// underlying tool's diagnostics verbatim.
func run(format string, args ...interface{}) error {
	command := fmt.Sprintf(format, args...)

	argv, err := shellwords.Parse(command)
	if err != nil {
		return ExecFailure{Command: command, Err: err}
	}

	log.Debugf("exec: %s", command)
	var output bytes.Buffer
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		log.Errorf("exec: %s failed: %s", command, err)
		for _, line := range bytes.Split(bytes.TrimSpace(output.Bytes()), []byte("\n")) {
			log.Errorf("exec: | %s", string(line))
		}
		return ExecFailure{Command: command, Output: output.String(), Err: err}
	}

	log.Infof("exec: %s ok", command)
	return nil
}

// capture is run for commands whose standard output we need to parse.
func capture(format string, args ...interface{}) (string, error) {
	command := fmt.Sprintf(format, args...)

	argv, err := shellwords.Parse(command)
	if err != nil {
		return "", ExecFailure{Command: command, Err: err}
	}

	log.Debugf("exec: %s", command)
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Errorf("exec: %s failed: %s", command, err)
		return "", ExecFailure{Command: command, Output: stderr.String(), Err: err}
	}

	return stdout.String(), nil
}
