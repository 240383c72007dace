package browse

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"mapbrowse/internal/logging"
	"mapbrowse/internal/model"
)

// OutcomeState tags the result of a launch.
type OutcomeState int

const (
	Completed OutcomeState = iota
	Interrupted
)

// Outcome is the result of a finished browse session: either the child
// process completed with an exit status, or the operator interrupted the
// wait.
type Outcome struct {
	State      OutcomeState
	Command    string // interpreter plus script path
	ExitStatus int
}

func (o Outcome) String() string {
	if o.State == Interrupted {
		return "interrupted"
	}
	return fmt.Sprintf("completed: %s (exit status %d)", o.Command, o.ExitStatus)
}

// Launch materializes the driver script for req into a fresh temporary file
// and runs it under req.Interpreter, blocking until the child exits. The
// wait is unbounded and never retried; the only early exit is an interrupt
// signal, which is recovered into the Interrupted outcome rather than
// surfaced as an error. A non-zero child exit is returned as an error naming
// the command and status.
//
// The temporary file is left on disk afterwards; its removal is the
// environment's responsibility.
func Launch(req model.Request) (Outcome, error) {
	log := logging.New("launch")

	script, err := os.CreateTemp("", "mapbrowse*.py")
	if err != nil {
		return Outcome{}, fmt.Errorf("create driver script: %w", err)
	}
	if _, err := script.WriteString(Script(req, script.Name())); err != nil {
		script.Close()
		return Outcome{}, fmt.Errorf("write driver script: %w", err)
	}
	// The child must see the complete script, so flush before spawning.
	if err := script.Sync(); err != nil {
		script.Close()
		return Outcome{}, fmt.Errorf("flush driver script: %w", err)
	}
	if err := script.Close(); err != nil {
		return Outcome{}, fmt.Errorf("close driver script: %w", err)
	}
	log.Debug("driver script written", "path", script.Name())

	cmd := exec.Command(req.Interpreter, script.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Install the handler before the child exists so no interrupt can land
	// with the default disposition while we are responsible for the run.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	if err := cmd.Start(); err != nil {
		return Outcome{}, fmt.Errorf("start %s: %w", req.Interpreter, err)
	}
	command := strings.Join(cmd.Args, " ")
	log.Debug("child started", "pid", cmd.Process.Pid, "command", command)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-interrupt:
		// The terminal delivers the interrupt to the child as well; let it
		// go down before reporting.
		<-done
		log.Debug("wait interrupted", "command", command)
		return Outcome{State: Interrupted, Command: command}, nil
	case err := <-done:
		if err != nil {
			return Outcome{}, fmt.Errorf("%s: %w", command, err)
		}
		return Outcome{State: Completed, Command: command, ExitStatus: cmd.ProcessState.ExitCode()}, nil
	}
}
