// Package shell provides the compiler process executor.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the invocation and waits for it to exit.
// The compiler's stdout and stderr stream both to the given writers and,
// line by line, to the logger.
func (e *Executor) Execute(ctx context.Context, inv *domain.Invocation, stdout, stderr io.Writer) error {
	if len(inv.Argv) == 0 {
		return nil
	}

	name := inv.Argv[0]
	args := inv.Argv[1:]

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // argv is built from the target definition

	if inv.WorkingDir != "" {
		cmd.Dir = inv.WorkingDir
	}

	outLog := &logWriter{logger: e.logger, level: "info"}
	errLog := &logWriter{logger: e.logger, level: "error"}

	cmd.Env = resolveEnvironment(os.Environ(), inv.Environment)
	cmd.Stdout = io.MultiWriter(stdout, outLog)
	cmd.Stderr = io.MultiWriter(stderr, errLog)

	runErr := cmd.Run()
	outLog.flush()
	errLog.flush()

	if runErr != nil {
		exitCode := -1 // unknown or signal
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(runErr, "command failed"), "exit_code", exitCode)
	}

	return nil
}

// logWriter forwards subprocess output to the logger, one line per message.
// Partial lines are carried over until the next write or the final flush,
// so a line spanning two writes still logs as one message.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf.Write(p)
	for {
		idx := bytes.IndexByte(w.buf.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := string(w.buf.Next(idx))
		w.buf.Next(1)
		w.log(line)
	}
	return len(p), nil
}

// flush logs whatever remains after the subprocess exits.
func (w *logWriter) flush() {
	if w.buf.Len() == 0 {
		return
	}
	w.log(w.buf.String())
	w.buf.Reset()
}

func (w *logWriter) log(line string) {
	if line == "" {
		return
	}
	if w.level == "info" {
		w.logger.Info(line)
	} else {
		w.logger.Error(zerr.New(line))
	}
}

// resolveEnvironment merges the invocation environment over the system one.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
