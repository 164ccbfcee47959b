// Package shell runs the external programs of the pipeline. Commands never read stdin,
// and a non-zero exit status is returned as an error naming the command.
package shell

import (
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/dasnellings/cnvTools/config"
	"github.com/pkg/errors"
)

// Cmd is a single external command. Stdout and Stderr are file paths; when empty the
// output goes to the stdout and stderr of this process. When Stdout and Stderr name the
// same file both streams share one handle.
type Cmd struct {
	Args   []string
	Stdout string
	Stderr string
}

// Command builds a Cmd from a configured program (which may have several words) and args.
func Command(program string, args ...string) *Cmd {
	argv := config.Argv(program)
	return &Cmd{Args: append(argv, args...)}
}

// String method for Cmd enables easy logging with the fmt and log packages.
func (c *Cmd) String() string {
	s := new(strings.Builder)
	for i := range c.Args {
		if i > 0 {
			s.WriteByte(' ')
		}
		s.WriteString(quote(c.Args[i]))
	}
	if c.Stdout != "" {
		s.WriteString(" > " + c.Stdout)
	}
	if c.Stderr != "" {
		if c.Stderr == c.Stdout {
			s.WriteString(" 2>&1")
		} else {
			s.WriteString(" 2> " + c.Stderr)
		}
	}
	return s.String()
}

func quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if strings.ContainsAny(arg, " \t\n'\"$&|;<>()*?") {
		return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
	}
	return arg
}

// Run executes c and waits for it to exit.
func Run(c *Cmd) (err error) {
	if len(c.Args) == 0 {
		return errors.New("empty command")
	}
	cmd := exec.Command(c.Args[0], c.Args[1:]...)
	cmd.Stdin = nil // reads from os.DevNull

	var closers []io.Closer
	defer func() {
		for i := range closers {
			if e := closers[i].Close(); err == nil && e != nil {
				err = e
			}
		}
	}()

	cmd.Stdout = os.Stdout
	if c.Stdout != "" {
		f, err := os.Create(c.Stdout)
		if err != nil {
			return errors.Wrapf(err, "could not create output for: %s", c)
		}
		closers = append(closers, f)
		cmd.Stdout = f
	}

	cmd.Stderr = os.Stderr
	switch {
	case c.Stderr != "" && c.Stderr == c.Stdout:
		cmd.Stderr = cmd.Stdout
	case c.Stderr != "":
		f, err := os.Create(c.Stderr)
		if err != nil {
			return errors.Wrapf(err, "could not create log for: %s", c)
		}
		closers = append(closers, f)
		cmd.Stderr = f
	}

	log.Println("running:", c)
	if err = cmd.Run(); err != nil {
		return errors.Wrapf(err, "command failed: %s", c)
	}
	return nil
}

// Stream starts c and passes its stdout to fn. The command is waited on after fn returns.
// An error from fn takes priority over the exit status of the command.
func Stream(c *Cmd, fn func(io.Reader) error) error {
	if len(c.Args) == 0 {
		return errors.New("empty command")
	}
	cmd := exec.Command(c.Args[0], c.Args[1:]...)
	cmd.Stderr = os.Stderr
	out, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrapf(err, "could not open pipe for: %s", c)
	}

	log.Println("running:", c)
	if err = cmd.Start(); err != nil {
		return errors.Wrapf(err, "could not start: %s", c)
	}

	fnErr := fn(out)
	if fnErr != nil {
		// drain so the command is not blocked on a full pipe
		_, _ = io.Copy(io.Discard, out)
	}
	waitErr := cmd.Wait()
	if fnErr != nil {
		return fnErr
	}
	if waitErr != nil {
		return errors.Wrapf(waitErr, "command failed: %s", c)
	}
	return nil
}
