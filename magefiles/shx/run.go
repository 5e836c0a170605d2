package shx

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

// Run is Cmd(...).Run() for commands that need no options.
func Run(ctx context.Context, command string, args ...string) error {
	return Cmd(ctx, command, args...).Run()
}

// Cmd prepares a command that inherits the environment and stderr. Stdout is
// only shown under `mage -v`, unless WithOutput is given.
func Cmd(ctx context.Context, command string, args ...string) *cmd {
	c := exec.CommandContext(ctx, command, args...)
	c.Env = os.Environ()
	c.Stderr = os.Stderr
	if mg.Verbose() {
		c.Stdout = os.Stdout
	}
	return &cmd{c}
}

type cmd struct {
	*exec.Cmd
}

type execOpt func(*exec.Cmd)

func (c *cmd) With(opts ...execOpt) *cmd {
	for _, o := range opts {
		o(c.Cmd)
	}
	return c
}

// Run reports failures as "<tool>: <err>", or "go <subcommand>: <err>" for the
// go tool, so the failing mage step is obvious.
func (c *cmd) Run() error {
	if mg.Verbose() {
		log.Printf("exec: %q (in %q)", c.Args, c.Dir)
	}
	if err := c.Cmd.Run(); err != nil {
		name := filepath.Base(c.Path)
		if name == "go" && len(c.Args) > 1 {
			name = strings.Join(c.Args[:2], " ")
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// WithEnv adds variables on top of the inherited environment.
func WithEnv(env map[string]string) execOpt {
	return func(c *exec.Cmd) {
		for k, v := range env {
			c.Env = append(c.Env, k+"="+v)
		}
	}
}

// WithCwd runs the command from dir instead of the repo root.
func WithCwd(dir string) execOpt {
	return func(c *exec.Cmd) {
		c.Dir = dir
	}
}

// WithOutput always passes stdout through, for tools whose output is the
// point (linters).
func WithOutput() execOpt {
	return func(c *exec.Cmd) {
		c.Stdout = os.Stdout
	}
}
