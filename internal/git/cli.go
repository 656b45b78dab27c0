package git

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Client wraps git CLI operations
type Client struct {
	workdir string
	gitDir  string
}

// NewClient creates a git CLI client that runs inside a working directory
func NewClient(workdir string) *Client {
	return &Client{
		workdir: workdir,
	}
}

// NewBareClient creates a client pinned to a repository directory with --git-dir.
// Git never searches parent directories, so a broken directory cannot be mistaken
// for an enclosing repository.
func NewBareClient(gitDir string) *Client {
	return &Client{
		gitDir: gitDir,
	}
}

// Workdir returns the directory commands run in
func (c *Client) Workdir() string {
	return c.workdir
}

// CommandError describes a failed git invocation
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s failed: %v\nstderr: %s", strings.Join(e.Args, " "), e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status carried by err, or -1 when err is not a git failure
func ExitCode(err error) int {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return -1
}

// run executes a git command
func (c *Client) run(args ...string) (string, error) {
	fullArgs := args
	if c.gitDir != "" {
		fullArgs = append([]string{"--git-dir", c.gitDir}, args...)
	}

	cmd := exec.Command("git", fullArgs...)
	if c.workdir != "" {
		cmd.Dir = c.workdir
	}
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &CommandError{
			Args:     fullArgs,
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// CheckGitVersion verifies git is installed
func CheckGitVersion() error {
	cmd := exec.Command("git", "--version")
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("git is not installed or not in PATH: %w", err)
	}

	if !strings.Contains(string(output), "git version") {
		return fmt.Errorf("unexpected git version output: %s", output)
	}

	return nil
}

func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
