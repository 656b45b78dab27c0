package git

import (
	"os"
)

// LocalExists reports whether the client's directory lies inside a git
// repository and returns that repository's root. The search walks upward from
// any subdirectory. For a bare repository the root is its git directory.
func (c *Client) LocalExists() (bool, string) {
	probe := c
	if c.workdir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return false, ""
		}
		probe = &Client{workdir: cwd, gitDir: c.gitDir}
	}

	if root, err := probe.run("rev-parse", "--show-toplevel"); err == nil && root != "" {
		return true, root
	}

	if bare, err := probe.run("rev-parse", "--is-bare-repository"); err == nil && bare == "true" {
		if gitDir, err := probe.run("rev-parse", "--absolute-git-dir"); err == nil && gitDir != "" {
			return true, gitDir
		}
		return true, probe.workdir
	}

	return false, ""
}
