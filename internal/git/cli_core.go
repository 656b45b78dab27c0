package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// cli_core.go contains repository-level operations: InitBareRepo, HeadCommit,
// CountCommits, ConfigGet, ConfigGetAll, ConfigReplaceAll

// Init initializes a git repository in the client's working directory
func (c *Client) Init(bare bool) error {
	args := []string{"init", "--quiet"}
	if bare {
		args = append(args, "--bare")
	}

	_, err := c.run(args...)
	return err
}

// InitBareRepo creates a bare repository at the specified path.
// The repository is initialized in a hidden sibling directory and renamed into
// place, so path either holds a complete repository or does not exist.
func InitBareRepo(path string) error {
	parentDir := filepath.Dir(path)
	if _, err := os.Stat(parentDir); os.IsNotExist(err) {
		return fmt.Errorf("parent directory does not exist: %s", parentDir)
	}

	stagingDir, err := os.MkdirTemp(parentDir, ".init-")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}

	if err := NewClient(stagingDir).Init(true); err != nil {
		_ = os.RemoveAll(stagingDir)
		return err
	}

	if err := os.Rename(stagingDir, path); err != nil {
		_ = os.RemoveAll(stagingDir)
		return fmt.Errorf("failed to move bare repository into place: %w", err)
	}

	return nil
}

// HeadCommit resolves HEAD to a commit id.
// ok is false when HEAD is unborn or does not point at a commit.
func (c *Client) HeadCommit() (string, bool, error) {
	output, err := c.run("rev-parse", "--verify", "--quiet", "HEAD^{commit}")
	if err != nil {
		if ExitCode(err) == 1 {
			return "", false, nil
		}
		return "", false, err
	}
	return output, output != "", nil
}

// CountCommits counts every commit reachable from rev
func (c *Client) CountCommits(rev string) (int, error) {
	output, err := c.run("rev-list", "--count", rev)
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("invalid count output: %s", output)
	}
	return count, nil
}

// ConfigGet returns a single config value; ok is false when the key is unset
func (c *Client) ConfigGet(key string) (string, bool, error) {
	output, err := c.run("config", "--get", key)
	if err != nil {
		if ExitCode(err) == 1 {
			return "", false, nil
		}
		return "", false, err
	}
	return output, true, nil
}

// ConfigGetAll returns every value of a multi-valued key in file order
func (c *Client) ConfigGetAll(key string) ([]string, error) {
	output, err := c.run("config", "--get-all", key)
	if err != nil {
		if ExitCode(err) == 1 {
			return []string{}, nil
		}
		return nil, err
	}
	return splitLines(output), nil
}

// ConfigReplaceAll replaces every value of key with value
func (c *Client) ConfigReplaceAll(key, value string) error {
	_, err := c.run("config", "--replace-all", key, value)
	return err
}

// ConfigAdd appends a value to a multi-valued key
func (c *Client) ConfigAdd(key, value string) error {
	_, err := c.run("config", "--add", key, value)
	return err
}

// ConfigSet sets a git config value
func (c *Client) ConfigSet(key, value string) error {
	_, err := c.run("config", key, value)
	return err
}
