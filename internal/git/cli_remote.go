package git

import "fmt"

// cli_remote.go contains remote operations: AddRemote, RemoveRemote, ListRemotes,
// GetRemoteURL, GetPushURLs, SetPushURLs

// AddRemote adds a remote
func (c *Client) AddRemote(name, url string) error {
	_, err := c.run("remote", "add", name, url)
	return err
}

// RemoveRemote removes a remote together with its tracking configuration
func (c *Client) RemoveRemote(name string) error {
	_, err := c.run("remote", "remove", name)
	return err
}

// ListRemotes lists all remotes
func (c *Client) ListRemotes() ([]string, error) {
	output, err := c.run("remote")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// HasRemote reports whether a remote with the given name is configured
func (c *Client) HasRemote(name string) (bool, error) {
	remotes, err := c.ListRemotes()
	if err != nil {
		return false, err
	}
	for _, r := range remotes {
		if r == name {
			return true, nil
		}
	}
	return false, nil
}

// GetRemoteURL returns the configured fetch URL; empty when unset
func (c *Client) GetRemoteURL(remote string) (string, error) {
	url, _, err := c.ConfigGet(fmt.Sprintf("remote.%s.url", remote))
	return url, err
}

// GetPushURLs returns every explicit push URL for a remote.
// Unlike `git remote get-url --push`, it does not fall back to the fetch URL.
func (c *Client) GetPushURLs(remote string) ([]string, error) {
	return c.ConfigGetAll(fmt.Sprintf("remote.%s.pushurl", remote))
}

// SetPushURLs replaces the push URLs of a remote, keeping their order
func (c *Client) SetPushURLs(remote string, urls ...string) error {
	if len(urls) == 0 {
		return fmt.Errorf("at least one push URL is required")
	}

	key := fmt.Sprintf("remote.%s.pushurl", remote)
	if err := c.ConfigReplaceAll(key, urls[0]); err != nil {
		return fmt.Errorf("failed to set push URL: %w", err)
	}
	for _, url := range urls[1:] {
		if err := c.ConfigAdd(key, url); err != nil {
			return fmt.Errorf("failed to add push URL: %w", err)
		}
	}
	return nil
}
