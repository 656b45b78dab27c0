// Package remote configures remotes in a working repository so that it can
// push to, or additionally push to, a repository in the local hub.
package remote

import (
	"go.uber.org/zap"

	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/git"
	"github.com/lcgerke/localhub/internal/logging"
)

// Entry is one (name, url) pair of a remote listing
type Entry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Configurator edits remote configuration of working repositories
type Configurator struct {
	logger *zap.Logger
}

// NewConfigurator creates a configurator
func NewConfigurator(logger *zap.Logger) *Configurator {
	return &Configurator{logger: logging.OrNop(logger)}
}

// open returns a client rooted at the repository containing target.
// An empty target means the current working directory.
func (c *Configurator) open(target string) (*git.Client, error) {
	exists, root := git.NewClient(target).LocalExists()
	if !exists {
		return nil, errors.NotARepository(target, nil)
	}
	return git.NewClient(root), nil
}

// AddRemote creates remoteName pointing at hubRepoPath.
// It fails if a remote with that name is already configured.
func (c *Configurator) AddRemote(target, remoteName, hubRepoPath string) error {
	client, err := c.open(target)
	if err != nil {
		return err
	}

	exists, err := client.HasRemote(remoteName)
	if err != nil {
		return errors.IOFailure("list remotes", err)
	}
	if exists {
		return errors.RemoteExists(remoteName)
	}

	err = logging.Operation(c.logger, "add-remote", func() error {
		return client.AddRemote(remoteName, hubRepoPath)
	}, zap.String("remote", remoteName), zap.String("url", hubRepoPath), zap.String("repository", client.Workdir()))
	if err != nil {
		return errors.IOFailure("add remote '"+remoteName+"'", err)
	}
	return nil
}

// AddPushURL makes every push to remoteName also go to hubRepoPath.
//
// The push URLs become the remote's fetch URL followed by hubRepoPath, so a
// single push reaches both. The fetch URL itself is not changed. Calling it
// again with another path replaces the hub entry. The remote does not need to
// exist; without a fetch URL only hubRepoPath is written. It is redundant when
// hubRepoPath is the fetch URL or already one of the push URLs.
func (c *Configurator) AddPushURL(target, remoteName, hubRepoPath string) error {
	client, err := c.open(target)
	if err != nil {
		return err
	}

	fetchURL, err := client.GetRemoteURL(remoteName)
	if err != nil {
		return errors.IOFailure("read URL of remote '"+remoteName+"'", err)
	}

	pushURLs, err := client.GetPushURLs(remoteName)
	if err != nil {
		return errors.IOFailure("read push URLs of remote '"+remoteName+"'", err)
	}

	if fetchURL == hubRepoPath {
		return errors.RedundantPushURL(hubRepoPath, remoteName)
	}
	for _, url := range pushURLs {
		if url == hubRepoPath {
			return errors.RedundantPushURL(hubRepoPath, remoteName)
		}
	}

	urls := []string{hubRepoPath}
	if fetchURL != "" {
		urls = []string{fetchURL, hubRepoPath}
	}

	err = logging.Operation(c.logger, "add-push-url", func() error {
		return client.SetPushURLs(remoteName, urls...)
	}, zap.String("remote", remoteName), zap.String("url", hubRepoPath), zap.String("repository", client.Workdir()))
	if err != nil {
		return errors.IOFailure("add push URL to remote '"+remoteName+"'", err)
	}
	return nil
}

// ListRemotes returns every remote with its fetch URL. A remote whose push
// destination differs from its fetch URL is followed by a "<name> (push)" entry.
func (c *Configurator) ListRemotes(target string) ([]Entry, error) {
	client, err := c.open(target)
	if err != nil {
		return nil, err
	}

	names, err := client.ListRemotes()
	if err != nil {
		return nil, errors.IOFailure("list remotes", err)
	}

	entries := []Entry{}
	for _, name := range names {
		url, err := client.GetRemoteURL(name)
		if err != nil {
			return nil, errors.IOFailure("read URL of remote '"+name+"'", err)
		}
		if url == "" {
			continue
		}
		entries = append(entries, Entry{Name: name, URL: url})

		pushURLs, err := client.GetPushURLs(name)
		if err != nil {
			return nil, errors.IOFailure("read push URLs of remote '"+name+"'", err)
		}
		for _, pushURL := range pushURLs {
			if pushURL != url {
				entries = append(entries, Entry{Name: name + constants.PushEntrySuffix, URL: pushURL})
				break
			}
		}
	}
	return entries, nil
}

// PushURLs returns the explicit push URLs of a remote
func (c *Configurator) PushURLs(target, remoteName string) ([]string, error) {
	client, err := c.open(target)
	if err != nil {
		return nil, err
	}

	urls, err := client.GetPushURLs(remoteName)
	if err != nil {
		return nil, errors.IOFailure("read push URLs of remote '"+remoteName+"'", err)
	}
	return urls, nil
}

// RemoveRemote deletes a remote and all of its configuration
func (c *Configurator) RemoveRemote(target, remoteName string) error {
	client, err := c.open(target)
	if err != nil {
		return err
	}

	exists, err := client.HasRemote(remoteName)
	if err != nil {
		return errors.IOFailure("list remotes", err)
	}
	if !exists {
		return errors.RemoteNotFound(remoteName)
	}

	err = logging.Operation(c.logger, "remove-remote", func() error {
		return client.RemoveRemote(remoteName)
	}, zap.String("remote", remoteName), zap.String("repository", client.Workdir()))
	if err != nil {
		return errors.IOFailure("remove remote '"+remoteName+"'", err)
	}
	return nil
}
