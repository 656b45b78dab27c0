// Package hub manages a directory of bare repositories used as a local backup hub.
//
// Every repository lives directly under the hub root in a directory whose name
// ends in ".git". The directory is the only source of truth: there is no index
// file, and metadata is derived from disk on every call.
//
// Operations are not safe against concurrent processes working on the same
// root. Create and Delete check then act without holding a lock.
package hub

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/git"
	"github.com/lcgerke/localhub/internal/logging"
)

// Repository describes a bare repository in the hub
type Repository struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	// Commits is nil for an empty repository or when history cannot be walked
	Commits *int `json:"commits,omitempty"`
}

// DetailOptions controls how much metadata ListDetailed derives
type DetailOptions struct {
	// Commits enables the full-history commit count for each repository
	Commits bool
}

// Registry manages the repositories under a hub root
type Registry struct {
	root   string
	logger *zap.Logger
}

// NewRegistry creates a registry for an already resolved hub root
func NewRegistry(root string, logger *zap.Logger) *Registry {
	root = filepath.Clean(root)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Registry{
		root:   root,
		logger: logging.OrNop(logger),
	}
}

// Root returns the hub root directory
func (r *Registry) Root() string {
	return r.root
}

// Init ensures the hub root exists
func (r *Registry) Init() error {
	if err := os.MkdirAll(r.root, constants.HubDirPermissions); err != nil {
		return errors.IOFailure("create hub directory "+r.root, err)
	}
	return nil
}

// Create initializes a new bare repository and returns its path
func (r *Registry) Create(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	if err := r.Init(); err != nil {
		return "", err
	}

	repoName := NormalizeName(name)
	repoPath := filepath.Join(r.root, repoName)

	if _, err := os.Lstat(repoPath); err == nil {
		return "", errors.RepositoryExists(name)
	} else if !os.IsNotExist(err) {
		return "", errors.IOFailure("check repository "+repoPath, err)
	}

	err := logging.Operation(r.logger, "create", func() error {
		return git.InitBareRepo(repoPath)
	}, zap.String("repository", repoName), zap.String("path", repoPath))
	if err != nil {
		return "", errors.IOFailure("initialize bare repository "+repoPath, err)
	}

	return repoPath, nil
}

// List returns the names of all repositories in the hub, sorted.
// A missing hub root yields an empty list.
func (r *Registry) List() ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.IOFailure("read hub directory "+r.root, err)
	}

	repos := []string{}
	for _, entry := range entries {
		if !isRepoDirName(entry.Name()) {
			continue
		}
		info, err := os.Stat(filepath.Join(r.root, entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		repos = append(repos, entry.Name())
	}

	sort.Strings(repos)
	return repos, nil
}

// ListDetailed returns metadata for every repository in the hub.
// Entries whose metadata cannot be read are skipped.
func (r *Registry) ListDetailed(opts DetailOptions) ([]Repository, error) {
	names, err := r.List()
	if err != nil {
		return nil, err
	}

	repos := make([]Repository, 0, len(names))
	for _, name := range names {
		repo, err := r.describe(name, opts.Commits)
		if err != nil {
			r.logger.Debug("skipping repository", zap.String("repository", name), zap.Error(err))
			continue
		}
		repos = append(repos, *repo)
	}
	return repos, nil
}

// Search returns the repositories whose name contains pattern, ignoring case
func (r *Registry) Search(pattern string) ([]string, error) {
	names, err := r.List()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(pattern)
	matches := []string{}
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}

// Info returns fully populated metadata for a repository
func (r *Registry) Info(name string) (*Repository, error) {
	if !r.Exists(name) {
		return nil, errors.RepositoryNotFound(name)
	}
	return r.describe(NormalizeName(name), true)
}

// CommitCount counts the commits reachable from a repository's HEAD.
// The result is nil for an empty repository.
func (r *Registry) CommitCount(name string) (*int, error) {
	repoPath, err := r.Path(name)
	if err != nil {
		return nil, err
	}
	return commitCount(repoPath), nil
}

// Path returns the absolute path of an existing repository
func (r *Registry) Path(name string) (string, error) {
	if !r.Exists(name) {
		return "", errors.RepositoryNotFound(name)
	}
	return r.repoPath(name), nil
}

// Exists reports whether a repository directory with the normalized name
// exists. It agrees with List: only directories with a non-empty name count.
func (r *Registry) Exists(name string) bool {
	repoName := NormalizeName(name)
	if !isSingleElement(repoName) || !isRepoDirName(repoName) {
		return false
	}
	info, err := os.Stat(r.repoPath(name))
	return err == nil && info.IsDir()
}

// Verify returns InvalidRepository when an existing entry fails the bare
// repository layout check, and NotFound when it does not exist.
func (r *Registry) Verify(name string) error {
	if !r.Exists(name) {
		return errors.RepositoryNotFound(name)
	}
	if repoPath := r.repoPath(name); !IsBareRepository(repoPath) {
		return errors.InvalidRepository(repoPath)
	}
	return nil
}

// Delete removes a repository after checking it is a bare repository.
// A directory that fails the check is left untouched.
func (r *Registry) Delete(name string) error {
	if err := r.Verify(name); err != nil {
		return err
	}

	repoPath := r.repoPath(name)

	err := logging.Operation(r.logger, "delete", func() error {
		return os.RemoveAll(repoPath)
	}, zap.String("repository", NormalizeName(name)), zap.String("path", repoPath))
	if err != nil {
		return errors.IOFailure("delete repository "+repoPath, err)
	}
	return nil
}

func (r *Registry) repoPath(name string) string {
	return filepath.Join(r.root, NormalizeName(name))
}

// describe derives metadata for a normalized repository name
func (r *Registry) describe(repoName string, withCommits bool) (*Repository, error) {
	repoPath := filepath.Join(r.root, repoName)

	stat, err := os.Stat(repoPath)
	if err != nil {
		return nil, errors.IOFailure("read repository "+repoPath, err)
	}

	size, err := dirSize(repoPath)
	if err != nil {
		return nil, errors.IOFailure("measure repository "+repoPath, err)
	}

	repo := &Repository{
		Name:     repoName,
		Path:     repoPath,
		Size:     size,
		Modified: stat.ModTime(),
	}
	if withCommits {
		repo.Commits = commitCount(repoPath)
	}
	return repo, nil
}
