package remote_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/remote"
)

const (
	hubRepoPath    = "/tmp/hub/proj.git"
	otherHubPath   = "/tmp/hub/other.git"
	originURL      = "git@example.com:me/proj.git"
	hubRemoteName  = "local-hub"
	pushRemoteName = "origin"
	pushEntryName  = "origin (push)"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), output)
	return strings.TrimSpace(string(output))
}

func newWorkingRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)
	dir := filepath.Join(t.TempDir(), "work")
	require.NoError(t, os.MkdirAll(dir, 0755))
	gitOutput(t, dir, "init", "--quiet")
	return dir
}

func TestAddRemote(t *testing.T) {
	repo := newWorkingRepo(t)
	configurator := remote.NewConfigurator(nil)

	require.NoError(t, configurator.AddRemote(repo, hubRemoteName, hubRepoPath))

	entries, err := configurator.ListRemotes(repo)
	require.NoError(t, err)
	require.Equal(t, []remote.Entry{{Name: hubRemoteName, URL: hubRepoPath}}, entries)

	err = configurator.AddRemote(repo, hubRemoteName, otherHubPath)
	require.True(t, errors.Is(err, errors.ErrorTypeAlreadyExists), "got %v", err)
	require.Equal(t, hubRepoPath, gitOutput(t, repo, "config", "--get", "remote.local-hub.url"))
}

func TestAddRemoteFromSubdirectory(t *testing.T) {
	repo := newWorkingRepo(t)
	sub := filepath.Join(repo, "pkg", "deep")
	require.NoError(t, os.MkdirAll(sub, 0755))

	require.NoError(t, remote.NewConfigurator(nil).AddRemote(sub, hubRemoteName, hubRepoPath))
	require.Equal(t, hubRepoPath, gitOutput(t, repo, "config", "--get", "remote.local-hub.url"))
}

func TestAddPushURL(t *testing.T) {
	repo := newWorkingRepo(t)
	gitOutput(t, repo, "remote", "add", pushRemoteName, originURL)
	configurator := remote.NewConfigurator(nil)

	require.NoError(t, configurator.AddPushURL(repo, pushRemoteName, hubRepoPath))

	require.Equal(t, originURL, gitOutput(t, repo, "config", "--get", "remote.origin.url"))
	pushURLs, err := configurator.PushURLs(repo, pushRemoteName)
	require.NoError(t, err)
	require.Equal(t, []string{originURL, hubRepoPath}, pushURLs)

	entries, err := configurator.ListRemotes(repo)
	require.NoError(t, err)
	require.Equal(t, []remote.Entry{
		{Name: pushRemoteName, URL: originURL},
		{Name: pushEntryName, URL: hubRepoPath},
	}, entries)
}

func TestAddPushURLRedundant(t *testing.T) {
	repo := newWorkingRepo(t)
	gitOutput(t, repo, "remote", "add", pushRemoteName, originURL)
	configurator := remote.NewConfigurator(nil)
	require.NoError(t, configurator.AddPushURL(repo, pushRemoteName, hubRepoPath))

	err := configurator.AddPushURL(repo, pushRemoteName, hubRepoPath)
	require.True(t, errors.Is(err, errors.ErrorTypeRedundantPushURL), "got %v", err)
}

func TestAddPushURLRedundantWithFetchURL(t *testing.T) {
	repo := newWorkingRepo(t)
	gitOutput(t, repo, "remote", "add", pushRemoteName, hubRepoPath)

	err := remote.NewConfigurator(nil).AddPushURL(repo, pushRemoteName, hubRepoPath)
	require.True(t, errors.Is(err, errors.ErrorTypeRedundantPushURL), "got %v", err)
}

func TestAddPushURLRedundantWithFetchURLAndOwnPushURL(t *testing.T) {
	repo := newWorkingRepo(t)
	gitOutput(t, repo, "remote", "add", hubRemoteName, hubRepoPath)
	gitOutput(t, repo, "config", "remote.local-hub.pushurl", originURL)

	err := remote.NewConfigurator(nil).AddPushURL(repo, hubRemoteName, hubRepoPath)
	require.True(t, errors.Is(err, errors.ErrorTypeRedundantPushURL), "got %v", err)
	require.Equal(t, originURL, gitOutput(t, repo, "config", "--get-all", "remote.local-hub.pushurl"))
}

func TestAddPushURLOverwrites(t *testing.T) {
	repo := newWorkingRepo(t)
	gitOutput(t, repo, "remote", "add", pushRemoteName, originURL)
	configurator := remote.NewConfigurator(nil)

	require.NoError(t, configurator.AddPushURL(repo, pushRemoteName, hubRepoPath))
	require.NoError(t, configurator.AddPushURL(repo, pushRemoteName, otherHubPath))

	pushURLs, err := configurator.PushURLs(repo, pushRemoteName)
	require.NoError(t, err)
	require.Equal(t, []string{originURL, otherHubPath}, pushURLs)
}

func TestAddPushURLWithoutRemote(t *testing.T) {
	repo := newWorkingRepo(t)
	configurator := remote.NewConfigurator(nil)

	require.NoError(t, configurator.AddPushURL(repo, "backup", hubRepoPath))
	require.Equal(t, hubRepoPath, gitOutput(t, repo, "config", "--get", "remote.backup.pushurl"))

	entries, err := configurator.ListRemotes(repo)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestListRemotesEmpty(t *testing.T) {
	repo := newWorkingRepo(t)

	entries, err := remote.NewConfigurator(nil).ListRemotes(repo)
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestRemoveRemote(t *testing.T) {
	repo := newWorkingRepo(t)
	configurator := remote.NewConfigurator(nil)
	require.NoError(t, configurator.AddRemote(repo, hubRemoteName, hubRepoPath))
	require.NoError(t, configurator.AddPushURL(repo, hubRemoteName, otherHubPath))

	require.NoError(t, configurator.RemoveRemote(repo, hubRemoteName))

	entries, err := configurator.ListRemotes(repo)
	require.NoError(t, err)
	require.Empty(t, entries)

	leftover, err := exec.Command("git", "-C", repo, "config", "--get-regexp", `^remote\.`).Output()
	require.Error(t, err, "expected no remote.* keys, got %s", leftover)

	err = configurator.RemoveRemote(repo, hubRemoteName)
	require.True(t, errors.Is(err, errors.ErrorTypeNotFound), "got %v", err)
}

func TestNotARepository(t *testing.T) {
	requireGit(t)
	t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())
	dir := t.TempDir()
	configurator := remote.NewConfigurator(nil)

	checks := map[string]error{
		"add-remote":    configurator.AddRemote(dir, hubRemoteName, hubRepoPath),
		"add-push-url":  configurator.AddPushURL(dir, pushRemoteName, hubRepoPath),
		"remove-remote": configurator.RemoveRemote(dir, hubRemoteName),
	}
	_, listErr := configurator.ListRemotes(dir)
	checks["list-remotes"] = listErr

	for name, err := range checks {
		require.True(t, errors.Is(err, errors.ErrorTypeNotARepository), "%s: got %v", name, err)
	}
}

func TestDiscoveryFromWorkingDirectory(t *testing.T) {
	repo := newWorkingRepo(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(repo))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	configurator := remote.NewConfigurator(nil)
	require.NoError(t, configurator.AddRemote("", hubRemoteName, hubRepoPath))

	entries, err := configurator.ListRemotes("")
	require.NoError(t, err)
	require.Equal(t, []remote.Entry{{Name: hubRemoteName, URL: hubRepoPath}}, entries)
}

func TestMutationsAreLogged(t *testing.T) {
	repo := newWorkingRepo(t)
	core, logs := observer.New(zapcore.InfoLevel)
	configurator := remote.NewConfigurator(zap.New(core))

	require.NoError(t, configurator.AddRemote(repo, hubRemoteName, hubRepoPath))
	require.NoError(t, configurator.RemoveRemote(repo, hubRemoteName))

	completed := logs.FilterMessage("completed").All()
	require.Len(t, completed, 2)
	require.Equal(t, "add-remote", completed[0].ContextMap()["operation"])
	require.Equal(t, hubRepoPath, completed[0].ContextMap()["url"])
	require.Equal(t, "remove-remote", completed[1].ContextMap()["operation"])
}
