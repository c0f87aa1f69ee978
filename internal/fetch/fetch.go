// Package fetch downloads template repositories into a project directory.
//
// Templates are cloned shallowly into in-memory git storage with go-git and
// the tree at HEAD is written to the destination, overwriting existing files.
// No clone, cache, or .git directory is ever left on disk.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/go-git/go-git/v5/storage/memory"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for fetch operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// DefaultRemoteHost is used when a Fetcher has no RemoteHost.
const DefaultRemoteHost = "https://github.com"

// Fetcher retrieves template repositories.
type Fetcher struct {
	// RemoteHost is prefixed to owner/name coordinates.
	RemoteHost string
	// Timeout bounds one Fetch call. 0 disables it.
	Timeout time.Duration
	// Depth is the clone depth. 0 fetches full history.
	Depth int
}

// New creates a Fetcher performing depth-1 clones against remoteHost.
func New(remoteHost string, timeout time.Duration) *Fetcher {
	return &Fetcher{RemoteHost: remoteHost, Timeout: timeout, Depth: 1}
}

// Fetch downloads the repository named by coordinate and writes its files into dest.
// dest must exist. On failure, files already written are left in place.
func (f *Fetcher) Fetch(ctx context.Context, coordinate, dest string) error {
	repoRef, err := ParseRepo(coordinate)
	if err != nil {
		return err
	}

	host := f.RemoteHost
	if host == "" {
		host = DefaultRemoteHost
	}
	url := repoRef.URL(host)

	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	opts := &git.CloneOptions{
		URL:          url,
		Auth:         getAuthForURL(url),
		Depth:        f.Depth,
		SingleBranch: true,
		Tags:         git.NoTags,
	}
	if repoRef.Ref != "" {
		opts.ReferenceName = referenceName(repoRef.Ref)
	}

	logDebug("[fetch] cloning %s (ref=%q depth=%d)", url, repoRef.Ref, f.Depth)
	start := time.Now()

	repo, err := git.CloneContext(ctx, memory.NewStorage(), nil, opts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("cloning %s: %w", url, ctxErr)
		}
		if errors.Is(err, transport.ErrEmptyRemoteRepository) {
			return fmt.Errorf("template repository %s is empty", url)
		}
		return fmt.Errorf("cloning %s: %w", url, err)
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("resolving HEAD of %s: %w", url, err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return fmt.Errorf("reading commit %s: %w", head.Hash(), err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("reading tree of %s: %w", head.Hash(), err)
	}

	n, err := WriteTree(tree, dest)
	if err != nil {
		return err
	}

	logDebug("[fetch] wrote %d files from %s@%s in %s", n, url, head.Hash().String()[:7], time.Since(start).Round(time.Millisecond))
	return nil
}

// referenceName maps a user ref to a reference: full names pass through,
// anything else is treated as a branch.
func referenceName(ref string) plumbing.ReferenceName {
	if strings.HasPrefix(ref, "refs/") {
		return plumbing.ReferenceName(ref)
	}
	return plumbing.NewBranchReferenceName(ref)
}

// getAuthForURL returns the appropriate authentication method for a remote URL.
// SSH URLs use SSH agent auth, HTTPS URLs use environment credentials.
func getAuthForURL(url string) transport.AuthMethod {
	if isSSHURL(url) {
		if !isSSHAgentAvailable() {
			logDebug("[fetch] SSH URL without SSH agent available")
			return nil
		}
		auth, err := ssh.NewSSHAgentAuth("git")
		if err != nil {
			logDebug("[fetch] SSH agent auth failed: %v", err)
			return nil
		}
		return auth
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil
	}

	username := os.Getenv("GIT_USERNAME")
	password := os.Getenv("GIT_PASSWORD")
	if username == "" {
		username = os.Getenv("GITHUB_TOKEN")
		if username != "" {
			password = "" // GitHub token can be used as username with empty password
		}
	}

	if username != "" {
		return &http.BasicAuth{
			Username: username,
			Password: password,
		}
	}

	return nil
}

// isSSHURL checks if a URL is an SSH URL.
// Detects git@ (SCP-style), ssh://, and git+ssh:// schemes.
func isSSHURL(url string) bool {
	return strings.HasPrefix(url, "git@") ||
		strings.HasPrefix(url, "ssh://") ||
		strings.HasPrefix(url, "git+ssh://")
}

// isSSHAgentAvailable checks if an SSH agent is available.
func isSSHAgentAvailable() bool {
	return strings.TrimSpace(os.Getenv("SSH_AUTH_SOCK")) != ""
}
