package fetch

import (
	"fmt"
	"strings"
)

// Repo is a parsed template coordinate: owner/name with an optional #ref.
type Repo struct {
	Owner string
	Name  string
	// Ref is a branch name or a full reference (refs/tags/v1). Empty means
	// the remote's default branch.
	Ref string
}

// ParseRepo parses "owner/name" or "owner/name#ref".
func ParseRepo(coordinate string) (Repo, error) {
	path, ref, _ := strings.Cut(strings.TrimSpace(coordinate), "#")

	owner, name, ok := strings.Cut(path, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repo{}, fmt.Errorf("invalid repository coordinate %q: want owner/name", coordinate)
	}
	if strings.ContainsAny(owner+name, " \t\\") || owner == ".." || name == ".." {
		return Repo{}, fmt.Errorf("invalid repository coordinate %q", coordinate)
	}

	return Repo{Owner: owner, Name: name, Ref: ref}, nil
}

// String returns the coordinate in owner/name[#ref] form.
func (r Repo) String() string {
	if r.Ref != "" {
		return r.Owner + "/" + r.Name + "#" + r.Ref
	}
	return r.Owner + "/" + r.Name
}

// URL resolves the repository against host. SCP-style SSH hosts ending in
// ":" (git@github.com:) are joined without a slash.
func (r Repo) URL(host string) string {
	path := r.Owner + "/" + r.Name
	if strings.HasSuffix(host, ":") {
		return host + path
	}
	return strings.TrimRight(host, "/") + "/" + path
}
