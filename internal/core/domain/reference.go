package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RepoRef identifies a GitHub repository.
type RepoRef struct {
	Owner string
	Name  string
}

// String returns the owner/name form.
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// URL returns the canonical web URL for the repository.
func (r RepoRef) URL() string {
	return "https://github.com/" + r.Owner + "/" + r.Name
}

// PRRef identifies a GitHub pull request.
type PRRef struct {
	Owner  string
	Name   string
	Number int
}

// String returns the owner/name#number form.
func (r PRRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Name, r.Number)
}

// URL returns the canonical web URL for the pull request.
func (r PRRef) URL() string {
	return fmt.Sprintf("https://github.com/%s/%s/pull/%d", r.Owner, r.Name, r.Number)
}

var (
	repoURLPattern = regexp.MustCompile(`github\.com[/:]([^/\s]+)/([^/\s]+?)(?:\.git)?/?(?:\?.*)?$`)
	prURLPattern   = regexp.MustCompile(`(?:www\.)?github\.com/([^/\s,]+)/([^/\s,]+)/pull/(\d+)`)
)

// ParseRepoURL extracts owner and name from a GitHub repository URL.
// Returns ErrInvalidReference when the URL does not match the grammar.
func ParseRepoURL(rawURL string) (RepoRef, error) {
	m := repoURLPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidReference, rawURL)
	}
	name := strings.TrimSuffix(m[2], ".git")
	if name == "" {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidReference, rawURL)
	}
	return RepoRef{Owner: m[1], Name: name}, nil
}

// ParsePRURL extracts owner, name, and number from a GitHub pull request URL.
// Returns ErrInvalidReference when the URL does not match the grammar.
func ParsePRURL(rawURL string) (PRRef, error) {
	m := prURLPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil {
		return PRRef{}, fmt.Errorf("%w: %q", ErrInvalidReference, rawURL)
	}
	number, err := strconv.Atoi(m[3])
	if err != nil {
		return PRRef{}, fmt.Errorf("%w: %q", ErrInvalidReference, rawURL)
	}
	return PRRef{Owner: m[1], Name: m[2], Number: number}, nil
}

// IsPRURL reports whether the URL points at a pull request rather than a
// repository. Used by the CLI to route input to the right flow.
func IsPRURL(rawURL string) bool {
	return prURLPattern.MatchString(rawURL)
}
