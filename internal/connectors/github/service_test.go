package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

// newTestService points a Service at a local test server.
func newTestService(t *testing.T, mux *http.ServeMux) *Service {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := gh.NewClient(nil)
	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return NewServiceWithClient(client)
}

func TestFetchRepoMetadata(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"name": "widgets",
			"language": "Python",
			"description": "A web scraping tool",
			"topics": ["scraping", "automation"]
		}`))
	})

	svc := newTestService(t, mux)
	meta, err := svc.FetchRepoMetadata(context.Background(), domain.RepoRef{Owner: "acme", Name: "widgets"})
	require.NoError(t, err)
	assert.Equal(t, "widgets", meta.Name)
	assert.Equal(t, "Python", meta.Language)
	assert.Equal(t, "A web scraping tool", meta.Description)
	assert.Equal(t, []string{"scraping", "automation"}, meta.Topics)
}

func TestFetchRepoMetadata_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	})

	svc := newTestService(t, mux)
	_, err := svc.FetchRepoMetadata(context.Background(), domain.RepoRef{Owner: "acme", Name: "missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoRepositoryData)
}

func TestFetchPRMetadata(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/pulls/42", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"number": 42,
			"title": "Fix crash in parser",
			"body": "Resolves a nil dereference",
			"state": "open",
			"user": {"login": "octocat"},
			"mergeable": false,
			"additions": 120,
			"deletions": 30,
			"changed_files": 2,
			"commits": 3,
			"comments": 1,
			"review_comments": 2,
			"labels": [{"name": "bug"}, {"name": "critical"}],
			"assignees": [{"login": "dev1"}],
			"requested_reviewers": [{"login": "rev1"}],
			"base": {"ref": "main"},
			"head": {"ref": "fix/parser"},
			"html_url": "https://github.com/acme/widgets/pull/42"
		}`))
	})
	mux.HandleFunc("/repos/acme/widgets/pulls/42/files", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"filename": "parser.go", "status": "modified", "additions": 100, "deletions": 20, "patch": "@@ -1 +1 @@"},
			{"filename": "parser_test.go", "status": "added", "additions": 20, "deletions": 10}
		]`))
	})

	svc := newTestService(t, mux)
	meta, err := svc.FetchPRMetadata(context.Background(), domain.PRRef{Owner: "acme", Name: "widgets", Number: 42})
	require.NoError(t, err)

	assert.Equal(t, "Fix crash in parser", meta.Title)
	assert.Equal(t, 42, meta.Number)
	assert.Equal(t, "octocat", meta.Author)
	require.NotNil(t, meta.Mergeable)
	assert.False(t, *meta.Mergeable)
	assert.Equal(t, []string{"bug", "critical"}, meta.Labels)
	assert.Equal(t, "main", meta.BaseBranch)
	assert.Equal(t, []string{"parser.go", "parser_test.go"}, meta.ChangedFiles)
	require.Len(t, meta.FileChanges, 2)
	assert.Equal(t, "@@ -1 +1 @@", meta.FileChanges[0].Patch)
}

func TestFetchPRMetadata_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/pulls/999", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	})

	svc := newTestService(t, mux)
	_, err := svc.FetchPRMetadata(context.Background(), domain.PRRef{Owner: "acme", Name: "widgets", Number: 999})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoPullRequestData)
}

func TestFetchPRMetadata_TruncatesLongPatch(t *testing.T) {
	longPatch := make([]byte, maxPatchExcerpt*2)
	for i := range longPatch {
		longPatch[i] = 'x'
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/pulls/7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"number": 7, "title": "Big change"}`))
	})
	mux.HandleFunc("/repos/acme/widgets/pulls/7/files", func(w http.ResponseWriter, r *http.Request) {
		files := []map[string]any{{"filename": "big.go", "patch": string(longPatch)}}
		_ = json.NewEncoder(w).Encode(files)
	})

	svc := newTestService(t, mux)
	meta, err := svc.FetchPRMetadata(context.Background(), domain.PRRef{Owner: "acme", Name: "widgets", Number: 7})
	require.NoError(t, err)
	require.Len(t, meta.FileChanges, 1)
	assert.Len(t, meta.FileChanges[0].Patch, maxPatchExcerpt)
}

func TestCreateIssue(t *testing.T) {
	var gotReq map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/issues", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"number": 101,
			"title": "Add Search Feature",
			"html_url": "https://github.com/acme/widgets/issues/101"
		}`))
	})

	svc := newTestService(t, mux)
	payload := domain.IssuePayload{
		Title:  "Add Search Feature",
		Body:   "## Feature Description",
		Labels: []string{"enhancement", "ai-generated"},
	}
	created, err := svc.CreateIssue(context.Background(), domain.RepoRef{Owner: "acme", Name: "widgets"}, payload)
	require.NoError(t, err)

	assert.Equal(t, 101, created.Number)
	assert.Equal(t, "https://github.com/acme/widgets/issues/101", created.URL)
	assert.Equal(t, "Add Search Feature", gotReq["title"])
	assert.Equal(t, []any{"enhancement", "ai-generated"}, gotReq["labels"])
}

func TestCreateIssue_Forbidden(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/issues", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "Must have admin rights"}`))
	})

	svc := newTestService(t, mux)
	_, err := svc.CreateIssue(context.Background(), domain.RepoRef{Owner: "acme", Name: "widgets"}, domain.IssuePayload{Title: "t"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIssueCreation)
}
