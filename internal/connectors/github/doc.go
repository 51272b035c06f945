// Package github implements the GitHub API connector behind
// driven.RepositoryService: repository metadata for classification, pull
// request detail with file-level diffs, and issue creation. Requests are
// throttled with a dual-strategy rate limiter that combines proactive
// pacing with the API's rate limit headers.
package github
