package domain

// IssuePayload is the external issue-creation schema: title and labels are
// passed through verbatim from the suggestion, the body is the rendered
// section layout.
type IssuePayload struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Assignees []string `json:"assignees"`
	Labels    []string `json:"labels"`
}

// CreatedIssue is the confirmation returned by the issue-creation endpoint.
type CreatedIssue struct {
	Number int
	Title  string
	URL    string
}
