package entities

const (
	// AcceptJSON is sent when fetching the raw package.json.
	AcceptJSON = "application/json"
	// AcceptGitHubV3 is sent when fetching an issue from the GitHub REST API.
	AcceptGitHubV3 = "application/vnd.github.v3+json"
)

// DocumentRequest describes a single JSON document to fetch.
type DocumentRequest struct {
	Source string // short label used in logs, e.g. "manifest"
	URL    string
	Accept string
}
