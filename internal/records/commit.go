package records

import "github.com/temirov/gitjson/internal/logformat"

const (
	commitHashJSONKeyConstant      = "commitHash"
	abbreviatedHashJSONKeyConstant = "abbreviatedHash"
	authorNameJSONKeyConstant      = "authorName"
	authorEmailJSONKeyConstant     = "authorEmail"
	authorDateJSONKeyConstant      = "authorDate"
	subjectJSONKeyConstant         = "subject"
	bodyJSONKeyConstant            = "body"
)

const (
	commitHashPlaceholderConstant      = "%H"
	abbreviatedHashPlaceholderConstant = "%h"
	authorNamePlaceholderConstant      = "%an"
	authorEmailPlaceholderConstant     = "%ae"
	authorDatePlaceholderConstant      = "%aI"
	subjectPlaceholderConstant         = "%s"
	bodyPlaceholderConstant            = "%b"
)

// Commit models a single log entry decoded from formatted command output.
// AuthorDate carries the ISO-8601 text emitted by the strict date placeholder.
// The three counters hold the diffstat trailer values and stay nil when the
// command reported no trailer for the entry.
type Commit struct {
	CommitHash      string `json:"commitHash" yaml:"commitHash"`
	AbbreviatedHash string `json:"abbreviatedHash" yaml:"abbreviatedHash"`
	AuthorName      string `json:"authorName" yaml:"authorName"`
	AuthorEmail     string `json:"authorEmail" yaml:"authorEmail"`
	AuthorDate      string `json:"authorDate" yaml:"authorDate"`
	Subject         string `json:"subject" yaml:"subject"`
	Body            string `json:"body,omitempty" yaml:"body,omitempty"`
	FilesChanged    *int   `json:"filesChanged,omitempty" yaml:"filesChanged,omitempty"`
	Insertions      *int   `json:"insertions,omitempty" yaml:"insertions,omitempty"`
	Deletions       *int   `json:"deletions,omitempty" yaml:"deletions,omitempty"`
}

// SetChangeSummary applies diffstat trailer counters to the commit record.
func (commit *Commit) SetChangeSummary(summary logformat.ChangeSummary) {
	commit.FilesChanged = summary.FilesChanged
	commit.Insertions = summary.Insertions
	commit.Deletions = summary.Deletions
}

// DefaultCommitFieldMappings pairs Commit JSON keys with the log placeholders that populate them.
func DefaultCommitFieldMappings() []logformat.FieldMapping {
	return []logformat.FieldMapping{
		{JSONKey: commitHashJSONKeyConstant, Placeholder: commitHashPlaceholderConstant},
		{JSONKey: abbreviatedHashJSONKeyConstant, Placeholder: abbreviatedHashPlaceholderConstant},
		{JSONKey: authorNameJSONKeyConstant, Placeholder: authorNamePlaceholderConstant},
		{JSONKey: authorEmailJSONKeyConstant, Placeholder: authorEmailPlaceholderConstant},
		{JSONKey: authorDateJSONKeyConstant, Placeholder: authorDatePlaceholderConstant},
		{JSONKey: subjectJSONKeyConstant, Placeholder: subjectPlaceholderConstant},
		{JSONKey: bodyJSONKeyConstant, Placeholder: bodyPlaceholderConstant},
	}
}
