package api

// Task is the service's task record. Fields are read-only to this client
// except status (close) and startdate (postpone), which are written back via
// full-record replacement.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Text      string   `json:"text"`
	Tags      []string `json:"tags"`
	StartDate string   `json:"startdate"`
	DueDate   string   `json:"duedate"`
	Status    string   `json:"status"`
	Parents   []string `json:"parents"`
}

// Statuses interpreted by this client. The service may define others.
const (
	StatusActive = "Active"
	StatusDone   = "Done"
)

// Date sentinels used by the service alongside ISO YYYY-MM-DD values.
// The empty string means unset.
const (
	DateSomeday = "someday"
	DateNever   = "never"
)
