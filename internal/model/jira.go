package model

// JiraIssue represents a Jira issue response
type JiraIssue struct {
	ID     string     `json:"id"`
	Key    string     `json:"key"`
	Self   string     `json:"self"`
	Fields JiraFields `json:"fields"`
}

// JiraFields represents the fields in a Jira issue. Optional nested objects
// are pointers; nil means Jira omitted or nulled the field.
type JiraFields struct {
	Summary     string                `json:"summary"`
	Status      *JiraStatus           `json:"status"`
	IssueType   *JiraIssueType        `json:"issuetype"`
	Assignee    *JiraUser             `json:"assignee"`
	Priority    *JiraPriority         `json:"priority"`
	DueDate     string                `json:"duedate"`
	Labels      []string              `json:"labels"`
	Parent      *JiraParent           `json:"parent"`
	Created     string                `json:"created"`
	Updated     string                `json:"updated"`
	Description any                   `json:"description"`
	Comment     *JiraCommentsResponse `json:"comment"`
}

// JiraStatus represents the status of a Jira issue
type JiraStatus struct {
	Name string `json:"name"`
}

// JiraIssueType represents the type of a Jira issue
type JiraIssueType struct {
	Name           string `json:"name"`
	Subtask        bool   `json:"subtask"`
	HierarchyLevel int    `json:"hierarchyLevel"`
}

// JiraUser represents a Jira user
type JiraUser struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
}

// JiraPriority represents the priority of a Jira issue
type JiraPriority struct {
	Name string `json:"name"`
}

// JiraParent represents the parent reference of a Jira issue
type JiraParent struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// JiraComment represents a single comment on an issue. Body is raw
// Atlassian Document Format.
type JiraComment struct {
	ID      string    `json:"id"`
	Self    string    `json:"self"`
	Author  *JiraUser `json:"author"`
	Body    any       `json:"body"`
	Created string    `json:"created"`
	Updated string    `json:"updated"`
}

// JiraCommentsResponse represents a page of comments, both as returned by
// the comment endpoint and as embedded in issue fields
type JiraCommentsResponse struct {
	StartAt    int           `json:"startAt"`
	MaxResults int           `json:"maxResults"`
	Total      int           `json:"total"`
	Comments   []JiraComment `json:"comments"`
}

// JiraSearchRequest is the request body for the JQL search endpoint
type JiraSearchRequest struct {
	JQL        string   `json:"jql"`
	MaxResults int      `json:"maxResults"`
	Fields     []string `json:"fields"`
}

// JiraSearchResponse represents the response from a Jira search
type JiraSearchResponse struct {
	StartAt    int         `json:"startAt"`
	MaxResults int         `json:"maxResults"`
	Total      int         `json:"total"`
	Issues     []JiraIssue `json:"issues"`
}

// JiraErrorResponse represents Jira's error envelope
type JiraErrorResponse struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}
