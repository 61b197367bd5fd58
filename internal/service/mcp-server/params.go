package mcpserver

import (
	"math"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"jira_mcp/internal/model"
	"jira_mcp/internal/service/jira"
)

const (
	defaultMaxResults = 50
	maxResultsLimit   = 100
)

// numberArg extracts an integer argument, tolerating the float64 values
// JSON decoding produces. found is false when the argument is absent.
// Negative values are rejected for every numeric parameter the tools take;
// oversized values cap at the int32 maximum.
func numberArg(request mcp.CallToolRequest, key string) (value int, found bool, err error) {
	raw, ok := request.GetArguments()[key]
	if !ok || raw == nil {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case float64:
		if v < 0 {
			return 0, true, &jira.ValidationError{Field: key, Message: "must not be negative"}
		}
		// Converting an out-of-range float64 to int is implementation
		// defined, so cap before converting.
		if v > math.MaxInt32 {
			v = math.MaxInt32
		}
		return int(v), true, nil
	case int:
		if v < 0 {
			return 0, true, &jira.ValidationError{Field: key, Message: "must not be negative"}
		}
		return v, true, nil
	default:
		return 0, true, &jira.ValidationError{Field: key, Message: "must be a number"}
	}
}

// maxResultsArg reads max_results, applying the default and clamping into
// [1, 100]. Out-of-range values clamp rather than fail; only negative
// values are an error.
func maxResultsArg(request mcp.CallToolRequest) (int, error) {
	value, found, err := numberArg(request, "max_results")
	if err != nil {
		return 0, err
	}
	if !found {
		return defaultMaxResults, nil
	}
	if value < 1 {
		return 1, nil
	}
	if value > maxResultsLimit {
		return maxResultsLimit, nil
	}
	return value, nil
}

// startAtArg reads start_at, defaulting to 0.
func startAtArg(request mcp.CallToolRequest) (int, error) {
	value, _, err := numberArg(request, "start_at")
	if err != nil {
		return 0, err
	}
	return value, nil
}

// requiredStringArg reads a required string argument, rejecting absent,
// non-string and blank values with distinct messages.
func requiredStringArg(request mcp.CallToolRequest, key string) (string, error) {
	raw, ok := request.GetArguments()[key]
	if !ok || raw == nil {
		return "", &jira.ValidationError{Field: key, Message: "required"}
	}
	value, ok := raw.(string)
	if !ok {
		return "", &jira.ValidationError{Field: key, Message: "must be a string"}
	}
	if strings.TrimSpace(value) == "" {
		return "", &jira.ValidationError{Field: key, Message: "must not be blank"}
	}
	return value, nil
}

// optionalStringArg reads an optional string argument, distinguishing an
// absent argument (nil) from a present one.
func optionalStringArg(request mcp.CallToolRequest, key string) (*string, error) {
	raw, ok := request.GetArguments()[key]
	if !ok || raw == nil {
		return nil, nil
	}
	value, ok := raw.(string)
	if !ok {
		return nil, &jira.ValidationError{Field: key, Message: "must be a string"}
	}
	return &value, nil
}

// dueDateArg reads the optional due_date argument and validates the
// YYYY-MM-DD format before anything is sent upstream.
func dueDateArg(request mcp.CallToolRequest) (*string, error) {
	value, err := optionalStringArg(request, "due_date")
	if err != nil || value == nil {
		return value, err
	}
	if _, parseErr := time.Parse("2006-01-02", *value); parseErr != nil {
		return nil, &jira.ValidationError{Field: "due_date", Message: "must be a date in YYYY-MM-DD format"}
	}
	return value, nil
}

// labelsArg reads the optional labels argument. A present empty array means
// "clear all labels", so absence and emptiness stay distinct.
func labelsArg(request mcp.CallToolRequest) ([]string, error) {
	raw, ok := request.GetArguments()["labels"]
	if !ok || raw == nil {
		return nil, nil
	}

	switch items := raw.(type) {
	case []string:
		return append([]string{}, items...), nil
	case []any:
		labels := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, &jira.ValidationError{Field: "labels", Message: "must be an array of strings"}
			}
			labels = append(labels, s)
		}
		return labels, nil
	default:
		return nil, &jira.ValidationError{Field: "labels", Message: "must be an array of strings"}
	}
}

// updateRequestArgs collects the sparse update_issue fields. Absent
// arguments stay nil so unchanged fields are never sent upstream.
func updateRequestArgs(request mcp.CallToolRequest) (*model.JiraUpdateRequest, error) {
	update := &model.JiraUpdateRequest{}
	var err error

	if update.Summary, err = optionalStringArg(request, "summary"); err != nil {
		return nil, err
	}
	if update.DueDate, err = dueDateArg(request); err != nil {
		return nil, err
	}
	if update.Priority, err = optionalStringArg(request, "priority"); err != nil {
		return nil, err
	}
	if update.AssigneeAccountID, err = optionalStringArg(request, "assignee_account_id"); err != nil {
		return nil, err
	}
	if update.ParentKey, err = optionalStringArg(request, "parent_key"); err != nil {
		return nil, err
	}
	if update.Labels, err = labelsArg(request); err != nil {
		return nil, err
	}

	return update, nil
}
