package jira

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"

	"jira_mcp/internal/model"
)

// ErrNotFound indicates the requested issue, comment or project does not
// exist or is not visible to the configured account.
var ErrNotFound = errors.New("not found")

// ErrAuthentication indicates Jira rejected the configured credentials.
var ErrAuthentication = errors.New("authentication rejected")

// ErrQuery indicates Jira rejected a JQL query as malformed.
var ErrQuery = errors.New("invalid JQL query")

// ErrUpstreamTimeout indicates the request to Jira timed out.
var ErrUpstreamTimeout = errors.New("jira request timed out")

// ErrUpstreamUnavailable indicates Jira could not be reached at all.
var ErrUpstreamUnavailable = errors.New("jira unreachable")

// ValidationError reports input that was rejected, either locally before a
// request was made or by Jira itself. Field names the offending parameter.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// APIError carries a non-2xx answer from Jira, including the decoded error
// payload when one was present.
type APIError struct {
	StatusCode  int
	Status      string
	Body        string
	Messages    []string
	FieldErrors map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Jira API error (%s): %s", e.Status, e.Body)
}

func newAPIError(resp *resty.Response, errResp *model.JiraErrorResponse) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}
	if errResp != nil {
		apiErr.Messages = errResp.ErrorMessages
		apiErr.FieldErrors = errResp.Errors
	}
	return apiErr
}

// statusError classifies a non-2xx response by status code. Callers with a
// more specific mapping (400 on search or update) handle those before
// falling through to this.
func statusError(resp *resty.Response, errResp *model.JiraErrorResponse) error {
	apiErr := newAPIError(resp, errResp)
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrAuthentication, apiErr)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	default:
		return apiErr
	}
}

// transportError classifies a failure that produced no HTTP response. For
// mutating calls the message records that the outcome is unknown, since the
// request may have reached Jira before the connection died.
func transportError(err error, mutating bool) error {
	sentinel := ErrUpstreamUnavailable
	if isTimeout(err) {
		sentinel = ErrUpstreamTimeout
	}
	if mutating {
		return fmt.Errorf("%w (outcome unknown): %w", sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// updateValidationError turns a 400 answer to an issue update into a
// ValidationError naming every field Jira complained about.
func updateValidationError(apiErr *APIError) *ValidationError {
	if len(apiErr.FieldErrors) > 0 {
		fields := make([]string, 0, len(apiErr.FieldErrors))
		for field := range apiErr.FieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		messages := make([]string, 0, len(fields))
		for _, field := range fields {
			messages = append(messages, apiErr.FieldErrors[field])
		}
		return &ValidationError{
			Field:   strings.Join(fields, ", "),
			Message: strings.Join(messages, "; "),
		}
	}
	if len(apiErr.Messages) > 0 {
		return &ValidationError{
			Field:   "fields",
			Message: strings.Join(apiErr.Messages, "; "),
		}
	}
	return &ValidationError{Field: "fields", Message: apiErr.Error()}
}
