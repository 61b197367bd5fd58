// Package jira implements a thin client for the Jira Cloud REST API v3.
// It covers the issue, search and comment endpoints the MCP tools need,
// classifies failures into sentinel errors and leaves retry decisions to
// the caller.
package jira

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"jira_mcp/internal/config"
	"jira_mcp/internal/logger"
	"jira_mcp/internal/model"
)

// searchFields is the field set requested on every search-backed call. It
// covers everything the tool formatters render.
var searchFields = []string{
	"summary", "status", "issuetype", "assignee", "priority",
	"duedate", "labels", "parent", "created", "updated",
}

// Client talks to a single Jira Cloud site. The base URL and credentials
// are fixed at construction; a Client is safe for concurrent use.
type Client struct {
	http *resty.Client
}

// NewClient builds a Client from configuration. The basic auth header is
// precomputed once from email and API token.
func NewClient(cfg *config.Config) *Client {
	credentials := fmt.Sprintf("%s:%s", cfg.Email, cfg.APIToken)
	authHeader := "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Authorization", authHeader).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.RequestTimeout)

	return &Client{http: httpClient}
}

// SearchIssues runs a JQL query and returns one page of matching issues.
// A 400 from Jira means the query itself was rejected and is reported as
// ErrQuery with the upstream message attached.
func (c *Client) SearchIssues(ctx context.Context, jql string, maxResults int) (*model.JiraSearchResponse, error) {
	logger.GetLogger().Debug("searching issues",
		zap.String("jql", jql),
		zap.Int("max_results", maxResults))

	body := model.JiraSearchRequest{
		JQL:        jql,
		MaxResults: maxResults,
		Fields:     searchFields,
	}

	var result model.JiraSearchResponse
	var errResp model.JiraErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		SetError(&errResp).
		Post("/rest/api/3/search/jql")
	if err != nil {
		return nil, transportError(err, false)
	}
	if resp.IsError() {
		if resp.StatusCode() == http.StatusBadRequest {
			return nil, fmt.Errorf("%w: %w", ErrQuery, newAPIError(resp, &errResp))
		}
		return nil, statusError(resp, &errResp)
	}

	return &result, nil
}

// GetIssue fetches a single issue by key, including its comments.
func (c *Client) GetIssue(ctx context.Context, issueKey string) (*model.JiraIssue, error) {
	var issue model.JiraIssue
	var errResp model.JiraErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&issue).
		SetError(&errResp).
		Get("/rest/api/3/issue/" + url.PathEscape(issueKey))
	if err != nil {
		return nil, transportError(err, false)
	}
	if resp.IsError() {
		return nil, statusError(resp, &errResp)
	}

	return &issue, nil
}

// GetChildren lists the direct children of an issue: stories and tasks
// under an epic, subtasks under a story. The parent is fetched first so an
// unknown key reports ErrNotFound, and a subtask parent short-circuits to
// an empty page because subtasks cannot have children of their own.
func (c *Client) GetChildren(ctx context.Context, parentKey string, maxResults int) (*model.JiraSearchResponse, error) {
	parent, err := c.GetIssue(ctx, parentKey)
	if err != nil {
		return nil, err
	}

	if parent.Fields.IssueType != nil && parent.Fields.IssueType.Subtask {
		return &model.JiraSearchResponse{MaxResults: maxResults}, nil
	}

	jql := fmt.Sprintf("parent = %q ORDER BY created ASC", parent.Key)
	return c.SearchIssues(ctx, jql, maxResults)
}

// ListEpics lists the epics of a project, newest first.
func (c *Client) ListEpics(ctx context.Context, projectKey string, maxResults int) (*model.JiraSearchResponse, error) {
	jql := fmt.Sprintf("project = %q AND issuetype = Epic ORDER BY created DESC", projectKey)
	return c.SearchIssues(ctx, jql, maxResults)
}

// ListComments returns one page of comments on an issue, oldest first.
func (c *Client) ListComments(ctx context.Context, issueKey string, startAt, maxResults int) (*model.JiraCommentsResponse, error) {
	var page model.JiraCommentsResponse
	var errResp model.JiraErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"startAt":    strconv.Itoa(startAt),
			"maxResults": strconv.Itoa(maxResults),
		}).
		SetResult(&page).
		SetError(&errResp).
		Get("/rest/api/3/issue/" + url.PathEscape(issueKey) + "/comment")
	if err != nil {
		return nil, transportError(err, false)
	}
	if resp.IsError() {
		return nil, statusError(resp, &errResp)
	}

	return &page, nil
}

// AddComment posts a plain text comment on an issue. The text is wrapped
// in an ADF document for the API. A body with no visible text is rejected
// before any request is made.
func (c *Client) AddComment(ctx context.Context, issueKey, text string) (*model.JiraComment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "comment", Message: "comment text cannot be empty"}
	}

	logger.GetLogger().Debug("adding comment", zap.String("issue_key", issueKey))

	var comment model.JiraComment
	var errResp model.JiraErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"body": ADFDocument(text)}).
		SetResult(&comment).
		SetError(&errResp).
		Post("/rest/api/3/issue/" + url.PathEscape(issueKey) + "/comment")
	if err != nil {
		return nil, transportError(err, true)
	}
	if resp.IsError() {
		return nil, statusError(resp, &errResp)
	}

	return &comment, nil
}

// UpdateIssue applies the assignments in req to an issue. Unset fields are
// left untouched. An empty request succeeds without any network call. A
// 400 from Jira is reported as a ValidationError naming the rejected
// fields.
func (c *Client) UpdateIssue(ctx context.Context, issueKey string, req *model.JiraUpdateRequest) error {
	if req == nil || req.IsEmpty() {
		return nil
	}

	logger.GetLogger().Debug("updating issue",
		zap.String("issue_key", issueKey),
		zap.Strings("fields", req.FieldNames()))

	var errResp model.JiraErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"fields": req.Fields()}).
		SetError(&errResp).
		Put("/rest/api/3/issue/" + url.PathEscape(issueKey))
	if err != nil {
		return transportError(err, true)
	}
	if resp.IsError() {
		if resp.StatusCode() == http.StatusBadRequest {
			return updateValidationError(newAPIError(resp, &errResp))
		}
		return statusError(resp, &errResp)
	}

	return nil
}
