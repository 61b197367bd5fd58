package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"jira_mcp/internal/logger"
	"jira_mcp/internal/service/jira"
)

// jiraTools bundles the tool handlers around a shared Jira client.
type jiraTools struct {
	client *jira.Client
}

// registerJiraTools declares the Jira tools and registers them with the
// server. Each tool's schema is declared exactly once, here; the handlers
// normalize and validate against the same parameter set.
func registerJiraTools(s *server.MCPServer, client *jira.Client) error {
	tools := &jiraTools{client: client}

	searchIssuesTool := mcp.NewTool("search_issues",
		mcp.WithDescription("Search for Jira issues using JQL (Jira Query Language). Returns a list of issues matching the query."),
		mcp.WithString("jql",
			mcp.Required(),
			mcp.Description("JQL query string (e.g., 'project = PROJ AND status = Open')"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return (default: 50, max: 100)"),
		),
	)

	getIssueTool := mcp.NewTool("get_issue",
		mcp.WithDescription("Get detailed information about a specific Jira issue by its key (e.g., PROJ-123)."),
		mcp.WithString("issue_key",
			mcp.Required(),
			mcp.Description("The issue key (e.g., 'PROJ-123')"),
		),
	)

	getChildrenTool := mcp.NewTool("get_children",
		mcp.WithDescription("List the direct children of an issue: stories and tasks under an epic, or subtasks under a regular issue."),
		mcp.WithString("parent_key",
			mcp.Required(),
			mcp.Description("The key of the parent issue (e.g., 'EPIC-1')"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return (default: 50, max: 100)"),
		),
	)

	getCommentsTool := mcp.NewTool("get_comments",
		mcp.WithDescription("List the comments on a Jira issue, oldest first."),
		mcp.WithString("issue_key",
			mcp.Required(),
			mcp.Description("The issue key (e.g., 'PROJ-123')"),
		),
		mcp.WithNumber("start_at",
			mcp.Description("Index of the first comment to return (default: 0)"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of comments to return (default: 50, max: 100)"),
		),
	)

	addCommentTool := mcp.NewTool("add_comment",
		mcp.WithDescription("Add a comment to a Jira issue. Use this to leave notes, updates, or feedback on an issue."),
		mcp.WithString("issue_key",
			mcp.Required(),
			mcp.Description("The issue key (e.g., 'PROJ-123')"),
		),
		mcp.WithString("comment",
			mcp.Required(),
			mcp.Description("The comment text to add to the issue"),
		),
	)

	updateIssueTool := mcp.NewTool("update_issue",
		mcp.WithDescription("Update fields on a Jira issue. Only the fields provided are changed; all others are left untouched."),
		mcp.WithString("issue_key",
			mcp.Required(),
			mcp.Description("The issue key (e.g., 'PROJ-123')"),
		),
		mcp.WithString("summary",
			mcp.Description("New summary text"),
		),
		mcp.WithString("due_date",
			mcp.Description("New due date in YYYY-MM-DD format"),
		),
		mcp.WithString("priority",
			mcp.Description("New priority name (e.g., 'High')"),
		),
		mcp.WithString("assignee_account_id",
			mcp.Description("Account ID of the new assignee"),
		),
		mcp.WithString("parent_key",
			mcp.Description("Key of the new parent issue"),
		),
		mcp.WithArray("labels",
			mcp.Description("Full replacement set of labels; an empty array clears all labels"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)

	listEpicsTool := mcp.NewTool("list_epics",
		mcp.WithDescription("List the epics in a Jira project, newest first."),
		mcp.WithString("project_key",
			mcp.Required(),
			mcp.Description("The project key (e.g., 'PROJ')"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return (default: 50, max: 100)"),
		),
	)

	s.AddTool(searchIssuesTool, tools.handleSearchIssues)
	s.AddTool(getIssueTool, tools.handleGetIssue)
	s.AddTool(getChildrenTool, tools.handleGetChildren)
	s.AddTool(getCommentsTool, tools.handleGetComments)
	s.AddTool(addCommentTool, tools.handleAddComment)
	s.AddTool(updateIssueTool, tools.handleUpdateIssue)
	s.AddTool(listEpicsTool, tools.handleListEpics)

	return nil
}

func (h *jiraTools) handleSearchIssues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jql, err := requiredStringArg(request, "jql")
	if err != nil {
		return mcp.NewToolResultError("Failed to search issues: " + err.Error()), nil
	}
	maxResults, err := maxResultsArg(request)
	if err != nil {
		return mcp.NewToolResultError("Failed to search issues: " + err.Error()), nil
	}

	page, err := h.client.SearchIssues(ctx, jql, maxResults)
	if err != nil {
		logger.GetLogger().Warn("search_issues failed", zap.Error(err))
		return mcp.NewToolResultError("Failed to search issues: " + err.Error()), nil
	}

	return mcp.NewToolResultText(formatSearchResults(page)), nil
}

func (h *jiraTools) handleGetIssue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, err := requiredStringArg(request, "issue_key")
	if err != nil {
		return mcp.NewToolResultError("Failed to get issue: " + err.Error()), nil
	}

	issue, err := h.client.GetIssue(ctx, issueKey)
	if err != nil {
		logger.GetLogger().Warn("get_issue failed", zap.String("issue_key", issueKey), zap.Error(err))
		return mcp.NewToolResultError("Failed to get issue: " + err.Error()), nil
	}

	return mcp.NewToolResultText(formatIssue(issue)), nil
}

func (h *jiraTools) handleGetChildren(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	parentKey, err := requiredStringArg(request, "parent_key")
	if err != nil {
		return mcp.NewToolResultError("Failed to get child issues: " + err.Error()), nil
	}
	maxResults, err := maxResultsArg(request)
	if err != nil {
		return mcp.NewToolResultError("Failed to get child issues: " + err.Error()), nil
	}

	page, err := h.client.GetChildren(ctx, parentKey, maxResults)
	if err != nil {
		logger.GetLogger().Warn("get_children failed", zap.String("parent_key", parentKey), zap.Error(err))
		return mcp.NewToolResultError("Failed to get child issues: " + err.Error()), nil
	}

	return mcp.NewToolResultText(formatChildren(parentKey, page)), nil
}

func (h *jiraTools) handleGetComments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, err := requiredStringArg(request, "issue_key")
	if err != nil {
		return mcp.NewToolResultError("Failed to get comments: " + err.Error()), nil
	}
	startAt, err := startAtArg(request)
	if err != nil {
		return mcp.NewToolResultError("Failed to get comments: " + err.Error()), nil
	}
	maxResults, err := maxResultsArg(request)
	if err != nil {
		return mcp.NewToolResultError("Failed to get comments: " + err.Error()), nil
	}

	page, err := h.client.ListComments(ctx, issueKey, startAt, maxResults)
	if err != nil {
		logger.GetLogger().Warn("get_comments failed", zap.String("issue_key", issueKey), zap.Error(err))
		return mcp.NewToolResultError("Failed to get comments: " + err.Error()), nil
	}

	return mcp.NewToolResultText(formatComments(issueKey, page)), nil
}

func (h *jiraTools) handleAddComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, err := requiredStringArg(request, "issue_key")
	if err != nil {
		return mcp.NewToolResultError("Failed to add comment: " + err.Error()), nil
	}
	comment, err := requiredStringArg(request, "comment")
	if err != nil {
		return mcp.NewToolResultError("Failed to add comment: " + err.Error()), nil
	}

	created, err := h.client.AddComment(ctx, issueKey, comment)
	if err != nil {
		logger.GetLogger().Warn("add_comment failed", zap.String("issue_key", issueKey), zap.Error(err))
		return mcp.NewToolResultError("Failed to add comment: " + err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommentConfirmation(issueKey, created)), nil
}

func (h *jiraTools) handleUpdateIssue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, err := requiredStringArg(request, "issue_key")
	if err != nil {
		return mcp.NewToolResultError("Failed to update issue: " + err.Error()), nil
	}
	update, err := updateRequestArgs(request)
	if err != nil {
		return mcp.NewToolResultError("Failed to update issue: " + err.Error()), nil
	}

	if err := h.client.UpdateIssue(ctx, issueKey, update); err != nil {
		logger.GetLogger().Warn("update_issue failed", zap.String("issue_key", issueKey), zap.Error(err))
		return mcp.NewToolResultError("Failed to update issue: " + err.Error()), nil
	}

	return mcp.NewToolResultText(formatUpdateResult(issueKey, update.FieldNames())), nil
}

func (h *jiraTools) handleListEpics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectKey, err := requiredStringArg(request, "project_key")
	if err != nil {
		return mcp.NewToolResultError("Failed to list epics: " + err.Error()), nil
	}
	maxResults, err := maxResultsArg(request)
	if err != nil {
		return mcp.NewToolResultError("Failed to list epics: " + err.Error()), nil
	}

	page, err := h.client.ListEpics(ctx, projectKey, maxResults)
	if err != nil {
		logger.GetLogger().Warn("list_epics failed", zap.String("project_key", projectKey), zap.Error(err))
		return mcp.NewToolResultError("Failed to list epics: " + err.Error()), nil
	}

	return mcp.NewToolResultText(formatEpics(projectKey, page)), nil
}
