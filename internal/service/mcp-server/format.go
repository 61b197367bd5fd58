package mcpserver

import (
	"fmt"
	"strings"

	"jira_mcp/internal/model"
	"jira_mcp/internal/service/jira"
)

// The formatters turn API models into the markdown-ish text returned to the
// calling agent. They are pure functions of their input: formatting the
// same value twice yields byte-identical text.

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func issueSummary(issue *model.JiraIssue) string {
	if issue.Fields.Summary == "" {
		return "No summary"
	}
	return issue.Fields.Summary
}

func issueTypeName(issue *model.JiraIssue) string {
	if issue.Fields.IssueType == nil {
		return "Unknown"
	}
	return orUnknown(issue.Fields.IssueType.Name)
}

func issueStatusName(issue *model.JiraIssue) string {
	if issue.Fields.Status == nil {
		return "Unknown"
	}
	return orUnknown(issue.Fields.Status.Name)
}

func issuePriorityName(issue *model.JiraIssue) string {
	if issue.Fields.Priority == nil || issue.Fields.Priority.Name == "" {
		return "None"
	}
	return issue.Fields.Priority.Name
}

func assigneeText(user *model.JiraUser) string {
	if user == nil {
		return "Unassigned"
	}
	accountID := user.AccountID
	if accountID == "" {
		accountID = "No ID"
	}
	return fmt.Sprintf("%s (%s)", user.DisplayName, accountID)
}

func commentAuthorName(comment *model.JiraComment) string {
	if comment.Author == nil {
		return "Unknown"
	}
	return orUnknown(comment.Author.DisplayName)
}

func commentBodyText(comment *model.JiraComment) string {
	body := strings.TrimSpace(jira.ADFToPlainText(comment.Body))
	if body == "" {
		return "No content"
	}
	return body
}

func writeIssueLine(sb *strings.Builder, issue *model.JiraIssue) {
	sb.WriteString(fmt.Sprintf("- **%s** [%s/%s] %s\n  Assignee: %s\n\n",
		issue.Key,
		issueTypeName(issue),
		issueStatusName(issue),
		issueSummary(issue),
		assigneeText(issue.Fields.Assignee)))
}

// formatSearchResults renders one page of search hits.
func formatSearchResults(page *model.JiraSearchResponse) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues (showing %d of %d):\n\n",
		page.Total, len(page.Issues), page.Total))
	for i := range page.Issues {
		writeIssueLine(&sb, &page.Issues[i])
	}
	return sb.String()
}

// formatIssue renders the detailed view of a single issue, including its
// description and any comments embedded in the response.
func formatIssue(issue *model.JiraIssue) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s - %s\n\n", issue.Key, issueSummary(issue)))
	sb.WriteString(fmt.Sprintf("**Type:** %s\n", issueTypeName(issue)))
	sb.WriteString(fmt.Sprintf("**Status:** %s\n", issueStatusName(issue)))
	sb.WriteString(fmt.Sprintf("**Assignee:** %s\n", assigneeText(issue.Fields.Assignee)))
	sb.WriteString(fmt.Sprintf("**Priority:** %s\n", issuePriorityName(issue)))
	sb.WriteString(fmt.Sprintf("**Created:** %s\n", orUnknown(issue.Fields.Created)))
	sb.WriteString(fmt.Sprintf("**Updated:** %s\n", orUnknown(issue.Fields.Updated)))
	sb.WriteString(fmt.Sprintf("**URL:** %s\n", issue.Self))

	if issue.Fields.DueDate != "" {
		sb.WriteString(fmt.Sprintf("**Due Date:** %s\n", issue.Fields.DueDate))
	}
	if len(issue.Fields.Labels) > 0 {
		sb.WriteString(fmt.Sprintf("**Labels:** %s\n", strings.Join(issue.Fields.Labels, ", ")))
	}
	if issue.Fields.Parent != nil && issue.Fields.Parent.Key != "" {
		sb.WriteString(fmt.Sprintf("**Parent:** %s\n", issue.Fields.Parent.Key))
	}

	if description := strings.TrimSpace(jira.ADFToPlainText(issue.Fields.Description)); description != "" {
		sb.WriteString("\n## Description\n\n")
		sb.WriteString(description)
		sb.WriteString("\n")
	}

	if issue.Fields.Comment != nil && len(issue.Fields.Comment.Comments) > 0 {
		sb.WriteString("\n## Comments\n\n")
		for i := range issue.Fields.Comment.Comments {
			comment := &issue.Fields.Comment.Comments[i]
			sb.WriteString(fmt.Sprintf("### Comment by %s (%s)\n%s\n\n",
				commentAuthorName(comment), comment.Created, commentBodyText(comment)))
		}
	}

	return sb.String()
}

// formatChildren renders the direct children of a parent issue.
func formatChildren(parentKey string, page *model.JiraSearchResponse) string {
	if len(page.Issues) == 0 {
		return fmt.Sprintf("No child issues found under %s", parentKey)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d child issue(s) under %s (showing %d of %d):\n\n",
		page.Total, parentKey, len(page.Issues), page.Total))
	for i := range page.Issues {
		writeIssueLine(&sb, &page.Issues[i])
	}
	return sb.String()
}

// formatComments renders one page of comments with a hint for fetching the
// next page when more remain.
func formatComments(issueKey string, page *model.JiraCommentsResponse) string {
	if len(page.Comments) == 0 {
		return fmt.Sprintf("No comments found for %s", issueKey)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Comments for %s (showing %d of %d):\n\n",
		issueKey, len(page.Comments), page.Total))
	for i := range page.Comments {
		comment := &page.Comments[i]
		sb.WriteString(fmt.Sprintf("### Comment by %s (%s)\n%s\n\n",
			commentAuthorName(comment), comment.Created, commentBodyText(comment)))
	}

	if nextStart := page.StartAt + len(page.Comments); nextStart < page.Total {
		sb.WriteString(fmt.Sprintf("More comments available: pass start_at=%d to continue.\n", nextStart))
	}
	return sb.String()
}

// formatCommentConfirmation renders the receipt for a newly added comment.
func formatCommentConfirmation(issueKey string, comment *model.JiraComment) string {
	return fmt.Sprintf("Comment added successfully to %s\n\n**Comment ID:** %s\n**Author:** %s\n**Created:** %s\n",
		issueKey, comment.ID, commentAuthorName(comment), comment.Created)
}

// formatUpdateResult renders the receipt for an issue update, naming the
// fields that were sent.
func formatUpdateResult(issueKey string, fields []string) string {
	if len(fields) == 0 {
		return fmt.Sprintf("No fields were updated for %s", issueKey)
	}
	return fmt.Sprintf("Issue %s updated successfully.\n\n**Updated fields:** %s",
		issueKey, strings.Join(fields, ", "))
}

// formatEpics renders the epics of a project.
func formatEpics(projectKey string, page *model.JiraSearchResponse) string {
	if len(page.Issues) == 0 {
		return fmt.Sprintf("No epics found in project %s", projectKey)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d epic(s) in project %s:\n\n", page.Total, projectKey))
	for i := range page.Issues {
		issue := &page.Issues[i]
		sb.WriteString(fmt.Sprintf("- **%s** [%s] %s\n",
			issue.Key, issueStatusName(issue), issueSummary(issue)))
	}
	return sb.String()
}
