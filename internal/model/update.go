package model

// JiraUpdateRequest carries a sparse set of issue field assignments. A nil
// pointer leaves the field unchanged. Labels follows the same rule for nil;
// a non-nil slice (including an empty one) fully replaces the label set.
type JiraUpdateRequest struct {
	Summary           *string
	DueDate           *string
	Priority          *string
	AssigneeAccountID *string
	ParentKey         *string
	Labels            []string
}

// IsEmpty reports whether no field assignment is present.
func (r *JiraUpdateRequest) IsEmpty() bool {
	return r.Summary == nil &&
		r.DueDate == nil &&
		r.Priority == nil &&
		r.AssigneeAccountID == nil &&
		r.ParentKey == nil &&
		r.Labels == nil
}

// Fields builds the "fields" object for the issue update endpoint,
// containing only the assignments present.
func (r *JiraUpdateRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.Summary != nil {
		fields["summary"] = *r.Summary
	}
	if r.DueDate != nil {
		fields["duedate"] = *r.DueDate
	}
	if r.Priority != nil {
		fields["priority"] = map[string]string{"name": *r.Priority}
	}
	if r.AssigneeAccountID != nil {
		fields["assignee"] = map[string]string{"accountId": *r.AssigneeAccountID}
	}
	if r.ParentKey != nil {
		fields["parent"] = map[string]string{"key": *r.ParentKey}
	}
	if r.Labels != nil {
		fields["labels"] = r.Labels
	}
	return fields
}

// FieldNames lists the Jira field names present, in a fixed order, for
// confirmation messages.
func (r *JiraUpdateRequest) FieldNames() []string {
	var names []string
	if r.Summary != nil {
		names = append(names, "summary")
	}
	if r.DueDate != nil {
		names = append(names, "duedate")
	}
	if r.Priority != nil {
		names = append(names, "priority")
	}
	if r.AssigneeAccountID != nil {
		names = append(names, "assignee")
	}
	if r.ParentKey != nil {
		names = append(names, "parent")
	}
	if r.Labels != nil {
		names = append(names, "labels")
	}
	return names
}
