package dto

import (
	"fmt"
	"time"
)

// CreateTaskRequest is the request body for POST /api/tasks. Note there is no
// user_id field: ownership always comes from the verified token.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
}

// UpdateTaskRequest is the request body for PUT /api/tasks/:id. Nil fields
// were absent from the request and leave the stored value untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// dueDateLayouts are the accepted due-date formats: full RFC3339 timestamps
// and bare calendar dates as sent by the web client.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDueDate parses a due date from either accepted layout.
func ParseDueDate(value string) (*time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid due date: %q", value)
}
