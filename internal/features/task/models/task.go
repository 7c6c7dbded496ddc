package models

// Task is an administrator-defined social action worth a fixed point value.
// Inactive tasks stay in storage but are hidden from the public listing.
type Task struct {
	ID          int64  `db:"id" json:"id"`
	Description string `db:"description" json:"description"`
	Link        string `db:"link" json:"link"`
	Points      int64  `db:"points" json:"points"`
	IsActive    bool   `db:"is_active" json:"is_active"`
}

// CreateTaskRequest is the POST /api/tasks payload.
type CreateTaskRequest struct {
	Description string `json:"description"`
	Link        string `json:"link"`
	Points      int64  `json:"points"`
}

// ToggleRequest is the PATCH /api/tasks/:id/toggle payload.
type ToggleRequest struct {
	IsActive *bool `json:"is_active"`
}

// ToggleResponse echoes the task's new state.
type ToggleResponse struct {
	ID       int64 `json:"id"`
	IsActive bool  `json:"is_active"`
}

// CompleteRequest is the POST /api/tasks/complete payload. TaskPoints is
// accepted for wire compatibility with the original client but ignored; the
// award always comes from the stored task.
type CompleteRequest struct {
	UserID     int64 `json:"user_id"`
	TaskID     int64 `json:"task_id"`
	TaskPoints int64 `json:"task_points"`
}

// CompleteResponse reports the user's score after a completion attempt.
type CompleteResponse struct {
	Points         int64   `json:"points"`
	CompletedTasks []int64 `json:"completed_tasks"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
