package models

import "time"

// User is a registered wallet. Points only grow: boosts add one, task
// completions add the task's value.
type User struct {
	ID            int64      `db:"id" json:"id"`
	WalletAddress string     `db:"wallet_address" json:"wallet_address"`
	XProfile      string     `db:"x_profile" json:"x_profile"`
	Points        int64      `db:"points" json:"points"`
	LastBoostTime *time.Time `db:"last_boost_time" json:"last_boost_time"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// UserWithTasks annotates a user with the ids of their completed tasks,
// derived from the user_tasks join table.
type UserWithTasks struct {
	User
	CompletedTasks []int64 `json:"completed_tasks"`
}

// RegisterRequest is the POST /api/users payload.
type RegisterRequest struct {
	WalletAddress string `json:"wallet_address"`
	XProfile      string `json:"x_profile"`
}

// BoostRequest is the POST /api/boost payload.
type BoostRequest struct {
	UserID int64 `json:"user_id"`
}

// BoostResponse echoes the updated score after a boost.
type BoostResponse struct {
	Points        int64     `json:"points"`
	LastBoostTime time.Time `json:"last_boost_time"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
