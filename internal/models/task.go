package models

type Task struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// Title is a pointer so an absent field can be told apart from "".
type CreateTaskRequest struct {
	Title *string `json:"title"`
}

type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	Completed bool    `json:"completed"`
}
