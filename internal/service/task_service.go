package service

import (
	"context"
	"fmt"

	"github.com/TWRT/taskboard/internal/models"
)

type TaskStore interface {
	Create(ctx context.Context, title string) (*models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
	Update(ctx context.Context, id, title string, completed bool) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskService struct {
	taskRepo TaskStore
}

func NewTaskService(taskRepo TaskStore) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.Task, error) {
	if req.Title == nil {
		return nil, fmt.Errorf("create task: title: %w", ErrMissingField)
	}
	return s.taskRepo.Create(ctx, *req.Title)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (*models.Task, error) {
	if req.Title == nil {
		return nil, fmt.Errorf("update task %s: title: %w", id, ErrMissingField)
	}
	return s.taskRepo.Update(ctx, id, *req.Title, req.Completed)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}
