package submission

import (
	"fmt"
	"os"
)

// TaskType identifies which assignment variant is being graded.
type TaskType string

const (
	TaskBackend   TaskType = "backend"
	TaskFrontend  TaskType = "frontend"
	TaskFullstack TaskType = "fullstack"
)

// ParseTaskType validates a task type string.
func ParseTaskType(s string) (TaskType, error) {
	switch TaskType(s) {
	case TaskBackend, TaskFrontend, TaskFullstack:
		return TaskType(s), nil
	default:
		return "", fmt.Errorf("unknown task type %q (want backend, frontend, or fullstack)", s)
	}
}

// Submission is the immutable input to a grading run.
type Submission struct {
	Diff   string
	Review string
	Task   TaskType
}

// Load reads the diff and review files into a Submission. Either file may be
// absent, in which case its content is empty.
func Load(diffPath, reviewPath string, task TaskType) (Submission, error) {
	diff, err := ReadOptional(diffPath)
	if err != nil {
		return Submission{}, fmt.Errorf("reading diff: %w", err)
	}
	review, err := ReadOptional(reviewPath)
	if err != nil {
		return Submission{}, fmt.Errorf("reading review: %w", err)
	}
	return Submission{Diff: diff, Review: review, Task: task}, nil
}

// ReadOptional returns the file's full content, or "" if the path does not
// exist. Other I/O errors are returned as-is.
func ReadOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}
