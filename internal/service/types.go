package service

// Task represents a single task item. Name is unique within its list and
// doubles as the storage key.
type Task struct {
	Name string `json:"name" yaml:"name"`
	Done bool   `json:"done" yaml:"done"`
}

// TaskList represents a task list.
type TaskList struct {
	Name      string `json:"name" yaml:"name"`
	IsDefault bool   `json:"default" yaml:"default"`
}
