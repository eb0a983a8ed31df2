// Package filestore implements the service.Service interface on top of a storage.Store.
package filestore

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"todofs/internal/config"
	"todofs/internal/logging"
	"todofs/internal/service"
	"todofs/internal/storage"
)

// doneDefault is what an unreadable entry decodes to.
const doneDefault = "false"

// Client implements service.Service using a storage.Store.
type Client struct {
	store       storage.Store
	defaultList string
	log         *log.Logger
}

// New creates a client backed by a FileStore at cfg.Root.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.Root == "" {
		return nil, fmt.Errorf("storage root is empty")
	}
	if err := storage.ValidateList(cfg.List); err != nil {
		return nil, err
	}
	return NewWithStore(storage.NewFileStore(cfg.Root, logger), cfg.List, logger), nil
}

// NewWithStore creates a client over an arbitrary store.
func NewWithStore(store storage.Store, defaultList string, logger *log.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	if defaultList == "" {
		defaultList = storage.DefaultList
	}
	return &Client{
		store:       store,
		defaultList: defaultList,
		log:         logger,
	}
}

// DefaultList returns the configured default list.
func (c *Client) DefaultList(ctx context.Context) (service.TaskList, error) {
	if err := ctx.Err(); err != nil {
		return service.TaskList{}, err
	}
	return service.TaskList{Name: c.defaultList, IsDefault: true}, nil
}

// ListLists returns all lists, default first.
func (c *Client) ListLists(ctx context.Context) ([]service.TaskList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := c.store.Lists()
	if err != nil {
		return nil, wrapError(err)
	}

	result := []service.TaskList{{Name: c.defaultList, IsDefault: true}}
	for _, name := range names {
		if name == c.defaultList {
			continue
		}
		result = append(result, service.TaskList{Name: name})
	}
	return result, nil
}

// ListTasks enumerates a list and reads every entry's status.
func (c *Client) ListTasks(ctx context.Context, list string) ([]service.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := c.store.List(list)
	if err != nil {
		return nil, wrapError(err)
	}

	tasks := make([]service.Task, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, service.Task{
			Name: name,
			Done: decodeDone(c.store.Read(list, name, doneDefault)),
		})
	}
	c.log.Debug("loaded tasks", "list", list, "count", len(tasks))
	return tasks, nil
}

// SaveTask writes the task's done flag.
func (c *Client) SaveTask(ctx context.Context, list string, task service.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.store.Write(list, task.Name, encodeDone(task.Done)); err != nil {
		return wrapError(err)
	}
	return nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, list, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.store.Delete(list, name); err != nil {
		return wrapError(err)
	}
	return nil
}

// ClearList removes a list and all of its tasks.
func (c *Client) ClearList(ctx context.Context, list string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.store.DeleteAll(list); err != nil {
		return wrapError(err)
	}
	return nil
}

// encodeDone serializes a done flag as "true" or "false".
func encodeDone(done bool) string {
	return strconv.FormatBool(done)
}

// decodeDone reads back a stored flag. "true" in any letter case is done;
// anything else, including "1" and " true", is not.
func decodeDone(value string) bool {
	return strings.EqualFold(value, "true")
}

// wrapError wraps store errors with a consistent prefix.
func wrapError(err error) error {
	return fmt.Errorf("store: %w", err)
}
