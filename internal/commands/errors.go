package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"todofs/internal/exitcode"
	"todofs/internal/service"
	"todofs/internal/storage"
	"todofs/internal/view"
)

// ErrTaskNotFound indicates a task reference named a task that does not exist.
var ErrTaskNotFound = errors.New("task not found")

// reportError prints err in the CLI's error format and returns the exit code
// for its category.
func reportError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, view.ErrBlankName):
		fmt.Fprintln(errOut, "error: task name required")
		return exitcode.UserError
	case errors.Is(err, view.ErrDuplicateName),
		errors.Is(err, view.ErrOutOfRange),
		errors.Is(err, ErrTaskNotFound):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, storage.ErrInvalidName):
		fmt.Fprintf(errOut, "error: %s\n", strings.TrimPrefix(err.Error(), "store: "))
		return exitcode.UserError
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(errOut, "error: cancelled")
		return exitcode.StoreError
	default:
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}
}

// resolveList returns the list a command operates on: the --list value if
// given, otherwise the service's default list.
func resolveList(ctx context.Context, svc service.Service, listName string) (string, error) {
	listName = strings.TrimSpace(listName)
	if listName == "" {
		list, err := svc.DefaultList(ctx)
		if err != nil {
			return "", err
		}
		return list.Name, nil
	}
	if err := storage.ValidateList(listName); err != nil {
		return "", err
	}
	return listName, nil
}

// loadView resolves the target list and loads it.
func loadView(ctx context.Context, svc service.Service, listName string) (*view.View, error) {
	list, err := resolveList(ctx, svc, listName)
	if err != nil {
		return nil, err
	}
	return view.Load(ctx, svc, list)
}
