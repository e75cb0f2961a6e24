// Package googletasks implements service.Service on top of the Google Tasks
// API.
package googletasks

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"listdeck/internal/config"
	"listdeck/internal/service"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// APITimeout bounds every API call.
	APITimeout = 5 * time.Second

	// Scope is the OAuth scope required for publishing.
	Scope = tasks.TasksScope

	statusCompleted   = "completed"
	statusNeedsAction = "needsAction"
)

// Client implements service.Service using the Google Tasks API.
type Client struct {
	svc *tasks.Service
}

// New creates a client from the stored OAuth client and token files.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oauthConfig, err := OAuthConfig(cfg.OAuthClientPath())
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg.TokenPath())
	if err != nil {
		return nil, err
	}

	// The token source refreshes the access token as needed.
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	return NewWithHTTPClient(ctx, httpClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client. Extra
// options (such as option.WithEndpoint) are passed to the API service.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// DefaultList returns the account's default task list.
func (c *Client) DefaultList(ctx context.Context) (service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return service.TaskList{}, wrapError(err)
	}
	return service.TaskList{ID: DefaultListID, Title: list.Title, IsDefault: true}, nil
}

// ListLists returns all task lists in API order, with the default list's
// ID normalized to @default.
func (c *Client) ListLists(ctx context.Context) ([]service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	defaultList, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}

	var result []service.TaskList
	err = c.svc.Tasklists.List().MaxResults(100).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			tl := service.TaskList{ID: list.Id, Title: list.Title}
			if list.Id == defaultList.Id {
				tl.ID = DefaultListID
				tl.IsDefault = true
			}
			result = append(result, tl)
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ResolveList finds a list by name (case-insensitive, trimmed).
func (c *Client) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	lists, err := c.ListLists(ctx)
	if err != nil {
		return service.TaskList{}, err
	}
	return service.MatchList(lists, name)
}

// CreateList creates a task list.
func (c *Client) CreateList(ctx context.Context, name string) (service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Insert(&tasks.TaskList{Title: name}).Context(ctx).Do()
	if err != nil {
		return service.TaskList{}, wrapError(err)
	}
	return service.TaskList{ID: list.Id, Title: list.Title}, nil
}

// CreateTask inserts a task at the end of the list.
func (c *Client) CreateTask(ctx context.Context, listID string, task service.Task) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	status := statusNeedsAction
	if task.Completed {
		status = statusCompleted
	}

	// Insert places new tasks first unless a previous sibling is given;
	// callers publish in order, so look up the current last task.
	previous, err := c.lastTaskID(ctx, listID)
	if err != nil {
		return err
	}

	call := c.svc.Tasks.Insert(listID, &tasks.Task{
		Title:  task.Title,
		Notes:  task.Notes,
		Status: status,
	}).Context(ctx)
	if previous != "" {
		call = call.Previous(previous)
	}
	if _, err := call.Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// lastTaskID returns the ID of the last top-level task in the list, or ""
// for an empty list.
func (c *Client) lastTaskID(ctx context.Context, listID string) (string, error) {
	var last *tasks.Task
	err := c.svc.Tasks.List(listID).
		MaxResults(100).
		ShowCompleted(true).
		ShowHidden(true).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				if t.Parent != "" {
					continue
				}
				if last == nil || t.Position > last.Position {
					last = t
				}
			}
			return nil
		})
	if err != nil {
		return "", wrapError(err)
	}
	if last == nil {
		return "", nil
	}
	return last.Id, nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: listdeck login)")
	}
	if strings.Contains(errStr, "404") {
		return fmt.Errorf("not found")
	}
	return err
}
