// Package rest implements the service.Service interface over the to-do REST API.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"todoctl/internal/config"
	"todoctl/internal/logging"
	"todoctl/internal/service"
)

// RequestIDHeader carries a fresh UUID on every request.
const RequestIDHeader = "X-Request-Id"

// maxErrorBody bounds how much of an error response ends up in a StatusError.
const maxErrorBody = 200

var _ service.Service = (*Client)(nil)

// Client implements service.Service using the REST backend.
type Client struct {
	http         *resty.Client
	cfg          *config.Config
	log          logrus.FieldLogger
	deleteMethod string
}

// New creates a REST client from cfg. The configuration must be valid.
func New(cfg *config.Config, log logrus.FieldLogger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewWithHTTPClient(cfg, log, &http.Client{}), nil
}

// NewWithHTTPClient creates a client around a custom HTTP client (for testing).
func NewWithHTTPClient(cfg *config.Config, log logrus.FieldLogger, hc *http.Client) *Client {
	if log == nil {
		log = logging.Discard()
	}
	log = log.WithField("component", "rest")

	rc := resty.NewWithClient(hc).
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetLogger(log)

	method := resty.MethodGet
	if cfg.DeleteMethod == config.DeleteDelete {
		method = resty.MethodDelete
	}

	return &Client{
		http:         rc,
		cfg:          cfg,
		log:          log,
		deleteMethod: method,
	}
}

// ListLists returns all lists in backend order.
func (c *Client) ListLists(ctx context.Context) ([]service.TodoList, error) {
	resp, err := c.do(ctx, resty.MethodGet, "todos", nil)
	if err != nil {
		return nil, err
	}

	// The body is decoded whatever Content-Type the backend sends.
	var lists []service.TodoList
	if err := json.Unmarshal(resp.Body(), &lists); err != nil {
		return nil, fmt.Errorf("%w: lists: malformed response: %v", service.ErrInvalid, err)
	}
	for _, l := range lists {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("list %s: %w", l.ID, err)
		}
	}
	return lists, nil
}

// GetList returns one list. The backend answers with a one-element array
// carrying title and tasks; the id is taken from the request. NumCompleted is
// whatever the backend sent and is never counted here.
func (c *Client) GetList(ctx context.Context, listID service.ID) (service.TodoList, error) {
	resp, err := c.do(ctx, resty.MethodGet, "todo/"+url.PathEscape(listID.String()), nil)
	if err != nil {
		return service.TodoList{}, err
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return service.TodoList{}, fmt.Errorf("%w: list %s: malformed response", service.ErrInvalid, listID)
	}
	first := gjson.GetBytes(body, "0")
	if !first.Exists() || !first.IsObject() {
		return service.TodoList{}, fmt.Errorf("list %s: %w", listID, service.ErrNotFound)
	}

	var list service.TodoList
	if err := json.Unmarshal([]byte(first.Raw), &list); err != nil {
		return service.TodoList{}, fmt.Errorf("%w: list %s: %v", service.ErrInvalid, listID, err)
	}
	list.ID = listID
	for i := range list.Tasks {
		if list.Tasks[i].ListID.IsZero() {
			list.Tasks[i].ListID = listID
		}
	}
	if err := list.Validate(); err != nil {
		return service.TodoList{}, fmt.Errorf("list %s: %w", listID, err)
	}
	return list, nil
}

// CreateList creates a list with the given title.
func (c *Client) CreateList(ctx context.Context, title string) error {
	_, err := c.do(ctx, resty.MethodPost, "todo/add", func(r *resty.Request) {
		r.SetBody(map[string]string{"title": title})
	})
	return err
}

// DeleteList deletes a list by ID.
func (c *Client) DeleteList(ctx context.Context, listID service.ID) error {
	_, err := c.do(ctx, c.deleteMethod, "todo/delete/"+url.PathEscape(listID.String()), nil)
	return err
}

// CreateTask adds a task to listID. The task is sent without an id.
func (c *Client) CreateTask(ctx context.Context, listID service.ID, task service.Task) error {
	task.TaskID = ""
	task.ListID = listID
	if err := task.Validate(); err != nil {
		return err
	}
	_, err := c.do(ctx, resty.MethodPost, "task/add/"+url.PathEscape(listID.String()), func(r *resty.Request) {
		r.SetBody(task)
	})
	return err
}

// EditTask replaces the stored task with task.
func (c *Client) EditTask(ctx context.Context, task service.Task) error {
	if task.TaskID.IsZero() {
		return fmt.Errorf("%w: task has no id", service.ErrInvalid)
	}
	if err := task.Validate(); err != nil {
		return err
	}
	_, err := c.do(ctx, resty.MethodPost, "task/edit/"+url.PathEscape(task.TaskID.String()), func(r *resty.Request) {
		r.SetBody(task)
	})
	return err
}

// DeleteTask deletes a task by ID.
func (c *Client) DeleteTask(ctx context.Context, taskID service.ID) error {
	_, err := c.do(ctx, c.deleteMethod, "task/delete/"+url.PathEscape(taskID.String()), nil)
	return err
}

// do runs one request under the configured timeout. Any non-2xx status is
// returned as a *service.StatusError.
func (c *Client) do(ctx context.Context, method, path string, build func(*resty.Request)) (*resty.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	reqID := uuid.NewString()
	req := c.http.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, reqID)
	if build != nil {
		build(req)
	}

	entry := c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": reqID,
	})

	resp, err := req.Execute(method, path)
	if err != nil {
		entry.WithError(err).Debug("request failed")
		return nil, wrapError(ctx, method, path, err)
	}

	entry.WithFields(logrus.Fields{
		"status":   resp.StatusCode(),
		"duration": resp.Time(),
	}).Debug("request")

	if !resp.IsSuccess() {
		return resp, &service.StatusError{Code: resp.StatusCode(), Body: trimBody(resp.String())}
	}
	return resp, nil
}

func trimBody(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	return s
}

// wrapError maps transport errors to service errors.
func wrapError(ctx context.Context, method, path string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return service.ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return service.ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%s %s: %w", method, path, err)
}
