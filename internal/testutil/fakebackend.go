package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"todoctl/internal/service"
)

// RequestIDHeader is the header the client tags each request with.
const RequestIDHeader = "X-Request-Id"

// RecordedRequest is one request seen by FakeBackend.
type RecordedRequest struct {
	Method    string
	Path      string
	RequestID string
	Body      []byte
}

// FakeBackend is an httptest server speaking the to-do REST API on top of a
// FakeService store.
type FakeBackend struct {
	*httptest.Server
	Store *FakeService

	mu         sync.Mutex
	requests   []RecordedRequest
	failStatus int
	delay      time.Duration
	raw        map[string]rawResponse
}

type rawResponse struct {
	contentType string
	body        string
}

// NewFakeBackend starts a backend over store. The server is closed when the
// test ends.
func NewFakeBackend(t testing.TB, store *FakeService) *FakeBackend {
	t.Helper()
	b := &FakeBackend{Store: store, raw: make(map[string]rawResponse)}

	r := chi.NewRouter()
	r.Use(b.record)
	r.Use(jsonContentType)

	r.Get("/todos", b.listLists)
	r.Get("/todo/{id}", b.getList)
	r.Post("/todo/add", b.createList)
	r.Get("/todo/delete/{id}", b.deleteList)
	r.Delete("/todo/delete/{id}", b.deleteList)
	r.Post("/task/add/{listId}", b.createTask)
	r.Post("/task/edit/{taskId}", b.editTask)
	r.Get("/task/delete/{taskId}", b.deleteTask)
	r.Delete("/task/delete/{taskId}", b.deleteTask)

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Close)
	return b
}

// FailWith makes every following request answer with status. Zero restores
// normal behaviour.
func (b *FakeBackend) FailWith(status int) {
	b.mu.Lock()
	b.failStatus = status
	b.mu.Unlock()
}

// Delay holds every following request for d before answering.
func (b *FakeBackend) Delay(d time.Duration) {
	b.mu.Lock()
	b.delay = d
	b.mu.Unlock()
}

// RespondRaw serves body verbatim as JSON with status 200 for requests to path.
func (b *FakeBackend) RespondRaw(path, body string) {
	b.RespondRawAs(path, "application/json", body)
}

// RespondRawAs is RespondRaw with an explicit Content-Type.
func (b *FakeBackend) RespondRawAs(path, contentType, body string) {
	b.mu.Lock()
	b.raw[path] = rawResponse{contentType: contentType, body: body}
	b.mu.Unlock()
}

// Requests returns the requests received so far.
func (b *FakeBackend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// LastRequest returns the most recent request.
func (b *FakeBackend) LastRequest() RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return RecordedRequest{}
	}
	return b.requests[len(b.requests)-1]
}

func (b *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()

		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			RequestID: r.Header.Get(RequestIDHeader),
			Body:      body,
		})
		status, delay := b.failStatus, b.delay
		raw, hasRaw := b.raw[r.URL.Path]
		b.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		if hasRaw {
			w.Header().Set("Content-Type", raw.contentType)
			_, _ = io.WriteString(w, raw.body)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeStoreError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrNotFound) {
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}

func (b *FakeBackend) listLists(w http.ResponseWriter, r *http.Request) {
	lists, err := b.Store.ListLists(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// getList answers with a one-element array holding title and tasks only.
func (b *FakeBackend) getList(w http.ResponseWriter, r *http.Request) {
	list, err := b.Store.GetList(r.Context(), service.ID(chi.URLParam(r, "id")))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	type listBody struct {
		Title string         `json:"title"`
		Tasks []service.Task `json:"tasks"`
	}
	writeJSON(w, http.StatusOK, []listBody{{Title: list.Title, Tasks: list.Tasks}})
}

func (b *FakeBackend) createList(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Title == "" {
		http.Error(w, "invalid list", http.StatusBadRequest)
		return
	}
	if err := b.Store.CreateList(r.Context(), body.Title); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (b *FakeBackend) deleteList(w http.ResponseWriter, r *http.Request) {
	b.mutate(w, r, func(ctx context.Context) error {
		return b.Store.DeleteList(ctx, service.ID(chi.URLParam(r, "id")))
	})
}

func (b *FakeBackend) createTask(w http.ResponseWriter, r *http.Request) {
	var task service.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, "invalid task", http.StatusBadRequest)
		return
	}
	b.mutate(w, r, func(ctx context.Context) error {
		return b.Store.CreateTask(ctx, service.ID(chi.URLParam(r, "listId")), task)
	})
}

func (b *FakeBackend) editTask(w http.ResponseWriter, r *http.Request) {
	var task service.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, "invalid task", http.StatusBadRequest)
		return
	}
	task.TaskID = service.ID(chi.URLParam(r, "taskId"))
	b.mutate(w, r, func(ctx context.Context) error {
		return b.Store.EditTask(ctx, task)
	})
}

func (b *FakeBackend) deleteTask(w http.ResponseWriter, r *http.Request) {
	b.mutate(w, r, func(ctx context.Context) error {
		return b.Store.DeleteTask(ctx, service.ID(chi.URLParam(r, "taskId")))
	})
}

func (b *FakeBackend) mutate(w http.ResponseWriter, r *http.Request, fn func(context.Context) error) {
	if err := fn(r.Context()); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
