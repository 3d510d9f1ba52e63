package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	apierrors "casaflow/internal/errors"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Identifiable constrains resource item types to records carrying a unique
// identity. The server assigns it on create.
type Identifiable interface {
	Identity() string
}

// Notify receives the user-visible outcomes the delete path emits. The HTTP
// wiring logs them; a UI adapter may toast instead.
type Notify interface {
	Success(message string)
	Error(message string)
}

type zapNotify struct{}

func (zapNotify) Success(message string) { zap.L().Info(message) }
func (zapNotify) Error(message string)   { zap.L().Warn(message) }

// Events are optional lifecycle callbacks invoked after a successful
// mutation, once the relevant cache entries have been invalidated.
type Events[T Identifiable] struct {
	OnCreateSuccess func(item T)
	OnUpdateSuccess func(item T)
	OnDeleteSuccess func(id string)
}

// Resource gives CRUD access to one /api/{name} collection with shared error
// normalization and cache invalidation on mutation. List and Get are
// idempotent and safe to issue concurrently. Create is not idempotent and is
// not deduplicated here; double-submit protection belongs to the caller.
// No operation retries automatically.
type Resource[T Identifiable] struct {
	name   string
	path   string
	api    *Client
	store  *Store
	notify Notify
	events Events[T]
}

type ResourceOption[T Identifiable] func(*Resource[T])

func WithEvents[T Identifiable](events Events[T]) ResourceOption[T] {
	return func(r *Resource[T]) {
		r.events = events
	}
}

func WithNotify[T Identifiable](notify Notify) ResourceOption[T] {
	return func(r *Resource[T]) {
		r.notify = notify
	}
}

// NewResource builds the accessor for one resource name. The name is both
// the URL path segment under /api and the cache namespace.
func NewResource[T Identifiable](api *Client, store *Store, name string, opts ...ResourceOption[T]) *Resource[T] {
	r := &Resource[T]{
		name:   name,
		path:   "/api/" + name,
		api:    api,
		store:  store,
		notify: zapNotify{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

// normalize maps a resty outcome onto the accessor's error contract: context
// cancellation passes through untouched, transport failures and non-2xx
// responses become an APIError with the upstream message when one exists.
func normalize(resp *resty.Response, err error) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return apierrors.NewAPIError(0, err.Error())
	}

	if resp.IsError() {
		message := "request failed"
		if envelope, ok := resp.Error().(*errorEnvelope); ok && envelope.Message != "" {
			message = envelope.Message
		}
		return apierrors.NewAPIError(resp.StatusCode(), message)
	}

	return nil
}

func (r *Resource[T]) itemKey(id string) string {
	return r.name + "/" + id
}

// List fetches the collection, serving from cache until a mutation
// invalidates it.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	if cached, ok := r.store.Get(r.name); ok {
		if items, ok := cached.([]T); ok {
			return items, nil
		}
	}

	var envelope dataEnvelope[[]T]
	resp, err := r.api.http.R().
		SetContext(ctx).
		SetResult(&envelope).
		SetError(&errorEnvelope{}).
		Get(r.path)
	if err := normalize(resp, err); err != nil {
		return nil, err
	}

	r.store.Set(r.name, envelope.Data)
	return envelope.Data, nil
}

// Get fetches a single item. An empty id is a caller error and fails fast
// without issuing a request.
func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, apierrors.NewAPIError(400, apierrors.ErrEmptyID)
	}

	if cached, ok := r.store.Get(r.itemKey(id)); ok {
		if item, ok := cached.(T); ok {
			return item, nil
		}
	}

	var envelope dataEnvelope[T]
	resp, err := r.api.http.R().
		SetContext(ctx).
		SetResult(&envelope).
		SetError(&errorEnvelope{}).
		Get(r.path + "/" + id)
	if err := normalize(resp, err); err != nil {
		return zero, err
	}

	r.store.Set(r.itemKey(id), envelope.Data)
	return envelope.Data, nil
}

// Create posts a new item. On success the collection entry is invalidated so
// the next List refetches; on failure the cache is left untouched since no
// server-side state changed.
func (r *Resource[T]) Create(ctx context.Context, body any) (T, error) {
	var zero T

	var envelope dataEnvelope[T]
	resp, err := r.api.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&envelope).
		SetError(&errorEnvelope{}).
		Post(r.path)
	if err := normalize(resp, err); err != nil {
		return zero, err
	}

	r.store.Invalidate(r.name, r.itemKey(envelope.Data.Identity()))
	if r.events.OnCreateSuccess != nil {
		r.events.OnCreateSuccess(envelope.Data)
	}
	return envelope.Data, nil
}

// Update patches an item. On success both the collection and the item entry
// are invalidated.
func (r *Resource[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	var zero T
	if id == "" {
		return zero, apierrors.NewAPIError(400, apierrors.ErrEmptyID)
	}

	var envelope dataEnvelope[T]
	resp, err := r.api.http.R().
		SetContext(ctx).
		SetBody(patch).
		SetResult(&envelope).
		SetError(&errorEnvelope{}).
		Patch(r.path + "/" + id)
	if err := normalize(resp, err); err != nil {
		return zero, err
	}

	r.store.Invalidate(r.name, r.itemKey(id))
	if r.events.OnUpdateSuccess != nil {
		r.events.OnUpdateSuccess(envelope.Data)
	}
	return envelope.Data, nil
}

// Delete removes an item. It is the only operation that notifies the user
// itself: a success message naming the resource, or the normalized error
// message on failure. Cancellation produces neither.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apierrors.NewAPIError(400, apierrors.ErrEmptyID)
	}

	resp, err := r.api.http.R().
		SetContext(ctx).
		SetError(&errorEnvelope{}).
		Delete(r.path + "/" + id)
	if err := normalize(resp, err); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		var apiErr *apierrors.APIError
		if errors.As(err, &apiErr) {
			r.notify.Error(fmt.Sprintf("Failed to delete %s: %s", strings.ToLower(r.name), apiErr.Message))
		}
		return err
	}

	r.store.Invalidate(r.name, r.itemKey(id))
	if r.events.OnDeleteSuccess != nil {
		r.events.OnDeleteSuccess(id)
	}
	r.notify.Success(titleCase(r.name) + " deleted")
	return nil
}

func titleCase(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
