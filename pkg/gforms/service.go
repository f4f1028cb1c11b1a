// Package gforms wraps the Google Forms API client used by the batch
// translation layer. It exposes only the three collaborator calls the
// rest of the system depends on: fetch a form, create a form, and
// apply a batch of requests.
package gforms

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Service provides access to the Google Forms API.
type Service struct {
	// Forms is the underlying Forms API client, exported for
	// operations that need direct access.
	Forms *forms.Service

	log hclog.Logger
}

// New creates a Forms service using Application Default Credentials,
// plus any extra client options.
func New(ctx context.Context, log hclog.Logger, opts ...option.ClientOption) (*Service, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	opts = append([]option.ClientOption{option.WithScopes(forms.FormsBodyScope)}, opts...)
	svc, err := forms.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create forms service: %w", err)
	}
	return &Service{
		Forms: svc,
		log:   log,
	}, nil
}

// NewWithCredentialsFile creates a Forms service authenticating with a
// service account JSON key file.
func NewWithCredentialsFile(ctx context.Context, log hclog.Logger, path string) (*Service, error) {
	return New(ctx, log, option.WithCredentialsFile(path))
}

// NewWithTokenSource creates a Forms service using a caller-supplied
// OAuth2 token source, for embedders that manage their own credential
// flow.
func NewWithTokenSource(ctx context.Context, log hclog.Logger, ts oauth2.TokenSource) (*Service, error) {
	return New(ctx, log, option.WithTokenSource(ts))
}

// GetForm fetches the current state of a form.
func (s *Service) GetForm(ctx context.Context, formID string) (*forms.Form, error) {
	form, err := s.Forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get form %q: %w", formID, err)
	}
	return form, nil
}

// CreateForm creates a new form. Only the title can be set at creation
// time; everything else goes through batchUpdate. documentTitle names
// the Drive file when it should differ from the form title. When
// unpublished is true the form is created without accepting responses.
func (s *Service) CreateForm(ctx context.Context, title, documentTitle string, unpublished bool) (*forms.Form, error) {
	info := &forms.Info{Title: title}
	if documentTitle != "" {
		info.DocumentTitle = documentTitle
	}
	call := s.Forms.Forms.Create(&forms.Form{Info: info}).Context(ctx)
	if unpublished {
		call = call.Unpublished(true)
	}
	form, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("create form %q: %w", title, err)
	}
	s.log.Info("created form", "form_id", form.FormId, "title", title)
	return form, nil
}

// BatchUpdate applies a batch of requests to a form as one atomic
// call.
func (s *Service) BatchUpdate(ctx context.Context, formID string, req *forms.BatchUpdateFormRequest) (*forms.BatchUpdateFormResponse, error) {
	resp, err := s.Forms.Forms.BatchUpdate(formID, req).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// IsNotFound reports whether err is a Forms API not-found error.
func IsNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}
	return false
}
