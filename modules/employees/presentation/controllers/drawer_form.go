package controllers

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-faster/errors"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
	"github.com/ostech/hrconsole/modules/employees/services"
)

var (
	ErrNotAnImage    = errors.New("selected file is not an image")
	ErrImageTooLarge = errors.New("selected image exceeds the upload limit")
	ErrDrawerNotOpen = errors.New("drawer is not open")
)

// DrawerForm is the side-drawer editor. Every Open* call rebuilds the form
// from scratch, so state from an abandoned edit can never leak into the next
// one. The same form serves create and edit; submit is routed by whether the
// bound draft carries an id.
type DrawerForm struct {
	mu      sync.Mutex
	service *services.EmployeeService

	maxUpload int64

	open          bool
	draft         employee.DraftDTO
	fieldErrors   map[string]string
	avatarPreview string
	submitErr     string
}

// DrawerSnapshot is the render-ready view of the drawer state.
type DrawerSnapshot struct {
	Open          bool
	Editing       bool
	Draft         employee.DraftDTO
	FieldErrors   map[string]string
	AvatarPreview string
	SubmitErr     string
}

func NewDrawerForm(service *services.EmployeeService, maxUpload int64) *DrawerForm {
	return &DrawerForm{service: service, maxUpload: maxUpload}
}

// OpenCreate rebuilds the form empty.
func (f *DrawerForm) OpenCreate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
	f.open = true
}

// OpenEdit rebuilds the form from a by-value copy of the record. Edits only
// reach the live record through a successful submit.
func (f *DrawerForm) OpenEdit(e employee.Employee) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
	f.draft = employee.FromEntity(e)
	f.avatarPreview = f.draft.AvatarURL
	f.open = true
}

// Bind overlays submitted field values onto the draft. The id set by Open*
// wins over anything in the submission, so a tampered form cannot switch an
// edit into a create or retarget it.
func (f *DrawerForm) Bind(values employee.DraftDTO) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return ErrDrawerNotOpen
	}
	id := f.draft.ID
	avatar := f.draft.AvatarURL
	f.draft = values
	f.draft.ID = id
	if strings.TrimSpace(f.draft.AvatarURL) == "" {
		f.draft.AvatarURL = avatar
	}
	return nil
}

// PickImage validates an avatar candidate by sniffing its content and stores
// an inline preview. Nothing is uploaded until submit.
func (f *DrawerForm) PickImage(content []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return ErrDrawerNotOpen
	}
	if f.maxUpload > 0 && int64(len(content)) > f.maxUpload {
		return ErrImageTooLarge
	}
	mime := mimetype.Detect(content)
	if !strings.HasPrefix(mime.String(), "image/") {
		return ErrNotAnImage
	}
	dataURI := "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(content)
	f.avatarPreview = dataURI
	f.draft.AvatarURL = dataURI
	return nil
}

// Submit validates the draft and, only when it is clean, sends it to the
// directory. Validation failures never touch the network. A directory
// failure leaves the drawer open with the draft intact.
func (f *DrawerForm) Submit(ctx context.Context) (employee.Employee, bool) {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return nil, false
	}
	draft := f.draft
	f.mu.Unlock()

	if fieldErrors, ok := draft.Ok(ctx); !ok {
		f.mu.Lock()
		f.fieldErrors = fieldErrors
		f.submitErr = ""
		f.mu.Unlock()
		return nil, false
	}

	saved, err := f.service.Save(ctx, &draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.fieldErrors = map[string]string{}
		f.submitErr = "The directory rejected the request. Please try again."
		return nil, false
	}
	f.reset()
	return saved, true
}

// Cancel closes and clears the drawer without saving.
func (f *DrawerForm) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *DrawerForm) Snapshot() DrawerSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	fieldErrors := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		fieldErrors[k] = v
	}
	return DrawerSnapshot{
		Open:          f.open,
		Editing:       f.draft.ID != "",
		Draft:         f.draft,
		FieldErrors:   fieldErrors,
		AvatarPreview: f.avatarPreview,
		SubmitErr:     f.submitErr,
	}
}

func (f *DrawerForm) reset() {
	f.open = false
	f.draft = employee.DraftDTO{}
	f.fieldErrors = map[string]string{}
	f.avatarPreview = ""
	f.submitErr = ""
}
