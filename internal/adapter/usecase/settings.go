package usecase

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

// Field keys for the profile form.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldAddress   = "address"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Settings edits the user profile. Only fields the user actually changed
// travel in the PATCH, so untouched server state stays untouched.
type Settings struct {
	gw     port.Gateway
	tabs   *Tabs
	notify port.Notifier
	logger *slog.Logger

	mu      sync.Mutex
	profile *domain.Profile
	changes map[string]string
	errs    domain.FieldErrors
}

// NewSettings wires the profile editor.
func NewSettings(gw port.Gateway, tabs *Tabs, notify port.Notifier, logger *slog.Logger) *Settings {
	return &Settings{gw: gw, tabs: tabs, notify: notify, logger: logger, changes: map[string]string{}}
}

// Load fetches the profile the edits diff against.
func (s *Settings) Load(ctx context.Context) error {
	profile, err := s.gw.Profile(ctx)
	if err != nil {
		s.logger.Error("profile load failed", "err", err)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	s.changes = map[string]string{}
	s.errs = domain.FieldErrors{}
	return nil
}

// SetField records an edit. A value equal to the loaded profile drops the
// field from the pending change set.
func (s *Settings) SetField(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile != nil && value == s.baseline(key) {
		delete(s.changes, key)
		return
	}
	s.changes[key] = value
}

func (s *Settings) baseline(key string) string {
	switch key {
	case FieldFirstName:
		return s.profile.FirstName
	case FieldLastName:
		return s.profile.LastName
	case FieldEmail:
		return s.profile.Email
	case FieldAddress:
		return s.profile.Address
	}
	return ""
}

// Dirty reports whether any field differs from the loaded profile.
func (s *Settings) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.changes) > 0
}

// Errors returns the current inline validation errors.
func (s *Settings) Errors() domain.FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := domain.FieldErrors{}
	out.Merge(s.errs)
	return out
}

// Save validates the pending changes and patches the profile. Empty email
// and address are stored as null. The settings tab reloads on success.
func (s *Settings) Save(ctx context.Context) {
	s.mu.Lock()
	changes := make(map[string]string, len(s.changes))
	for k, v := range s.changes {
		changes[k] = v
	}
	s.mu.Unlock()

	if len(changes) == 0 {
		return
	}

	errs := validateProfile(changes)
	s.mu.Lock()
	s.errs = errs
	s.mu.Unlock()
	if !errs.Empty() {
		return
	}

	payload := make(map[string]any, len(changes))
	for k, v := range changes {
		if (k == FieldEmail || k == FieldAddress) && v == "" {
			payload[k] = nil
			continue
		}
		payload[k] = v
	}

	if err := s.gw.UpdateProfile(ctx, payload); err != nil {
		s.logger.Error("profile update failed", "err", err)
		s.notify.Error("Error updating profile. Please try again.")
		return
	}

	s.mu.Lock()
	s.changes = map[string]string{}
	s.mu.Unlock()
	s.notify.Success("Profile updated successfully!")
	s.tabs.RefreshCurrentTab(ctx)
}

func validateProfile(changes map[string]string) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if v, ok := changes[FieldFirstName]; ok {
		switch val := strings.TrimSpace(v); {
		case val == "":
			errs.Add(FieldFirstName, "First name is required.")
		case len(val) < 2 || len(val) > 50:
			errs.Add(FieldFirstName, "First name must be 2-50 characters.")
		}
	}
	if v, ok := changes[FieldLastName]; ok {
		switch val := strings.TrimSpace(v); {
		case val == "":
			errs.Add(FieldLastName, "Last name is required.")
		case len(val) < 2 || len(val) > 50:
			errs.Add(FieldLastName, "Last name must be 2-50 characters.")
		}
	}
	if v, ok := changes[FieldEmail]; ok {
		if val := strings.TrimSpace(v); val != "" && !emailRe.MatchString(val) {
			errs.Add(FieldEmail, "Invalid email address.")
		}
	}
	if v, ok := changes[FieldAddress]; ok {
		if val := strings.TrimSpace(v); len(val) > 100 {
			errs.Add(FieldAddress, "Address cannot exceed 100 characters.")
		}
	}
	return errs
}
