package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port/mocks"
)

func newTestSettings(t *testing.T) (*Settings, *mocks.MockGateway, *mocks.MockNotifier, *Tabs) {
	gw := mocks.NewMockGateway(t)
	view := mocks.NewMockView(t)
	notifier := mocks.NewMockNotifier(t)
	view.EXPECT().ShowTab(mock.Anything).Return().Maybe()
	view.EXPECT().SetTabLoading(mock.Anything, mock.Anything).Return().Maybe()
	view.EXPECT().RenderTab(mock.Anything, mock.Anything).Return().Maybe()

	tabs := NewTabs(gw, view, notifier, testLogger())
	return NewSettings(gw, tabs, notifier, testLogger()), gw, notifier, tabs
}

func loadTestProfile(t *testing.T, s *Settings, gw *mocks.MockGateway) {
	gw.EXPECT().Profile(mock.Anything).Return(&domain.Profile{
		FirstName: "Hanna",
		LastName:  "Tesfaye",
		Email:     "hanna@example.com",
		Address:   "Addis Ababa",
	}, nil).Once()
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
}

// TestSetFieldTracksDiff keeps only fields that differ from the loaded
// profile in the change set.
func TestSetFieldTracksDiff(t *testing.T) {
	s, gw, _, _ := newTestSettings(t)
	loadTestProfile(t, s, gw)

	if s.Dirty() {
		t.Fatalf("fresh profile must not be dirty")
	}
	s.SetField(FieldFirstName, "Sara")
	if !s.Dirty() {
		t.Fatalf("edited field should mark the form dirty")
	}
	s.SetField(FieldFirstName, "Hanna")
	if s.Dirty() {
		t.Fatalf("reverting to the baseline should clear the change")
	}
}

// TestSaveValidation checks the profile field rules.
func TestSaveValidation(t *testing.T) {
	s, gw, _, _ := newTestSettings(t)
	loadTestProfile(t, s, gw)
	ctx := context.Background()

	s.SetField(FieldFirstName, "")
	s.Save(ctx)
	if errs := s.Errors(); errs[FieldFirstName] != "First name is required." {
		t.Fatalf("expected required first name, got %v", errs)
	}

	s.SetField(FieldFirstName, "H")
	s.Save(ctx)
	if errs := s.Errors(); errs[FieldFirstName] != "First name must be 2-50 characters." {
		t.Fatalf("expected length error, got %v", errs)
	}

	s.SetField(FieldFirstName, "Hanna")
	s.SetField(FieldEmail, "not-an-email")
	s.Save(ctx)
	if errs := s.Errors(); errs[FieldEmail] != "Invalid email address." {
		t.Fatalf("expected email error, got %v", errs)
	}
}

// TestSavePatchesOnlyChanges sends just the edited fields and nulls empty
// optional ones.
func TestSavePatchesOnlyChanges(t *testing.T) {
	s, gw, notifier, tabs := newTestSettings(t)

	gw.EXPECT().Profile(mock.Anything).Return(&domain.Profile{
		FirstName: "Hanna", LastName: "Tesfaye",
		Email: "hanna@example.com", Address: "Addis Ababa",
	}, nil).Times(2)
	tabs.SwitchTab(context.Background(), domain.TabSettings)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	s.SetField(FieldFirstName, "Sara")
	s.SetField(FieldEmail, "")

	gw.EXPECT().UpdateProfile(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, changes map[string]any) error {
			if len(changes) != 2 {
				t.Fatalf("expected 2 changed fields, got %v", changes)
			}
			if changes[FieldFirstName] != "Sara" {
				t.Fatalf("unexpected first name: %v", changes[FieldFirstName])
			}
			if v, ok := changes[FieldEmail]; !ok || v != nil {
				t.Fatalf("empty email must be null, got %v", changes)
			}
			return nil
		}).Once()
	notifier.EXPECT().Success("Profile updated successfully!").Return().Once()

	// the settings tab reload refetches the profile
	gw.EXPECT().Profile(mock.Anything).Return(&domain.Profile{FirstName: "Sara"}, nil).Once()

	s.Save(context.Background())

	if s.Dirty() {
		t.Fatalf("change set should clear after a successful save")
	}
}

// TestSaveNoChangesIsNoOp sends nothing when the form is clean.
func TestSaveNoChangesIsNoOp(t *testing.T) {
	s, gw, _, _ := newTestSettings(t)
	loadTestProfile(t, s, gw)

	s.Save(context.Background())
}

// TestSaveServerError keeps the change set for a retry.
func TestSaveServerError(t *testing.T) {
	s, gw, notifier, _ := newTestSettings(t)
	loadTestProfile(t, s, gw)

	s.SetField(FieldAddress, "Bole, Addis Ababa")
	gw.EXPECT().UpdateProfile(mock.Anything, mock.Anything).Return(errors.New("boom")).Once()
	notifier.EXPECT().Error("Error updating profile. Please try again.").Return().Once()

	s.Save(context.Background())

	if !s.Dirty() {
		t.Fatalf("failed save must keep the pending changes")
	}
}
