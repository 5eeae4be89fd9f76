package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "sewtrack/internal/domain/errors"
	testhelpers "sewtrack/internal/test"
)

func TestWorkerAddRejectsBlankName(t *testing.T) {
	uc := NewWorkerUseCase(testhelpers.NewWorkerRepositoryStub())

	if _, _, err := uc.Add(context.Background(), "   "); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWorkerAddTrimsName(t *testing.T) {
	uc := NewWorkerUseCase(testhelpers.NewWorkerRepositoryStub())

	worker, created, err := uc.Add(context.Background(), "  Maria Garcia  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected new identity")
	}
	if worker.Name != "Maria Garcia" {
		t.Fatalf("expected trimmed name, got %q", worker.Name)
	}
}

func TestWorkerAddReactivatesNamesake(t *testing.T) {
	repo := testhelpers.NewWorkerRepositoryStub()
	uc := NewWorkerUseCase(repo)

	original, _, err := uc.Add(context.Background(), "Maria Garcia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.SetActive(context.Background(), original.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored, created, err := uc.Add(context.Background(), "Maria Garcia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("re-adding a deactivated name must restore, not create")
	}
	if restored.ID != original.ID {
		t.Fatalf("expected identity %s to be restored, got %s", original.ID, restored.ID)
	}
	if !restored.IsActive {
		t.Fatal("restored worker must be active")
	}
}

func TestWorkerAddActiveNameConflicts(t *testing.T) {
	uc := NewWorkerUseCase(testhelpers.NewWorkerRepositoryStub())

	if _, _, err := uc.Add(context.Background(), "Maria Garcia"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Add(context.Background(), "Maria Garcia"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected conflict for active namesake, got %v", err)
	}
}

func TestWorkerSetActiveUnknown(t *testing.T) {
	uc := NewWorkerUseCase(testhelpers.NewWorkerRepositoryStub())

	if _, err := uc.SetActive(context.Background(), "ghost", false); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
