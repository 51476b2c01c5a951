package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/atinyakov/nexus/internal/models"
	"github.com/atinyakov/nexus/internal/service"
)

type mockRepo struct {
	InsertContactFunc func(ctx context.Context, name, email, message string) (int64, error)
	ListContactsFunc  func(ctx context.Context, limit int) ([]models.Contact, error)
}

func (m *mockRepo) InsertContact(ctx context.Context, name, email, message string) (int64, error) {
	return m.InsertContactFunc(ctx, name, email, message)
}

func (m *mockRepo) ListContacts(ctx context.Context, limit int) ([]models.Contact, error) {
	return m.ListContactsFunc(ctx, limit)
}

func TestSubmit_Success(t *testing.T) {
	repo := &mockRepo{
		InsertContactFunc: func(ctx context.Context, name, email, message string) (int64, error) {
			if name != "Ann" || email != "a@x.com" || message != "hi" {
				t.Errorf("InsertContact received (%q, %q, %q)", name, email, message)
			}
			return 1, nil
		},
	}
	svc := service.NewContactService(repo)

	id, err := svc.Submit(context.Background(), "Ann", "a@x.com", "hi")
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if id != 1 {
		t.Errorf("Submit = %d; want 1", id)
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	cases := []struct {
		name, email, message string
	}{
		{"", "a@x.com", "hi"},
		{"Ann", "", "hi"},
		{"Ann", "a@x.com", ""},
		{"", "", ""},
	}

	for _, c := range cases {
		called := false
		repo := &mockRepo{
			InsertContactFunc: func(context.Context, string, string, string) (int64, error) {
				called = true
				return 1, nil
			},
		}
		svc := service.NewContactService(repo)

		_, err := svc.Submit(context.Background(), c.name, c.email, c.message)
		if !errors.Is(err, service.ErrValidation) {
			t.Errorf("Submit(%q, %q, %q) error = %v; want ErrValidation", c.name, c.email, c.message, err)
		}
		if called {
			t.Errorf("Submit(%q, %q, %q) touched storage", c.name, c.email, c.message)
		}
	}
}

func TestSubmit_StorageError(t *testing.T) {
	dbErr := errors.New("disk full")
	repo := &mockRepo{
		InsertContactFunc: func(context.Context, string, string, string) (int64, error) {
			return 0, dbErr
		},
	}
	svc := service.NewContactService(repo)

	_, err := svc.Submit(context.Background(), "Ann", "a@x.com", "hi")
	if !errors.Is(err, service.ErrStorage) {
		t.Errorf("Submit error = %v; want ErrStorage", err)
	}
	if !errors.Is(err, dbErr) {
		t.Errorf("Submit error = %v; want it to wrap %v", err, dbErr)
	}
}

func TestList_Success(t *testing.T) {
	want := []models.Contact{{ID: 2, Name: "Bob"}, {ID: 1, Name: "Ann"}}
	repo := &mockRepo{
		ListContactsFunc: func(ctx context.Context, limit int) ([]models.Contact, error) {
			if limit != 2 {
				t.Errorf("ListContacts received limit = %d; want 2", limit)
			}
			return want, nil
		},
	}
	svc := service.NewContactService(repo)

	got, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List = %+v; want %+v", got, want)
	}
}

func TestList_NegativeLimit(t *testing.T) {
	svc := service.NewContactService(&mockRepo{})
	if _, err := svc.List(context.Background(), -1); !errors.Is(err, service.ErrValidation) {
		t.Errorf("List(-1) error = %v; want ErrValidation", err)
	}
}

func TestList_StorageError(t *testing.T) {
	repo := &mockRepo{
		ListContactsFunc: func(context.Context, int) ([]models.Contact, error) {
			return nil, errors.New("read failed")
		},
	}
	svc := service.NewContactService(repo)

	if _, err := svc.List(context.Background(), 100); !errors.Is(err, service.ErrStorage) {
		t.Errorf("List error = %v; want ErrStorage", err)
	}
}
