package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/atinyakov/nexus/internal/models"
	"github.com/atinyakov/nexus/internal/service"
)

// fakeContactService records calls and returns preconfigured results.
type fakeContactService struct {
	submitCalled bool
	gotName      string
	gotEmail     string
	gotMessage   string
	submitID     int64
	submitErr    error

	gotLimit int
	listData []models.Contact
	listErr  error
}

func (f *fakeContactService) Submit(ctx context.Context, name, email, message string) (int64, error) {
	f.submitCalled = true
	f.gotName, f.gotEmail, f.gotMessage = name, email, message
	return f.submitID, f.submitErr
}

func (f *fakeContactService) List(ctx context.Context, limit int) ([]models.Contact, error) {
	f.gotLimit = limit
	return f.listData, f.listErr
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	return payload
}

func TestContactHandler_Submit(t *testing.T) {
	tests := []struct {
		name         string
		contentType  string
		body         string
		service      *fakeContactService
		expectedCode int
		expectedJSON map[string]any
	}{
		{
			name:         "json success",
			contentType:  "application/json",
			body:         `{"name":"Ann","email":"a@x.com","message":"hi"}`,
			service:      &fakeContactService{submitID: 1},
			expectedCode: http.StatusOK,
			expectedJSON: map[string]any{"success": true, "id": float64(1)},
		},
		{
			name:         "form success",
			contentType:  "application/x-www-form-urlencoded",
			body:         "name=Ann&email=a%40x.com&message=hi",
			service:      &fakeContactService{submitID: 9},
			expectedCode: http.StatusOK,
			expectedJSON: map[string]any{"success": true, "id": float64(9)},
		},
		{
			name:         "invalid JSON",
			contentType:  "application/json",
			body:         `not a json`,
			service:      &fakeContactService{},
			expectedCode: http.StatusBadRequest,
			expectedJSON: map[string]any{"success": false, "error": "Invalid request body."},
		},
		{
			name:         "validation error",
			contentType:  "application/json",
			body:         `{"name":"Ann"}`,
			service:      &fakeContactService{submitErr: fmt.Errorf("%w: missing", service.ErrValidation)},
			expectedCode: http.StatusBadRequest,
			expectedJSON: map[string]any{"success": false, "error": "Missing name, email, or message."},
		},
		{
			name:         "storage error",
			contentType:  "application/json",
			body:         `{"name":"Ann","email":"a@x.com","message":"hi"}`,
			service:      &fakeContactService{submitErr: fmt.Errorf("%w: locked", service.ErrStorage)},
			expectedCode: http.StatusInternalServerError,
			expectedJSON: map[string]any{"success": false, "error": "Database save failed."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			h := &ContactHandler{ContactService: tt.service}
			h.Submit(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			payload := decodeBody(t, rec)
			for k, v := range tt.expectedJSON {
				if payload[k] != v {
					t.Errorf("expected %s=%v, got %v", k, v, payload[k])
				}
			}
		})
	}
}

func TestContactHandler_SubmitPassesFields(t *testing.T) {
	fake := &fakeContactService{submitID: 1}
	h := &ContactHandler{ContactService: fake}

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		bytes.NewBufferString(`{"name":"Ann","email":"a@x.com","message":"hi","extra":1}`))
	h.Submit(httptest.NewRecorder(), req)

	if !fake.submitCalled {
		t.Fatal("expected ContactService.Submit to be called")
	}
	if fake.gotName != "Ann" || fake.gotEmail != "a@x.com" || fake.gotMessage != "hi" {
		t.Errorf("Submit received (%q, %q, %q)", fake.gotName, fake.gotEmail, fake.gotMessage)
	}
}

func TestContactHandler_SubmitNonStringIsMissing(t *testing.T) {
	fake := &fakeContactService{}
	h := &ContactHandler{ContactService: fake}

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		bytes.NewBufferString(`{"name":42,"email":"a@x.com","message":"hi"}`))
	h.Submit(httptest.NewRecorder(), req)

	if fake.gotName != "" {
		t.Errorf("expected numeric name to read as empty, got %q", fake.gotName)
	}
}

func TestContactHandler_List(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name         string
		query        string
		service      *fakeContactService
		expectedCode int
		expectedLim  int
	}{
		{"default limit", "", &fakeContactService{listData: []models.Contact{{ID: 1, Name: "Ann", CreatedAt: created}}}, http.StatusOK, 100},
		{"explicit limit", "?limit=5", &fakeContactService{}, http.StatusOK, 5},
		{"huge limit", "?limit=1000000", &fakeContactService{}, http.StatusOK, 1000000},
		{"zero limit", "?limit=0", &fakeContactService{}, http.StatusOK, 0},
		{"not a number", "?limit=ten", &fakeContactService{gotLimit: -7}, http.StatusBadRequest, -7},
		{"negative", "?limit=-1", &fakeContactService{gotLimit: -7}, http.StatusBadRequest, -7},
		{"storage error", "", &fakeContactService{listErr: errors.New("read failed")}, http.StatusInternalServerError, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/contacts"+tt.query, nil)

			h := &ContactHandler{ContactService: tt.service}
			h.List(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.service.gotLimit != tt.expectedLim {
				t.Errorf("limit = %d; want %d", tt.service.gotLimit, tt.expectedLim)
			}
			if rec.Code != http.StatusOK {
				return
			}
			if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
				t.Errorf("Cache-Control = %q; want no-store", cc)
			}

			var resp struct {
				Success bool             `json:"success"`
				Data    []models.Contact `json:"data"`
			}
			raw := rec.Body.String()
			if err := json.Unmarshal([]byte(raw), &resp); err != nil {
				t.Fatalf("failed to decode response JSON: %v", err)
			}
			if !resp.Success {
				t.Error("expected success=true")
			}
			if resp.Data == nil || strings.Contains(raw, `"data":null`) {
				t.Errorf("data must be an array, got %s", raw)
			}
			if len(tt.service.listData) > 0 && !resp.Data[0].CreatedAt.Equal(created) {
				t.Errorf("created_at = %v; want %v", resp.Data[0].CreatedAt, created)
			}
		})
	}
}
