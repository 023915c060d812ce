package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/club-admin/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{"invalid input", fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"not found", fmt.Errorf("%w: match=x", usecase.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"duplicate", fmt.Errorf("%w: player exists", usecase.ErrDuplicate), http.StatusConflict, "ALREADY_EXISTS"},
		{"dependency", fmt.Errorf("%w: db down", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tc.err)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, rec.Code)
			}

			var body map[string]any
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			errorObj, ok := body["error"].(map[string]any)
			if !ok {
				t.Fatalf("expected error object in response")
			}
			if got, _ := errorObj["status"].(string); got != tc.wantStatus {
				t.Fatalf("expected error status %s, got %v", tc.wantStatus, errorObj["status"])
			}
		})
	}
}

func TestWriteError_PartialPropagation(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, &usecase.PartialPropagationError{
		MatchID: "match-1",
		Applied: 21,
		Failed: []usecase.FailedRatingUpdate{
			{PlayerID: "hc-gk-01", Side: "home", Err: errors.New("storage unavailable")},
		},
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "PARTIAL_FAILURE" {
		t.Fatalf("expected error status PARTIAL_FAILURE, got %v", errorObj["status"])
	}

	items, ok := errorObj["errors"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one error item, got %v", errorObj["errors"])
	}
	item := items[0].(map[string]any)
	if got, _ := item["reason"].(string); got != "partialPropagation" {
		t.Fatalf("expected reason partialPropagation, got %v", item["reason"])
	}
}
