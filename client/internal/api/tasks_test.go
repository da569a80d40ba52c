package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fulozz/daily-journal/client/internal/types"
	"github.com/Fulozz/daily-journal/internal/apierr"
)

func TestListTasks_Success(t *testing.T) {
	t.Parallel()
	want := []types.Task{{ID: "t1", Title: "Buy groceries"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/tasks" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()
	got, err := ListTasks(context.Background(), srv.Client(), srv.URL)
	if err != nil || len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("ListTasks unexpected: got=%+v err=%v", got, err)
	}
}

func TestListAssignedTasks_Path(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/tasks/assigned" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":"t9","title":"x","status":"pending"}]`))
	}))
	defer srv.Close()
	got, err := ListAssignedTasks(context.Background(), srv.Client(), srv.URL)
	if err != nil || len(got) != 1 || got[0].Status != types.TaskStatusPending {
		t.Fatalf("ListAssignedTasks unexpected: got=%+v err=%v", got, err)
	}
}

// The backend sometimes reports completed=true with no completionDate; the
// decode layer repairs the invariant.
func TestListTasks_CompletionInvariantNormalized(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":"a","title":"done","completed":true},
			{"id":"b","title":"open","completed":false,"completionDate":"2026-01-01T00:00:00Z"}
		]`))
	}))
	defer srv.Close()
	got, err := ListTasks(context.Background(), srv.Client(), srv.URL)
	if err != nil || len(got) != 2 {
		t.Fatalf("ListTasks: got=%+v err=%v", got, err)
	}
	if got[0].CompletionDate == nil {
		t.Fatal("completed task missing completionDate after normalization")
	}
	if got[1].CompletionDate != nil {
		t.Fatal("incomplete task kept a completionDate")
	}
}

func TestCreateTask_EndpointMissingSynthesizesPlaceholder(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	due := time.Now().Add(72 * time.Hour)
	got, err := CreateTask(context.Background(), srv.Client(), srv.URL, types.CreateTaskRequest{
		Title: "Complete project documentation", Description: "API docs", DueDate: &due,
	})
	if err != nil {
		t.Fatalf("expected placeholder, got err=%v", err)
	}
	if got.ID == "" || !got.Local || got.Completed || got.DueDate == nil {
		t.Fatalf("placeholder malformed: %+v", got)
	}
	if time.Since(got.CreatedAt) > time.Second {
		t.Fatalf("createdAt not fresh: %v", got.CreatedAt)
	}
}

func TestToggleTask_UnwrapsTaskField(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/v1/tasks/t1/toggle" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"task":{"id":"t1","title":"x","completed":true,"completionDate":"2026-08-28T10:00:00Z"}}`))
	}))
	defer srv.Close()
	got, err := ToggleTask(context.Background(), srv.Client(), srv.URL, "t1")
	if err != nil || got == nil {
		t.Fatalf("ToggleTask: got=%+v err=%v", got, err)
	}
	if !got.Completed || got.CompletionDate == nil {
		t.Fatalf("toggle response not unwrapped: %+v", got)
	}
}

func TestUpdateTaskStatus_Validation(t *testing.T) {
	t.Parallel()
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_ = json.NewEncoder(w).Encode(types.Task{ID: "t1", Title: "x", Status: types.TaskStatusAccepted})
	}))
	defer srv.Close()

	if _, err := UpdateTaskStatus(context.Background(), srv.Client(), srv.URL, "t1", "bogus"); !apierr.IsValidation(err) {
		t.Fatalf("expected Validation for bogus status, got %v", err)
	}
	if hits != 0 {
		t.Fatal("invalid status must not reach the network")
	}

	got, err := UpdateTaskStatus(context.Background(), srv.Client(), srv.URL, "t1", types.TaskStatusAccepted)
	if err != nil || got.Status != types.TaskStatusAccepted {
		t.Fatalf("UpdateTaskStatus unexpected: got=%+v err=%v", got, err)
	}
}

func TestDeleteTask_RecordNotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"task not found"}`))
	}))
	defer srv.Close()
	err := DeleteTask(context.Background(), srv.Client(), srv.URL, "missing")
	if !apierr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if apierr.IsEndpointMissing(err) {
		t.Fatal("record-level 404 misclassified as endpoint missing")
	}
}
