package dispatch

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestCauseString_PreservesWrappedChain(t *testing.T) {
	root := errors.New("no capacity on host")
	wrapped := pkgerrors.Wrap(root, "GetTaskExecutorFor failed")
	pe := newPipelineError(AssignmentUnavailable, wrapped)

	want := pe.Error()
	if got := causeString(pe); got != want {
		t.Fatalf("expected full chain %q, got %q", want, got)
	}
	if got := causeString(pe); got != "assignment unavailable: GetTaskExecutorFor failed: no capacity on host" {
		t.Fatalf("unexpected causeString output: %q", got)
	}
}

func TestCauseString_Empty(t *testing.T) {
	if causeString(nil) != "" {
		t.Fatal("expected empty string for nil error")
	}
}

func TestPipelineError_KindAndUnwrap(t *testing.T) {
	root := errors.New("boom")
	pe := newPipelineError(SubmissionRejected, root)
	if pe.Kind() != SubmissionRejected {
		t.Fatalf("expected kind SubmissionRejected, got %v", pe.Kind())
	}
	if pe.Unwrap() != root {
		t.Fatal("expected Unwrap to expose the root cause")
	}
}
