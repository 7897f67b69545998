package dispatcher

import (
	"testing"

	"github.com/dshills/vimkit/internal/input"
)

func TestDispatchRoutesByNamespace(t *testing.T) {
	d := New()

	var editorCalls, cursorCalls []string
	d.Register("editor", HandlerFunc(func(a input.Action) Result {
		editorCalls = append(editorCalls, a.Name)
		return OK()
	}))
	d.Register("cursor", HandlerFunc(func(a input.Action) Result {
		cursorCalls = append(cursorCalls, a.Name)
		return OK()
	}))

	if result := d.Dispatch(input.Action{Name: "editor.delete"}); result.Failed() {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result := d.Dispatch(input.Action{Name: "cursor.left"}); result.Failed() {
		t.Fatalf("unexpected error: %v", result.Err)
	}

	if len(editorCalls) != 1 || editorCalls[0] != "editor.delete" {
		t.Errorf("expected editor handler to see editor.delete, got %v", editorCalls)
	}
	if len(cursorCalls) != 1 || cursorCalls[0] != "cursor.left" {
		t.Errorf("expected cursor handler to see cursor.left, got %v", cursorCalls)
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	d := New()

	result := d.Dispatch(input.Action{Name: "nowhere.noop"})
	if !result.Failed() {
		t.Fatal("expected error result for unhandled action")
	}
	if result.Err == nil {
		t.Fatal("expected non-nil error")
	}
}

func TestDispatchNamespaceWithoutDot(t *testing.T) {
	d := New()
	d.Register("quit", HandlerFunc(func(a input.Action) Result {
		return NoOp()
	}))

	result := d.Dispatch(input.Action{Name: "quit"})
	if result.Status != StatusNoOp {
		t.Errorf("expected no-op status, got %v", result.Status)
	}
}

func TestUnregister(t *testing.T) {
	d := New()
	d.Register("editor", HandlerFunc(func(a input.Action) Result { return OK() }))
	d.Unregister("editor")

	if result := d.Dispatch(input.Action{Name: "editor.delete"}); !result.Failed() {
		t.Error("expected error after unregister")
	}
}

func TestResultHelpers(t *testing.T) {
	if OK().Failed() || NoOp().Failed() {
		t.Error("expected OK and NoOp not to be failures")
	}
	result := Errorf("bad %s", "input")
	if !result.Failed() {
		t.Fatal("expected failure")
	}
	if result.Err.Error() != "bad input" {
		t.Errorf("expected %q, got %q", "bad input", result.Err.Error())
	}
	if StatusOK.String() != "ok" || StatusNoOp.String() != "no-op" || StatusError.String() != "error" {
		t.Error("unexpected status strings")
	}
}
