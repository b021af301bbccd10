package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/car-dealership/internal/model"
)

type stubNotifier struct {
	calls int
	err   error
}

func (s *stubNotifier) Notify(context.Context, model.Inquiry) error {
	s.calls++
	return s.err
}

func TestMultiDeliversToAllSinks(t *testing.T) {
	a, b := &stubNotifier{}, &stubNotifier{}
	m := Multi{a, b}

	if err := m.Notify(context.Background(), model.Inquiry{Name: "Alice"}); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("expected one delivery per sink, got %d and %d", a.calls, b.calls)
	}
}

func TestMultiFailingSinkDoesNotStopOthers(t *testing.T) {
	failing := &stubNotifier{err: errors.New("relay down")}
	healthy := &stubNotifier{}
	m := Multi{failing, healthy}

	err := m.Notify(context.Background(), model.Inquiry{Name: "Bob"})
	if err == nil {
		t.Fatal("expected joined error")
	}
	if !errors.Is(err, failing.err) {
		t.Errorf("joined error should contain the sink error, got %v", err)
	}
	if healthy.calls != 1 {
		t.Error("remaining sinks must still be attempted")
	}
}

func TestEmptyMultiIsNoOp(t *testing.T) {
	var m Multi
	if err := m.Notify(context.Background(), model.Inquiry{}); err != nil {
		t.Errorf("empty Multi should succeed, got %v", err)
	}
}
