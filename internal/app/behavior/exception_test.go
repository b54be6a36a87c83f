package behavior_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jsamuelsen11/go-service-common/internal/app/behavior"
	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
	"github.com/jsamuelsen11/go-service-common/internal/platform/logging"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestExceptionHandling_WrapsFault(t *testing.T) {
	t.Parallel()

	errDB := errors.New("db down")
	logger, logs := newTestLogger()

	m := messaging.New(behavior.ExceptionHandling(logger))
	messaging.Register[createWidget, result.Result](m, &spyHandler{reply: func(context.Context) (result.Result, error) {
		return result.Result{}, errDB
	}})

	_, err := messaging.Send[createWidget, result.Result](context.Background(), m, createWidget{})

	var appErr *messaging.ApplicationError
	if !errors.As(err, &appErr) {
		t.Fatalf("Send() error = %v, want *ApplicationError", err)
	}
	if appErr.RequestName != "behavior_test.createWidget" {
		t.Errorf("RequestName = %q, want behavior_test.createWidget", appErr.RequestName)
	}
	if appErr.Err != nil {
		t.Errorf("Err = %v, want nil for a non-domain cause", appErr.Err)
	}
	if !errors.Is(err, errDB) {
		t.Error("errors.Is(err, errDB) = false, want true")
	}

	entry, ok := findEntry(logs.entries(t), "unhandled error while handling request")
	if !ok {
		t.Fatal("fault was not logged")
	}
	if entry["level"] != "ERROR" || entry["request"] != "behavior_test.createWidget" {
		t.Errorf("log entry = %v, want ERROR for behavior_test.createWidget", entry)
	}
}

func TestExceptionHandling_CarriesDomainError(t *testing.T) {
	t.Parallel()

	notFound := result.NotFound("Widget.NotFound", "missing")
	m := messaging.New(behavior.ExceptionHandling(discardLogger()))
	messaging.Register[createWidget, result.Result](m, &spyHandler{reply: func(context.Context) (result.Result, error) {
		return result.Result{}, notFound
	}})

	_, err := messaging.Send[createWidget, result.Result](context.Background(), m, createWidget{})

	var appErr *messaging.ApplicationError
	if !errors.As(err, &appErr) || appErr.Err == nil {
		t.Fatalf("Send() error = %v, want *ApplicationError with a domain error", err)
	}
	if !appErr.Err.Equal(notFound) {
		t.Errorf("Err = %v, want %v", appErr.Err, notFound)
	}
}

func TestExceptionHandling_RecoversPanic(t *testing.T) {
	t.Parallel()

	m := messaging.New(behavior.ExceptionHandling(discardLogger()))
	messaging.Register[createWidget, result.Result](m, &spyHandler{reply: func(context.Context) (result.Result, error) {
		panic("nil map write")
	}})

	_, err := messaging.Send[createWidget, result.Result](context.Background(), m, createWidget{})

	var panicErr *messaging.PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Send() error = %v, want *PanicError in chain", err)
	}
	if panicErr.Value != "nil map write" {
		t.Errorf("Value = %v, want nil map write", panicErr.Value)
	}
	if len(panicErr.Stack) == 0 {
		t.Error("Stack is empty")
	}
}

func TestExceptionHandling_PassesBusinessFailures(t *testing.T) {
	t.Parallel()

	taken := result.Conflict("Widget.Taken", "taken")
	m := messaging.New(behavior.ExceptionHandling(discardLogger()))
	messaging.Register[createWidget, result.Result](m, &spyHandler{reply: func(context.Context) (result.Result, error) {
		return result.Failure(taken), nil
	}})

	got, err := messaging.Send[createWidget, result.Result](context.Background(), m, createWidget{})
	if err != nil {
		t.Fatalf("Send() error = %v, want nil", err)
	}
	if !got.Err().Equal(taken) {
		t.Errorf("Err() = %v, want %v", got.Err(), taken)
	}
}

func TestExceptionHandling_PrefersContextLogger(t *testing.T) {
	t.Parallel()

	scoped, logs := newTestLogger()
	m := messaging.New(behavior.ExceptionHandling(discardLogger()))
	messaging.Register[createWidget, result.Result](m, &spyHandler{reply: func(context.Context) (result.Result, error) {
		return result.Result{}, errors.New("boom")
	}})

	ctx := logging.WithLogger(context.Background(), scoped.With(slog.String("request_id", "r-1")))
	_, _ = messaging.Send[createWidget, result.Result](ctx, m, createWidget{})

	entry, ok := findEntry(logs.entries(t), "unhandled error while handling request")
	if !ok || entry["request_id"] != "r-1" {
		t.Errorf("log entry = %v, want one carrying request_id r-1", entry)
	}
}
