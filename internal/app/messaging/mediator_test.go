package messaging_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

type greet struct {
	messaging.Command
	Name string
}

type count struct {
	messaging.Query
}

type unregistered struct {
	messaging.Query
}

var errBlankName = result.Problem("Greet.BlankName", "name is blank")

func greetHandler() messaging.HandlerFunc[greet, result.Of[string]] {
	return func(_ context.Context, req greet) (result.Of[string], error) {
		if req.Name == "" {
			return result.FailureOf[string](errBlankName), nil
		}
		if req.Name == "boom" {
			return result.Of[string]{}, errors.New("boom")
		}
		return result.SuccessOf("hello " + req.Name), nil
	}
}

func recorder(trace *[]string, label string) messaging.Behavior {
	return func(ctx context.Context, env messaging.Envelope, next messaging.Next) (result.Outcome, error) {
		*trace = append(*trace, label+">"+env.Kind.String())
		out, err := next(ctx)
		*trace = append(*trace, "<"+label)
		return out, err
	}
}

func TestSend_DispatchesThroughBehaviors(t *testing.T) {
	t.Parallel()

	var trace []string
	m := messaging.New(recorder(&trace, "outer"), recorder(&trace, "inner"))
	messaging.Register(m, greetHandler())

	got, err := messaging.Send[greet, result.Of[string]](context.Background(), m, greet{Name: "ada"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got.Value() != "hello ada" {
		t.Errorf("Send() = %q, want %q", got.Value(), "hello ada")
	}

	want := "outer>command,inner>command,<inner,<outer"
	if strings.Join(trace, ",") != want {
		t.Errorf("behavior order = %v, want %s", trace, want)
	}
}

func TestSend_FailureResult(t *testing.T) {
	t.Parallel()

	m := messaging.New()
	messaging.Register(m, greetHandler())

	got, err := messaging.Send[greet, result.Of[string]](context.Background(), m, greet{})
	if err != nil {
		t.Fatalf("Send() error = %v, want nil", err)
	}
	if got.IsSuccess() || !got.Err().Equal(errBlankName) {
		t.Errorf("Send() = %v, want failure %v", got.Err(), errBlankName)
	}
}

func TestSend_Fault(t *testing.T) {
	t.Parallel()

	m := messaging.New()
	messaging.Register(m, greetHandler())

	_, err := messaging.Send[greet, result.Of[string]](context.Background(), m, greet{Name: "boom"})
	if err == nil || err.Error() != "boom" {
		t.Errorf("Send() error = %v, want boom", err)
	}
}

func TestSend_HandlerNotFound(t *testing.T) {
	t.Parallel()

	m := messaging.New()
	_, err := messaging.Send[unregistered, result.Result](context.Background(), m, unregistered{})
	if !errors.Is(err, messaging.ErrHandlerNotFound) {
		t.Errorf("Send() error = %v, want ErrHandlerNotFound", err)
	}
}

func TestSend_ShortCircuitKeepsResponseShape(t *testing.T) {
	t.Parallel()

	denied := result.Problem("Access.Denied", "denied")
	block := func(_ context.Context, env messaging.Envelope, _ messaging.Next) (result.Outcome, error) {
		return env.Fail(denied), nil
	}

	m := messaging.New(block)
	messaging.Register(m, greetHandler())
	messaging.Register(m, messaging.HandlerFunc[count, result.Result](
		func(context.Context, count) (result.Result, error) { return result.Success(), nil },
	))

	typed, err := messaging.Send[greet, result.Of[string]](context.Background(), m, greet{Name: "ada"})
	if err != nil || !typed.Err().Equal(denied) {
		t.Errorf("Send(greet) = (%v, %v), want failure %v", typed.Err(), err, denied)
	}

	plain, err := messaging.Send[count, result.Result](context.Background(), m, count{})
	if err != nil || !plain.Err().Equal(denied) {
		t.Errorf("Send(count) = (%v, %v), want failure %v", plain.Err(), err, denied)
	}
}

func TestSend_ForeignReply(t *testing.T) {
	t.Parallel()

	wrong := func(context.Context, messaging.Envelope, messaging.Next) (result.Outcome, error) {
		return result.Success(), nil
	}
	m := messaging.New(wrong)
	messaging.Register(m, greetHandler())

	_, err := messaging.Send[greet, result.Of[string]](context.Background(), m, greet{Name: "ada"})
	if !errors.Is(err, messaging.ErrUnexpectedReply) {
		t.Errorf("Send() error = %v, want ErrUnexpectedReply", err)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	m := messaging.New()
	messaging.Register(m, greetHandler())
	if !messaging.Registered[greet](m) {
		t.Fatal("Registered[greet]() = false after Register")
	}
	if messaging.Registered[count](m) {
		t.Error("Registered[count]() = true, want false")
	}
	assert.Panics(t, func() { messaging.Register(m, greetHandler()) })
}

func TestEnvelope_Metadata(t *testing.T) {
	t.Parallel()

	var seen messaging.Envelope
	spy := func(ctx context.Context, env messaging.Envelope, next messaging.Next) (result.Outcome, error) {
		seen = env
		return next(ctx)
	}
	m := messaging.New(spy)
	messaging.Register(m, messaging.HandlerFunc[count, result.Result](
		func(context.Context, count) (result.Result, error) { return result.Success(), nil },
	))

	if _, err := messaging.Send[count, result.Result](context.Background(), m, count{}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if seen.Name != "messaging_test.count" {
		t.Errorf("Envelope.Name = %q, want messaging_test.count", seen.Name)
	}
	if seen.Kind != messaging.KindQuery {
		t.Errorf("Envelope.Kind = %v, want query", seen.Kind)
	}
	if _, ok := seen.Request.(count); !ok {
		t.Errorf("Envelope.Request = %T, want count", seen.Request)
	}
}

func TestApplicationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	appErr := messaging.NewApplicationError("projects.CreateProject", cause)
	if !errors.Is(appErr, cause) {
		t.Error("errors.Is(appErr, cause) = false")
	}
	if appErr.Err != nil {
		t.Errorf("Err = %v, want nil for plain causes", appErr.Err)
	}
	if !strings.Contains(appErr.Error(), "projects.CreateProject") {
		t.Errorf("Error() = %q, want request name", appErr.Error())
	}

	domainErr := result.Conflict("Project.NameTaken", "taken")
	withDomain := messaging.NewApplicationError("x", domainErr)
	if withDomain.Err == nil || !withDomain.Err.Equal(domainErr) {
		t.Errorf("Err = %v, want %v", withDomain.Err, domainErr)
	}

	panicErr := &messaging.PanicError{Value: cause}
	if !errors.Is(panicErr, cause) {
		t.Error("PanicError should unwrap error values")
	}
	if (&messaging.PanicError{Value: "text"}).Unwrap() != nil {
		t.Error("PanicError.Unwrap() should be nil for non-error values")
	}
}
