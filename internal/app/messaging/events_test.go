package messaging_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/domain"
)

type itemAdded struct {
	domain.BaseEvent
	Item string
}

func (itemAdded) EventName() string { return "cart.item_added" }

type cartEmptied struct {
	domain.BaseEvent
}

func (cartEmptied) EventName() string { return "cart.emptied" }

type pointerEvent struct {
	domain.BaseEvent
	Name string
}

func (e *pointerEvent) EventName() string { return "pointer." + e.Name }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	var got []string
	p := messaging.NewPublisher(discardLogger())
	messaging.Subscribe(p, messaging.EventHandlerFunc[itemAdded](func(_ context.Context, e itemAdded) error {
		got = append(got, "added:"+e.Item)
		return nil
	}))
	messaging.SubscribeAll(p, messaging.EventHandlerFunc[domain.Event](func(_ context.Context, e domain.Event) error {
		got = append(got, "all:"+e.EventName())
		return nil
	}))

	err := p.Publish(context.Background(),
		itemAdded{BaseEvent: domain.NewBaseEvent(), Item: "a"},
		cartEmptied{BaseEvent: domain.NewBaseEvent()},
		itemAdded{BaseEvent: domain.NewBaseEvent(), Item: "b"},
	)
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	want := "added:a,all:cart.item_added,all:cart.emptied,added:b,all:cart.item_added"
	if strings.Join(got, ",") != want {
		t.Errorf("dispatch order = %v, want %s", got, want)
	}
}

func TestPublisher_ContinuesPastFailures(t *testing.T) {
	t.Parallel()

	errFirst := errors.New("first failed")
	calls := 0
	p := messaging.NewPublisher(discardLogger())
	messaging.Subscribe(p, messaging.EventHandlerFunc[itemAdded](func(context.Context, itemAdded) error {
		calls++
		return errFirst
	}))
	messaging.Subscribe(p, messaging.EventHandlerFunc[itemAdded](func(context.Context, itemAdded) error {
		calls++
		return nil
	}))

	err := p.Publish(context.Background(),
		itemAdded{BaseEvent: domain.NewBaseEvent()},
		itemAdded{BaseEvent: domain.NewBaseEvent()},
	)
	if !errors.Is(err, errFirst) {
		t.Errorf("Publish() error = %v, want errFirst", err)
	}
	if calls != 4 {
		t.Errorf("handler calls = %d, want 4", calls)
	}
}

func TestPublisher_NoSubscribers(t *testing.T) {
	t.Parallel()

	p := messaging.NewPublisher(nil)
	if err := p.Publish(context.Background(), cartEmptied{BaseEvent: domain.NewBaseEvent()}); err != nil {
		t.Errorf("Publish() error = %v, want nil", err)
	}
	if err := p.Publish(context.Background()); err != nil {
		t.Errorf("Publish() with no events error = %v, want nil", err)
	}
}

func TestSubscribe_RejectsTypesWithoutZeroName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		subscribe func(p *messaging.Publisher)
		wantInMsg string
	}{
		{
			name: "pointer event",
			subscribe: func(p *messaging.Publisher) {
				messaging.Subscribe[*pointerEvent](p, messaging.EventHandlerFunc[*pointerEvent](func(context.Context, *pointerEvent) error { return nil }))
			},
			wantInMsg: "*messaging_test.pointerEvent",
		},
		{
			name: "interface event",
			subscribe: func(p *messaging.Publisher) {
				messaging.Subscribe[domain.Event](p, messaging.EventHandlerFunc[domain.Event](func(context.Context, domain.Event) error { return nil }))
			},
			wantInMsg: "domain.Event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				r := recover()
				msg, ok := r.(string)
				if !ok {
					t.Fatalf("recover() = %v, want a string panic", r)
				}
				if !strings.Contains(msg, tt.wantInMsg) {
					t.Errorf("panic = %q, want it to name %s", msg, tt.wantInMsg)
				}
			}()
			tt.subscribe(messaging.NewPublisher(nil))
		})
	}
}
