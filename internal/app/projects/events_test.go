package projects_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-service-common/internal/app/messaging"
	"github.com/jsamuelsen11/go-service-common/internal/app/projects"
	"github.com/jsamuelsen11/go-service-common/internal/domain"
	"github.com/jsamuelsen11/go-service-common/mocks"
)

func TestSubscribe_LogsAndForwards(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	p := existing(t, "Launch")
	p.Rename("Liftoff", time.Now())
	events := p.PopDomainEvents()

	sink := mocks.NewMockEventSink(t)
	sink.EXPECT().Deliver(mock.Anything, events[0]).Return(nil).Once()

	pub := messaging.NewPublisher(logger)
	projects.Subscribe(pub, logger, sink)

	if err := pub.Publish(context.Background(), events...); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"event":"project.renamed"`) {
		t.Errorf("log = %s, want project.renamed entry", out)
	}
	if !strings.Contains(out, `"aggregate_id":"`+p.ID().String()+`"`) {
		t.Errorf("log = %s, want aggregate_id %s", out, p.ID())
	}
}

func TestForward_WrapsSinkError(t *testing.T) {
	t.Parallel()

	errDown := errors.New("connection refused")
	sink := mocks.NewMockEventSink(t)
	sink.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errDown)
	sink.EXPECT().Name().Return("webhook")

	p := existing(t, "Launch")
	p.Delete(time.Now())
	var evt domain.Event = p.PopDomainEvents()[0]

	err := projects.Forward(sink).Handle(context.Background(), evt)
	if !errors.Is(err, errDown) || !strings.Contains(err.Error(), "webhook") {
		t.Errorf("Handle() error = %v, want wrapped %v naming the sink", err, errDown)
	}
}
