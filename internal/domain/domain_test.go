package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-service-common/internal/domain"
)

type orderTag struct{}

type orderID = domain.TypedID[orderTag, uuid.UUID]

type orderPlaced struct {
	domain.BaseEvent
	Seq int
}

func (orderPlaced) EventName() string { return "order.placed" }

type order struct {
	domain.AggregateRoot[orderID]
}

func newOrder() *order {
	return &order{AggregateRoot: domain.NewAggregateRoot(domain.NewUUIDID[orderTag]())}
}

func (o *order) place(seq int) {
	o.RaiseEvent(orderPlaced{BaseEvent: domain.NewBaseEvent(), Seq: seq})
}

func TestNewID_RejectsZero(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, domain.ErrZeroID, func() { domain.NewID[orderTag](uuid.Nil) })
	assert.PanicsWithValue(t, domain.ErrZeroID, func() { domain.NewID[orderTag](0) })
	assert.PanicsWithValue(t, domain.ErrZeroID, func() { domain.NewID[orderTag]("") })

	id := domain.NewID[orderTag](int64(7))
	if id.Value() != 7 || id.IsZero() {
		t.Errorf("NewID(7) = %v (zero=%v), want 7", id.Value(), id.IsZero())
	}
}

func TestParseUUIDID(t *testing.T) {
	t.Parallel()

	want := uuid.New()
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid uuid", input: want.String()},
		{name: "nil uuid", input: uuid.Nil.String(), wantErr: domain.ErrZeroID},
		{name: "garbage", input: "not-a-uuid", wantErr: errAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := domain.ParseUUIDID[orderTag](tt.input)
			switch {
			case tt.wantErr == nil:
				if err != nil {
					t.Fatalf("ParseUUIDID() error = %v, want nil", err)
				}
				if got.Value() != want {
					t.Errorf("ParseUUIDID() = %v, want %v", got, want)
				}
			case tt.wantErr == errAny:
				if err == nil {
					t.Error("ParseUUIDID() error = nil, want error")
				}
			default:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseUUIDID() error = %v, want %v", err, tt.wantErr)
				}
			}
		})
	}
}

var errAny = errors.New("any error")

func TestTypedID_Equality(t *testing.T) {
	t.Parallel()

	u := uuid.New()
	a := domain.NewID[orderTag](u)
	b := domain.NewID[orderTag](u)
	if a != b {
		t.Error("ids wrapping the same value should be ==")
	}
	if !domain.ValuesEqual(a, b) {
		t.Error("ValuesEqual(a, b) = false, want true")
	}
	if domain.HashValue(a) != domain.HashValue(b) {
		t.Error("HashValue differs for equal ids")
	}
	if a.String() != u.String() {
		t.Errorf("String() = %q, want %q", a.String(), u.String())
	}
}

func TestEntity_Identity(t *testing.T) {
	t.Parallel()

	id := domain.NewUUIDID[orderTag]()
	a := domain.NewEntity(id)
	b := domain.NewEntity(id)
	c := domain.NewEntity(domain.NewUUIDID[orderTag]())

	if !a.SameIdentity(b) {
		t.Error("entities with the same id should share identity")
	}
	if a.SameIdentity(c) {
		t.Error("entities with different ids should not share identity")
	}

	o1, o2 := newOrder(), newOrder()
	if !domain.SameEntity[orderID](o1, o1) {
		t.Error("SameEntity(o1, o1) = false, want true")
	}
	if domain.SameEntity[orderID](o1, o2) {
		t.Error("SameEntity(o1, o2) = true, want false")
	}
	if domain.SameEntity[orderID](o1, nil) {
		t.Error("SameEntity(o1, nil) = true, want false")
	}

	byID := map[orderID]*order{o1.ID(): o1}
	if byID[o1.ID()] != o1 {
		t.Error("entity id should work as map key")
	}
}

func TestAggregateRoot_PopDomainEvents(t *testing.T) {
	t.Parallel()

	o := newOrder()
	o.place(1)
	o.place(2)
	o.place(3)

	if got := o.PendingEvents(); got != 3 {
		t.Fatalf("PendingEvents() = %d, want 3", got)
	}

	first := o.PopDomainEvents()
	if len(first) != 3 {
		t.Fatalf("first PopDomainEvents() len = %d, want 3", len(first))
	}
	for i, e := range first {
		if got := e.(orderPlaced).Seq; got != i+1 {
			t.Errorf("event[%d].Seq = %d, want %d", i, got, i+1)
		}
	}

	second := o.PopDomainEvents()
	if second == nil || len(second) != 0 {
		t.Errorf("second PopDomainEvents() = %v, want empty slice", second)
	}

	o.place(4)
	if len(first) != 3 {
		t.Error("popped snapshot must not change after new events are raised")
	}
}

func TestBaseEvent(t *testing.T) {
	t.Parallel()

	local := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	e := domain.NewBaseEventAt(local)
	if e.OccurredOn().Location() != time.UTC {
		t.Errorf("OccurredOn() location = %v, want UTC", e.OccurredOn().Location())
	}
	if !e.OccurredOn().Equal(local) {
		t.Errorf("OccurredOn() = %v, want %v", e.OccurredOn(), local)
	}
	if e.ID() == uuid.Nil {
		t.Error("ID() = nil uuid, want random id")
	}

	before := time.Now().UTC()
	now := domain.NewBaseEvent()
	if now.OccurredOn().Before(before.Add(-time.Second)) {
		t.Errorf("NewBaseEvent().OccurredOn() = %v, want about now", now.OccurredOn())
	}
}

func TestGuardLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		max     int
		wantErr bool
	}{
		{name: "shorter passes", input: "abc", max: 4},
		{name: "equal to max fails", input: "abcd", max: 4, wantErr: true},
		{name: "longer fails", input: "abcde", max: 4, wantErr: true},
		{name: "counts runes not bytes", input: "äöü", max: 4},
		{name: "empty passes", input: "", max: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := domain.GuardLength(tt.input, tt.max, "name")
			if tt.wantErr {
				if !errors.Is(err, domain.ErrLengthExceeded) {
					t.Errorf("GuardLength() error = %v, want ErrLengthExceeded", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GuardLength() error = %v, want nil", err)
			}
			if got != tt.input {
				t.Errorf("GuardLength() = %q, want %q", got, tt.input)
			}
		})
	}
}
