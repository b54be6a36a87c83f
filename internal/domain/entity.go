package domain

// Identifiable is anything with a comparable identity.
type Identifiable[ID comparable] interface {
	ID() ID
}

// Entity is embedded by domain objects defined by their identity rather than
// their attributes. Two entities are the same when their ids are equal; the id
// is also what callers should use as a map key.
type Entity[ID comparable] struct {
	id ID
}

// NewEntity returns an Entity with the given identity.
func NewEntity[ID comparable](id ID) Entity[ID] {
	return Entity[ID]{id: id}
}

// ID returns the entity's identity.
func (e Entity[ID]) ID() ID { return e.id }

// SameIdentity reports whether e and other share an id.
func (e Entity[ID]) SameIdentity(other Entity[ID]) bool {
	return e.id == other.id
}

// SameEntity reports whether a and b refer to the same entity. Nil values are
// never the same entity.
func SameEntity[ID comparable](a, b Identifiable[ID]) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}
