// Package domain holds the building blocks shared by every domain module:
// entities and aggregate roots, strongly typed identifiers, value objects,
// domain events, smart enums and guard clauses.
//
// Entity-specific types live in sub-packages (domain/project, domain/todo).
// Recoverable business errors are expressed with the result package; the
// sentinel errors here signal programming mistakes or malformed input at the
// edges of the domain.
package domain
