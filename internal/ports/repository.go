package ports

import (
	"context"
	"errors"

	"github.com/jsamuelsen11/go-service-common/internal/domain/project"
)

// ErrNotFound is returned by repositories when the requested aggregate does
// not exist.
var ErrNotFound = errors.New("aggregate not found")

// ErrConflict is returned by Save when the stored aggregate has moved past
// the version the caller loaded.
var ErrConflict = errors.New("aggregate version conflict")

// ErrNameTaken is returned by Save when another project already uses the
// name.
var ErrNameTaken = errors.New("name already taken")

// ProjectRepository persists project aggregates. Implementations must hand
// out independent copies: mutating a returned project has no effect until it
// is passed to Save.
type ProjectRepository interface {
	// Get returns the project with the given id, or ErrNotFound.
	Get(ctx context.Context, id project.ID) (*project.Project, error)

	// List returns every project ordered by creation time, oldest first.
	List(ctx context.Context) ([]*project.Project, error)

	// Save inserts or replaces the project and advances its version. The
	// version check and the name uniqueness check are atomic with the write:
	// a stale version fails with ErrConflict, a name used by another project
	// with ErrNameTaken.
	Save(ctx context.Context, p *project.Project) error

	// Delete removes the project, or returns ErrNotFound.
	Delete(ctx context.Context, id project.ID) error

	// NameTaken reports whether a project other than except already uses
	// name, compared case-insensitively. Pass a zero id to check all.
	NameTaken(ctx context.Context, name string, except project.ID) (bool, error)
}
