// Package memory provides in-process implementations of the repository
// ports. State lives in maps guarded by a sync.RWMutex and is lost on
// restart.
package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/go-service-common/internal/domain/project"
	"github.com/jsamuelsen11/go-service-common/internal/ports"
)

// ProjectStore is an in-memory ports.ProjectRepository. It stores snapshots
// and rehydrates a fresh aggregate on every read, so callers never share
// state with the store or with each other.
type ProjectStore struct {
	mu       sync.RWMutex
	projects map[project.ID]project.Snapshot
}

var _ ports.ProjectRepository = (*ProjectStore)(nil)

// NewProjectStore returns an empty store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{projects: make(map[project.ID]project.Snapshot)}
}

// Get returns a copy of the stored project.
func (s *ProjectStore) Get(ctx context.Context, id project.ID) (*project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	snap, ok := s.projects[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, ports.ErrNotFound)
	}
	return project.FromSnapshot(snap), nil
}

// List returns copies of every project, oldest first. Ties on creation time
// are broken by id so the order is stable.
func (s *ProjectStore) List(ctx context.Context) ([]*project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	snaps := make([]project.Snapshot, 0, len(s.projects))
	for _, snap := range s.projects {
		snaps = append(snaps, snap)
	}
	s.mu.RUnlock()

	slices.SortFunc(snaps, func(a, b project.Snapshot) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	out := make([]*project.Project, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, project.FromSnapshot(snap))
	}
	return out, nil
}

// Save stores a snapshot of p under the write lock. The stored version must
// equal p.Version(); a missing project counts as version zero. On success
// both advance by one.
func (s *ProjectStore) Save(ctx context.Context, p *project.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil {
		return errors.New("saving project: nil project")
	}

	snap := p.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	if current := s.projects[snap.ID]; current.Version != snap.Version {
		return fmt.Errorf("project %s at version %d: %w", snap.ID, snap.Version, ports.ErrConflict)
	}
	for id, other := range s.projects {
		if id != snap.ID && strings.EqualFold(other.Name, snap.Name) {
			return fmt.Errorf("project name %q: %w", snap.Name, ports.ErrNameTaken)
		}
	}

	snap.Version++
	s.projects[snap.ID] = snap
	p.SetVersion(snap.Version)
	return nil
}

// Delete removes the project.
func (s *ProjectStore) Delete(ctx context.Context, id project.ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return fmt.Errorf("project %s: %w", id, ports.ErrNotFound)
	}
	delete(s.projects, id)
	return nil
}

// NameTaken reports whether another project already uses name, ignoring
// case.
func (s *ProjectStore) NameTaken(ctx context.Context, name string, except project.ID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, snap := range s.projects {
		if id == except {
			continue
		}
		if strings.EqualFold(snap.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of stored projects.
func (s *ProjectStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

// Name identifies the store in health reports.
func (s *ProjectStore) Name() string { return "project-store" }

// HealthCheck always succeeds unless ctx is done; the store has no external
// dependency that can fail.
func (s *ProjectStore) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
