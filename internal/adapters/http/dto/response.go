package dto

import (
	"github.com/jsamuelsen11/go-service-common/internal/domain/project"
)

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []project.Snapshot `json:"projects"`
	Count    int                `json:"count"`
}

// ToProjectListResponse wraps project snapshots in a list envelope. A nil
// slice is reported as an empty list.
func ToProjectListResponse(projects []project.Snapshot) ProjectListResponse {
	if projects == nil {
		projects = []project.Snapshot{}
	}
	return ProjectListResponse{
		Projects: projects,
		Count:    len(projects),
	}
}
