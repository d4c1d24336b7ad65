package store

import (
	"slices"

	"github.com/teamflow/pms/pkg/models"
)

// Projects returns a copy of all projects.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, 0, len(s.data.Projects))
	for _, p := range s.data.Projects {
		out = append(out, p.Clone())
	}
	return out
}

// Project returns the project with the given id.
func (s *Store) Project(id string) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.Projects {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return models.Project{}, ErrNotFound
}

// VisibleProjects filters the project list down to what the user may
// see. Admins see everything, managers see projects they run or are
// assigned to, everyone else sees projects they are a member of. Pure
// filter, no store mutation.
func VisibleProjects(projects []models.Project, user models.User) []models.Project {
	if user.Role == models.RoleSystemAdmin {
		return projects
	}
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if projectVisible(p, user) {
			out = append(out, p)
		}
	}
	return out
}

func projectVisible(p models.Project, user models.User) bool {
	if user.Role == models.RoleProjectManager {
		return p.ManagerID == user.ID || slices.Contains(user.Projects, p.ID)
	}
	return slices.Contains(p.TeamMembers, user.ID) || slices.Contains(user.Projects, p.ID)
}
