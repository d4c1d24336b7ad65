package store

import "github.com/teamflow/pms/pkg/models"

// Notifications returns the notifications of one project. Missing
// entries yield an empty list.
func (s *Store) Notifications(projectID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, 0)
	for _, n := range s.data.Notifications[projectID] {
		out = append(out, n.Clone())
	}
	return out
}

// MarkNotificationRead flips the read flag on one notification.
func (s *Store) MarkNotificationRead(projectID, notificationID string) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.data.Notifications[projectID]
	for i := range list {
		if list[i].ID == notificationID {
			list[i].Read = true
			return list[i].Clone(), nil
		}
	}
	return models.Notification{}, ErrNotFound
}
