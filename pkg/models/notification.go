package models

// Notification is one in-app message shown to a project's members.
type Notification struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Category   string         `json:"category"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Timestamp  string         `json:"timestamp"`
	Read       bool           `json:"read"`
	Actionable bool           `json:"actionable"`
	Priority   string         `json:"priority"`
	Data       map[string]any `json:"data,omitempty"`
}

// Clone returns a deep copy of the notification.
func (n Notification) Clone() Notification {
	out := n
	out.Data = cloneAnyMap(n.Data)
	return out
}
