package models

// Integration is an external tool connection (Slack, Jira, GitHub, ...)
// with its free-form per-tool configuration.
type Integration struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Status      string         `json:"status"`
	IsEnabled   bool           `json:"isEnabled"`
	LastSync    string         `json:"lastSync,omitempty"`
	Features    []string       `json:"features"`
	Config      map[string]any `json:"config"`
	WebhookURL  string         `json:"webhookUrl,omitempty"`
}

// Clone returns a deep copy of the integration.
func (i Integration) Clone() Integration {
	out := i
	out.Features = cloneStrings(i.Features)
	out.Config = cloneAnyMap(i.Config)
	return out
}

// IntegrationPatch is a partial update. Nil fields are left untouched.
// A non-nil Config replaces the whole config map.
type IntegrationPatch struct {
	Status     *string        `json:"status"`
	IsEnabled  *bool          `json:"isEnabled"`
	Config     map[string]any `json:"config"`
	WebhookURL *string        `json:"webhookUrl"`
}

// Apply writes the non-nil patch fields onto the integration.
func (p IntegrationPatch) Apply(i *Integration) {
	if p.Status != nil {
		i.Status = *p.Status
	}
	if p.IsEnabled != nil {
		i.IsEnabled = *p.IsEnabled
	}
	if p.Config != nil {
		i.Config = cloneAnyMap(p.Config)
	}
	if p.WebhookURL != nil {
		i.WebhookURL = *p.WebhookURL
	}
}

// IntegrationLog is one sync or webhook event recorded for an integration.
type IntegrationLog struct {
	ID            string         `json:"id"`
	IntegrationID string         `json:"integrationId"`
	Type          string         `json:"type"`
	Message       string         `json:"message"`
	Timestamp     string         `json:"timestamp"`
	Status        string         `json:"status"`
	Details       map[string]any `json:"details,omitempty"`
}

// Clone returns a deep copy of the log entry.
func (l IntegrationLog) Clone() IntegrationLog {
	out := l
	out.Details = cloneAnyMap(l.Details)
	return out
}
