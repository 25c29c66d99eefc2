package domain

// Settings is the persisted settings blob. Only TrackingEnabled and
// ConfidenceThreshold influence behavior; the rest round-trip unchanged.
type Settings struct {
	TrackingEnabled      bool   `json:"trackingEnabled"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	AudioAlertsEnabled   bool   `json:"audioAlertsEnabled"`
	VisualSensitivity    int    `json:"visualSensitivity"`
	AudioSensitivity     int    `json:"audioSensitivity"`
	ProcessingPower      int    `json:"processingPower"`
	ConfidenceThreshold  int    `json:"confidenceThreshold"`
	NotificationLevel    string `json:"notificationLevel"`
	ActiveTab            string `json:"activeTab"`
}

// DefaultSettings returns the first-run values.
func DefaultSettings() Settings {
	return Settings{
		TrackingEnabled:      true,
		NotificationsEnabled: true,
		AudioAlertsEnabled:   true,
		VisualSensitivity:    75,
		AudioSensitivity:     60,
		ProcessingPower:      50,
		ConfidenceThreshold:  65,
		NotificationLevel:    "medium",
		ActiveTab:            "dashboard",
	}
}

// ShouldNotify reports whether a prediction with the given confidence
// deserves a user-facing alert.
func (s Settings) ShouldNotify(confidence int) bool {
	return s.NotificationsEnabled && confidence > s.ConfidenceThreshold
}
