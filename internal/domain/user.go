package domain

// User is an authenticated visitor account.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ContactMessage is the support form payload.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Settings are the persisted client preferences.
type Settings struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
}

// DefaultSettings returns the preferences used before anything is persisted.
func DefaultSettings() Settings {
	return Settings{Theme: "light", Notifications: true, Language: "en"}
}
