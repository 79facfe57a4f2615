// internal/models/member.go
package models

// Member is the authenticated user profile as served by the backend.
// It is replaced wholesale on every profile mutation; the client never
// patches individual fields locally.
type Member struct {
	ID             int64   `json:"id"`
	Nickname       string  `json:"nickname"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Gender         string  `json:"gender"`
	BirthDate      string  `json:"birthDate"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	ActivityLevel  string  `json:"activityLevel"`
	TargetCalories float64 `json:"targetCalories"`
	PhotoURL       string  `json:"photoUrl"`
}

// SignupRequest is the JSON "data" part of the multipart signup call.
type SignupRequest struct {
	Nickname       string  `json:"nickname"`
	Password       string  `json:"password"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Gender         string  `json:"gender"`
	BirthDate      string  `json:"birthDate"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	ActivityLevel  string  `json:"activityLevel"`
	TargetCalories float64 `json:"targetCalories"`
}

// ProfileUpdate carries editable profile fields for PUT /me and the
// multipart profile update. Zero values are sent as-is; the backend is
// authoritative about which fields it accepts.
type ProfileUpdate struct {
	Nickname       string  `json:"nickname,omitempty"`
	Email          string  `json:"email,omitempty"`
	Name           string  `json:"name,omitempty"`
	Gender         string  `json:"gender,omitempty"`
	BirthDate      string  `json:"birthDate,omitempty"`
	Height         float64 `json:"height,omitempty"`
	Weight         float64 `json:"weight,omitempty"`
	ActivityLevel  string  `json:"activityLevel,omitempty"`
	TargetCalories float64 `json:"targetCalories,omitempty"`
}
