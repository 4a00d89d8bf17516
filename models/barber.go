package models

// Barber is a staff member who can be booked for appointments.
type Barber struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	AvatarURI string `json:"avatarUri,omitempty"`
	CreatedAt string `json:"createdAt"` // RFC 3339
}
