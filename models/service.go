package models

// Service is a sellable offering (a haircut type, beard trim, etc).
// Active=false marks a soft-deleted service kept around so historical
// appointments can still resolve its name.
type Service struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"createdAt"` // RFC 3339
}
