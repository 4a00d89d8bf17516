package models

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusDone      AppointmentStatus = "done"
	StatusCancelled AppointmentStatus = "cancelled"
)

// StatusLabel maps a status to its display label (pt-BR).
var StatusLabel = map[AppointmentStatus]string{
	StatusScheduled: "Agendado",
	StatusDone:      "Concluído",
	StatusCancelled: "Cancelado",
}

// Valid reports whether s is one of the three known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a booking of a client with a specific barber, service,
// date and time. Price is captured at booking time and may diverge from
// the referenced service's current price. ServiceID/BarberID may dangle
// after the referenced record is deleted; a failed lookup is not an error.
type Appointment struct {
	ID         string            `json:"id"`
	Date       string            `json:"date"` // YYYY-MM-DD
	Time       string            `json:"time"` // HH:MM, 24h
	ClientName string            `json:"clientName"`
	Phone      string            `json:"phone,omitempty"`
	ServiceID  string            `json:"serviceId"`
	BarberID   string            `json:"barberId"`
	Price      float64           `json:"price"`
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  string            `json:"createdAt"` // RFC 3339
}
