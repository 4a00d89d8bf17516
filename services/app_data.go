// services/app_data.go
package services

import (
	"sync"

	"carllos-backend/models"
	"carllos-backend/storage"
)

// AppData owns the authoritative in-memory snapshot of the three
// collections for the lifetime of the process. Every mutation computes the
// next collection state, persists it, and only then replaces the snapshot:
// a failed write leaves the snapshot untouched, so readers never observe
// state the store does not hold.
//
// Mutations are serialized behind a single mutex. The snapshot is the whole
// collection per entity type and every write replaces it wholesale, so two
// unserialized writers would clobber each other at collection granularity.
//
// AppData performs no input validation; that belongs to the calling layer.
type AppData struct {
	mu    sync.RWMutex
	store *storage.Store

	services     []models.Service
	barbers      []models.Barber
	appointments []models.Appointment

	loading bool
	ready   bool
}

func NewAppData(store *storage.Store) *AppData {
	return &AppData{
		store:        store,
		services:     []models.Service{},
		barbers:      []models.Barber{},
		appointments: []models.Appointment{},
		loading:      true,
	}
}

// Load populates the snapshot from storage, seeding defaults on first run.
// Must complete before mutations are meaningful.
func (a *AppData) Load() error {
	data, err := a.store.InitStorage()
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.services = data.Services
	a.barbers = data.Barbers
	a.appointments = data.Appointments
	a.loading = false
	a.ready = true
	return nil
}

func (a *AppData) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

func (a *AppData) Ready() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ready
}

// Services returns a copy of the current services snapshot.
func (a *AppData) Services() []models.Service {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Service(nil), a.services...)
}

func (a *AppData) Barbers() []models.Barber {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Barber(nil), a.barbers...)
}

func (a *AppData) Appointments() []models.Appointment {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Appointment(nil), a.appointments...)
}

// ServiceByID resolves a service reference. A miss is not an error: the
// display layer substitutes a placeholder for dangling references.
func (a *AppData) ServiceByID(id string) (models.Service, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, s := range a.services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

func (a *AppData) BarberByID(id string) (models.Barber, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, b := range a.barbers {
		if b.ID == id {
			return b, true
		}
	}
	return models.Barber{}, false
}

func (a *AppData) AppointmentByID(id string) (models.Appointment, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, ap := range a.appointments {
		if ap.ID == id {
			return ap, true
		}
	}
	return models.Appointment{}, false
}

// ─── Services ───

func (a *AppData) AddService(name string, price float64) (models.Service, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	service := models.Service{
		ID:        storage.GenerateID(),
		Name:      name,
		Price:     price,
		Active:    true,
		CreatedAt: storage.NowISO(),
	}
	next := append(append([]models.Service(nil), a.services...), service)
	if err := a.store.SaveServices(next); err != nil {
		return models.Service{}, err
	}
	a.services = next
	return service, nil
}

// ServicePatch carries the fields UpdateService merges into an existing
// record. Nil fields are left unchanged.
type ServicePatch struct {
	Name   *string
	Price  *float64
	Active *bool
}

// UpdateService merges patch into the matching record. No-op when the id
// is not found.
func (a *AppData) UpdateService(id string, patch ServicePatch) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := append([]models.Service(nil), a.services...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		if patch.Name != nil {
			next[i].Name = *patch.Name
		}
		if patch.Price != nil {
			next[i].Price = *patch.Price
		}
		if patch.Active != nil {
			next[i].Active = *patch.Active
		}
	}
	if err := a.store.SaveServices(next); err != nil {
		return err
	}
	a.services = next
	return nil
}

// DeleteService removes a service, unless a non-cancelled appointment still
// references it — then the service is soft-deleted (Active=false) so the
// booking never loses its service's display name.
func (a *AppData) DeleteService(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	referenced := false
	for _, ap := range a.appointments {
		if ap.ServiceID == id && ap.Status != models.StatusCancelled {
			referenced = true
			break
		}
	}

	var next []models.Service
	if referenced {
		next = append([]models.Service(nil), a.services...)
		for i := range next {
			if next[i].ID == id {
				next[i].Active = false
			}
		}
	} else {
		next = []models.Service{}
		for _, s := range a.services {
			if s.ID != id {
				next = append(next, s)
			}
		}
	}

	if err := a.store.SaveServices(next); err != nil {
		return err
	}
	a.services = next
	return nil
}

// ─── Barbers ───

func (a *AppData) AddBarber(name, avatarURI string) (models.Barber, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	barber := models.Barber{
		ID:        storage.GenerateID(),
		Name:      name,
		Active:    true,
		AvatarURI: avatarURI,
		CreatedAt: storage.NowISO(),
	}
	next := append(append([]models.Barber(nil), a.barbers...), barber)
	if err := a.store.SaveBarbers(next); err != nil {
		return models.Barber{}, err
	}
	a.barbers = next
	return barber, nil
}

type BarberPatch struct {
	Name      *string
	Active    *bool
	AvatarURI *string
}

func (a *AppData) UpdateBarber(id string, patch BarberPatch) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := append([]models.Barber(nil), a.barbers...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		if patch.Name != nil {
			next[i].Name = *patch.Name
		}
		if patch.Active != nil {
			next[i].Active = *patch.Active
		}
		if patch.AvatarURI != nil {
			next[i].AvatarURI = *patch.AvatarURI
		}
	}
	if err := a.store.SaveBarbers(next); err != nil {
		return err
	}
	a.barbers = next
	return nil
}

// DeleteBarber always removes the record, with no reference check against
// appointments. This is asymmetric with DeleteService: a removed barber
// referenced by an active appointment leaves a dangling reference that the
// display layer renders as a placeholder. Flagged for product review rather
// than changed here.
func (a *AppData) DeleteBarber(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := []models.Barber{}
	for _, b := range a.barbers {
		if b.ID != id {
			next = append(next, b)
		}
	}
	if err := a.store.SaveBarbers(next); err != nil {
		return err
	}
	a.barbers = next
	return nil
}

// ─── Appointments ───

// AddAppointment assigns a fresh id and creation timestamp to data and
// appends it. No conflict check happens here; callers probe HasConflict
// before booking.
func (a *AppData) AddAppointment(data models.Appointment) (models.Appointment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	data.ID = storage.GenerateID()
	data.CreatedAt = storage.NowISO()

	next := append(append([]models.Appointment(nil), a.appointments...), data)
	if err := a.store.SaveAppointments(next); err != nil {
		return models.Appointment{}, err
	}
	a.appointments = next
	return data, nil
}

// AppointmentPatch carries partial appointment updates, including plain
// status transitions (mark done, cancel). Any status may transition to any
// other; there is no state machine here.
type AppointmentPatch struct {
	Date       *string
	Time       *string
	ClientName *string
	Phone      *string
	ServiceID  *string
	BarberID   *string
	Price      *float64
	Status     *models.AppointmentStatus
	Notes      *string
}

func (a *AppData) UpdateAppointment(id string, patch AppointmentPatch) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := append([]models.Appointment(nil), a.appointments...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		if patch.Date != nil {
			next[i].Date = *patch.Date
		}
		if patch.Time != nil {
			next[i].Time = *patch.Time
		}
		if patch.ClientName != nil {
			next[i].ClientName = *patch.ClientName
		}
		if patch.Phone != nil {
			next[i].Phone = *patch.Phone
		}
		if patch.ServiceID != nil {
			next[i].ServiceID = *patch.ServiceID
		}
		if patch.BarberID != nil {
			next[i].BarberID = *patch.BarberID
		}
		if patch.Price != nil {
			next[i].Price = *patch.Price
		}
		if patch.Status != nil {
			next[i].Status = *patch.Status
		}
		if patch.Notes != nil {
			next[i].Notes = *patch.Notes
		}
	}
	if err := a.store.SaveAppointments(next); err != nil {
		return err
	}
	a.appointments = next
	return nil
}

func (a *AppData) DeleteAppointment(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := []models.Appointment{}
	for _, ap := range a.appointments {
		if ap.ID != id {
			next = append(next, ap)
		}
	}
	if err := a.store.SaveAppointments(next); err != nil {
		return err
	}
	a.appointments = next
	return nil
}

// HasConflict reports whether a non-cancelled appointment already occupies
// the exact (barberID, date, time) slot. Matching is point equality at
// minute granularity, not interval overlap: bookings are fixed-duration
// point slots in this model. excludeID lets an in-progress edit ignore its
// own existing slot; pass "" when creating.
func (a *AppData) HasConflict(barberID, date, timeStr, excludeID string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, ap := range a.appointments {
		if ap.ID != excludeID &&
			ap.BarberID == barberID &&
			ap.Date == date &&
			ap.Time == timeStr &&
			ap.Status != models.StatusCancelled {
			return true
		}
	}
	return false
}

// ResetAll wipes everything back to the seed data and reloads the snapshot.
func (a *AppData) ResetAll() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.ResetAll(); err != nil {
		return err
	}
	data, err := a.store.InitStorage()
	if err != nil {
		return err
	}
	a.services = data.Services
	a.barbers = data.Barbers
	a.appointments = data.Appointments
	a.loading = false
	a.ready = true
	return nil
}
