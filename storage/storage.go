// storage/storage.go
//
// Durable storage of the three record collections. Each collection is kept
// as a single JSON blob under a versioned key, mirroring how the data would
// live in an on-device key-value store. Writes always replace the whole
// collection; there are no partial or merge writes.
package storage

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"carllos-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Versioned keys. The suffix allows a future format migration without
// silently clobbering old-format data.
const (
	keyServices     = "services:v1"
	keyBarbers      = "barbers:v1"
	keyAppointments = "appointments:v1"
)

// Blob is a single string-keyed collection payload.
type Blob struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Data is the loaded triple returned by InitStorage.
type Data struct {
	Services     []models.Service
	Barbers      []models.Barber
	Appointments []models.Appointment
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// GenerateID produces a collection-unique identifier. No central counter:
// safe to call at any frequency in a single-process app.
func GenerateID() string {
	return uuid.NewString()
}

// NowISO returns the current instant as an RFC 3339 string, the format
// every CreatedAt field carries.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// getBlob loads the raw payload for key. A missing key or a failing read
// degrades to "no data"; read errors are never surfaced to the caller.
func (s *Store) getBlob(key string) ([]byte, bool) {
	var blob Blob
	if err := s.db.First(&blob, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("storage: read %s: %v", key, err)
		}
		return nil, false
	}
	return []byte(blob.Value), true
}

// putBlob persists the payload for key, replacing any prior value.
// Write failures propagate; there is no retry at this layer.
func (s *Store) putBlob(key string, value []byte) error {
	blob := Blob{Key: key, Value: string(value)}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&blob).Error
}

// Services returns the stored services collection. A corrupt payload
// degrades to an empty collection rather than failing.
func (s *Store) Services() []models.Service {
	services := []models.Service{}
	raw, ok := s.getBlob(keyServices)
	if !ok {
		return services
	}
	if err := json.Unmarshal(raw, &services); err != nil {
		log.Printf("storage: parse %s: %v", keyServices, err)
		return []models.Service{}
	}
	return services
}

func (s *Store) SaveServices(services []models.Service) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return err
	}
	return s.putBlob(keyServices, raw)
}

func (s *Store) Barbers() []models.Barber {
	barbers := []models.Barber{}
	raw, ok := s.getBlob(keyBarbers)
	if !ok {
		return barbers
	}
	if err := json.Unmarshal(raw, &barbers); err != nil {
		log.Printf("storage: parse %s: %v", keyBarbers, err)
		return []models.Barber{}
	}
	return barbers
}

func (s *Store) SaveBarbers(barbers []models.Barber) error {
	raw, err := json.Marshal(barbers)
	if err != nil {
		return err
	}
	return s.putBlob(keyBarbers, raw)
}

func (s *Store) Appointments() []models.Appointment {
	appointments := []models.Appointment{}
	raw, ok := s.getBlob(keyAppointments)
	if !ok {
		return appointments
	}
	if err := json.Unmarshal(raw, &appointments); err != nil {
		log.Printf("storage: parse %s: %v", keyAppointments, err)
		return []models.Appointment{}
	}
	return appointments
}

func (s *Store) SaveAppointments(appointments []models.Appointment) error {
	raw, err := json.Marshal(appointments)
	if err != nil {
		return err
	}
	return s.putBlob(keyAppointments, raw)
}

func seedServices() []models.Service {
	return []models.Service{
		{ID: GenerateID(), Name: "Corte Social", Price: 35, Active: true, CreatedAt: NowISO()},
		{ID: GenerateID(), Name: "Degradê", Price: 45, Active: true, CreatedAt: NowISO()},
		{ID: GenerateID(), Name: "Barba", Price: 25, Active: true, CreatedAt: NowISO()},
	}
}

func seedBarbers() []models.Barber {
	return []models.Barber{
		{ID: GenerateID(), Name: "Carlos", Active: true, CreatedAt: NowISO()},
		{ID: GenerateID(), Name: "Barbeiro 2", Active: true, CreatedAt: NowISO()},
	}
}

// ResetAll unconditionally overwrites all three collections with the
// default seed data. Destroys all prior data.
func (s *Store) ResetAll() error {
	if err := s.SaveServices(seedServices()); err != nil {
		return err
	}
	if err := s.SaveBarbers(seedBarbers()); err != nil {
		return err
	}
	return s.SaveAppointments([]models.Appointment{})
}

// InitStorage loads all three collections, seeding the defaults first when
// both services and barbers are empty (interpreted as a first run).
func (s *Store) InitStorage() (Data, error) {
	data := Data{
		Services:     s.Services(),
		Barbers:      s.Barbers(),
		Appointments: s.Appointments(),
	}

	if len(data.Services) == 0 && len(data.Barbers) == 0 {
		if err := s.ResetAll(); err != nil {
			return Data{}, err
		}
		data = Data{
			Services:     s.Services(),
			Barbers:      s.Barbers(),
			Appointments: s.Appointments(),
		}
	}

	return data, nil
}
