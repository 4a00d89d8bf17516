package services

import (
	"path/filepath"
	"testing"

	"carllos-backend/models"
	"carllos-backend/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestAppData(t *testing.T) *AppData {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	s, err := storage.New(db)
	if err != nil {
		t.Fatalf("prepare storage: %v", err)
	}
	data := NewAppData(s)
	if err := data.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return data
}

func mustAddAppointment(t *testing.T, data *AppData, ap models.Appointment) models.Appointment {
	t.Helper()
	created, err := data.AddAppointment(ap)
	if err != nil {
		t.Fatalf("add appointment: %v", err)
	}
	return created
}

func strPtr(s string) *string { return &s }

func statusPtr(s models.AppointmentStatus) *models.AppointmentStatus { return &s }

func TestBookingConflictScenario(t *testing.T) {
	data := newTestAppData(t)

	ana, err := data.AddBarber("Ana", "")
	if err != nil {
		t.Fatalf("add barber: %v", err)
	}
	corte, err := data.AddService("Corte", 30)
	if err != nil {
		t.Fatalf("add service: %v", err)
	}

	ap := mustAddAppointment(t, data, models.Appointment{
		Date: "2025-03-10", Time: "09:00", ClientName: "Joao",
		ServiceID: corte.ID, BarberID: ana.ID, Price: 30,
		Status: models.StatusScheduled,
	})

	if !data.HasConflict(ana.ID, "2025-03-10", "09:00", "") {
		t.Fatal("expected conflict at the booked slot")
	}
	if data.HasConflict(ana.ID, "2025-03-10", "09:00", ap.ID) {
		t.Fatal("excluding the appointment's own id should clear the conflict")
	}
	if data.HasConflict(ana.ID, "2025-03-10", "09:30", "") {
		t.Fatal("a different time must not conflict")
	}
	if data.HasConflict(ana.ID, "2025-03-11", "09:00", "") {
		t.Fatal("a different date must not conflict")
	}
	if data.HasConflict("someone-else", "2025-03-10", "09:00", "") {
		t.Fatal("a different barber must not conflict")
	}
}

func TestConflictSymmetry(t *testing.T) {
	data := newTestAppData(t)

	// AppData does not guard against double booking; the conflict probe is
	// a pure query. Two clashing appointments must both report the slot.
	a := mustAddAppointment(t, data, models.Appointment{
		Date: "2025-03-10", Time: "10:00", ClientName: "A",
		BarberID: "b1", Status: models.StatusScheduled,
	})
	b := mustAddAppointment(t, data, models.Appointment{
		Date: "2025-03-10", Time: "10:00", ClientName: "B",
		BarberID: "b1", Status: models.StatusScheduled,
	})

	if !data.HasConflict("b1", "2025-03-10", "10:00", a.ID) {
		t.Fatal("probing while excluding A should still see B")
	}
	if !data.HasConflict("b1", "2025-03-10", "10:00", b.ID) {
		t.Fatal("probing while excluding B should still see A")
	}
	if !data.HasConflict("b1", "2025-03-10", "10:00", "") {
		t.Fatal("probing without exclusion should see the slot occupied")
	}
}

func TestCancelledNeverConflicts(t *testing.T) {
	data := newTestAppData(t)

	mustAddAppointment(t, data, models.Appointment{
		Date: "2025-03-10", Time: "11:00", ClientName: "C",
		BarberID: "b1", Status: models.StatusCancelled,
	})

	if data.HasConflict("b1", "2025-03-10", "11:00", "") {
		t.Fatal("a cancelled appointment must never occupy a slot")
	}
}

func TestSoftDeleteServiceWithActiveReference(t *testing.T) {
	data := newTestAppData(t)

	svc, err := data.AddService("Corte", 30)
	if err != nil {
		t.Fatalf("add service: %v", err)
	}
	mustAddAppointment(t, data, models.Appointment{
		Date: "2025-03-10", Time: "09:00", ClientName: "Joao",
		ServiceID: svc.ID, BarberID: "b1", Status: models.StatusScheduled,
	})

	if err := data.DeleteService(svc.ID); err != nil {
		t.Fatalf("delete service: %v", err)
	}

	got, ok := data.ServiceByID(svc.ID)
	if !ok {
		t.Fatal("service referenced by a scheduled appointment must remain present")
	}
	if got.Active {
		t.Fatal("service should have been soft-deleted (active=false)")
	}
}

func TestHardDeleteServiceWithOnlyCancelledReference(t *testing.T) {
	data := newTestAppData(t)

	svc, err := data.AddService("Corte", 30)
	if err != nil {
		t.Fatalf("add service: %v", err)
	}
	mustAddAppointment(t, data, models.Appointment{
		Date: "2025-03-10", Time: "09:00", ClientName: "Joao",
		ServiceID: svc.ID, BarberID: "b1", Status: models.StatusCancelled,
	})

	if err := data.DeleteService(svc.ID); err != nil {
		t.Fatalf("delete service: %v", err)
	}
	if _, ok := data.ServiceByID(svc.ID); ok {
		t.Fatal("service referenced only by a cancelled appointment should be removed")
	}
}

func TestHardDeleteUnreferencedService(t *testing.T) {
	data := newTestAppData(t)

	svc, err := data.AddService("Corte", 30)
	if err != nil {
		t.Fatalf("add service: %v", err)
	}
	if err := data.DeleteService(svc.ID); err != nil {
		t.Fatalf("delete service: %v", err)
	}
	if _, ok := data.ServiceByID(svc.ID); ok {
		t.Fatal("unreferenced service should be removed")
	}
}

func TestDeleteBarberIsAlwaysHard(t *testing.T) {
	data := newTestAppData(t)

	barber, err := data.AddBarber("Ana", "")
	if err != nil {
		t.Fatalf("add barber: %v", err)
	}
	ap := mustAddAppointment(t, data, models.Appointment{
		Date: "2025-03-10", Time: "09:00", ClientName: "Joao",
		BarberID: barber.ID, Status: models.StatusScheduled,
	})

	if err := data.DeleteBarber(barber.ID); err != nil {
		t.Fatalf("delete barber: %v", err)
	}
	if _, ok := data.BarberByID(barber.ID); ok {
		t.Fatal("barber should be removed even while referenced")
	}

	// The appointment keeps the dangling reference; the lookup miss is not
	// an error.
	got, ok := data.AppointmentByID(ap.ID)
	if !ok {
		t.Fatal("appointment should survive the barber's deletion")
	}
	if got.BarberID != barber.ID {
		t.Fatalf("appointment lost its barber reference: %+v", got)
	}
}

func TestUpdateServiceMissingIDIsNoOp(t *testing.T) {
	data := newTestAppData(t)

	before := data.Services()
	if err := data.UpdateService("does-not-exist", ServicePatch{Name: strPtr("X")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	after := data.Services()
	if len(before) != len(after) {
		t.Fatalf("collection size changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("record changed: %+v -> %+v", before[i], after[i])
		}
	}
}

func TestUpdateAppointmentStatusUnconstrained(t *testing.T) {
	data := newTestAppData(t)

	ap := mustAddAppointment(t, data, models.Appointment{
		Date: "2025-03-10", Time: "09:00", ClientName: "Joao",
		BarberID: "b1", Status: models.StatusCancelled,
	})

	// Any transition is permitted, including cancelled back to scheduled.
	if err := data.UpdateAppointment(ap.ID, AppointmentPatch{Status: statusPtr(models.StatusScheduled)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := data.AppointmentByID(ap.ID)
	if got.Status != models.StatusScheduled {
		t.Fatalf("status = %q, want scheduled", got.Status)
	}
	if !data.HasConflict("b1", "2025-03-10", "09:00", "") {
		t.Fatal("re-opened appointment should occupy its slot again")
	}
}

func TestUpdateAppointmentPartialMerge(t *testing.T) {
	data := newTestAppData(t)

	ap := mustAddAppointment(t, data, models.Appointment{
		Date: "2025-03-10", Time: "09:00", ClientName: "Joao", Phone: "+5511999990000",
		ServiceID: "s1", BarberID: "b1", Price: 30, Status: models.StatusScheduled,
	})

	if err := data.UpdateAppointment(ap.ID, AppointmentPatch{Time: strPtr("10:30")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := data.AppointmentByID(ap.ID)
	if got.Time != "10:30" {
		t.Fatalf("time = %q, want 10:30", got.Time)
	}
	if got.ClientName != "Joao" || got.Price != 30 || got.Phone != "+5511999990000" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestResetAllRestoresSeeds(t *testing.T) {
	data := newTestAppData(t)

	mustAddAppointment(t, data, models.Appointment{
		Date: "2025-03-10", Time: "09:00", ClientName: "Joao",
		BarberID: "b1", Status: models.StatusScheduled,
	})

	if err := data.ResetAll(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := data.Appointments(); len(got) != 0 {
		t.Fatalf("appointments should be empty after reset, got %d", len(got))
	}
	if got := data.Services(); len(got) != 3 {
		t.Fatalf("expected seed services after reset, got %d", len(got))
	}
	if got := data.Barbers(); len(got) != 2 {
		t.Fatalf("expected seed barbers after reset, got %d", len(got))
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	s, err := storage.New(db)
	if err != nil {
		t.Fatalf("prepare storage: %v", err)
	}
	data := NewAppData(s)
	if err := data.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	svc, err := data.AddService("Navalha", 50)
	if err != nil {
		t.Fatalf("add service: %v", err)
	}

	// A second session over the same store must observe the mutation.
	second := NewAppData(s)
	if err := second.Load(); err != nil {
		t.Fatalf("load second session: %v", err)
	}
	if _, ok := second.ServiceByID(svc.ID); !ok {
		t.Fatal("mutation did not reach the persistence store")
	}
}
