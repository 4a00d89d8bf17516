// controllers/appointment.go
package controllers

import (
	"net/http"

	"carllos-backend/models"
	"carllos-backend/services"
	"carllos-backend/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	Data *services.AppData
}

func NewAppointmentController(data *services.AppData) *AppointmentController {
	return &AppointmentController{Data: data}
}

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	Time       string  `json:"time" binding:"required,datetime=15:04"`
	ClientName string  `json:"clientName" binding:"required"`
	Phone      string  `json:"phone"`
	ServiceID  string  `json:"serviceId" binding:"required"`
	BarberID   string  `json:"barberId" binding:"required"`
	Price      float64 `json:"price" binding:"min=0"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure for editing
type UpdateAppointmentInput struct {
	Date       *string  `json:"date"`
	Time       *string  `json:"time"`
	ClientName *string  `json:"clientName"`
	Phone      *string  `json:"phone"`
	ServiceID  *string  `json:"serviceId"`
	BarberID   *string  `json:"barberId"`
	Price      *float64 `json:"price"`
	Status     *string  `json:"status"`
	Notes      *string  `json:"notes"`
}

// CreateAppointment books a new appointment. The referenced service and
// barber must exist at booking time; the slot must be free.
func (ctl *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	status := models.StatusScheduled
	if input.Status != "" {
		status = models.AppointmentStatus(input.Status)
		if !status.Valid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
	}

	if _, ok := ctl.Data.ServiceByID(input.ServiceID); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown service")
		return
	}
	if _, ok := ctl.Data.BarberByID(input.BarberID); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown barber")
		return
	}

	if ctl.Data.HasConflict(input.BarberID, input.Date, input.Time, "") {
		utils.RespondWithError(c, http.StatusConflict, "Barber already booked for this slot")
		return
	}

	appointment, err := ctl.Data.AddAppointment(models.Appointment{
		Date:       input.Date,
		Time:       input.Time,
		ClientName: input.ClientName,
		Phone:      input.Phone,
		ServiceID:  input.ServiceID,
		BarberID:   input.BarberID,
		Price:      input.Price,
		Status:     status,
		Notes:      input.Notes,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments retrieves appointments, optionally filtered by
// ?date=YYYY-MM-DD, ?barberId= and ?status=.
func (ctl *AppointmentController) GetAppointments(c *gin.Context) {
	date := c.Query("date")
	barberID := c.Query("barberId")
	status := c.Query("status")

	appointments := []models.Appointment{}
	for _, ap := range ctl.Data.Appointments() {
		if date != "" && ap.Date != date {
			continue
		}
		if barberID != "" && ap.BarberID != barberID {
			continue
		}
		if status != "" && string(ap.Status) != status {
			continue
		}
		appointments = append(appointments, ap)
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func (ctl *AppointmentController) GetAppointment(c *gin.Context) {
	appointment, ok := ctl.Data.AppointmentByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment edits an appointment, including plain status
// transitions (mark done, cancel, re-open). When the edit moves the
// booking to another slot, the slot must be free — excluding the
// appointment's own current slot.
func (ctl *AppointmentController) UpdateAppointment(c *gin.Context) {
	appointmentID := c.Param("id")
	existing, ok := ctl.Data.AppointmentByID(appointmentID)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var status *models.AppointmentStatus
	if input.Status != nil {
		s := models.AppointmentStatus(*input.Status)
		if !s.Valid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
		status = &s
	}
	if input.ClientName != nil && *input.ClientName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Client name must not be empty")
		return
	}
	if input.Price != nil && *input.Price < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
		return
	}

	// Effective slot after the patch is applied.
	barberID := existing.BarberID
	date := existing.Date
	timeStr := existing.Time
	if input.BarberID != nil {
		barberID = *input.BarberID
	}
	if input.Date != nil {
		date = *input.Date
	}
	if input.Time != nil {
		timeStr = *input.Time
	}

	targetStatus := existing.Status
	if status != nil {
		targetStatus = *status
	}
	if targetStatus != models.StatusCancelled &&
		ctl.Data.HasConflict(barberID, date, timeStr, appointmentID) {
		utils.RespondWithError(c, http.StatusConflict, "Barber already booked for this slot")
		return
	}

	patch := services.AppointmentPatch{
		Date:       input.Date,
		Time:       input.Time,
		ClientName: input.ClientName,
		Phone:      input.Phone,
		ServiceID:  input.ServiceID,
		BarberID:   input.BarberID,
		Price:      input.Price,
		Status:     status,
		Notes:      input.Notes,
	}
	if err := ctl.Data.UpdateAppointment(appointmentID, patch); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	appointment, _ := ctl.Data.AppointmentByID(appointmentID)
	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an appointment entirely
func (ctl *AppointmentController) DeleteAppointment(c *gin.Context) {
	appointmentID := c.Param("id")
	if _, ok := ctl.Data.AppointmentByID(appointmentID); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	if err := ctl.Data.DeleteAppointment(appointmentID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// CheckConflict probes a slot: GET /api/appointments/conflict?barberId=&date=&time=&excludeId=
func (ctl *AppointmentController) CheckConflict(c *gin.Context) {
	barberID := c.Query("barberId")
	date := c.Query("date")
	timeStr := c.Query("time")
	if barberID == "" || date == "" || timeStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "barberId, date and time are required")
		return
	}

	conflict := ctl.Data.HasConflict(barberID, date, timeStr, c.Query("excludeId"))
	c.JSON(http.StatusOK, gin.H{"conflict": conflict})
}
