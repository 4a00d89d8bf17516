// controllers/barber.go
package controllers

import (
	"net/http"

	"carllos-backend/services"
	"carllos-backend/utils"

	"github.com/gin-gonic/gin"
)

type BarberController struct {
	Data *services.AppData
}

func NewBarberController(data *services.AppData) *BarberController {
	return &BarberController{Data: data}
}

// CreateBarberInput defines the expected JSON structure for creating a barber
type CreateBarberInput struct {
	Name      string `json:"name" binding:"required"`
	AvatarURI string `json:"avatarUri"`
}

// UpdateBarberInput defines the expected JSON structure for updating a barber
type UpdateBarberInput struct {
	Name      *string `json:"name"`
	Active    *bool   `json:"active"`
	AvatarURI *string `json:"avatarUri"`
}

// CreateBarber creates a new barber
func (ctl *BarberController) CreateBarber(c *gin.Context) {
	var input CreateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	barber, err := ctl.Data.AddBarber(input.Name, input.AvatarURI)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create barber")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

// GetBarbers retrieves all barbers
func (ctl *BarberController) GetBarbers(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Data.Barbers())
}

// GetBarber retrieves a specific barber by ID
func (ctl *BarberController) GetBarber(c *gin.Context) {
	barber, ok := ctl.Data.BarberByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// UpdateBarber updates an existing barber
func (ctl *BarberController) UpdateBarber(c *gin.Context) {
	barberID := c.Param("id")
	if _, ok := ctl.Data.BarberByID(barberID); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		return
	}

	var input UpdateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patch := services.BarberPatch{
		Name:      input.Name,
		Active:    input.Active,
		AvatarURI: input.AvatarURI,
	}
	if err := ctl.Data.UpdateBarber(barberID, patch); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update barber")
		return
	}

	barber, _ := ctl.Data.BarberByID(barberID)
	c.JSON(http.StatusOK, barber)
}

// DeleteBarber removes a barber. Unlike services, barbers are always hard
// deleted even when appointments still reference them.
func (ctl *BarberController) DeleteBarber(c *gin.Context) {
	barberID := c.Param("id")
	if _, ok := ctl.Data.BarberByID(barberID); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		return
	}

	if err := ctl.Data.DeleteBarber(barberID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete barber")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barber deleted successfully"})
}
