// controllers/service.go
package controllers

import (
	"net/http"

	"carllos-backend/services"
	"carllos-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	Data *services.AppData
}

func NewServiceController(data *services.AppData) *ServiceController {
	return &ServiceController{Data: data}
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name   *string  `json:"name"`
	Price  *float64 `json:"price"`
	Active *bool    `json:"active"`
}

// CreateService creates a new service
func (ctl *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := ctl.Data.AddService(input.Name, input.Price)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves all services
func (ctl *ServiceController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Data.Services())
}

// GetService retrieves a specific service by ID
func (ctl *ServiceController) GetService(c *gin.Context) {
	service, ok := ctl.Data.ServiceByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func (ctl *ServiceController) UpdateService(c *gin.Context) {
	serviceID := c.Param("id")
	if _, ok := ctl.Data.ServiceByID(serviceID); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price != nil && *input.Price < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
		return
	}

	patch := services.ServicePatch{
		Name:   input.Name,
		Price:  input.Price,
		Active: input.Active,
	}
	if err := ctl.Data.UpdateService(serviceID, patch); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	service, _ := ctl.Data.ServiceByID(serviceID)
	c.JSON(http.StatusOK, service)
}

// DeleteService deletes a service; a service still referenced by a
// non-cancelled appointment is deactivated instead of removed.
func (ctl *ServiceController) DeleteService(c *gin.Context) {
	serviceID := c.Param("id")
	if _, ok := ctl.Data.ServiceByID(serviceID); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	if err := ctl.Data.DeleteService(serviceID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
