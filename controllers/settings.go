// controllers/settings.go
package controllers

import (
	"net/http"

	"carllos-backend/services"
	"carllos-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Data *services.AppData
}

func NewSettingsController(data *services.AppData) *SettingsController {
	return &SettingsController{Data: data}
}

// GetSettings reports how many records each collection holds.
func (ctl *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services":     len(ctl.Data.Services()),
		"barbers":      len(ctl.Data.Barbers()),
		"appointments": len(ctl.Data.Appointments()),
		"loading":      ctl.Data.Loading(),
	})
}

// ResetData wipes every collection back to the default seed data.
// Irreversible: all appointments are lost.
func (ctl *SettingsController) ResetData(c *gin.Context) {
	if err := ctl.Data.ResetAll(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset data")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All data reset to defaults"})
}
