// controllers/dashboard.go
package controllers

import (
	"net/http"

	"carllos-backend/models"
	"carllos-backend/services"
	"carllos-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Data *services.AppData
}

func NewDashboardController(data *services.AppData) *DashboardController {
	return &DashboardController{Data: data}
}

type DashboardOverview struct {
	Date              string  `json:"date"`      // today, YYYY-MM-DD
	DateLabel         string  `json:"dateLabel"` // e.g. "Seg, 10/03/2025"
	TodayScheduled    int     `json:"todayScheduled"`
	TodayDone         int     `json:"todayDone"`
	TodayCancelled    int     `json:"todayCancelled"`
	TodayRevenue      float64 `json:"todayRevenue"`
	TodayRevenueLabel string  `json:"todayRevenueLabel"` // e.g. "R$ 120,00"
	TotalAppointments int     `json:"totalAppointments"`
	TotalServices     int     `json:"totalServices"`
	TotalBarbers      int     `json:"totalBarbers"`
}

// GetDashboardOverview summarizes today's agenda and overall totals.
func (ctl *DashboardController) GetDashboardOverview(c *gin.Context) {
	today := utils.TodayISO()
	appointments := ctl.Data.Appointments()

	overview := DashboardOverview{
		Date:              today,
		DateLabel:         utils.WeekdayShort(today) + ", " + utils.FormatDate(today),
		TotalAppointments: len(appointments),
		TotalServices:     len(ctl.Data.Services()),
		TotalBarbers:      len(ctl.Data.Barbers()),
	}

	for _, ap := range appointments {
		if ap.Date != today {
			continue
		}
		switch ap.Status {
		case models.StatusScheduled:
			overview.TodayScheduled++
		case models.StatusDone:
			overview.TodayDone++
			overview.TodayRevenue += ap.Price
		case models.StatusCancelled:
			overview.TodayCancelled++
		}
	}
	overview.TodayRevenueLabel = utils.FormatMoney(overview.TodayRevenue)

	c.JSON(http.StatusOK, overview)
}
