package routes

import (
	"carllos-backend/config"
	"carllos-backend/controllers"
	"carllos-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(data *services.AppData) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:8081",
			"http://localhost:19006",
		},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.Use(config.PerformanceLogger())

	serviceCtl := controllers.NewServiceController(data)
	barberCtl := controllers.NewBarberController(data)
	appointmentCtl := controllers.NewAppointmentController(data)
	dashboardCtl := controllers.NewDashboardController(data)
	settingsCtl := controllers.NewSettingsController(data)

	api := r.Group("/api")
	{
		// Service routes
		srv := api.Group("/services")
		{
			srv.POST("", serviceCtl.CreateService)
			srv.GET("", serviceCtl.GetServices)
			srv.GET("/:id", serviceCtl.GetService)
			srv.PUT("/:id", serviceCtl.UpdateService)
			srv.DELETE("/:id", serviceCtl.DeleteService)
		}

		// Barber routes
		barbers := api.Group("/barbers")
		{
			barbers.POST("", barberCtl.CreateBarber)
			barbers.GET("", barberCtl.GetBarbers)
			barbers.GET("/:id", barberCtl.GetBarber)
			barbers.PUT("/:id", barberCtl.UpdateBarber)
			barbers.DELETE("/:id", barberCtl.DeleteBarber)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentCtl.CreateAppointment)
			appointments.GET("", appointmentCtl.GetAppointments)
			appointments.GET("/conflict", appointmentCtl.CheckConflict)
			appointments.GET("/:id", appointmentCtl.GetAppointment)
			appointments.PUT("/:id", appointmentCtl.UpdateAppointment)
			appointments.DELETE("/:id", appointmentCtl.DeleteAppointment)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardCtl.GetDashboardOverview)

		// Settings routes
		settings := api.Group("/settings")
		{
			settings.GET("", settingsCtl.GetSettings)
			settings.POST("/reset", settingsCtl.ResetData)
		}
	}

	return r
}
