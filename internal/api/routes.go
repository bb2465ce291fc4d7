package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nextstep/athlete-api/internal/service"
)

// SetupRoutes wires the handlers onto the router. Everything under
// /api/v1/athlete requires a valid token; login and the liveness probe
// do not.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	athleteService service.AthleteService,
) {
	authHandler := NewAuthHandler(authService)
	athleteHandler := NewAthleteHandler(athleteService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		athleteGroup := protected.Group("/athlete")
		{
			athleteGroup.GET("", athleteHandler.GetProfile)
			athleteGroup.POST("", athleteHandler.CreateProfile)
			athleteGroup.PUT("/personal-info", athleteHandler.UpdatePersonalInfo)
			athleteGroup.PUT("/physiological-data", athleteHandler.UpdatePhysiologicalData)
			athleteGroup.PUT("/training-access", athleteHandler.UpdateTrainingAccess)
			athleteGroup.PUT("/training-availability", athleteHandler.UpdateTrainingAvailability)

			athleteGroup.POST("/goals", athleteHandler.AddGoal)
			athleteGroup.PUT("/goals/:goalId", athleteHandler.UpdateGoal)
			athleteGroup.DELETE("/goals/:goalId", athleteHandler.DeleteGoal)
			athleteGroup.PUT("/goals/:goalId/primary", athleteHandler.SetPrimaryGoal)

			// Legacy manual zone input, kept for v1 clients.
			athleteGroup.PUT("/heart-rate-zones", athleteHandler.UpdateHeartRateZones)
			athleteGroup.PUT("/pace-zones", athleteHandler.UpdatePaceZones)

			athleteGroup.POST("/photo/upload-url", athleteHandler.RequestPhotoUploadURL)
			athleteGroup.PUT("/photo", athleteHandler.ConfirmPhoto)
		}
	}
}
