package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jobhubs/backoffice/internal/app/controllers"
	"github.com/jobhubs/backoffice/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	categorieController *controllers.CategorieController,
	paysController *controllers.PaysController,
	celluleController *controllers.CelluleController,
	activiteController *controllers.ActiviteController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Operational endpoints live outside the API version group.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.POST("/auth/logout", authController.Logout)

		users := authenticated.Group("/users")
		{
			users.GET("", userController.ListUsers)
			users.GET("/export", userController.ExportUsers)
			users.GET("/:id", userController.GetUserByID)
			users.POST("", userController.CreateUser)
			users.PATCH("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		categories := authenticated.Group("/categories")
		{
			categories.GET("", categorieController.ListCategories)
			categories.GET("/export", categorieController.ExportCategories)
			categories.POST("", categorieController.CreateCategorie)
			categories.PATCH("/:id", categorieController.UpdateCategorie)
			categories.DELETE("/:id", categorieController.DeleteCategorie)
		}

		pays := authenticated.Group("/pays")
		{
			pays.GET("", paysController.ListPays)
			pays.GET("/export", paysController.ExportPays)
			pays.POST("", paysController.CreatePays)
			pays.PATCH("/:id", paysController.UpdatePays)
			pays.DELETE("/:id", paysController.DeletePays)
		}

		cellules := authenticated.Group("/cellules")
		{
			cellules.GET("", celluleController.ListCellules)
			cellules.GET("/export", celluleController.ExportCellules)
			cellules.POST("", celluleController.CreateCellule)
			cellules.PATCH("/:id", celluleController.UpdateCellule)
			cellules.DELETE("/:id", celluleController.DeleteCellule)
		}

		activites := authenticated.Group("/activites")
		{
			activites.GET("", activiteController.ListActivites)
			activites.GET("/export", activiteController.ExportActivites)
			activites.POST("", activiteController.CreateActivite)
			activites.PATCH("/:id", activiteController.UpdateActivite)
			activites.DELETE("/:id", activiteController.DeleteActivite)
			activites.POST("/:id/photos", activiteController.AddPhotos)
			activites.POST("/:id/expertise", activiteController.AddExpertise)
		}

		authenticated.POST("/uploads", uploadController.UploadImage)
	}
}
