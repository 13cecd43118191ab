package routes

import (
	"net/http"

	"renovatrack/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Projects    *handlers.ProjectHandler
	Tasks       *handlers.TaskHandler
	Expenses    *handlers.ExpenseHandler
	Photos      *handlers.PhotoHandler
	Materials   *handlers.MaterialHandler
	Contractors *handlers.ContractorHandler
	Permits     *handlers.PermitHandler
	Inventory   *handlers.InventoryHandler
	Maintenance *handlers.MaintenanceHandler
	Dashboard   *handlers.DashboardHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api/v1")

	NewProjectRoutes(h.Projects).RegisterRoutes(api)
	NewTaskRoutes(h.Tasks).RegisterRoutes(api)
	NewExpenseRoutes(h.Expenses).RegisterRoutes(api)
	NewPhotoRoutes(h.Photos).RegisterRoutes(api)
	NewMaterialRoutes(h.Materials).RegisterRoutes(api)
	NewContractorRoutes(h.Contractors).RegisterRoutes(api)
	NewPermitRoutes(h.Permits).RegisterRoutes(api)
	NewInventoryRoutes(h.Inventory).RegisterRoutes(api)
	NewMaintenanceRoutes(h.Maintenance).RegisterRoutes(api)
	NewDashboardRoutes(h.Dashboard).RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
	router.GET("/", health)
	router.GET("/healthz", health)
}
