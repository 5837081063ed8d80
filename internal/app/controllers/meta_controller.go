package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenidevops/studentdb/internal/app/models/dto"
	"github.com/jenidevops/studentdb/internal/app/services"
	"github.com/jenidevops/studentdb/internal/middleware"
	"github.com/jenidevops/studentdb/internal/pkg/apperrors"
)

// Pinger reports whether the backing store is reachable.
// Satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MetaController serves the API map and the diagnostics endpoints
type MetaController struct {
	statsService services.StatsService
	store        Pinger
}

// NewMetaController creates a new MetaController
func NewMetaController(statsService services.StatsService, store Pinger) *MetaController {
	return &MetaController{
		statsService: statsService,
		store:        store,
	}
}

// GetAPIMap lists the available endpoints
// @Summary API map
// @Description Lists every endpoint the service exposes
// @Tags meta
// @Produce json
// @Success 200 {object} dto.APIResponse "API map"
// @Router / [get]
func (c *MetaController) GetAPIMap(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{
		"students": gin.H{
			"POST /students/single":         "Insert a single student",
			"POST /students/multiple":       "Insert multiple students",
			"POST /students/sample-data":    "Insert sample students",
			"GET /students":                 "Get all students",
			"GET /students/filter":          "Filter students by course",
			"GET /students/mern-stack":      "Get MERN Stack students",
			"GET /students/age-range":       "Get students by age range",
			"GET /students/courses":         "Get students by course list",
			"GET /students/complex":         "Run a fixed demonstration query",
			"GET /students/advanced-search": "Run the advanced search",
			"PUT /students/:id":             "Update a student",
			"PUT /students/:id/complete":    "Mark a student completed",
			"PUT /students/bulk":            "Bulk update students",
			"DELETE /students/:id":          "Delete a student",
			"DELETE /students/by-condition": "Delete students by condition",
			"DELETE /students/all":          "Delete all students",
		},
		"library": gin.H{
			"GET /library/books":              "Get all books",
			"POST /library/books":             "Add a book",
			"GET /library/available":          "Get available books",
			"GET /library/category/:category": "Get books by category",
			"POST /library/sample-data":       "Insert sample books",
			"POST /library/borrow":            "Borrow a book",
			"POST /library/return":            "Return a book",
		},
		"meta": gin.H{
			"GET /health":  "Liveness and store reachability",
			"GET /stats":   "Collection statistics",
			"GET /metrics": "Prometheus metrics",
		},
	}, "Student Database API"))
}

// GetHealth reports liveness and store reachability
// @Summary Health check
// @Description Reports service liveness and whether the backing store answers a ping
// @Tags meta
// @Produce json
// @Success 200 {object} dto.APIResponse "Service healthy"
// @Failure 500 {object} dto.ErrorResponse "Store unreachable"
// @Router /health [get]
func (c *MetaController) GetHealth(ctx *gin.Context) {
	if err := c.store.Ping(ctx); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrStoreUnavailable, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{
		"status":   "ok",
		"database": "connected",
	}, "Service is healthy"))
}

// GetStats reports collection counts
// @Summary Collection statistics
// @Description Reports student counts per status and book availability counts
// @Tags meta
// @Produce json
// @Success 200 {object} dto.APIResponse "Statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats [get]
func (c *MetaController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.Collect(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(stats, "Statistics retrieved successfully"))
}
