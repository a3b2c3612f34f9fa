package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httpresp"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	Name     string  `json:"service_name" binding:"required"`
	Price    float64 `json:"price"`
	IsMain   bool    `json:"is_main"`
	Duration int     `json:"duration" binding:"required,min=1"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error fetching services.")
		return
	}
	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Price:       req.Price,
		IsMain:      req.IsMain,
		DurationMin: req.Duration,
	}
	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error adding new service.")
		return
	}

	c.JSON(201, gin.H{
		"message":   "Service added successfully",
		"serviceId": service.ID,
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	res := h.db.Model(&models.Service{}).
		Where("id = ?", c.Param("serviceId")).
		Updates(map[string]any{
			"name":         req.Name,
			"price":        req.Price,
			"is_main":      req.IsMain,
			"duration_min": req.Duration,
		})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_service", "Error updating service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.JSON(200, gin.H{"message": "Service updated successfully"})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("serviceId")).Delete(&models.Service{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Error deleting service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.JSON(200, gin.H{"message": "Service deleted successfully"})
}
