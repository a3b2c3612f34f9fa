package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/domain/booking"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httpresp"
)

type BarberHandler struct {
	repo domain.Repository
}

func NewBarberHandler(repo domain.Repository) *BarberHandler {
	return &BarberHandler{repo: repo}
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, barbers)
}
