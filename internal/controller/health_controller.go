package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/internal/service"
)

type HealthController struct {
	statsService service.StatsService
}

func NewHealthController(statsService service.StatsService) *HealthController {
	return &HealthController{statsService: statsService}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the API can reach its database.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	resp, err := c.statsService.Health()
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
