package handlers

import (
	"net/http"
	"time"

	"github.com/iwtcode/robotAdapter/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// StartPolling запускает периодическую публикацию статуса в Kafka.
// @Summary Запустить публикацию статуса
// @Description Запускает периодическую публикацию снимков состояния моста в Kafka с заданным интервалом.
// @Tags Polling
// @Accept json
// @Produce json
// @Param input body models.PollingRequest true "Интервал в миллисекундах"
// @Success 200 {object} models.MessageResponse "Публикация запущена"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса или публикация уже запущена"
// @Router /polling/start [post]
func (h *Handler) StartPolling(c *gin.Context) {
	var req models.PollingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid interval")
		return
	}

	interval := time.Duration(req.Interval) * time.Millisecond
	if err := h.usecase.StartPolling(interval); err != nil {
		h.BadRequest(c, err, "Failed to start status polling")
		return
	}

	h.logger.Info("Status polling started", "interval", interval)
	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "ok",
		Message: "Status polling started successfully",
	})
}

// StopPolling останавливает публикацию статуса.
// @Summary Остановить публикацию статуса
// @Description Останавливает периодическую публикацию снимков состояния. Повторный вызов безопасен.
// @Tags Polling
// @Produce json
// @Success 200 {object} models.MessageResponse "Публикация остановлена"
// @Router /polling/stop [post]
func (h *Handler) StopPolling(c *gin.Context) {
	if err := h.usecase.StopPolling(); err != nil {
		h.InternalError(c, err)
		return
	}

	h.logger.Info("Status polling stopped")
	c.JSON(http.StatusOK, models.MessageResponse{
		Status:  "ok",
		Message: "Status polling stopped successfully",
	})
}
