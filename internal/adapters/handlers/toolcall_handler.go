package handlers

import (
	"net/http"

	"github.com/iwtcode/robotAdapter/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// ToolCall выполняет одно действие из фиксированного словаря.
// @Summary Выполнить действие
// @Description Диспетчеризует именованное действие (pick, place, stop, set_speed, query_status, move_object, get_config) с JSON-аргументами.
// @Tags ToolCall
// @Accept json
// @Produce json
// @Param input body models.ToolCallRequest true "Имя действия и аргументы"
// @Success 200 {object} models.ToolCallResponse "Результат действия; ok=false с видом ошибки при отказе"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Router /tool-call [post]
func (h *Handler) ToolCall(c *gin.Context) {
	var req models.ToolCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid tool call payload")
		return
	}

	h.logger.Info("Dispatching tool call", "tool", req.Name)

	resp := h.usecase.ToolCall(req)
	if !resp.OK {
		h.logger.Warn("Tool call failed", "tool", req.Name, "error", resp.Error)
	}

	// Отказ действия — штатный ответ с ok=false, а не HTTP-ошибка
	c.JSON(http.StatusOK, resp)
}
