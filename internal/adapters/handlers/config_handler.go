package handlers

import (
	"net/http"
	"strconv"

	"github.com/iwtcode/robotAdapter/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GetStatus возвращает снимок состояния моста.
// @Summary Состояние робота
// @Description Возвращает удерживаемый объект, масштаб скорости, флаг остановки и последнее действие.
// @Tags Status
// @Produce json
// @Success 200 {object} models.StatusResponse "Снимок состояния"
// @Router /status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.GetStatus())
}

// GetConfig возвращает текущие зоны, объекты и рабочее пространство.
// @Summary Получить конфигурацию
// @Description Возвращает таблицу зон (в порядке объявления), объекты и границы рабочего пространства.
// @Tags Config
// @Produce json
// @Success 200 {object} models.ConfigResponse "Текущая конфигурация"
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.GetConfig())
}

// GetMap возвращает ASCII-карту рабочего пространства.
// @Summary ASCII-карта
// @Description Отрисовывает зоны и объекты на текстовой карте с легендой.
// @Tags Config
// @Produce json
// @Success 200 {object} models.MapResponse "Текстовая карта"
// @Router /map [get]
func (h *Handler) GetMap(c *gin.Context) {
	c.JSON(http.StatusOK, models.MapResponse{Map: h.usecase.RenderMap()})
}

// UpsertObject создает или обновляет объект.
// @Summary Сохранить объект
// @Description Создает или обновляет объект и переписывает settings.yaml.
// @Tags Config
// @Accept json
// @Produce json
// @Param input body models.ObjectUpsertRequest true "Идентификатор и позиция объекта"
// @Success 200 {object} models.ObjectUpsertResponse "Сохраненный объект"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Не удалось сохранить настройки"
// @Router /config/object [post]
func (h *Handler) UpsertObject(c *gin.Context) {
	var req models.ObjectUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid object payload")
		return
	}

	obj, err := h.usecase.UpsertObject(req)
	if err != nil {
		h.InternalError(c, err)
		return
	}

	h.logger.Info("Object upserted", "id", req.ID)
	c.JSON(http.StatusOK, models.ObjectUpsertResponse{OK: true, Object: obj})
}

// UpsertZone создает или обновляет зону.
// @Summary Сохранить зону
// @Description Создает или обновляет зону, переписывает settings.yaml и перечитывает таблицу зон моста.
// @Tags Config
// @Accept json
// @Produce json
// @Param input body models.ZoneUpsertRequest true "Идентификатор, центр и допуск зоны"
// @Success 200 {object} models.ZoneUpsertResponse "Сохраненная зона"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Не удалось сохранить настройки"
// @Router /config/zone [post]
func (h *Handler) UpsertZone(c *gin.Context) {
	var req models.ZoneUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid zone payload")
		return
	}

	zone, err := h.usecase.UpsertZone(req)
	if err != nil {
		h.InternalError(c, err)
		return
	}

	h.logger.Info("Zone upserted", "id", req.ID)
	c.JSON(http.StatusOK, models.ZoneUpsertResponse{OK: true, Zone: zone})
}

// GetActions возвращает последние записи журнала действий.
// @Summary Журнал действий
// @Description Возвращает последние выполненные действия, новые первыми. Параметр limit по умолчанию 50.
// @Tags Actions
// @Produce json
// @Param limit query int false "Максимум записей"
// @Success 200 {object} models.ActionsResponse "Список действий"
// @Failure 500 {object} models.ErrorResponse "Журнал недоступен"
// @Router /actions [get]
func (h *Handler) GetActions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	actions, err := h.usecase.RecentActions(limit)
	if err != nil {
		h.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ActionsResponse{
		Status:  "ok",
		Count:   len(actions),
		Actions: actions,
	})
}
