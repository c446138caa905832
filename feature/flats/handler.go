package flats

import (
	"strconv"

	"flat-monitor/core/logger"
	"flat-monitor/core/reconcile"
	"flat-monitor/feature/flats/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for flats.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the flats routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/flats")
	group.Get("/", h.HandleList)
	group.Get("/studios", h.cheapest(models.CategoryStudio))
	group.Get("/one", h.cheapest(models.CategoryOneRoom))
	group.Get("/stats", h.HandleStats)
	group.Post("/refresh", h.HandleRefresh)
	group.Post("/replay", h.HandleReplay)
}

// CheapestResponse lists the cheapest flats of one category.
type CheapestResponse struct {
	Category models.Category `json:"category"`
	Flats    []models.Flat   `json:"flats"`
	Text     string          `json:"text"`
}

// StatsResponse carries the stats report and the store summary.
type StatsResponse struct {
	Summary Summary `json:"summary"`
	Text    string  `json:"text"`
}

func unavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "listings are unavailable, try again later",
	})
}

// HandleList returns every stored flat.
// @Summary List flats
// @Description Current stored snapshot ordered by id.
// @Tags flats
// @Produce json
// @Success 200 {array} models.Flat
// @Failure 503 {object} map[string]string "Try again later"
// @Router /flats [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	flats, err := h.service.Snapshot(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Listing flats failed", zap.Error(err))
		return unavailable(c)
	}
	return c.JSON(flats)
}

// cheapest serves the cheapest flats of one category.
// @Summary Cheapest flats
// @Description Cheapest studios (/flats/studios) or 1-room flats (/flats/one), any status.
// @Tags flats
// @Produce json
// @Param limit query int false "Maximum number of flats (default 10)"
// @Success 200 {object} CheapestResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Try again later"
// @Router /flats/studios [get]
// @Router /flats/one [get]
func (h *Handler) cheapest(category models.Category) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a positive integer"})
			}
			limit = n
		}

		flats, err := h.service.Cheapest(c.Context(), category, limit)
		if err != nil {
			logger.WithRayID(h.logger, c).Error("Selecting cheapest flats failed", zap.Error(err))
			return unavailable(c)
		}
		return c.JSON(CheapestResponse{
			Category: category,
			Flats:    flats,
			Text:     RenderCheapest(category, flats),
		})
	}
}

// HandleStats returns the statistics report.
// @Summary Stats
// @Description Free and reserved counts per monitored category with the cheapest free flats.
// @Tags flats
// @Produce json
// @Param links query bool false "Include links to listing pages"
// @Success 200 {object} StatsResponse
// @Failure 503 {object} map[string]string "Try again later"
// @Router /flats/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	text, err := h.service.StatsText(c.Context(), c.QueryBool("links"))
	if err != nil {
		l.Error("Building stats failed", zap.Error(err))
		return unavailable(c)
	}
	summary, err := h.service.StoreSummary(c.Context())
	if err != nil {
		l.Error("Building summary failed", zap.Error(err))
		return unavailable(c)
	}
	return c.JSON(StatsResponse{Summary: summary, Text: text})
}

// HandleRefresh runs a pass against the listing API.
// @Summary Refresh
// @Description Fetch the listings now and reconcile the store with them.
// @Tags flats
// @Produce json
// @Success 200 {object} Result
// @Failure 503 {object} map[string]string "Try again later"
// @Router /flats/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	res, err := h.service.RefreshFromSource(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Manual refresh failed", zap.Error(err))
		return unavailable(c)
	}
	return c.JSON(res)
}

// HandleReplay reconciles the store with a snapshot given in the body.
// @Summary Replay
// @Description Reconcile the store with a JSON array of flats. dry_run=true only computes the report.
// @Tags flats
// @Accept json
// @Produce json
// @Param dry_run query bool false "Do not write the store"
// @Param snapshot body []models.Flat true "Snapshot"
// @Success 200 {object} Result
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Try again later"
// @Router /flats/replay [post]
func (h *Handler) HandleReplay(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var flats []models.Flat
	if err := c.BodyParser(&flats); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body must be a JSON array of flats"})
	}

	res, err := h.service.Reconcile(c.Context(), flats, reconcile.Options{DryRun: c.QueryBool("dry_run")})
	if err != nil {
		l.Error("Replay failed", zap.Error(err))
		return unavailable(c)
	}
	return c.JSON(res)
}
