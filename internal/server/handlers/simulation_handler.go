package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/lactation"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/repository/breeds"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/service/simulation"
)

// SimulationService is the behaviour the HTTP layer needs from the simulation service.
type SimulationService interface {
	Breeds(ctx context.Context) ([]models.BreedProfile, error)
	Breed(ctx context.Context, key string) (models.BreedProfile, error)
	Simulate(ctx context.Context, req models.SimulationRequest) (models.SimulationRecord, error)
	Compare(ctx context.Context, req models.ComparisonRequest) (models.ComparisonResult, error)
	Rank(ctx context.Context, level models.ManagementLevel) ([]models.RankingEntry, error)
	History(ctx context.Context, breedKey string, limit int) ([]models.SimulationRecord, error)
}

// SimulationHandler exposes breeds and lactation simulations over HTTP.
type SimulationHandler struct {
	svc    SimulationService
	logger *zap.Logger
}

// NewSimulationHandler constructs the HTTP handler adapter.
func NewSimulationHandler(svc SimulationService, logger *zap.Logger) *SimulationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulationHandler{svc: svc, logger: logger}
}

// ListBreeds returns every stored breed profile.
func (h *SimulationHandler) ListBreeds(c *gin.Context) {
	profiles, err := h.svc.Breeds(c.Request.Context())
	if err != nil {
		h.fail(c, "failed listing breeds", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"breeds": profiles})
}

// GetBreed returns one breed profile.
func (h *SimulationHandler) GetBreed(c *gin.Context) {
	profile, err := h.svc.Breed(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.fail(c, "failed loading breed", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Simulate runs a single-breed lactation simulation.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid simulation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.Simulate(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "simulation failed", err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Compare simulates several breeds side by side.
func (h *SimulationHandler) Compare(c *gin.Context) {
	var req models.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid comparison payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.svc.Compare(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "comparison failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Ranking orders all breeds at the level given by ?level=, medium when absent.
func (h *SimulationHandler) Ranking(c *gin.Context) {
	level, err := models.ParseManagementLevel(c.DefaultQuery("level", string(models.ManagementMedium)))
	if err != nil {
		h.fail(c, "invalid ranking level", err)
		return
	}

	entries, err := h.svc.Rank(c.Request.Context(), level)
	if err != nil {
		h.fail(c, "ranking failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"management_level": level, "ranking": entries})
}

// History lists stored simulations filtered by ?breed= and bounded by ?limit=.
func (h *SimulationHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	records, err := h.svc.History(c.Request.Context(), c.Query("breed"), limit)
	if err != nil {
		h.fail(c, "failed listing simulations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"simulations": records})
}

func (h *SimulationHandler) fail(c *gin.Context, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}

	h.logger.Warn(msg, zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, breeds.ErrBreedNotFound), errors.Is(err, simulation.ErrNoBreeds):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnknownManagementLevel),
		errors.Is(err, simulation.ErrInvalidComparison),
		errors.Is(err, simulation.ErrExportUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, lactation.ErrInvalidBreedProfile):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
