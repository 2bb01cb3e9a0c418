package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dishlens/backend/internal/domain"
	"github.com/dishlens/backend/internal/usecase"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// HandlerConfig holds the display conventions exposed over HTTP
type HandlerConfig struct {
	DefaultTarget float64
	GoalDelta     float64
	ShopURL       string // grocery search page for ingredient links, empty disables them
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog *usecase.CatalogService
	config  HandlerConfig
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. catalog may be nil, in which case
// the dish endpoints answer 503.
func NewHandler(catalog *usecase.CatalogService, config HandlerConfig, logger *zap.Logger) *Handler {
	if config.DefaultTarget <= 0 {
		config.DefaultTarget = usecase.DefaultDailyTarget
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		catalog: catalog,
		config:  config,
		logger:  logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dishlens-backend",
		"version": "1.0.0",
	})
}

// ListDishes returns every dish name in sorted order, or ranked matches when ?q= is set
func (h *Handler) ListDishes(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		names, err := h.catalog.DishNames(c.Request.Context())
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"dishes": names,
			"count":  len(names),
		})
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxSearchLimit)
	}

	matches, err := h.catalog.SearchDishes(c.Request.Context(), query, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"matches": matches,
		"count":   len(matches),
	})
}

// dishResponse adds the rendered macro strings, chart and shop links to a normalized dish
type dishResponse struct {
	domain.NormalizedDish
	MacroDisplay    macroDisplay            `json:"macroDisplay"`
	MacroChart      []domain.MacroSlice     `json:"macroChart"`
	IngredientLinks []domain.IngredientLink `json:"ingredientLinks"`
	HasCalorieData  bool                    `json:"hasCalorieData"`
}

type macroDisplay struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fat     string `json:"fat"`
}

// GetDish returns the normalized view of a single dish
func (h *Handler) GetDish(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}

	dish, err := h.catalog.GetDish(c.Request.Context(), c.Param("name"))
	if err != nil {
		dishLookups.WithLabelValues(lookupOutcome(err)).Inc()
		h.respondError(c, err)
		return
	}
	dishLookups.WithLabelValues("found").Inc()

	c.JSON(http.StatusOK, dishResponse{
		NormalizedDish: *dish,
		MacroDisplay: macroDisplay{
			Protein: dish.Protein.Display(),
			Carbs:   dish.Carbs.Display(),
			Fat:     dish.Fat.Display(),
		},
		MacroChart:      usecase.MacroBreakdown(*dish),
		IngredientLinks: usecase.IngredientShopLinks(dish.Ingredients, h.config.ShopURL),
		HasCalorieData:  dish.Calories > 0,
	})
}

// RefreshCatalog drops the memoized catalog and reloads the dataset
func (h *Handler) RefreshCatalog(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}

	ctx := c.Request.Context()
	if err := h.catalog.Refresh(ctx); err != nil {
		h.respondError(c, err)
		return
	}

	names, err := h.catalog.DishNames(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info("dish catalog refreshed", zap.Int("dishes", len(names)))
	c.JSON(http.StatusOK, gin.H{
		"refreshed": true,
		"count":     len(names),
	})
}

// GetCalorieShare positions a dish against ?target=, or the default daily target
func (h *Handler) GetCalorieShare(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}

	var target *float64
	if raw := c.Query("target"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "target must be a number"})
			return
		}
		target = &v
	}

	dish, err := h.catalog.GetDish(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	share, err := usecase.CalorieShare(dish.Calories, target, h.config.DefaultTarget)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dishName": dish.Name,
		"share":    share,
	})
}

// maintenanceRequest mirrors domain.BiometricProfile. Pointers tell a missing
// field apart from an explicit zero.
type maintenanceRequest struct {
	WeightLbs     *float64 `json:"weight_lbs" binding:"required"`
	HeightFt      *int     `json:"height_ft" binding:"required"`
	HeightIn      *int     `json:"height_in" binding:"required"`
	AgeYears      *int     `json:"age_years" binding:"required"`
	Sex           *string  `json:"sex" binding:"required"`
	ActivityLevel *string  `json:"activity_level" binding:"required"`
}

func (r maintenanceRequest) profile() domain.BiometricProfile {
	return domain.BiometricProfile{
		WeightLbs:     *r.WeightLbs,
		HeightFt:      *r.HeightFt,
		HeightIn:      *r.HeightIn,
		AgeYears:      *r.AgeYears,
		Sex:           *r.Sex,
		ActivityLevel: *r.ActivityLevel,
	}
}

// maintenanceResponse is the calculator result returned to the UI
type maintenanceResponse struct {
	MaintenanceCalories float64              `json:"maintenanceCalories"`
	BMR                 float64              `json:"bmr"`
	WeightKg            float64              `json:"weightKg"`
	HeightCm            float64              `json:"heightCm"`
	AgeYears            int                  `json:"ageYears"`
	Sex                 domain.Sex           `json:"sex"`
	ActivityLevel       domain.ActivityLevel `json:"activityLevel"`
	Goals               domain.CalorieGoals  `json:"goals"`
}

// CalculateMaintenance computes daily maintenance calories from a biometric profile
func (h *Handler) CalculateMaintenance(c *gin.Context) {
	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		calorieCalculations.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	calc, err := usecase.NewCalorieCalculator(req.profile())
	if err != nil {
		calorieCalculations.WithLabelValues("invalid").Inc()
		h.respondError(c, err)
		return
	}
	calorieCalculations.WithLabelValues("ok").Inc()

	c.JSON(http.StatusOK, maintenanceResponse{
		MaintenanceCalories: calc.MaintenanceCalories(),
		BMR:                 calc.BMR(),
		WeightKg:            calc.WeightKg(),
		HeightCm:            calc.HeightCm(),
		AgeYears:            calc.AgeYears(),
		Sex:                 calc.Sex(),
		ActivityLevel:       calc.ActivityLevel(),
		Goals:               calc.Goals(h.config.GoalDelta),
	})
}

// CalorieOptions lists the choices accepted by the calculator
func (h *Handler) CalorieOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"activityLevels": usecase.ActivityOptions(),
		"sexes":          usecase.SexOptions(),
		"defaultTarget":  h.config.DefaultTarget,
		"goalDelta":      h.config.GoalDelta,
	})
}

func (h *Handler) requireCatalog(c *gin.Context) bool {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Dish catalog is not configured",
		})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDishNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoCalorieData):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No calorie data available for daily intake calculation."})
	case errors.Is(err, domain.ErrNonPositiveTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDatasetUnavailable):
		h.logger.Error("dish dataset unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Dish dataset is unavailable"})
	case errors.Is(err, domain.ErrDatasetMalformed), errors.Is(err, domain.ErrMissingDishName):
		h.logger.Error("dish dataset rejected", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Dish dataset could not be read"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Request cancelled"})
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func lookupOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrDishNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid"
	default:
		return "error"
	}
}
