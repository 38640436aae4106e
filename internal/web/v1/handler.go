package v1

import (
	"context"
	"errors"
	"net/http"

	logicv1 "github.com/duynhne/user-analytics-service/internal/logic/v1"
	"github.com/duynhne/user-analytics-service/middleware"
	pkgzerolog "github.com/duynhne/user-analytics-service/pkg/logger/zerolog"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Response bodies for rejected requests.
const (
	msgMissingParameters = "Missing parameters"
	msgMissingUserID     = "Missing userId"
	msgMissingDays       = "Missing days parameter"
	msgInvalidFormat     = "Invalid number format for days"
	msgInvalidArgument   = "The number of days must be non-negative"
	msgSessionOrder      = "Wrong session, loginTime must be earlier than logoutTime"
	msgDuplicateUser     = "User with this id already exists"
	msgUserNotFound      = "User not found"
	msgInternal          = "Internal server error"
)

// Handler groups HTTP handlers for the analytics API v1.
// Dependencies are injected via the constructor.
type Handler struct {
	analytics *logicv1.AnalyticsService
}

// NewHandler creates a new Handler with the given AnalyticsService.
func NewHandler(analytics *logicv1.AnalyticsService) *Handler {
	return &Handler{analytics: analytics}
}

// RegisterRoutes registers all analytics routes on the given router.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/register", h.Register)
	r.POST("/recordSession", h.RecordSession)
	r.GET("/totalActivity", h.TotalActivity)
	r.GET("/inactiveUsers", h.InactiveUsers)
	r.GET("/monthlyActivity", h.MonthlyActivity)
	r.GET("/userStatus", h.UserStatus)
	r.GET("/lastSessionDate", h.LastSessionDate)
}

// Register handles POST /register?userId=&userName=.
func (h *Handler) Register(c *gin.Context) {
	ctx, span := startRequestSpan(c)
	defer span.End()

	userID := c.Query("userId")
	userName := c.Query("userName")
	if userID == "" || userName == "" {
		span.SetAttributes(attribute.Bool("request.valid", false))
		c.String(http.StatusBadRequest, msgMissingParameters)
		return
	}
	span.SetAttributes(attribute.Bool("request.valid", true))

	ok, err := h.analytics.Register(ctx, userID, userName)
	if err != nil {
		span.RecordError(err)
		pkgzerolog.FromContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("Registration failed")
		writeError(c, err)
		return
	}

	pkgzerolog.FromContext(ctx).Info().Str("user_id", userID).Msg("User registered")
	c.String(http.StatusOK, "User registered: %t", ok)
}

// RecordSession handles POST /recordSession?userId=&loginTime=&logoutTime=.
func (h *Handler) RecordSession(c *gin.Context) {
	ctx, span := startRequestSpan(c)
	defer span.End()

	userID := c.Query("userId")
	loginTime := c.Query("loginTime")
	logoutTime := c.Query("logoutTime")
	if userID == "" || loginTime == "" || logoutTime == "" {
		span.SetAttributes(attribute.Bool("request.valid", false))
		c.String(http.StatusBadRequest, msgMissingParameters)
		return
	}
	span.SetAttributes(attribute.Bool("request.valid", true))

	if err := h.analytics.RecordSession(ctx, userID, loginTime, logoutTime); err != nil {
		span.RecordError(err)
		pkgzerolog.FromContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("Session rejected")
		writeError(c, err)
		return
	}

	c.String(http.StatusOK, "Session recorded")
}

// TotalActivity handles GET /totalActivity?userId=.
func (h *Handler) TotalActivity(c *gin.Context) {
	ctx, span := startRequestSpan(c)
	defer span.End()

	userID := c.Query("userId")
	if userID == "" {
		c.String(http.StatusBadRequest, msgMissingUserID)
		return
	}

	minutes, err := h.analytics.TotalActivityTime(ctx, userID)
	if err != nil {
		span.RecordError(err)
		pkgzerolog.FromContext(ctx).Error().Err(err).Str("user_id", userID).Msg("Total activity failed")
		writeError(c, err)
		return
	}

	c.String(http.StatusOK, "Total activity: %d minutes", minutes)
}

// InactiveUsers handles GET /inactiveUsers?days=.
// The body is a JSON array of user ids.
func (h *Handler) InactiveUsers(c *gin.Context) {
	ctx, span := startRequestSpan(c)
	defer span.End()

	days := c.Query("days")
	if days == "" {
		c.String(http.StatusBadRequest, msgMissingDays)
		return
	}

	users, err := h.analytics.InactiveUsers(ctx, days)
	if err != nil {
		span.RecordError(err)
		pkgzerolog.FromContext(ctx).Warn().Err(err).Str("days", days).Msg("Inactive users query rejected")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// MonthlyActivity handles GET /monthlyActivity?userId=&month=yyyy-MM.
// The body is a JSON object mapping yyyy-MM-dd to minutes.
func (h *Handler) MonthlyActivity(c *gin.Context) {
	ctx, span := startRequestSpan(c)
	defer span.End()

	userID := c.Query("userId")
	month := c.Query("month")
	if userID == "" || month == "" {
		c.String(http.StatusBadRequest, msgMissingParameters)
		return
	}

	activity, err := h.analytics.MonthlyActivity(ctx, userID, month)
	if err != nil {
		span.RecordError(err)
		pkgzerolog.FromContext(ctx).Warn().Err(err).Str("user_id", userID).Str("month", month).Msg("Monthly activity rejected")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// UserStatus handles GET /userStatus?userId=.
func (h *Handler) UserStatus(c *gin.Context) {
	ctx, span := startRequestSpan(c)
	defer span.End()

	userID := c.Query("userId")
	if userID == "" {
		c.String(http.StatusBadRequest, msgMissingUserID)
		return
	}

	status, err := h.analytics.UserStatus(ctx, userID)
	if err != nil {
		span.RecordError(err)
		pkgzerolog.FromContext(ctx).Error().Err(err).Str("user_id", userID).Msg("User status failed")
		writeError(c, err)
		return
	}

	c.String(http.StatusOK, "User status: %s", status)
}

// LastSessionDate handles GET /lastSessionDate?userId=.
func (h *Handler) LastSessionDate(c *gin.Context) {
	ctx, span := startRequestSpan(c)
	defer span.End()

	userID := c.Query("userId")
	if userID == "" {
		c.String(http.StatusBadRequest, msgMissingUserID)
		return
	}

	date, found, err := h.analytics.LastSessionDate(ctx, userID)
	if err != nil {
		span.RecordError(err)
		pkgzerolog.FromContext(ctx).Error().Err(err).Str("user_id", userID).Msg("Last session date failed")
		writeError(c, err)
		return
	}
	if !found {
		c.String(http.StatusOK, "No sessions")
		return
	}

	c.String(http.StatusOK, "Last session date: %s", date)
}

func startRequestSpan(c *gin.Context) (context.Context, trace.Span) {
	return middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
}

// writeError maps engine errors onto 400 responses; anything unrecognised is a 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, logicv1.ErrMissingParameters), errors.Is(err, logicv1.ErrInvalidInput):
		c.String(http.StatusBadRequest, msgMissingParameters)
	case errors.Is(err, logicv1.ErrInvalidData):
		c.String(http.StatusBadRequest, "Invalid data: %v", err)
	case errors.Is(err, logicv1.ErrInvalidFormat):
		c.String(http.StatusBadRequest, msgInvalidFormat)
	case errors.Is(err, logicv1.ErrInvalidArgument):
		c.String(http.StatusBadRequest, msgInvalidArgument)
	case errors.Is(err, logicv1.ErrInvalidSessionOrder):
		c.String(http.StatusBadRequest, msgSessionOrder)
	case errors.Is(err, logicv1.ErrDuplicateUser):
		c.String(http.StatusBadRequest, msgDuplicateUser)
	case errors.Is(err, logicv1.ErrUserNotFound):
		c.String(http.StatusBadRequest, msgUserNotFound)
	default:
		c.String(http.StatusInternalServerError, msgInternal)
	}
}
