package v1

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/duynhne/user-analytics-service/internal/core/domain"
	"github.com/duynhne/user-analytics-service/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AnalyticsService implements session recording and activity analytics.
// It depends on the SessionStore interface (injected via constructor) and
// owns all validation of time-related and numeric inputs.
type AnalyticsService struct {
	store domain.SessionStore
	now   func() time.Time
}

// Option configures an AnalyticsService.
type Option func(*AnalyticsService)

// WithClock overrides the clock used for inactivity cutoffs.
func WithClock(now func() time.Time) Option {
	return func(s *AnalyticsService) {
		s.now = now
	}
}

// NewAnalyticsService creates a new AnalyticsService backed by the given store.
func NewAnalyticsService(store domain.SessionStore, opts ...Option) *AnalyticsService {
	s := &AnalyticsService{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user. Returns ErrDuplicateUser when userID is taken.
func (s *AnalyticsService) Register(ctx context.Context, userID, userName string) (bool, error) {
	ctx, span := middleware.StartSpan(ctx, "analytics.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.id", userID),
	))
	defer span.End()

	if userID == "" || userName == "" {
		return false, fmt.Errorf("register user: %w", ErrInvalidInput)
	}

	if err := s.store.RegisterUser(ctx, userID, userName); err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrUserExists) {
			span.SetAttributes(attribute.Bool("registration.success", false))
			return false, fmt.Errorf("register user %q: %w", userID, ErrDuplicateUser)
		}
		return false, fmt.Errorf("store user %q: %w", userID, err)
	}

	usersRegistered.Inc()
	span.SetAttributes(attribute.Bool("registration.success", true))
	span.AddEvent("user.registered")
	return true, nil
}

// RecordSession validates and stores one login/logout interval.
// Validation order: presence, parsing, ordering, user existence.
func (s *AnalyticsService) RecordSession(ctx context.Context, userID, loginTimeText, logoutTimeText string) (err error) {
	ctx, span := middleware.StartSpan(ctx, "analytics.record_session", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.id", userID),
	))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			sessionsRecorded.WithLabelValues(outcomeRejected).Inc()
		}
	}()

	if userID == "" || loginTimeText == "" || logoutTimeText == "" {
		return fmt.Errorf("record session: %w", ErrMissingParameters)
	}

	login, err := ParseDateTime(loginTimeText)
	if err != nil {
		return fmt.Errorf("record session loginTime: %w", err)
	}
	logout, err := ParseDateTime(logoutTimeText)
	if err != nil {
		return fmt.Errorf("record session logoutTime: %w", err)
	}

	if !login.Before(logout) {
		return fmt.Errorf("record session %s..%s: %w", loginTimeText, logoutTimeText, ErrInvalidSessionOrder)
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	if err := s.store.AddSession(ctx, userID, login, logout); err != nil {
		return fmt.Errorf("store session for %q: %w", userID, err)
	}

	minutes := wholeMinutes(logout.Sub(login))
	sessionsRecorded.WithLabelValues(outcomeRecorded).Inc()
	sessionMinutes.Observe(float64(minutes))
	span.SetAttributes(attribute.Int64("session.minutes", minutes))
	span.AddEvent("session.recorded")
	return nil
}

// TotalActivityTime sums the user's session durations in whole minutes.
// Unknown users and users without sessions yield 0.
func (s *AnalyticsService) TotalActivityTime(ctx context.Context, userID string) (int64, error) {
	ctx, span := middleware.StartSpan(ctx, "analytics.total_activity", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.id", userID),
	))
	defer span.End()

	sessions, err := s.store.GetSessions(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("query sessions for %q: %w", userID, err)
	}

	var total int64
	for _, sess := range sessions {
		if d, ok := sess.Duration(); ok {
			total += wholeMinutes(d)
		}
	}

	span.SetAttributes(attribute.Int64("activity.minutes", total))
	return total, nil
}

// UserStatus classifies the user's total activity time.
func (s *AnalyticsService) UserStatus(ctx context.Context, userID string) (string, error) {
	total, err := s.TotalActivityTime(ctx, userID)
	if err != nil {
		return "", err
	}
	return ClassifyActivity(total), nil
}

// LastSessionDate returns the calendar date (yyyy-MM-dd) of the session with
// the latest logout. Sessions without a logout are ignored. The boolean is
// false when no session qualifies.
func (s *AnalyticsService) LastSessionDate(ctx context.Context, userID string) (string, bool, error) {
	ctx, span := middleware.StartSpan(ctx, "analytics.last_session_date", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.id", userID),
	))
	defer span.End()

	sessions, err := s.store.GetSessions(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return "", false, fmt.Errorf("query sessions for %q: %w", userID, err)
	}

	last, ok := latestLogout(sessions)
	if !ok {
		span.SetAttributes(attribute.Bool("session.found", false))
		return "", false, nil
	}

	span.SetAttributes(attribute.Bool("session.found", true))
	return last.Format(DateLayout), true, nil
}

// InactiveUsers lists users with no sessions or whose latest logout is at or
// before now minus the given number of days. Results follow registration order.
func (s *AnalyticsService) InactiveUsers(ctx context.Context, daysText string) ([]string, error) {
	ctx, span := middleware.StartSpan(ctx, "analytics.inactive_users", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if daysText == "" {
		return nil, fmt.Errorf("inactive users: %w", ErrMissingParameters)
	}

	days, err := ParseDays(daysText)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("inactive users: %w", err)
	}

	cutoff := WallClock(s.now()).AddDate(0, 0, -days)
	span.SetAttributes(attribute.Int("inactivity.days", days))

	users, err := s.store.Users(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	inactive := make([]string, 0)
	for _, u := range users {
		sessions, err := s.store.GetSessions(ctx, u.ID)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("query sessions for %q: %w", u.ID, err)
		}
		last, ok := latestLogout(sessions)
		if !ok || !last.After(cutoff) {
			inactive = append(inactive, u.ID)
		}
	}

	span.SetAttributes(attribute.Int("inactivity.count", len(inactive)))
	return inactive, nil
}

// MonthlyActivity buckets the user's session minutes by login date for the
// sessions whose login falls inside the given yyyy-MM month. A session that
// starts before the month is excluded even if it ends inside it.
func (s *AnalyticsService) MonthlyActivity(ctx context.Context, userID, monthText string) (map[string]int64, error) {
	ctx, span := middleware.StartSpan(ctx, "analytics.monthly_activity", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.id", userID),
		attribute.String("month", monthText),
	))
	defer span.End()

	if userID == "" || monthText == "" {
		return nil, fmt.Errorf("monthly activity: %w", ErrMissingParameters)
	}

	month, err := ParseMonth(monthText)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("monthly activity: %w", err)
	}

	sessions, err := s.store.GetSessions(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query sessions for %q: %w", userID, err)
	}

	buckets := make(map[string]int64)
	for _, sess := range sessions {
		if sess.LoginTime.Year() != month.Year() || sess.LoginTime.Month() != month.Month() {
			continue
		}
		d, ok := sess.Duration()
		if !ok {
			continue
		}
		buckets[sess.LoginTime.Format(DateLayout)] += wholeMinutes(d)
	}

	span.SetAttributes(attribute.Int("activity.days", len(buckets)))
	return buckets, nil
}

func (s *AnalyticsService) requireUser(ctx context.Context, userID string) error {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("query user %q: %w", userID, err)
	}
	if user == nil {
		return fmt.Errorf("record session for %q: %w", userID, ErrUserNotFound)
	}
	return nil
}

// latestLogout returns the maximum logout time among closed sessions.
func latestLogout(sessions []domain.Session) (time.Time, bool) {
	var (
		latest time.Time
		found  bool
	)
	for _, sess := range sessions {
		if sess.LogoutTime == nil {
			continue
		}
		if !found || sess.LogoutTime.After(latest) {
			latest = *sess.LogoutTime
			found = true
		}
	}
	return latest, found
}
