package domain

import "time"

// Session is one login/logout interval attributed to a user.
// Times are naive wall-clock values held in UTC.
// LogoutTime is nil for sessions that were never closed; the engine never
// stores such sessions, but aggregation must tolerate them.
type Session struct {
	LoginTime  time.Time
	LogoutTime *time.Time
}

// NewSession builds a closed session.
func NewSession(login, logout time.Time) Session {
	return Session{LoginTime: login, LogoutTime: &logout}
}

// Duration returns logout minus login, or false when the session is open.
func (s Session) Duration() (time.Duration, bool) {
	if s.LogoutTime == nil {
		return 0, false
	}
	return s.LogoutTime.Sub(s.LoginTime), true
}
