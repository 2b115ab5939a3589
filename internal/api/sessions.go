package api

import (
	"context"
	"time"

	"serwer-pulpitu/internal/auth"
	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/models"
)

func sessionsKey(desktopID string) string {
	return "desktop/" + desktopID + "/sessions"
}

func (s *Server) loadSessions(ctx context.Context, desktopID string) ([]models.Session, error) {
	return kv.LoadJSON(ctx, s.backend, sessionsKey(desktopID), []models.Session{})
}

// updateSessions rewrites the session list of a desktop, dropping expired
// entries on the way.
func (s *Server) updateSessions(ctx context.Context, desktopID string, change func([]models.Session) []models.Session) error {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	current, err := s.loadSessions(ctx, desktopID)
	if err != nil {
		return err
	}

	now := time.Now()
	live := current[:0]
	for _, sess := range current {
		if sess.ExpiresAt.After(now) {
			live = append(live, sess)
		}
	}

	return kv.SaveJSON(ctx, s.backend, sessionsKey(desktopID), change(live))
}

func (s *Server) addSession(ctx context.Context, session models.Session) error {
	return s.updateSessions(ctx, session.DesktopID, func(list []models.Session) []models.Session {
		return append(list, session)
	})
}

func (s *Server) removeSessions(ctx context.Context, desktopID string, match func(models.Session) bool) (int, error) {
	removed := 0
	err := s.updateSessions(ctx, desktopID, func(list []models.Session) []models.Session {
		kept := list[:0]
		for _, sess := range list {
			if match(sess) {
				removed++
				continue
			}
			kept = append(kept, sess)
		}
		return kept
	})
	return removed, err
}

func (s *Server) sessionActive(ctx context.Context, claims *auth.AppClaims) (bool, error) {
	list, err := s.loadSessions(ctx, claims.DesktopID)
	if err != nil {
		return false, err
	}
	now := time.Now()
	for _, sess := range list {
		if sess.ID == claims.SessionID {
			return sess.ExpiresAt.After(now), nil
		}
	}
	return false, nil
}
