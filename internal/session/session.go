package session

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Session is the explicit session context of one request. It reads the stored token at most
// once and satisfies access.TokenSource.
type Session struct {
	ctx     context.Context
	store   Store
	id      string
	logger  *zap.Logger
	onClear func()

	loaded  bool
	token   string
	present bool
}

// New binds a request context to the session id. An empty id is a session without token.
func New(ctx context.Context, store Store, id string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{ctx: ctx, store: store, id: strings.TrimSpace(id), logger: logger}
}

// OnClear registers a hook run after the token is removed, e.g. to expire the cookie.
func (s *Session) OnClear(fn func()) { s.onClear = fn }

func (s *Session) ID() string { return s.id }

func (s *Session) Token() (string, bool) {
	if s.loaded {
		return s.token, s.present
	}
	s.loaded = true
	if s.id == "" || s.store == nil {
		return "", false
	}
	tok, found, err := s.store.Load(s.ctx, s.id)
	if err != nil {
		s.logger.Warn("session load failed", zap.String("session_id", s.id), zap.Error(err))
		return "", false
	}
	s.token, s.present = tok, found && tok != ""
	return s.token, s.present
}

func (s *Session) Clear() {
	s.loaded, s.token, s.present = true, "", false
	if s.id != "" && s.store != nil {
		if err := s.store.Delete(s.ctx, s.id); err != nil {
			s.logger.Warn("session delete failed", zap.String("session_id", s.id), zap.Error(err))
		}
	}
	if s.onClear != nil {
		s.onClear()
	}
}

// Adopt stores a token issued elsewhere under this session, creating an id when needed.
func (s *Session) Adopt(token string) error {
	if s.id == "" {
		s.id = NewID()
	}
	if err := s.store.Save(s.ctx, s.id, token); err != nil {
		return err
	}
	s.loaded, s.token, s.present = true, token, true
	return nil
}
