package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ceylon_stays/internal/app"
	"ceylon_stays/internal/domain"
)

// TokenStore persists the session token between runs.
type TokenStore interface {
	Read() (string, error)
	Write(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file under the user's config
// directory. Reads of a missing file return an empty token, not an error.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore() (*FileTokenStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileTokenStore{path: filepath.Join(dir, "ceylon_stays", "token")}, nil
}

func NewFileTokenStoreAt(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (f *FileTokenStore) Read() (string, error) {
	b, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Write replaces the token atomically: temp file in the same directory,
// then rename.
func (f *FileTokenStore) Write(token string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "token-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, f.path)
}

func (f *FileTokenStore) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// authAPI is the slice of Client a Session needs.
type authAPI interface {
	Login(ctx context.Context, email, password string) (app.AuthResult, error)
	Register(ctx context.Context, in app.RegisterInput) (app.AuthResult, error)
	Me(ctx context.Context) (domain.User, error)
	SetToken(tok string)
}

// Session holds the client-side auth state: the current user, the bearer
// token, and its durable copy. A failed login leaves the previous state
// untouched.
type Session struct {
	api   authAPI
	store TokenStore

	mu    sync.RWMutex
	user  *domain.User
	token string
}

func NewSession(api authAPI, store TokenStore) *Session {
	return &Session{api: api, store: store}
}

// Restore loads the durable token, if any, and fetches the current user with
// it. An invalid or expired stored token clears the durable copy and leaves
// the session logged out. Transient failures (server unreachable, cancelled
// context) leave the durable token in place for the next attempt and return
// the error; only a definitive rejection by the server discards it.
func (s *Session) Restore(ctx context.Context) error {
	tok, err := s.store.Read()
	if err != nil {
		return err
	}
	if tok == "" {
		return nil
	}
	s.api.SetToken(tok)
	u, err := s.api.Me(ctx)
	if err != nil {
		s.api.SetToken("")
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrInvalidCredentials) {
			_ = s.store.Clear()
			return nil
		}
		return err
	}
	s.mu.Lock()
	s.user = &u
	s.token = tok
	s.mu.Unlock()
	return nil
}

func (s *Session) Login(ctx context.Context, email, password string) (domain.User, error) {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}
	s.adopt(res)
	return res.User, nil
}

func (s *Session) Register(ctx context.Context, in app.RegisterInput) (domain.User, error) {
	res, err := s.api.Register(ctx, in)
	if err != nil {
		return domain.User{}, err
	}
	s.adopt(res)
	return res.User, nil
}

func (s *Session) adopt(res app.AuthResult) {
	s.mu.Lock()
	u := res.User
	s.user = &u
	s.token = res.Token
	s.mu.Unlock()
	s.api.SetToken(res.Token)
	_ = s.store.Write(res.Token)
}

// Logout drops the in-memory state and the durable token.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.api.SetToken("")
	return s.store.Clear()
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// CurrentUser returns a copy of the logged-in user, or false when logged out.
func (s *Session) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}
