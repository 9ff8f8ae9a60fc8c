package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tastebud-app/tastebud/internal/types"
)

// CredentialStore persists the authorization token between operations.
// Dispatchers read it on every authenticated call and write it on
// sign-in/sign-up success and logout.
//
// Writes are synchronous: SetToken/ClearToken return only once the
// token is durable, so a success action dispatched afterwards can never
// race a UI transition into reading stale credentials. A logout racing
// an in-flight authenticated call remains possible; the call then fails
// with an authorization error like any other expired session.
type CredentialStore interface {
	GetToken() string
	SetToken(token string) error
	ClearToken() error
	// DecodeToken returns the claims of the held token without
	// verifying its signature (the client holds no secret), or nil
	// when no usable token is present.
	DecodeToken() *types.TokenClaims
}

// decodeClaims parses token claims without signature verification.
func decodeClaims(token string) *types.TokenClaims {
	if token == "" {
		return nil
	}
	claims := &types.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

// FileStore keeps the token in a mode-0600 file, the durable local
// storage backing a CLI or desktop session.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store writing to path. Parent directories are
// created on the first SetToken.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) GetToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func (f *FileStore) SetToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *FileStore) ClearToken() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *FileStore) DecodeToken() *types.TokenClaims {
	return decodeClaims(f.GetToken())
}

// MemoryStore holds the token in memory; it backs tests and throwaway
// sessions.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) GetToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MemoryStore) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func (m *MemoryStore) DecodeToken() *types.TokenClaims {
	return decodeClaims(m.GetToken())
}
