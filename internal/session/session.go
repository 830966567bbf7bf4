// Package session provides the simulated local identity. Its only promise
// to the rest of the application is a scope string under which one user's
// persisted data is isolated from another's on the same device.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"

	"roozberooz/internal/constants"
	"roozberooz/internal/logger"
	"roozberooz/internal/models"
	"roozberooz/internal/storage"
)

var (
	// ErrNotLoggedIn is returned when no identity is stored on this device
	ErrNotLoggedIn = errors.New("not logged in")
)

// Swappable for tests and for systems without a keyring daemon.
var (
	keyringGet    = keyring.Get
	keyringSet    = keyring.Set
	keyringDelete = keyring.Delete
)

// Manager remembers which identity is signed in and serves its profile.
// The identity itself lives in the OS keyring when available, with a plain
// file under the config directory as fallback.
type Manager struct {
	provider  storage.Provider
	configDir string
}

func NewManager(provider storage.Provider, configDir string) *Manager {
	return &Manager{
		provider:  provider,
		configDir: configDir,
	}
}

func (m *Manager) sessionFile() string {
	return filepath.Join(m.configDir, constants.SessionFileName)
}

// Login stores the given identity as the current session scope.
func (m *Manager) Login(identity string) error {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return errors.New("identity cannot be empty")
	}

	if err := keyringSet(constants.AppName, constants.KeyringSessionUser, identity); err != nil {
		logger.Debug("keyring unavailable, using session file", "error", err)
		if err := os.MkdirAll(m.configDir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(m.sessionFile(), []byte(identity), 0600); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}
	}
	return nil
}

// Logout forgets the current identity. Logging out while not logged in is
// not an error.
func (m *Manager) Logout() error {
	if err := keyringDelete(constants.AppName, constants.KeyringSessionUser); err != nil && err != keyring.ErrNotFound {
		logger.Debug("keyring delete failed", "error", err)
	}
	if err := os.Remove(m.sessionFile()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Current returns the signed-in identity scope, or ErrNotLoggedIn.
func (m *Manager) Current() (string, error) {
	identity, err := keyringGet(constants.AppName, constants.KeyringSessionUser)
	if err == nil && identity != "" {
		return identity, nil
	}
	if err != nil && err != keyring.ErrNotFound {
		logger.Debug("keyring unavailable, trying session file", "error", err)
	}

	data, err := os.ReadFile(m.sessionFile())
	if err != nil {
		return "", ErrNotLoggedIn
	}
	identity = strings.TrimSpace(string(data))
	if identity == "" {
		return "", ErrNotLoggedIn
	}
	return identity, nil
}

// Profile returns the profile stored for the current identity.
func (m *Manager) Profile() (models.Profile, error) {
	scope, err := m.Current()
	if err != nil {
		return models.Profile{}, err
	}
	return m.provider.LoadProfile(scope)
}

// SaveProfile stores the profile for the current identity and marks the
// setup step complete.
func (m *Manager) SaveProfile(profile models.Profile) error {
	scope, err := m.Current()
	if err != nil {
		return err
	}
	profile.SetupComplete = true
	return m.provider.SaveProfile(scope, profile)
}
