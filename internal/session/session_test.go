package session

import (
	"path/filepath"
	"testing"

	"github.com/zalando/go-keyring"

	"roozberooz/internal/storage"
)

// fakeKeyring swaps the real keyring functions for a map.
func fakeKeyring(t *testing.T) map[string]string {
	t.Helper()
	entries := make(map[string]string)

	origGet, origSet, origDelete := keyringGet, keyringSet, keyringDelete
	keyringGet = func(service, user string) (string, error) {
		v, ok := entries[service+"/"+user]
		if !ok {
			return "", keyring.ErrNotFound
		}
		return v, nil
	}
	keyringSet = func(service, user, password string) error {
		entries[service+"/"+user] = password
		return nil
	}
	keyringDelete = func(service, user string) error {
		if _, ok := entries[service+"/"+user]; !ok {
			return keyring.ErrNotFound
		}
		delete(entries, service+"/"+user)
		return nil
	}
	t.Cleanup(func() {
		keyringGet, keyringSet, keyringDelete = origGet, origSet, origDelete
	})

	return entries
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	provider := storage.NewJSONStore(filepath.Join(dir, "roozberooz.json"))
	if err := provider.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return NewManager(provider, dir)
}

func TestLoginLogout(t *testing.T) {
	fakeKeyring(t)
	m := newTestManager(t)

	if _, err := m.Current(); err != ErrNotLoggedIn {
		t.Errorf("Current before login = %v, want ErrNotLoggedIn", err)
	}

	if err := m.Login("09123456789"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	scope, err := m.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if scope != "09123456789" {
		t.Errorf("Current = %q", scope)
	}

	if err := m.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := m.Current(); err != ErrNotLoggedIn {
		t.Errorf("Current after logout = %v, want ErrNotLoggedIn", err)
	}

	// Logging out twice is fine.
	if err := m.Logout(); err != nil {
		t.Errorf("second Logout failed: %v", err)
	}
}

func TestLogin_EmptyIdentity(t *testing.T) {
	fakeKeyring(t)
	m := newTestManager(t)

	if err := m.Login("  "); err == nil {
		t.Error("expected error for empty identity")
	}
}

func TestLogin_FallsBackToFileWithoutKeyring(t *testing.T) {
	entries := fakeKeyring(t)
	_ = entries
	// Make every keyring call fail to force the file path.
	keyringSet = func(service, user, password string) error {
		return keyring.ErrUnsupportedPlatform
	}
	keyringGet = func(service, user string) (string, error) {
		return "", keyring.ErrUnsupportedPlatform
	}

	m := newTestManager(t)
	if err := m.Login("user-1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	scope, err := m.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if scope != "user-1" {
		t.Errorf("Current = %q, want file-backed identity", scope)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	fakeKeyring(t)
	m := newTestManager(t)

	if err := m.Login("user-1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	p, err := m.Profile()
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if p.SetupComplete {
		t.Error("fresh profile should not be setup-complete")
	}

	p.FirstName = "Sara"
	p.LastName = "Ahmadi"
	if err := m.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := m.Profile()
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if got.FirstName != "Sara" || !got.SetupComplete {
		t.Errorf("Profile = %+v", got)
	}
}
