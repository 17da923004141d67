// internal/state/mock.go
package state

import (
	"database/sql"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	prefs     *UIPrefs
	session   *LastfmSession
	scrobbles []PendingScrobble
	nextID    int64
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveUIPrefs(prefs UIPrefs) { m.prefs = &prefs }

func (m *Mock) GetUIPrefs() (*UIPrefs, error) {
	return m.prefs, nil
}

func (m *Mock) GetLastfmSession() (*LastfmSession, error) {
	return m.session, nil
}

func (m *Mock) SaveLastfmSession(username, sessionKey string) error {
	m.session = &LastfmSession{Username: username, SessionKey: sessionKey, LinkedAt: time.Now()}
	return nil
}

func (m *Mock) DeleteLastfmSession() error {
	m.session = nil
	return nil
}

func (m *Mock) AddPendingScrobble(s PendingScrobble) error {
	m.nextID++
	s.ID = m.nextID
	s.CreatedAt = time.Now()
	m.scrobbles = append(m.scrobbles, s)
	return nil
}

func (m *Mock) GetPendingScrobbles() ([]PendingScrobble, error) {
	return append([]PendingScrobble(nil), m.scrobbles...), nil
}

func (m *Mock) DeletePendingScrobble(id int64) error {
	for i, s := range m.scrobbles {
		if s.ID == id {
			m.scrobbles = append(m.scrobbles[:i], m.scrobbles[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Mock) UpdatePendingScrobbleAttempt(id int64, errMsg string) error {
	for i := range m.scrobbles {
		if m.scrobbles[i].ID == id {
			m.scrobbles[i].Attempts++
			m.scrobbles[i].LastError = errMsg
			break
		}
	}
	return nil
}

func (m *Mock) DeleteOldPendingScrobbles(maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)
	kept := m.scrobbles[:0]
	for _, s := range m.scrobbles {
		if s.CreatedAt.After(cutoff) {
			kept = append(kept, s)
		}
	}
	m.scrobbles = kept
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetUIPrefs(prefs UIPrefs) { m.prefs = &prefs }

func (m *Mock) SetLastfmSession(session *LastfmSession) { m.session = session }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
