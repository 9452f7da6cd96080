package game

// Store owns every live session, keyed by codeword. Map edits (create,
// delete, rekey) are serialized against lookups by the store lock; all
// per-session state is guarded by the session's own mutex.

import "sync"

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new lobby session with the caller as sole admin and
// returns it together with its codeword. Freshly drawn codewords are not
// de-duplicated; a collision overwrites the older entry.
func (st *Store) Create(connID, playerName, language string) *Session {
	if language == "" {
		language = defaultLanguage
	}
	codeword := NewCodeword(language)
	s := newSession(codeword, connID, playerName, language)

	st.mu.Lock()
	st.sessions[codeword] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(codeword string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[codeword]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *Store) Delete(codeword string) {
	st.mu.Lock()
	delete(st.sessions, codeword)
	st.mu.Unlock()
}

// Rekey moves a session to a fresh codeword in the given language and
// returns the new key. The old key is removed and the new one inserted under
// a single hold of the store lock, so a concurrent lookup resolves against
// either the fully-old or fully-new codeword, never a half-moved state.
func (st *Store) Rekey(oldCodeword, language string) (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[oldCodeword]
	if !ok {
		return "", ErrSessionNotFound
	}
	newCodeword := NewCodeword(language)
	delete(st.sessions, oldCodeword)
	s.setCodeword(newCodeword)
	st.sessions[newCodeword] = s
	return newCodeword, nil
}

// FindByConn scans for the session owning a player bound to connID. Used by
// the disconnect handler, which only knows the connection.
func (st *Store) FindByConn(connID string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, s := range st.sessions {
		if _, ok := s.PlayerByConn(connID); ok {
			return s, true
		}
	}
	return nil, false
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
