package game

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the authoritative state for one running game, keyed by codeword.
// Every field access goes through mu; snapshots are taken under the lock and
// broadcast outside it.
type Session struct {
	ID        string
	CreatedAt time.Time

	codeword string
	stage    Stage
	players  map[string]*Player // connection id -> player
	settings Settings

	wordPool         []WordEntry
	totalRounds      int
	currentRound     int
	currentWord      string
	currentCategory  string
	currentImpostors []string

	mu sync.Mutex
}

func newSession(codeword, connID, adminName, language string) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		codeword:  codeword,
		stage:     StageLobby,
		players:   make(map[string]*Player),
		settings:  DefaultSettings(language),
	}
	s.players[connID] = &Player{
		ID:      connID,
		Name:    adminName,
		IsAdmin: true,
		Words:   []WordEntry{},
	}
	return s
}

func (s *Session) Codeword() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codeword
}

func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *Session) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// setCodeword is called by the store during rekey, with the store lock held.
func (s *Session) setCodeword(codeword string) {
	s.mu.Lock()
	s.codeword = codeword
	s.mu.Unlock()
}

// Join adds a fresh non-admin player bound to connID. Duplicate names are
// accepted; only rejoin matching assumes name uniqueness.
func (s *Session) Join(connID, name string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageLobby {
		return nil, ErrGameInProgress
	}
	p := &Player{ID: connID, Name: name, Words: []WordEntry{}}
	s.players[connID] = p
	return p, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Rejoin resumes an existing identity by name match (trimmed,
// case-insensitive), rebinding it to connID. With no match it degrades to a
// fresh join while the session is still in the lobby; once gameplay has
// started an identity can only be resumed, never invented.
func (s *Session) Rejoin(connID, name string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := normalizeName(name)
	for oldID, p := range s.players {
		if normalizeName(p.Name) != want {
			continue
		}
		if oldID != connID {
			delete(s.players, oldID)
			p.ID = connID
			s.players[connID] = p
		}
		return p, nil
	}

	if s.stage == StageLobby {
		p := &Player{ID: connID, Name: name, Words: []WordEntry{}}
		s.players[connID] = p
		return p, nil
	}
	return nil, ErrPlayerNotFound
}

// PlayerByConn returns a copy of the player currently bound to connID.
func (s *Session) PlayerByConn(connID string) (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[connID]
	if !ok {
		return Player{}, false
	}
	return *p, true
}

func (s *Session) IsAdmin(connID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[connID]
	return ok && p.IsAdmin
}

// RemovePlayer drops the roster entry for connID, returning the removed
// player. Used for explicit leaves and for lobby/finished disconnects.
func (s *Session) RemovePlayer(connID string) (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[connID]
	if !ok {
		return Player{}, false
	}
	delete(s.players, connID)
	return *p, true
}

// AdminRejoined reports whether an admin with the given name is present
// under a connection id other than oldID. The grace timer calls this at fire
// time; a rejoined admin inherits the old player record with a new id, so
// the check observing live state is all the cancellation that is needed.
func (s *Session) AdminRejoined(name, oldID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := normalizeName(name)
	for id, p := range s.players {
		if p.IsAdmin && normalizeName(p.Name) == want && id != oldID {
			return true
		}
	}
	return false
}

// SubmitWords records a player's words, marks them ready, and rebuilds the
// whole pool from every player's words so resubmission stays idempotent.
// Accepted during word entry and while waiting for the admin to start, and,
// for late joiners feeding a future restart, during play — where the live
// pool is left alone so round consumption stays intact. Auto-advances to
// waiting_words once everyone is ready.
func (s *Session) SubmitWords(connID string, words []WordEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[connID]
	if !ok {
		return ErrPlayerNotFound
	}
	if s.stage != StageWordEntry && s.stage != StageWaitingWords && s.stage != StagePlaying {
		return ErrInvalidStage
	}
	p.Words = words
	p.IsReady = true

	switch s.stage {
	case StageWordEntry:
		s.rebuildWordPool()
		if s.allReady() {
			s.stage = StageWaitingWords
		}
	case StageWaitingWords:
		s.rebuildWordPool()
	}
	return nil
}

func (s *Session) rebuildWordPool() {
	s.wordPool = s.wordPool[:0]
	for _, p := range s.players {
		s.wordPool = append(s.wordPool, p.Words...)
	}
}

func (s *Session) allReady() bool {
	for _, p := range s.players {
		if !p.IsReady {
			return false
		}
	}
	return len(s.players) > 0
}

// StartGame is the admin's stage-dependent advance: lobby -> word entry (or
// straight to waiting_words with a generated pool when players don't enter
// words), waiting_words -> playing with the first round started.
func (s *Session) StartGame(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[connID]
	if !ok || !p.IsAdmin {
		return ErrNotAdmin
	}

	switch s.stage {
	case StageLobby:
		if !s.settings.UsersEnterWords {
			s.wordPool = GenerateWordPool(len(s.players), s.settings.WordsPerPlayer, s.settings.Language)
			for _, pl := range s.players {
				pl.IsReady = true
			}
			s.stage = StageWaitingWords
			return nil
		}
		s.stage = StageWordEntry
		return nil
	case StageWaitingWords:
		if len(s.wordPool) == 0 {
			return ErrEmptyWordPool
		}
		s.stage = StagePlaying
		s.totalRounds = len(s.wordPool)
		s.currentRound = 0
		s.startRound()
		return nil
	default:
		return ErrInvalidStage
	}
}

// NextRound advances the round counter; reaching the total finishes the game
// instead of starting another round.
func (s *Session) NextRound(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[connID]
	if !ok || !p.IsAdmin {
		return ErrNotAdmin
	}
	if s.stage != StagePlaying {
		return ErrInvalidStage
	}
	s.currentRound++
	if s.currentRound >= s.totalRounds {
		s.finish()
		return nil
	}
	s.startRound()
	return nil
}

// startRound consumes one pool entry at random and draws the round's
// impostors. Called with mu held.
func (s *Session) startRound() {
	if len(s.wordPool) == 0 {
		s.finish()
		return
	}
	i := rand.Intn(len(s.wordPool))
	entry := s.wordPool[i]
	s.wordPool = append(s.wordPool[:i], s.wordPool[i+1:]...)
	s.currentWord = entry.Word
	s.currentCategory = entry.Category

	ids := make([]string, 0, len(s.players))
	for id := range s.players {
		ids = append(ids, id)
	}
	want := s.settings.NumImpostors
	if want > len(ids) {
		want = len(ids)
	}
	impostors := make(map[string]struct{}, want)
	for len(impostors) < want {
		impostors[ids[rand.Intn(len(ids))]] = struct{}{}
	}
	s.currentImpostors = s.currentImpostors[:0]
	for id := range impostors {
		s.currentImpostors = append(s.currentImpostors, id)
	}
}

func (s *Session) finish() {
	s.stage = StageFinished
	s.currentWord = ""
	s.currentCategory = ""
	s.currentImpostors = nil
}

// Restart returns to word entry from any stage, keeping roster and settings
// but clearing every player's words, the pool, and all round state.
func (s *Session) Restart(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[connID]
	if !ok || !p.IsAdmin {
		return ErrNotAdmin
	}
	for _, pl := range s.players {
		pl.Words = []WordEntry{}
		pl.IsReady = false
	}
	s.wordPool = nil
	s.totalRounds = 0
	s.currentRound = 0
	s.currentWord = ""
	s.currentCategory = ""
	s.currentImpostors = nil
	s.stage = StageWordEntry
	return nil
}

// UpdateSettings overwrites the session settings. It reports whether the
// language changed while in the lobby, which obliges the caller to migrate
// the codeword (store rekey + room move) before broadcasting.
func (s *Session) UpdateSettings(connID string, settings Settings) (languageChanged bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[connID]
	if !ok || !p.IsAdmin {
		return false, ErrNotAdmin
	}
	if settings.NumImpostors < 1 {
		settings.NumImpostors = 1
	}
	if settings.WordsPerPlayer < 1 {
		settings.WordsPerPlayer = 1
	}
	if settings.WordsPerPlayer > 10 {
		settings.WordsPerPlayer = 10
	}
	old := s.settings.Language
	s.settings = settings
	return old != settings.Language && s.stage == StageLobby, nil
}

// Snapshot deep-copies the session into its wire representation.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := make(map[string]*Player, len(s.players))
	for id, p := range s.players {
		cp := *p
		cp.Words = append([]WordEntry(nil), p.Words...)
		players[id] = &cp
	}
	return State{
		Codeword:         s.codeword,
		Stage:            s.stage,
		Players:          players,
		Settings:         s.settings,
		WordPool:         append([]WordEntry(nil), s.wordPool...),
		TotalRounds:      s.totalRounds,
		CurrentRound:     s.currentRound,
		CurrentWord:      s.currentWord,
		CurrentCategory:  s.currentCategory,
		CurrentImpostors: append([]string(nil), s.currentImpostors...),
	}
}
