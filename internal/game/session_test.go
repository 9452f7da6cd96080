package game

import (
	"errors"
	"testing"
)

func createTestSession(t *testing.T) (*Store, *Session) {
	t.Helper()
	st := NewStore()
	s := st.Create("admin-conn", "Alice", "English")
	if s.Stage() != StageLobby {
		t.Fatalf("expected new session in lobby, got %s", s.Stage())
	}
	return st, s
}

func words(n int) []WordEntry {
	out := make([]WordEntry, n)
	for i := range out {
		out[i] = WordEntry{Word: "word", Category: "Nature"}
	}
	return out
}

func TestCreateSessionDefaults(t *testing.T) {
	_, s := createTestSession(t)

	snap := s.Snapshot()
	if snap.Settings.NumImpostors != 1 || snap.Settings.WordsPerPlayer != 3 {
		t.Fatalf("unexpected default settings: %+v", snap.Settings)
	}
	if !snap.Settings.UsersEnterWords {
		t.Fatal("usersEnterWords should default to true")
	}
	if snap.Settings.Language != "English" {
		t.Fatalf("expected language English, got %s", snap.Settings.Language)
	}
	admin, ok := snap.Players["admin-conn"]
	if !ok {
		t.Fatal("creator should be in the roster under their connection id")
	}
	if !admin.IsAdmin {
		t.Fatal("creator should be admin")
	}
	if s.ID == "" {
		t.Fatal("session should carry a stable internal id")
	}
}

func TestJoinOnlyInLobby(t *testing.T) {
	_, s := createTestSession(t)

	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join in lobby should succeed: %v", err)
	}
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	if _, err := s.Join("conn-c", "Carol"); !errors.Is(err, ErrGameInProgress) {
		t.Fatalf("expected ErrGameInProgress, got %v", err)
	}
}

func TestJoinAllowsDuplicateNames(t *testing.T) {
	_, s := createTestSession(t)

	if _, err := s.Join("conn-b1", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := s.Join("conn-b2", "Bob"); err != nil {
		t.Fatalf("duplicate name at join time should be accepted: %v", err)
	}
	if s.PlayerCount() != 3 {
		t.Fatalf("expected 3 players, got %d", s.PlayerCount())
	}
}

func TestRejoinResumesIdentity(t *testing.T) {
	_, s := createTestSession(t)
	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	if err := s.SubmitWords("conn-b", words(3)); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Reconnect with different case and padding; must inherit words and
	// ready flag under the new connection id.
	p, err := s.Rejoin("conn-b2", "  BOB ")
	if err != nil {
		t.Fatalf("rejoin should resume identity: %v", err)
	}
	if p.ID != "conn-b2" {
		t.Fatalf("expected id conn-b2, got %s", p.ID)
	}
	if !p.IsReady || len(p.Words) != 3 {
		t.Fatalf("rejoined player should keep words and ready flag, got ready=%v words=%d", p.IsReady, len(p.Words))
	}
	if _, ok := s.PlayerByConn("conn-b"); ok {
		t.Fatal("old connection id should be gone from the roster")
	}
	if _, ok := s.PlayerByConn("conn-b2"); !ok {
		t.Fatal("player should be reachable under the new connection id")
	}
}

func TestRejoinSameConnectionIsIdempotent(t *testing.T) {
	_, s := createTestSession(t)

	p, err := s.Rejoin("admin-conn", "alice")
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if !p.IsAdmin {
		t.Fatal("admin flag should survive rejoin")
	}
	if s.PlayerCount() != 1 {
		t.Fatalf("expected 1 player, got %d", s.PlayerCount())
	}
}

func TestRejoinDegradesToJoinInLobby(t *testing.T) {
	_, s := createTestSession(t)

	p, err := s.Rejoin("conn-b", "Bob")
	if err != nil {
		t.Fatalf("rejoin with unknown name in lobby should create a player: %v", err)
	}
	if p.IsAdmin {
		t.Fatal("degraded rejoin must not create an admin")
	}
	if s.PlayerCount() != 2 {
		t.Fatalf("expected 2 players, got %d", s.PlayerCount())
	}
}

func TestRejoinRejectedOnceGameStarted(t *testing.T) {
	_, s := createTestSession(t)
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}

	if _, err := s.Rejoin("conn-x", "Mallory"); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	if s.PlayerCount() != 1 {
		t.Fatal("failed rejoin must not create a player")
	}
}

func TestAdminRejoined(t *testing.T) {
	_, s := createTestSession(t)

	if s.AdminRejoined("Alice", "admin-conn") {
		t.Fatal("admin still under the old connection id should not count as rejoined")
	}
	if _, err := s.Rejoin("admin-conn-2", "alice"); err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if !s.AdminRejoined("Alice", "admin-conn") {
		t.Fatal("admin under a new connection id should count as rejoined")
	}
}

func TestSubmitWordsReadyGateAndIdempotency(t *testing.T) {
	_, s := createTestSession(t)
	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}

	if err := s.SubmitWords("conn-b", words(3)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Stage() != StageWordEntry {
		t.Fatalf("stage must not advance before every player is ready, got %s", s.Stage())
	}
	if got := len(s.Snapshot().WordPool); got != 3 {
		t.Fatalf("expected pool of 3, got %d", got)
	}

	// Resubmission replaces the player's words instead of double-counting.
	if err := s.SubmitWords("conn-b", words(2)); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if got := len(s.Snapshot().WordPool); got != 2 {
		t.Fatalf("resubmission should rebuild the pool, expected 2, got %d", got)
	}

	if err := s.SubmitWords("admin-conn", words(3)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Stage() != StageWaitingWords {
		t.Fatalf("all players ready should auto-advance to waiting_words, got %s", s.Stage())
	}
	if got := len(s.Snapshot().WordPool); got != 5 {
		t.Fatalf("expected pool of 5, got %d", got)
	}
}

func TestResubmissionWhileWaitingRebuildsPool(t *testing.T) {
	_, s := createTestSession(t)
	if err := s.SubmitWords("admin-conn", words(3)); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("submitting in the lobby should be rejected, got %v", err)
	}
	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	if err := s.SubmitWords("admin-conn", words(3)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.SubmitWords("conn-b", words(3)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Stage() != StageWaitingWords {
		t.Fatalf("expected waiting_words, got %s", s.Stage())
	}

	// Players can still correct their words until the admin starts the game.
	if err := s.SubmitWords("conn-b", words(2)); err != nil {
		t.Fatalf("resubmit while waiting: %v", err)
	}
	if s.Stage() != StageWaitingWords {
		t.Fatalf("resubmission must not change the stage, got %s", s.Stage())
	}
	if got := len(s.Snapshot().WordPool); got != 5 {
		t.Fatalf("pool should be rebuilt to 5 entries, got %d", got)
	}
	p, ok := s.PlayerByConn("conn-b")
	if !ok || !p.IsReady {
		t.Fatal("resubmitting player should stay ready")
	}
}

func TestSubmitWordsUnknownPlayer(t *testing.T) {
	_, s := createTestSession(t)
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	if err := s.SubmitWords("stranger", words(3)); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestStartGameRequiresAdmin(t *testing.T) {
	_, s := createTestSession(t)
	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := s.StartGame("conn-b"); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}

func TestStartGameEmptyPool(t *testing.T) {
	_, s := createTestSession(t)
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	if err := s.SubmitWords("admin-conn", []WordEntry{}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Stage() != StageWaitingWords {
		t.Fatalf("expected waiting_words, got %s", s.Stage())
	}
	if err := s.StartGame("admin-conn"); !errors.Is(err, ErrEmptyWordPool) {
		t.Fatalf("expected ErrEmptyWordPool, got %v", err)
	}
}

func TestGeneratedPoolWhenUsersDontEnterWords(t *testing.T) {
	_, s := createTestSession(t)
	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	settings := DefaultSettings("English")
	settings.UsersEnterWords = false
	if _, err := s.UpdateSettings("admin-conn", settings); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	snap := s.Snapshot()
	if snap.Stage != StageWaitingWords {
		t.Fatalf("expected waiting_words with a generated pool, got %s", snap.Stage)
	}
	if len(snap.WordPool) != 2*3 {
		t.Fatalf("expected %d generated words, got %d", 2*3, len(snap.WordPool))
	}
	for _, p := range snap.Players {
		if !p.IsReady {
			t.Fatalf("player %s should be marked ready with a generated pool", p.Name)
		}
	}
}

func TestRoundSamplingWithoutReplacement(t *testing.T) {
	_, s := createTestSession(t)
	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}

	submit := func(conn string, ws []WordEntry) {
		t.Helper()
		if err := s.SubmitWords(conn, ws); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	submit("admin-conn", []WordEntry{
		{Word: "tree", Category: "Nature"},
		{Word: "river", Category: "Nature"},
		{Word: "pizza", Category: "Food"},
	})
	submit("conn-b", []WordEntry{
		{Word: "car", Category: "Vehicles"},
		{Word: "train", Category: "Vehicles"},
		{Word: "tennis", Category: "Sport"},
	})

	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("second start game: %v", err)
	}
	snap := s.Snapshot()
	if snap.Stage != StagePlaying {
		t.Fatalf("expected playing, got %s", snap.Stage)
	}
	if snap.TotalRounds != 6 || snap.CurrentRound != 0 {
		t.Fatalf("expected totalRounds=6 currentRound=0, got %d/%d", snap.TotalRounds, snap.CurrentRound)
	}
	if snap.CurrentWord == "" || snap.CurrentCategory == "" {
		t.Fatal("first round should have a word and category")
	}
	if len(snap.CurrentImpostors) != 1 {
		t.Fatalf("expected 1 impostor, got %d", len(snap.CurrentImpostors))
	}

	seen := map[string]int{snap.CurrentWord: 1}
	for round := 1; round < 6; round++ {
		if err := s.NextRound("admin-conn"); err != nil {
			t.Fatalf("next round %d: %v", round, err)
		}
		snap = s.Snapshot()
		if snap.Stage != StagePlaying {
			t.Fatalf("round %d: expected playing, got %s", round, snap.Stage)
		}
		seen[snap.CurrentWord]++
		if got := len(snap.WordPool) + snap.CurrentRound + 1; got != snap.TotalRounds {
			t.Fatalf("round %d: pool+played invariant broken: %d != %d", round, got, snap.TotalRounds)
		}
	}
	if len(seen) != 6 {
		t.Fatalf("every word should be used exactly once, saw %d distinct words", len(seen))
	}

	if err := s.NextRound("admin-conn"); err != nil {
		t.Fatalf("final next round: %v", err)
	}
	snap = s.Snapshot()
	if snap.Stage != StageFinished {
		t.Fatalf("expected finished after the last round, got %s", snap.Stage)
	}
	if snap.CurrentRound != snap.TotalRounds {
		t.Fatalf("currentRound should equal totalRounds at the end, got %d/%d", snap.CurrentRound, snap.TotalRounds)
	}
	if snap.CurrentWord != "" || len(snap.CurrentImpostors) != 0 {
		t.Fatal("round state should be cleared once the game finishes")
	}
}

func TestImpostorCountClampedToRoster(t *testing.T) {
	_, s := createTestSession(t)
	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	settings := DefaultSettings("English")
	settings.NumImpostors = 5
	if _, err := s.UpdateSettings("admin-conn", settings); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	if err := s.SubmitWords("admin-conn", words(1)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.SubmitWords("conn-b", words(1)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("second start game: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.CurrentImpostors) != 2 {
		t.Fatalf("impostor count should clamp to roster size, got %d", len(snap.CurrentImpostors))
	}
	unique := map[string]struct{}{}
	for _, id := range snap.CurrentImpostors {
		if _, ok := snap.Players[id]; !ok {
			t.Fatalf("impostor id %s is not a rostered player", id)
		}
		unique[id] = struct{}{}
	}
	if len(unique) != len(snap.CurrentImpostors) {
		t.Fatal("impostor ids must be distinct")
	}
}

func TestRestartClearsEverythingButRoster(t *testing.T) {
	_, s := createTestSession(t)
	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	if err := s.SubmitWords("admin-conn", words(2)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.SubmitWords("conn-b", words(2)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("second start game: %v", err)
	}

	if err := s.Restart("conn-b"); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("non-admin restart should be rejected, got %v", err)
	}
	if err := s.Restart("admin-conn"); err != nil {
		t.Fatalf("restart: %v", err)
	}

	snap := s.Snapshot()
	if snap.Stage != StageWordEntry {
		t.Fatalf("restart should land in word_entry, got %s", snap.Stage)
	}
	if len(snap.Players) != 2 {
		t.Fatalf("restart must keep the roster, got %d players", len(snap.Players))
	}
	if len(snap.WordPool) != 0 || snap.TotalRounds != 0 || snap.CurrentRound != 0 || snap.CurrentWord != "" {
		t.Fatalf("restart should clear pool and round state: %+v", snap)
	}
	for _, p := range snap.Players {
		if p.IsReady || len(p.Words) != 0 {
			t.Fatalf("restart should reset player %s", p.Name)
		}
	}
}

func TestUpdateSettingsClampsAndAuthorizes(t *testing.T) {
	_, s := createTestSession(t)
	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}

	if _, err := s.UpdateSettings("conn-b", DefaultSettings("English")); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}

	changed, err := s.UpdateSettings("admin-conn", Settings{
		NumImpostors:    0,
		WordsPerPlayer:  42,
		UsersEnterWords: true,
		Language:        "English",
	})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if changed {
		t.Fatal("same language should not request a migration")
	}
	snap := s.Snapshot()
	if snap.Settings.NumImpostors != 1 {
		t.Fatalf("numImpostors should clamp to 1, got %d", snap.Settings.NumImpostors)
	}
	if snap.Settings.WordsPerPlayer != 10 {
		t.Fatalf("wordsPerPlayer should clamp to 10, got %d", snap.Settings.WordsPerPlayer)
	}
}

func TestLanguageChangeRequestsMigrationOnlyInLobby(t *testing.T) {
	_, s := createTestSession(t)

	settings := DefaultSettings("Spanish")
	changed, err := s.UpdateSettings("admin-conn", settings)
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if !changed {
		t.Fatal("language change in lobby should request a codeword migration")
	}

	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	settings.Language = "French"
	changed, err = s.UpdateSettings("admin-conn", settings)
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if changed {
		t.Fatal("language change outside the lobby must not migrate the codeword")
	}
}

func TestLateSubmissionDuringPlayDoesNotTouchPool(t *testing.T) {
	_, s := createTestSession(t)
	if _, err := s.Join("conn-b", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	if err := s.SubmitWords("admin-conn", words(2)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.SubmitWords("conn-b", words(2)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.StartGame("admin-conn"); err != nil {
		t.Fatalf("second start game: %v", err)
	}

	before := len(s.Snapshot().WordPool)
	if err := s.SubmitWords("conn-b", words(3)); err != nil {
		t.Fatalf("submission during play should be accepted: %v", err)
	}
	if got := len(s.Snapshot().WordPool); got != before {
		t.Fatalf("submission during play must not alter the live pool: %d != %d", got, before)
	}
}

// Full walkthrough: create, join, collect words, play all rounds, finish.
func TestFullGameScenario(t *testing.T) {
	st := NewStore()
	s := st.Create("conn-a", "A", "English")
	codeword := s.Codeword()

	if _, err := s.Join("conn-b", "B"); err != nil {
		t.Fatalf("join: %v", err)
	}
	snap := s.Snapshot()
	if snap.Stage != StageLobby || len(snap.Players) != 2 {
		t.Fatalf("expected 2 players in lobby, got %d in %s", len(snap.Players), snap.Stage)
	}

	if err := s.StartGame("conn-a"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	if s.Stage() != StageWordEntry {
		t.Fatalf("expected word_entry, got %s", s.Stage())
	}

	if err := s.SubmitWords("conn-a", words(3)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.SubmitWords("conn-b", words(3)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	snap = s.Snapshot()
	if snap.Stage != StageWaitingWords || len(snap.WordPool) != 6 {
		t.Fatalf("expected waiting_words with pool 6, got %s with %d", snap.Stage, len(snap.WordPool))
	}

	if err := s.StartGame("conn-a"); err != nil {
		t.Fatalf("second start game: %v", err)
	}
	snap = s.Snapshot()
	if snap.Stage != StagePlaying || snap.TotalRounds != 6 || snap.CurrentRound != 0 {
		t.Fatalf("unexpected playing state: %+v", snap)
	}
	if snap.CurrentWord == "" || len(snap.CurrentImpostors) != 1 {
		t.Fatalf("round state not initialized: %+v", snap)
	}

	for i := 0; i < 5; i++ {
		if err := s.NextRound("conn-a"); err != nil {
			t.Fatalf("next round: %v", err)
		}
	}
	snap = s.Snapshot()
	if snap.Stage != StagePlaying || snap.CurrentRound != 5 || len(snap.WordPool) != 0 {
		t.Fatalf("expected last round in flight, got %s at %d with pool %d", snap.Stage, snap.CurrentRound, len(snap.WordPool))
	}

	if err := s.NextRound("conn-a"); err != nil {
		t.Fatalf("final next round: %v", err)
	}
	snap = s.Snapshot()
	if snap.CurrentRound != 6 || snap.Stage != StageFinished {
		t.Fatalf("expected finished at round 6, got %s at %d", snap.Stage, snap.CurrentRound)
	}

	if got, err := st.Get(codeword); err != nil || got != s {
		t.Fatalf("session should still resolve by codeword after finishing: %v", err)
	}
}
