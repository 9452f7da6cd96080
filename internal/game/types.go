package game

type Stage string

const (
	StageLobby        Stage = "lobby"
	StageWordEntry    Stage = "word_entry"
	StageWaitingWords Stage = "waiting_words"
	StagePlaying      Stage = "playing"
	StageFinished     Stage = "finished"
)

// InProgress reports whether the stage is one where player identity must be
// preserved across disconnects (rejoin-by-name instead of roster removal).
func (s Stage) InProgress() bool {
	switch s {
	case StageWordEntry, StageWaitingWords, StagePlaying:
		return true
	}
	return false
}

type WordEntry struct {
	Word     string `json:"word"`
	Category string `json:"category"`
}

type Player struct {
	ID      string      `json:"id"` // current connection id, reassigned on rejoin
	Name    string      `json:"name"`
	IsAdmin bool        `json:"isAdmin"`
	Words   []WordEntry `json:"words"`
	IsReady bool        `json:"isReady"`
}

type Settings struct {
	NumImpostors    int    `json:"numImpostors"`
	WordsPerPlayer  int    `json:"wordsPerPlayer"`
	UsersEnterWords bool   `json:"usersEnterWords"`
	Language        string `json:"language"`
}

func DefaultSettings(language string) Settings {
	return Settings{
		NumImpostors:    1,
		WordsPerPlayer:  3,
		UsersEnterWords: true,
		Language:        language,
	}
}

// State is the wire representation of a session, broadcast as `game-state`
// after every mutation. Players are keyed by connection id.
type State struct {
	Codeword         string             `json:"codeword"`
	Stage            Stage              `json:"stage"`
	Players          map[string]*Player `json:"players"`
	Settings         Settings           `json:"settings"`
	WordPool         []WordEntry        `json:"wordPool"`
	TotalRounds      int                `json:"totalRounds"`
	CurrentRound     int                `json:"currentRound"`
	CurrentWord      string             `json:"currentWord"`
	CurrentCategory  string             `json:"currentCategory"`
	CurrentImpostors []string           `json:"currentImpostors"`
}
