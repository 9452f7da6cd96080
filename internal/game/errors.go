package game

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrGameInProgress  = errors.New("game already in progress")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrNotAdmin        = errors.New("not admin")
	ErrInvalidStage    = errors.New("invalid stage for action")
	ErrEmptyWordPool   = errors.New("word pool is empty")
)
