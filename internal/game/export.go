package game

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ExportSession appends a plain-text summary of a finished game to filename.
// Called by the socket layer when a session reaches the finished stage.
func ExportSession(s *Session, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Game %s (session %s)\n", s.codeword, s.ID))
	sb.WriteString(fmt.Sprintf("Finished: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	sb.WriteString(strings.Repeat("=", 50) + "\n")

	names := make([]string, 0, len(s.players))
	for _, p := range s.players {
		if p.IsAdmin {
			names = append(names, p.Name+" (admin)")
		} else {
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)
	sb.WriteString(fmt.Sprintf("Players: %s\n", strings.Join(names, ", ")))
	sb.WriteString(fmt.Sprintf("Language: %s, impostors per round: %d\n",
		s.settings.Language, s.settings.NumImpostors))
	sb.WriteString(fmt.Sprintf("Rounds played: %d of %d\n\n", s.currentRound, s.totalRounds))

	if _, err := file.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	return nil
}
