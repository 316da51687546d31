package component

import (
	"fmt"
	"log"
)

// FormatScore is the one-line score and level text every display uses.
func FormatScore(score, level int) string {
	return fmt.Sprintf("Score: %d  Level: %d", score, level)
}

// LogSink writes every score update to the standard logger.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Report(score, level int) {
	msg := "[score] " + FormatScore(score, level)
	if s.Logger != nil {
		s.Logger.Print(msg)
		return
	}
	log.Print(msg)
}
