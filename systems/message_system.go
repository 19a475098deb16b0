package systems

import (
	"log/slog"
	"sync"
)

// MessageLog keeps the most recent status lines for the on-screen overlay
// and mirrors each one to a structured logger when set
type MessageLog struct {
	mu          sync.Mutex
	messages    []string
	maxMessages int
	logger      *slog.Logger
}

// NewMessageLog creates a message log holding at most maxMessages lines
func NewMessageLog(maxMessages int, logger *slog.Logger) *MessageLog {
	if maxMessages <= 0 {
		maxMessages = 1
	}
	return &MessageLog{
		maxMessages: maxMessages,
		logger:      logger,
	}
}

// Add appends a message, dropping the oldest when full
func (ml *MessageLog) Add(message string) {
	ml.mu.Lock()
	ml.messages = append(ml.messages, message)
	if len(ml.messages) > ml.maxMessages {
		ml.messages = ml.messages[len(ml.messages)-ml.maxMessages:]
	}
	ml.mu.Unlock()

	if ml.logger != nil {
		ml.logger.Debug(message)
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	if n > len(ml.messages) {
		n = len(ml.messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.messages[len(ml.messages)-1-i]
	}
	return result
}
