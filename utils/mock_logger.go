package utils

import (
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockLogger is a testify mock for asserting exact logger calls.
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) Info(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) Warn(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) Error(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}

func (m *MockLogger) SetLevel(level LogLevel) {
	m.Called(level)
}

// LogMessage is one record captured by RecordingLogger.
type LogMessage struct {
	Level   string
	Message string
	Args    []any
}

// RecordingLogger keeps every message in memory regardless of level.
type RecordingLogger struct {
	mu       sync.Mutex
	messages []LogMessage
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (r *RecordingLogger) record(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, LogMessage{Level: level, Message: msg, Args: args})
}

func (r *RecordingLogger) Debug(msg string, args ...any) { r.record("DEBUG", msg, args) }
func (r *RecordingLogger) Info(msg string, args ...any)  { r.record("INFO", msg, args) }
func (r *RecordingLogger) Warn(msg string, args ...any)  { r.record("WARN", msg, args) }
func (r *RecordingLogger) Error(msg string, args ...any) { r.record("ERROR", msg, args) }
func (r *RecordingLogger) SetLevel(LogLevel)             {}

// Messages returns a copy of everything logged so far.
func (r *RecordingLogger) Messages() []LogMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogMessage{}, r.messages...)
}

// HasMessage checks if a message with the given text was logged
func (r *RecordingLogger) HasMessage(text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, msg := range r.messages {
		if msg.Message == text {
			return true
		}
	}
	return false
}

func (r *RecordingLogger) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result string
	for _, msg := range r.messages {
		result += fmt.Sprintf("[%s] %s %v\n", msg.Level, msg.Message, msg.Args)
	}
	return result
}
