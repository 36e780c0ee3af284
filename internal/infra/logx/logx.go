package logx

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "debug"
	}
}

var (
	mu       sync.RWMutex
	minLevel           = LevelWarn
	out      io.Writer = io.Discard
)

// SetOutput sets the destination for logs.
func SetOutput(w io.Writer) { mu.Lock(); out = w; mu.Unlock() }

// SetMinLevel sets the minimum level to emit.
func SetMinLevel(l Level) { mu.Lock(); minLevel = l; mu.Unlock() }

// Debugf logs a debug message.
func Debugf(format string, args ...any) { _ = emit(LevelDebug, fmt.Sprintf(format, args...)) }

// Infof logs an info message.
func Infof(format string, args ...any) { _ = emit(LevelInfo, fmt.Sprintf(format, args...)) }

// Warnf logs a warning message.
func Warnf(format string, args ...any) { _ = emit(LevelWarn, fmt.Sprintf(format, args...)) }

// Errorf logs an error message.
func Errorf(format string, args ...any) { _ = emit(LevelError, fmt.Sprintf(format, args...)) }

type entry struct {
	TS    string `json:"ts"`
	Level string `json:"level"`
	Msg   string `json:"msg"`
}

func emit(lvl Level, msg string) error {
	mu.RLock()
	ml := minLevel
	w := out
	mu.RUnlock()
	if lvl < ml {
		return nil
	}
	e := entry{
		TS:    time.Now().Format(time.RFC3339Nano),
		Level: lvl.String(),
		Msg:   msg,
	}
	b, err := json.Marshal(e)
	if err != nil {
		// fallback to plain message
		_, err2 := io.WriteString(w, msg+"\n")
		return err2
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
