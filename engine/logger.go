package engine

import (
	"fmt"
	"os"
	"time"

	"windowgrid/board"
)

// MoveLogEntry is one record written by Logger: enough to reconstruct
// what the engine did and why.
type MoveLogEntry struct {
	Timestamp    time.Time
	Side         board.Cell
	Action       board.Action
	Score        int
	EvalName     string
	Depth        int
	NodesVisited int64
	Duration     time.Duration
}

// Logger handles asynchronous logging to a file: the writer goroutine
// keeps the search hot path off the filesystem (logging is not part of
// the search's synchronous call graph).
type Logger struct {
	file  *os.File
	queue chan MoveLogEntry
	done  chan struct{}
}

// NewLogger opens (creating if needed) filename for append and starts
// its background writer.
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l := &Logger{
		file:  file,
		queue: make(chan MoveLogEntry, 100),
		done:  make(chan struct{}),
	}
	go l.writer()
	return l, nil
}

// Log enqueues an entry. If the queue is full, the entry is dropped
// rather than blocking the engine.
func (l *Logger) Log(entry MoveLogEntry) {
	select {
	case l.queue <- entry:
	default:
		fmt.Fprintln(os.Stderr, "engine: log queue full, dropping entry")
	}
}

// Close drains the queue and closes the file.
func (l *Logger) Close() {
	close(l.queue)
	<-l.done
	l.file.Close()
}

func (l *Logger) writer() {
	for entry := range l.queue {
		line := fmt.Sprintf("%s | side=%s action=%-16s eval=%-10s depth=%-2d score=%-6d nodes=%-8d time=%s\n",
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Side,
			entry.Action,
			entry.EvalName,
			entry.Depth,
			entry.Score,
			entry.NodesVisited,
			entry.Duration.Round(time.Millisecond),
		)
		l.file.WriteString(line)
	}
	close(l.done)
}
