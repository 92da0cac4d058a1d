package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// TraceEntry is one restart of a solve, stored as a JSON line
type TraceEntry struct {
	Restart   int       `json:"restart"`
	Distance  float64   `json:"distance"`
	Best      float64   `json:"best"`
	Timestamp time.Time `json:"timestamp"`
	Route     []int     `json:"route,omitempty"`
}

// TraceWriter appends trace entries to a JSONL file through a buffer
type TraceWriter struct {
	file   *os.File
	writer *bufio.Writer
	path   string
}

// NewTraceWriter creates (or truncates) the trace file at path
func NewTraceWriter(path string) (*TraceWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create trace directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}

	return &TraceWriter{
		file:   file,
		writer: bufio.NewWriterSize(file, 64*1024),
		path:   path,
	}, nil
}

// Write buffers one entry
func (tw *TraceWriter) Write(entry TraceEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal trace entry: %w", err)
	}
	if _, err := tw.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write trace entry: %w", err)
	}
	if err := tw.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}
	return nil
}

// Close flushes buffered entries and closes the file
func (tw *TraceWriter) Close() error {
	if err := tw.writer.Flush(); err != nil {
		tw.file.Close()
		return fmt.Errorf("failed to flush on close: %w", err)
	}
	if err := tw.file.Close(); err != nil {
		return fmt.Errorf("failed to close trace file: %w", err)
	}
	return nil
}

// Path returns the trace file location
func (tw *TraceWriter) Path() string {
	return tw.path
}

// ReadTrace decodes every entry of a JSONL trace
func ReadTrace(r io.Reader) ([]TraceEntry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var entries []TraceEntry
	for scanner.Scan() {
		var entry TraceEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal trace entry %d: %w", len(entries), err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan trace: %w", err)
	}
	return entries, nil
}

// LoadTrace reads the trace file at path
func LoadTrace(path string) ([]TraceEntry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{ID: path}
	} else if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer f.Close()

	return ReadTrace(f)
}
