package persistence

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

// JSONLJournal appends delivered routing messages to a file, one JSON object per line.
type JSONLJournal struct {
	filepath string
	mu       sync.Mutex
}

var _ ports.MessageJournal = (*JSONLJournal)(nil)

func NewJSONLJournal(filepath string) *JSONLJournal {
	return &JSONLJournal{filepath: filepath}
}

func (j *JSONLJournal) Append(ctx context.Context, msg model.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.OpenFile(j.filepath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadAll returns every journaled message. A missing file is an empty journal.
func (j *JSONLJournal) ReadAll(ctx context.Context) ([]model.Message, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.Open(j.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Message{}, nil
		}
		return nil, err
	}
	defer f.Close()

	msgs := []model.Message{}
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var msg model.Message
		if err := json.Unmarshal(sc.Bytes(), &msg); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", j.filepath, line, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, sc.Err()
}
