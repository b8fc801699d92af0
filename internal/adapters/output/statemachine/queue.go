package statemachine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/ports"
)

var (
	ErrQueueClosed = errors.New("statemachine: inbound queue closed")
	ErrQueueFull   = errors.New("statemachine: inbound queue full")
)

// Handler consumes messages in the order they were accepted.
type Handler func(ctx context.Context, msg model.Message) error

// Queue is the state machine's inbound message channel. Senders never block:
// a full queue rejects the message. Each accepted message gets a fresh
// correlation ID and the next sequence number for the session.
type Queue struct {
	session string
	logger  *log.Logger
	now     func() time.Time
	newID   func() string

	mu     sync.Mutex
	seq    uint64
	closed bool
	ch     chan model.Message
}

var _ ports.RoutingStateMachine = (*Queue)(nil)

func NewQueue(session string, capacity int, logger *log.Logger) *Queue {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Queue{
		session: session,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
		ch:      make(chan model.Message, capacity),
	}
}

func (q *Queue) SendMessageWithSessionInfo(intent model.Intent) error {
	if !intent.Valid() {
		return fmt.Errorf("statemachine: unknown intent %q", intent)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}

	msg := model.Message{
		Intent: intent,
		Session: model.SessionInfo{
			ID:       q.newID(),
			Session:  q.session,
			Sequence: q.seq + 1,
			SentAt:   q.now(),
		},
	}
	select {
	case q.ch <- msg:
		q.seq++
		return nil
	default:
		q.logger.Printf("statemachine: dropping %s, queue full (%d)", intent, cap(q.ch))
		return ErrQueueFull
	}
}

// Len reports how many messages are waiting for delivery.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Close stops accepting messages. Messages already queued are still delivered by Run.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
}

// Run delivers messages to handler one at a time until the queue is closed and
// drained, or ctx is done. Handler errors are logged and delivery continues.
func (q *Queue) Run(ctx context.Context, handler Handler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-q.ch:
			if !ok {
				return nil
			}
			if err := handler(ctx, msg); err != nil {
				q.logger.Printf("statemachine: handling %s #%d: %v", msg.Intent, msg.Session.Sequence, err)
			}
		}
	}
}
