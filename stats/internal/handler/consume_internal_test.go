package handler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kcls/circulation/pkg/kafka"
)

func TestConsumer_handle(t *testing.T) {
	var got []kafka.EventCirculation
	fail := false
	c := NewConsumer(func(_ context.Context, ev kafka.EventCirculation) error {
		if fail {
			return errors.New("db down")
		}
		got = append(got, ev)
		return nil
	}, zap.NewExample())

	msg := &sarama.ConsumerMessage{
		Topic: kafka.CirculationTopic,
		Value: []byte(`{"eventId":"e1","borrowId":3,"action":"RETRIEVE","items":1}`),
	}
	require.True(t, c.handle(context.Background(), msg))
	require.Len(t, got, 1)
	require.Equal(t, kafka.ActionRetrieve, got[0].Action)

	require.True(t, c.handle(context.Background(), &sarama.ConsumerMessage{Value: []byte("not json")}))
	require.Len(t, got, 1)

	fail = true
	require.False(t, c.handle(context.Background(), msg))

	require.NoError(t, c.Setup(nil))
	require.NoError(t, c.Setup(nil))
	select {
	case <-c.Ready():
	default:
		t.Fatal("consumer not ready after setup")
	}
}

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx context.Context

	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

func (s *fakeSession) offsets() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.marked...)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func newClaim(offsets ...int64) *fakeClaim {
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, len(offsets))}
	for _, off := range offsets {
		claim.messages <- &sarama.ConsumerMessage{
			Topic:  kafka.CirculationTopic,
			Offset: off,
			Value:  []byte(fmt.Sprintf(`{"eventId":"e%d","borrowId":3,"action":"RETURN","items":1}`, off)),
		}
	}
	return claim
}

// attempts counts record calls per event and fails the ones in failing until
// they have been tried failing[id] times; a negative count never succeeds.
type attempts struct {
	mu      sync.Mutex
	calls   map[string]int
	stored  []string
	failing map[string]int
}

func (a *attempts) record(_ context.Context, ev kafka.EventCirculation) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls[ev.EventID]++
	if n, ok := a.failing[ev.EventID]; ok && (n < 0 || a.calls[ev.EventID] <= n) {
		return errors.New("db down")
	}
	a.stored = append(a.stored, ev.EventID)
	return nil
}

func (a *attempts) count(id string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[id]
}

func (a *attempts) saved() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.stored...)
}

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Run("failed event blocks later marks", func(t *testing.T) {
		rec := &attempts{calls: map[string]int{}, failing: map[string]int{"e2": -1}}
		c := NewConsumer(rec.record, zap.NewNop())
		c.backoff = time.Millisecond

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		session := &fakeSession{ctx: ctx}
		done := make(chan error, 1)
		go func() { done <- c.ConsumeClaim(session, newClaim(1, 2, 3)) }()

		require.Eventually(t, func() bool { return rec.count("e2") >= 3 }, time.Second, time.Millisecond)
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("ConsumeClaim did not return after the session ended")
		}
		require.Equal(t, []int64{1}, session.offsets())
		require.Equal(t, []string{"e1"}, rec.saved())
		require.Zero(t, rec.count("e3"))
	})

	t.Run("retried event is marked in order", func(t *testing.T) {
		rec := &attempts{calls: map[string]int{}, failing: map[string]int{"e2": 2}}
		c := NewConsumer(rec.record, zap.NewNop())
		c.backoff = time.Millisecond

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		session := &fakeSession{ctx: ctx}
		claim := newClaim(1, 2, 3)
		close(claim.messages)

		require.NoError(t, c.ConsumeClaim(session, claim))
		require.Equal(t, []int64{1, 2, 3}, session.offsets())
		require.Equal(t, []string{"e1", "e2", "e3"}, rec.saved())
		require.Equal(t, 3, rec.count("e2"))
	})
}
