package queue

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"

	"github.com/zonehead/commerce-api/internal/api/metrics"
)

type recordingStore struct {
	mu      sync.Mutex
	removed []string
	fail    map[string]bool
	done    chan string
}

func (s *recordingStore) Save(context.Context, string, string, io.Reader) (string, error) {
	return "", errors.New("not used")
}

func (s *recordingStore) Remove(_ context.Context, path string) error {
	defer func() { s.done <- path }()
	if s.fail[path] {
		return errors.New("disk error")
	}
	s.mu.Lock()
	s.removed = append(s.removed, path)
	s.mu.Unlock()
	return nil
}

func waitFor(t *testing.T, ch <-chan string, n int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-deadline:
			t.Fatalf("timed out after %d of %d removals", i, n)
		}
	}
}

func TestJanitor_RemovesReleasedImages(t *testing.T) {
	store := &recordingStore{done: make(chan string, 8), fail: map[string]bool{"/uploads/bad.png": true}}
	j := NewJanitor(3, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	j.Start(ctx)

	j.Release("/uploads/a.png")
	j.Release("/uploads/bad.png")
	j.Release("/uploads/b.jpg")
	j.Release("")

	waitFor(t, store.done, 3)
	cancel()
	j.Wait()

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.removed) != 2 {
		t.Errorf("expected 2 successful removals, got %v", store.removed)
	}
}

func TestJanitor_ShardingIsStable(t *testing.T) {
	j := NewJanitor(8, &recordingStore{}, zerolog.Nop())
	first := j.shardIndex("/uploads/x.png")
	for i := 0; i < 10; i++ {
		if got := j.shardIndex("/uploads/x.png"); got != first {
			t.Fatalf("shard changed: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= 8 {
		t.Errorf("shard %d out of range", first)
	}
}

func TestJanitor_DefaultWorkers(t *testing.T) {
	j := NewJanitor(0, &recordingStore{}, zerolog.Nop())
	if len(j.workers) != defaultWorkers {
		t.Errorf("expected %d workers, got %d", defaultWorkers, len(j.workers))
	}
}

func TestJanitor_ReleaseNeverBlocks(t *testing.T) {
	j := NewJanitor(1, &recordingStore{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			j.Release("/uploads/x.png")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Release blocked with no workers running")
	}
}

func queueDepth(t *testing.T, worker int) float64 {
	t.Helper()
	var m dto.Metric
	if err := metrics.JanitorQueueDepth.WithLabelValues(strconv.Itoa(worker)).Write(&m); err != nil {
		t.Fatalf("read gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}

func TestJanitor_QueueDepthTracksBuffer(t *testing.T) {
	store := &recordingStore{done: make(chan string, channelBuffer)}
	j := NewJanitor(1, store, zerolog.Nop())
	base := queueDepth(t, 0)

	// Overfill with no workers running: drops must not count.
	for i := 0; i < channelBuffer+10; i++ {
		j.Release("/uploads/" + strconv.Itoa(i) + ".png")
	}
	if got := queueDepth(t, 0) - base; got != channelBuffer {
		t.Fatalf("expected depth %d, got %v", channelBuffer, got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.Start(ctx)
	waitFor(t, store.done, channelBuffer)
	cancel()
	j.Wait()

	if got := queueDepth(t, 0) - base; got != 0 {
		t.Errorf("expected depth back to 0, got %v", got)
	}
}
