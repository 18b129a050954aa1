package redis

import (
	"testing"
	"time"
)

func TestDenylist_TTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d := &Denylist{now: func() time.Time { return now }}

	if got := d.ttl(now.Add(time.Hour)); got != time.Hour {
		t.Errorf("expected 1h, got %v", got)
	}
	if got := d.ttl(now.Add(-time.Minute)); got != minRevokeTTL {
		t.Errorf("expired token: expected %v, got %v", minRevokeTTL, got)
	}
}

func TestDenylist_Key(t *testing.T) {
	d := &Denylist{}
	if got := d.key("abc"); got != "denylist:abc" {
		t.Errorf("unexpected key %q", got)
	}
}
