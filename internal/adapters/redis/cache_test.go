package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "ceylon_stays/internal/adapters/redis"
	"ceylon_stays/internal/domain"
)

func newTestCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	h := domain.Hotel{ID: "2", Name: "Amaya Hills", Location: "Kandy", Rating: 4.6, Price: 120}
	if err := c.Set(ctx, "hotel:2", h, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.Hotel
	ok, err := c.Get(ctx, "hotel:2", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if got != h {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCacheMissAndDel(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	var dst domain.Hotel
	ok, err := c.Get(ctx, "absent", &dst)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}

	if err := c.Set(ctx, "k", domain.Hotel{ID: "1"}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "k", &dst)
	if ok {
		t.Fatal("expected miss after del")
	}
}
