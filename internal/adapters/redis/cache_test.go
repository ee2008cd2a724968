package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "siamstay/internal/adapters/redis"
	"siamstay/internal/domain"
)

func newTestCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	in := domain.Hotel{ID: "1", Name: "The Siam Heritage Resort", PricePerNight: 4500, Stars: 5}
	if err := c.Set(ctx, "hotel:1", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.Hotel
	ok, err := c.Get(ctx, "hotel:1", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.Name != in.Name || out.PricePerNight != in.PricePerNight {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestCache_MissAndDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	var dst domain.Hotel
	ok, err := c.Get(ctx, "hotel:absent", &dst)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss for an absent key")
	}

	if err := c.Set(ctx, "hotel:2", domain.Hotel{ID: "2"}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "hotel:2"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "hotel:2", &dst)
	if ok {
		t.Fatal("expected a miss after delete")
	}
}
