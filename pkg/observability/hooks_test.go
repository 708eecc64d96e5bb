package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Fetch hooks
	f := NoopFetchHooks{}
	f.OnFetchStart(ctx, "octocat")
	f.OnFetchComplete(ctx, "octocat", 42, time.Second, nil)

	// Render hooks
	r := NoopRenderHooks{}
	r.OnRenderComplete(ctx, "normal", 1024, time.Second)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "card")
	c.OnCacheMiss(ctx, "response")
	c.OnCacheSet(ctx, "card", 1024)
}

type testFetchHooks struct{ NoopFetchHooks }

type testRenderHooks struct{ NoopRenderHooks }

type testCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string) { h.hits++ }

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Fetch().(NoopFetchHooks); !ok {
		t.Error("Fetch() should return NoopFetchHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customFetch := &testFetchHooks{}
	SetFetchHooks(customFetch)
	if Fetch() != customFetch {
		t.Error("SetFetchHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Fetch().(NoopFetchHooks); !ok {
		t.Error("Reset() should restore NoopFetchHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testFetchHooks{}
	SetFetchHooks(custom)
	SetFetchHooks(nil)
	if Fetch() != custom {
		t.Error("SetFetchHooks(nil) should keep the previous hooks")
	}
}

func TestCacheHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testCacheHooks{}
	SetCacheHooks(custom)

	Cache().OnCacheHit(context.Background(), "card")
	Cache().OnCacheHit(context.Background(), "card")
	if custom.hits != 2 {
		t.Errorf("hits = %d, want 2", custom.hits)
	}
}
