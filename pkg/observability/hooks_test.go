package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnGenerateStart(ctx, "tessellation", 9)
	p.OnGenerateComplete(ctx, "tessellation", 594, time.Millisecond, nil)
	p.OnWriteStart(ctx, []string{"dxf"})
	p.OnWriteComplete(ctx, []string{"dxf"}, time.Millisecond, errors.New("disk full"))

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "dxf")
	c.OnCacheMiss(ctx, "svg")
	c.OnCacheSet(ctx, "pdf", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customPipeline := &recordingHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Pipeline().OnGenerateStart(context.Background(), "shim", 4)
	if customPipeline.started != "shim" {
		t.Errorf("registered hooks saw %q, want shim", customPipeline.started)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &recordingHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	SetCacheHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should be ignored")
	}
}

type recordingHooks struct {
	NoopPipelineHooks
	started string
}

func (r *recordingHooks) OnGenerateStart(_ context.Context, family string, _ int) {
	r.started = family
}

type testCacheHooks struct{ NoopCacheHooks }
