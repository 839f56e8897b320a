package observability

import (
	"context"
	"time"
)

// multiHooks fans every event out to several hook implementations in order.
type multiHooks []PipelineHooks

// Multi returns hooks that forward each event to every non-nil h in order.
func Multi(hooks ...PipelineHooks) PipelineHooks {
	var m multiHooks
	for _, h := range hooks {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}

func (m multiHooks) OnGenerateComplete(ctx context.Context, nodeCount int, seed uint64, d time.Duration, err error) {
	for _, h := range m {
		h.OnGenerateComplete(ctx, nodeCount, seed, d, err)
	}
}

func (m multiHooks) OnSampleComplete(ctx context.Context, edgeCount int, d time.Duration) {
	for _, h := range m {
		h.OnSampleComplete(ctx, edgeCount, d)
	}
}

func (m multiHooks) OnSearchStart(ctx context.Context, nodeCount, edgeCount int) {
	for _, h := range m {
		h.OnSearchStart(ctx, nodeCount, edgeCount)
	}
}

func (m multiHooks) OnSearchComplete(ctx context.Context, pathCount int, d time.Duration, err error) {
	for _, h := range m {
		h.OnSearchComplete(ctx, pathCount, d, err)
	}
}
