package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/Tsukikage7/slang-go/resolver"
)

// instrumentedResolver 记录解析指标的装饰器.
type instrumentedResolver struct {
	inner     resolver.Resolver
	collector Collector
}

// WrapResolver 用指标收集装饰解析器.
func WrapResolver(inner resolver.Resolver, c Collector) (resolver.Resolver, error) {
	if inner == nil {
		return nil, ErrNilResolver
	}
	if c == nil {
		return nil, ErrNilCollector
	}

	return &instrumentedResolver{
		inner:     inner,
		collector: c,
	}, nil
}

// MustWrapResolver 用指标收集装饰解析器，失败时 panic.
func MustWrapResolver(inner resolver.Resolver, c Collector) resolver.Resolver {
	r, err := WrapResolver(inner, c)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve 实现 resolver.Resolver 接口.
func (r *instrumentedResolver) Resolve(ctx context.Context, tag string) (*resolver.Record, error) {
	start := time.Now()
	rec, err := r.inner.Resolve(ctx, tag)
	duration := time.Since(start)

	outcome := classify(err)
	r.collector.RecordResolve(outcome, duration)
	if outcome == OutcomeDecodeError {
		r.collector.RecordDecodeFailure()
	}

	return rec, err
}

// Close 实现 resolver.Resolver 接口.
func (r *instrumentedResolver) Close() error {
	return r.inner.Close()
}

// classify 把解析结果归入指标标签值.
func classify(err error) string {
	if err == nil {
		return OutcomeSuccess
	}

	var de *resolver.DecodeError
	if errors.As(err, &de) {
		return OutcomeDecodeError
	}

	if code, ok := resolver.ErrorCode(err); ok {
		if code == resolver.CodeNoSuchLang {
			return OutcomeNoSuchLang
		}
		return OutcomeResolveError
	}

	return OutcomeError
}
