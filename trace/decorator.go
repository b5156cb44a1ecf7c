package trace

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Tsukikage7/slang-go/resolver"
)

// span 属性键.
const (
	attrTag     = attribute.Key("slang.tag")
	attrOutcome = attribute.Key("slang.outcome")
	attrBCP47   = attribute.Key("slang.bcp47")
	attrCLID    = attribute.Key("slang.clid")
	attrCode    = attribute.Key("slang.error_code")
)

// tracedResolver 每次解析产生一个 client span 的装饰器.
type tracedResolver struct {
	inner  resolver.Resolver
	tracer trace.Tracer
}

// WrapResolver 用链路追踪装饰解析器.
//
// 标签无法识别是正常业务结果，span 只打结果属性；初始化和解码
// 类失败会记录错误并把 span 置为 Error 状态.
func WrapResolver(inner resolver.Resolver, tracerName string) resolver.Resolver {
	return &tracedResolver{
		inner:  inner,
		tracer: otel.Tracer(tracerName),
	}
}

// Resolve 实现 resolver.Resolver 接口.
func (r *tracedResolver) Resolve(ctx context.Context, tag string) (*resolver.Record, error) {
	ctx, span := r.tracer.Start(ctx, "slang.resolve",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrTag.String(tag)),
	)
	defer span.End()

	rec, err := r.inner.Resolve(ctx, tag)
	switch {
	case err == nil:
		span.SetAttributes(
			attrOutcome.String("success"),
			attrBCP47.String(rec.BCP47),
			attrCLID.Int64(int64(rec.CLID)),
		)
	case resolver.IsNoSuchLang(err):
		span.SetAttributes(attrOutcome.String("no_such_lang"))
	default:
		if code, ok := resolver.ErrorCode(err); ok {
			span.SetAttributes(attrOutcome.String("resolve_error"), attrCode.Int(int(code)))
		} else if isDecodeError(err) {
			span.SetAttributes(attrOutcome.String("decode_error"))
		} else {
			span.SetAttributes(attrOutcome.String("error"))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return rec, err
}

// Close 实现 resolver.Resolver 接口.
func (r *tracedResolver) Close() error {
	return r.inner.Close()
}

func isDecodeError(err error) bool {
	var de *resolver.DecodeError
	return errors.As(err, &de)
}
