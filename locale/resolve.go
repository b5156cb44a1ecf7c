package locale

import (
	"context"

	"github.com/Tsukikage7/slang-go/resolver"
)

// storeLocale 解析 Accept-Language 并按需解析语言记录，结果存入 context.
func storeLocale(ctx context.Context, raw string, o *Options) context.Context {
	loc := Parse(raw)
	ctx = WithLocale(ctx, loc)

	if o.Resolver == nil {
		return ctx
	}
	if rec := resolveCandidates(ctx, loc, o); rec != nil {
		ctx = WithRecord(ctx, rec)
	}
	return ctx
}

// resolveCandidates 按偏好顺序解析候选标签，第一个命中的记录胜出.
//
// 标签无法识别时继续尝试下一个候选；绑定级失败（初始化或解码）
// 说明环境有缺陷，记录日志后放弃整轮尝试，绝不影响请求本身.
func resolveCandidates(ctx context.Context, loc *Locale, o *Options) *resolver.Record {
	candidates := loc.Candidates()
	if o.FallbackTag != "" {
		candidates = append(candidates, o.FallbackTag)
	}

	for _, tag := range candidates {
		rec, err := o.Resolver.Resolve(ctx, tag)
		if err == nil {
			return rec
		}
		if resolver.IsNoSuchLang(err) {
			continue
		}
		o.Logger.WithContext(ctx).Warnf("[locale] resolver failure for tag %q: %v", tag, err)
		return nil
	}
	return nil
}
