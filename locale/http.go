package locale

import (
	"net/http"
)

// HTTPMiddleware 返回 HTTP 中间件，从请求头解析 Accept-Language 并存入 context.
//
// 配置了 WithResolver 时，还会按偏好顺序解析出语言记录一并存入.
func HTTPMiddleware(opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Accept-Language")
			ctx := storeLocale(r.Context(), raw, o)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
