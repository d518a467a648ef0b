package server

import (
	"embed"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/config"
	"github.com/iWorld-y/daily_spark/app/display/internal/service"
)

//go:embed assets/*
var assets embed.FS

func NewHTTPServer(c *config.Config, s *service.StudioService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c.Server.Addr != "" {
		opts = append(opts, http.Address(c.Server.Addr))
	}
	// kratos 默认 1s 超时，完整生成需要更长时间
	timeout := c.Server.Timeout
	if timeout == "" {
		timeout = config.DefaultServerTimeout
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		log.NewHelper(logger).Warnf("invalid server timeout %q: %v", timeout, err)
		d, _ = time.ParseDuration(config.DefaultServerTimeout)
	}
	opts = append(opts, http.Timeout(d))

	srv := http.NewServer(opts...)
	service.RegisterStudioHTTPServer(srv, s)

	srv.Route("/").GET("/healthz", func(ctx http.Context) error {
		return ctx.Result(200, map[string]string{"status": "ok"})
	})

	// 单页面控制台
	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/" {
			nethttp.NotFound(w, r)
			return
		}
		content, err := assets.ReadFile("assets/index.html")
		if err != nil {
			nethttp.Error(w, err.Error(), nethttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(content)
	})

	return srv
}
