package client

import (
	"net/http"
	"time"

	"xdfs/internal/common"
)

type Option func(*ClientCfg)

// WithTimeout bounds a single request. Zero disables the bound.
func WithTimeout(t time.Duration) Option {
	return func(cc *ClientCfg) {
		if t < 0 {
			t = 0
		}
		cc.timeout = t
	}
}

func WithTrace(t *Trace) Option {
	return func(cc *ClientCfg) {
		cc.trace = t
	}
}

type ClientCfg struct {
	// 单次请求的超时
	timeout time.Duration

	httpClient *http.Client

	// 请求开始/结束/失败时的回调
	trace *Trace
}

func (cfg *ClientCfg) Init(opts ...Option) {
	cfg.defaultCfg()

	for _, opt := range opts {
		opt(cfg)
	}
}

func (cfg *ClientCfg) defaultCfg() {
	cfg.timeout = common.DefaultTimeout
	cfg.httpClient = http.DefaultClient
	cfg.trace = defaultTrace
}
