package client

import (
	"time"

	"xdfs/internal/common"
)

type Trace struct {
	// 开始请求
	Start func(method string)
	// 收到可解码的响应
	Done func(method string, elapsed time.Duration)
	// 传输失败
	Fail func(method string, err error)
}

var defaultTrace = &Trace{
	Start: func(method string) {
		common.LTrace("client call %v start", method)
	},
	Done: func(method string, elapsed time.Duration) {
		common.LTrace("client call %v done in %v", method, elapsed)
	},
	Fail: func(method string, err error) {
		common.LFail("client call %v failed: %v", method, err)
	},
}
