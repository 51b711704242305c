package common

import "time"

var (
	DefaultConfigFile = "xdfs.xml"
	DefaultTimeout    = 30 * time.Second
	DefaultLogLevel   = "warn"
	LogCompleteEnable = false
	MsgpackMime       = "application/msgpack"
)
