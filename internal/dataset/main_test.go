package dataset

import (
	"testing"

	"go.uber.org/goleak"
)

// LoadAsync 的后台 goroutine 必须在 done 关闭前退出
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}
