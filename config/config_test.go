package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xdfs.xml")
	data := `<configuration>
  <version>1.0</version>
  <client>
    <id>alice</id>
    <endpoint>http://127.0.0.1:3000/rpc</endpoint>
    <timeout>1m30s</timeout>
    <log>xdfs.log</log>
  </client>
</configuration>`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cc.Version != "1.0" || cc.Client.Id != "alice" || cc.Client.Endpoint != "http://127.0.0.1:3000/rpc" || cc.Client.Log != "xdfs.log" {
		t.Errorf("config %+v", cc)
	}
	d, ok, err := cc.TimeoutValue()
	if err != nil || !ok || d != 90*time.Second {
		t.Errorf("timeout %v %v %v", d, ok, err)
	}
}

func TestTimeoutValue(t *testing.T) {
	cc := &Configuartion{}
	if _, ok, err := cc.TimeoutValue(); ok || err != nil {
		t.Errorf("empty timeout: %v %v", ok, err)
	}
	cc.Client.Timeout = "soon"
	if _, _, err := cc.TimeoutValue(); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xdfs.xml")
	if err := os.WriteFile(path, []byte("<configuration><client>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected decode error")
	}
}
