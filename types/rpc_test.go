package types

import (
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func envelope(t *testing.T, v map[string]any) *Response {
	t.Helper()
	b, err := msgpack.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	rsp := &Response{}
	if err := msgpack.Unmarshal(b, rsp); err != nil {
		t.Fatal(err)
	}
	return rsp
}

func TestDecodeRemoteFailure(t *testing.T) {
	rsp := envelope(t, map[string]any{
		"success": false,
		"error":   map[string]any{"message": "file exists"},
	})
	err := rsp.Decode(MethodCreateFile, &ReplicationReply{})

	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if re.Error() != "file exists" {
		t.Errorf("message not verbatim: %q", re.Error())
	}
	if Kind(err) != "remote" {
		t.Errorf("kind %q", Kind(err))
	}
}

func TestDecodeProtocolViolations(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]any
		reply any
		field string
	}{
		{"no success", map[string]any{"result": map[string]any{}}, nil, "success"},
		{"failure without error", map[string]any{"success": false}, nil, "error.message"},
		{"failure without message", map[string]any{"success": false, "error": map[string]any{}}, nil, "error.message"},
		{"success without result", map[string]any{"success": true}, &ReplicationReply{}, "result"},
		{"nil result", map[string]any{"success": true, "result": nil}, &ReplicationReply{}, "result"},
		{"missing replicatedOn", map[string]any{"success": true, "result": map[string]any{}}, &ReplicationReply{}, "replicatedOn"},
		{"missing nodeInfo", map[string]any{"success": true, "result": map[string]any{"replication": []string{"s1"}}}, &FileInfoReply{}, "nodeInfo"},
		{"missing contents", map[string]any{"success": true, "result": map[string]any{"from": "s1"}}, &DownloadReply{}, "contents"},
		{"missing spaceAvailable", map[string]any{"success": true, "result": map[string]any{"replicas": []string{}}}, &ResetReply{}, "spaceAvailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := envelope(t, tt.env).Decode("m", tt.reply)
			var pe *ProtocolError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ProtocolError, got %v", err)
			}
			if pe.Field != tt.field {
				t.Errorf("field %q, want %q", pe.Field, tt.field)
			}
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("expected ErrMissingField in chain")
			}
		})
	}
}

func TestDecodeMalformedResult(t *testing.T) {
	rsp := envelope(t, map[string]any{
		"success": true,
		"result":  map[string]any{"replicatedOn": "not a list"},
	})
	err := rsp.Decode(MethodCopyFile, &ReplicationReply{})
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed response, got %v", err)
	}
}

func TestDecodeSuccess(t *testing.T) {
	rsp := envelope(t, map[string]any{
		"success": true,
		"result": map[string]any{
			"replication": []string{"s2", "s1"},
			"nodeInfo": map[string]any{
				"name": "a.txt", "type": "file", "createdAt": 1700000000, "createdBy": "bob", "size": 2048,
			},
		},
	})
	reply := FileInfoReply{}
	if err := rsp.Decode(MethodGetFileInfo, &reply); err != nil {
		t.Fatal(err)
	}
	if got := *reply.Replication; len(got) != 2 || got[0] != "s2" || got[1] != "s1" {
		t.Errorf("replication %v", got)
	}
	n := reply.NodeInfo
	if n.Name != "a.txt" || n.CreatedAt != 1700000000 || n.CreatedBy != "bob" || n.Size != 2048 || n.Type != "file" {
		t.Errorf("node info %+v", n)
	}
}

func node() map[string]any {
	return map[string]any{"name": "a.txt", "type": "file", "createdAt": 1700000000, "createdBy": "bob", "size": 2048}
}

func TestDecodeNodeMissingField(t *testing.T) {
	for _, key := range []string{"name", "type", "createdAt", "createdBy", "size"} {
		t.Run(key, func(t *testing.T) {
			partial := node()
			delete(partial, key)

			err := envelope(t, map[string]any{
				"success": true,
				"result":  map[string]any{"contents": []any{node(), partial}},
			}).Decode(MethodReadDir, &ReadDirReply{})
			var pe *ProtocolError
			if !errors.As(err, &pe) || pe.Field != "contents[1]."+key {
				t.Errorf("read dir: %v", err)
			}

			err = envelope(t, map[string]any{
				"success": true,
				"result":  map[string]any{"replication": []string{"s1"}, "nodeInfo": partial},
			}).Decode(MethodGetFileInfo, &FileInfoReply{})
			if !errors.As(err, &pe) || pe.Field != "nodeInfo."+key {
				t.Errorf("file info: %v", err)
			}
		})
	}

	err := envelope(t, map[string]any{
		"success": true,
		"result":  map[string]any{"contents": []any{nil}},
	}).Decode(MethodReadDir, &ReadDirReply{})
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("nil row: %v", err)
	}
}

func TestDecodeNodeFloatNumbers(t *testing.T) {
	n := node()
	n["createdAt"] = 1700000000.5
	n["size"] = 2048.0
	reply := ReadDirReply{}
	err := envelope(t, map[string]any{
		"success": true,
		"result":  map[string]any{"contents": []any{n}},
	}).Decode(MethodReadDir, &reply)
	if err != nil {
		t.Fatal(err)
	}
	if got := (*reply.Contents)[0]; got.CreatedAt != 1700000000 || got.Size != 2048 {
		t.Errorf("node %+v", got)
	}

	n["size"] = 2048.5
	err = envelope(t, map[string]any{
		"success": true,
		"result":  map[string]any{"contents": []any{n}},
	}).Decode(MethodReadDir, &ReadDirReply{})
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("fractional size: %v", err)
	}
}

func TestDecodeSuccessWithoutReply(t *testing.T) {
	if err := envelope(t, map[string]any{"success": true}).Decode(MethodMakeDir, nil); err != nil {
		t.Fatal(err)
	}
	if err := envelope(t, map[string]any{"success": true, "result": map[string]any{}}).Decode(MethodMakeDir, nil); err != nil {
		t.Fatal(err)
	}
}

func TestRequestEnvelope(t *testing.T) {
	b, err := msgpack.Marshal(NewRequest(MethodReset, nil))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := msgpack.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["jsonrpc"] != "2.0" || m["method"] != MethodReset {
		t.Errorf("envelope %v", m)
	}
	if p, ok := m["params"]; !ok || p != nil {
		t.Errorf("params should be nil, got %v", p)
	}
}

func TestPathJoin(t *testing.T) {
	tests := []struct {
		cwd  Path
		arg  string
		want Path
	}{
		{"/a/b", "c", "/a/b/c"},
		{"/a/b", "/x", "/x"},
		{"/", "photos", "/photos"},
		{"/a/b", "..", "/a"},
		{"/", "..", "/"},
		{"/a", "./c/", "/a/c"},
		{"/a", "//x//y", "/x/y"},
	}
	for _, tt := range tests {
		if got := tt.cwd.Join(tt.arg); got != tt.want {
			t.Errorf("%v join %q = %v, want %v", tt.cwd, tt.arg, got, tt.want)
		}
	}
}

func TestCode(t *testing.T) {
	if Code(&ParseError{Token: "foo", Err: ErrUnknownCommand}) != ErrUnknownCommandCode {
		t.Error("parse code")
	}
	if Code(&RemoteError{Message: "x"}) != ErrRemoteCode {
		t.Error("remote code")
	}
	if Code(&TransportError{Err: errors.New("refused")}) != ErrTransportCode {
		t.Error("transport code")
	}
	if Code(&TransportError{Err: ErrTimeOut}) != ErrTimeoutCode {
		t.Error("timeout code")
	}
	if Code(&TransportError{Err: ErrDialHup}) != ErrDialHupCode {
		t.Error("dial code")
	}
	if Code(nil) != 0 {
		t.Error("nil code")
	}
}
