package types

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

const JsonRpcVersion = "2.0"

// remote methods
const (
	MethodReset        = "xdfs.reset"
	MethodReadDir      = "directories.read"
	MethodMakeDir      = "directories.make"
	MethodDeleteDir    = "directories.delete"
	MethodCreateFile   = "files.create"
	MethodGetFileInfo  = "files.getInfo"
	MethodUnlinkFile   = "files.unlink"
	MethodCopyFile     = "files.copy"
	MethodMoveFile     = "files.move"
	MethodDownloadFile = "files.download"
	MethodUploadFile   = "files.upload"
)

type Request struct {
	JsonRpc string `msgpack:"jsonrpc"`
	Method  string `msgpack:"method"`
	Params  any    `msgpack:"params"`
}

func NewRequest(method string, params any) *Request {
	return &Request{
		JsonRpc: JsonRpcVersion,
		Method:  method,
		Params:  params,
	}
}

type ErrorObject struct {
	Message *string `msgpack:"message"`
}

// Response is the decoded envelope. Pointer and raw fields keep "absent"
// distinguishable from zero values.
type Response struct {
	Success *bool              `msgpack:"success"`
	Result  msgpack.RawMessage `msgpack:"result"`
	Error   *ErrorObject       `msgpack:"error"`
}

func (r *Response) hasResult() bool {
	return len(r.Result) > 0 && !(len(r.Result) == 1 && r.Result[0] == 0xc0)
}

// Decode checks the envelope of a reply to method and decodes the result into
// reply. A nil reply accepts a success with or without a result.
func (r *Response) Decode(method string, reply any) error {
	if r.Success == nil {
		return Missing(method, "success")
	}
	if !*r.Success {
		if r.Error == nil || r.Error.Message == nil {
			return Missing(method, "error.message")
		}
		return &RemoteError{Method: method, Message: *r.Error.Message}
	}
	if reply == nil {
		return nil
	}
	if !r.hasResult() {
		return Missing(method, "result")
	}
	if err := msgpack.Unmarshal(r.Result, reply); err != nil {
		return &ProtocolError{Method: method, Err: ErrMalformedResponse}
	}
	if v, ok := reply.(interface{ Validate(string) error }); ok {
		return v.Validate(method)
	}
	return nil
}

type NodeInfo struct {
	Name      string `msgpack:"name"`
	Type      string `msgpack:"type"`
	CreatedAt int64  `msgpack:"createdAt"`
	CreatedBy string `msgpack:"createdBy"`
	Size      int64  `msgpack:"size"`

	// first required key the peer left out
	missing string
}

// DecodeMsgpack accepts integer or float numbers. A fractional createdAt is
// truncated to the second; a fractional size is malformed.
func (n *NodeInfo) DecodeMsgpack(dec *msgpack.Decoder) error {
	var w struct {
		Name      *string  `msgpack:"name"`
		Type      *string  `msgpack:"type"`
		CreatedAt *float64 `msgpack:"createdAt"`
		CreatedBy *string  `msgpack:"createdBy"`
		Size      *float64 `msgpack:"size"`
	}
	if err := dec.Decode(&w); err != nil {
		return err
	}
	*n = NodeInfo{}
	switch {
	case w.Name == nil:
		n.missing = "name"
	case w.Type == nil:
		n.missing = "type"
	case w.CreatedAt == nil:
		n.missing = "createdAt"
	case w.CreatedBy == nil:
		n.missing = "createdBy"
	case w.Size == nil:
		n.missing = "size"
	}
	if n.missing != "" {
		return nil
	}
	if *w.Size != math.Trunc(*w.Size) {
		return fmt.Errorf("size %v is not a whole number", *w.Size)
	}
	n.Name, n.Type, n.CreatedBy = *w.Name, *w.Type, *w.CreatedBy
	n.CreatedAt = int64(math.Trunc(*w.CreatedAt))
	n.Size = int64(*w.Size)
	return nil
}

// check reports the first missing key under at, e.g. contents[0].createdAt.
func (n *NodeInfo) check(method, at string) error {
	if n.missing != "" {
		return Missing(method, at+"."+n.missing)
	}
	return nil
}

type ResetReply struct {
	Replicas       *[]string `msgpack:"replicas"`
	SpaceAvailable *int64    `msgpack:"spaceAvailable"`
}

func (r *ResetReply) Validate(method string) error {
	if r.Replicas == nil {
		return Missing(method, "replicas")
	}
	if r.SpaceAvailable == nil {
		return Missing(method, "spaceAvailable")
	}
	return nil
}

type DirArg struct {
	Dirname string `msgpack:"dirname"`
}

type ReadDirReply struct {
	Contents *[]NodeInfo `msgpack:"contents"`
}

func (r *ReadDirReply) Validate(method string) error {
	if r.Contents == nil {
		return Missing(method, "contents")
	}
	for i := range *r.Contents {
		if err := (*r.Contents)[i].check(method, fmt.Sprintf("contents[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

type MakeDirArg struct {
	Dirname  string `msgpack:"dirname"`
	ClientId string `msgpack:"clientId"`
}

type DeleteDirArg struct {
	Dirname   string `msgpack:"dirname"`
	Recursive bool   `msgpack:"recursive"`
}

type FileArg struct {
	Filename string `msgpack:"filename"`
}

type CreateFileArg struct {
	Filename string `msgpack:"filename"`
	ClientId string `msgpack:"clientId"`
}

// TransferArg is shared by files.copy and files.move.
type TransferArg struct {
	ClientId string `msgpack:"clientId"`
	From     string `msgpack:"from"`
	To       string `msgpack:"to"`
	Force    bool   `msgpack:"force"`
}

type UploadArg struct {
	Filename string `msgpack:"filename"`
	Contents []byte `msgpack:"contents"`
	ClientId string `msgpack:"clientId"`
}

type ReplicationReply struct {
	ReplicatedOn *[]string `msgpack:"replicatedOn"`
}

func (r *ReplicationReply) Validate(method string) error {
	if r.ReplicatedOn == nil {
		return Missing(method, "replicatedOn")
	}
	return nil
}

type FileInfoReply struct {
	Replication *[]string `msgpack:"replication"`
	NodeInfo    *NodeInfo `msgpack:"nodeInfo"`
}

func (r *FileInfoReply) Validate(method string) error {
	if r.Replication == nil {
		return Missing(method, "replication")
	}
	if r.NodeInfo == nil {
		return Missing(method, "nodeInfo")
	}
	return r.NodeInfo.check(method, "nodeInfo")
}

type DownloadReply struct {
	From     *string `msgpack:"from"`
	Contents *[]byte `msgpack:"contents"`
}

func (r *DownloadReply) Validate(method string) error {
	if r.From == nil {
		return Missing(method, "from")
	}
	if r.Contents == nil {
		return Missing(method, "contents")
	}
	return nil
}
