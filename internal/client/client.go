package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"xdfs/internal/common"
	"xdfs/types"

	"github.com/vmihailenco/msgpack/v5"
)

// Client is the RPC channel to an xdfs endpoint. Every Send performs exactly
// one HTTP exchange; nothing is retried or buffered.
type Client struct {
	endpoint types.Addr
	cfg      ClientCfg
}

// NewClient returns a client talking to endpoint.
func NewClient(endpoint types.Addr, opts ...Option) *Client {
	c := &Client{endpoint: endpoint}
	c.cfg.Init(opts...)
	return c
}

// Do sends method with arg and decodes the result into reply. Failed
// responses come back as *types.RemoteError, contract violations as
// *types.ProtocolError.
func (c *Client) Do(ctx context.Context, method string, arg, reply any) error {
	rsp, err := c.Send(ctx, method, arg)
	if err != nil {
		return err
	}
	err = rsp.Decode(method, reply)
	if err != nil {
		common.LWarn("<Client> %v failed: %v", method, err)
	}
	return err
}

// Send encodes {jsonrpc, method, params}, posts it and decodes the envelope.
// Only transport failures are reported; the envelope is not checked.
func (c *Client) Send(ctx context.Context, method string, params any) (*types.Response, error) {
	trace := c.cfg.trace
	if trace != nil && trace.Start != nil {
		trace.Start(method)
	}
	start := time.Now()

	body, err := msgpack.Marshal(types.NewRequest(method, params))
	if err != nil {
		return nil, c.fail(method, fmt.Errorf("encode request: %w", err))
	}

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, string(c.endpoint), bytes.NewReader(body))
	if err != nil {
		return nil, c.fail(method, err)
	}
	req.Header.Set("Content-Type", common.MsgpackMime)
	req.Header.Set("Accept", common.MsgpackMime)

	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		var oe *net.OpError
		if ctx.Err() == context.DeadlineExceeded {
			err = types.ErrTimeOut
		} else if errors.As(err, &oe) && oe.Op == "dial" {
			err = fmt.Errorf("%w: %v", types.ErrDialHup, oe.Err)
		}
		return nil, c.fail(method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(method, fmt.Errorf("read body: %w", err))
	}

	rsp := &types.Response{}
	if err := msgpack.Unmarshal(data, rsp); err != nil {
		return nil, c.fail(method, fmt.Errorf("http %d: undecodable body: %w", resp.StatusCode, err))
	}

	if trace != nil && trace.Done != nil {
		trace.Done(method, time.Since(start))
	}
	return rsp, nil
}

func (c *Client) fail(method string, err error) error {
	if trace := c.cfg.trace; trace != nil && trace.Fail != nil {
		trace.Fail(method, err)
	}
	return &types.TransportError{
		Endpoint: string(c.endpoint),
		Method:   method,
		Err:      err,
	}
}
