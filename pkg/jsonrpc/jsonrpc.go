// Package jsonrpc is a JSON-RPC 2.0 client over pkg/httpclient.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/pkg/bufferpool"
	"github.com/gaze-network/ckb-inscription/pkg/httpclient"
	"github.com/tidwall/gjson"
)

const version = "2.0"

// Error is an error object returned by the server.
type Error struct {
	Code    int64
	Message string
	Data    string
}

func (e *Error) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("jsonrpc error %d: %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

type request struct {
	Version string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type Client struct {
	http   *httpclient.Client
	nextID atomic.Uint64
}

func New(url string, config ...httpclient.Config) (*Client, error) {
	httpClient, err := httpclient.New(url, config...)
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{http: httpClient}, nil
}

// Call invokes method with params and decodes the result into result. A nil result discards it.
func (c *Client) Call(ctx context.Context, method string, params any, result any) error {
	buf := bufferpool.Get()
	defer bufferpool.Put(buf)
	if err := json.NewEncoder(buf).Encode(request{
		Version: version,
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	}); err != nil {
		return errors.Wrapf(err, "can't marshal %s request", method)
	}

	// the request body is copied into the fasthttp request
	resp, err := c.http.Post(ctx, "", httpclient.RequestOptions{Body: bytes.TrimSuffix(buf.Bytes(), []byte("\n"))})
	if err != nil {
		return errors.Wrapf(err, "%s request failed", method)
	}
	respBody, err := resp.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't read %s response", method)
	}
	if resp.StatusCode() != http.StatusOK {
		return errors.Errorf("%s: unexpected status %d, body: %q", method, resp.StatusCode(), string(respBody))
	}
	if !gjson.ValidBytes(respBody) {
		return errors.Errorf("%s: invalid json response %q", method, string(respBody))
	}

	if rpcErr := gjson.GetBytes(respBody, "error"); rpcErr.Exists() && rpcErr.Type != gjson.Null {
		return errors.WithStack(&Error{
			Code:    rpcErr.Get("code").Int(),
			Message: rpcErr.Get("message").String(),
			Data:    rpcErr.Get("data").String(),
		})
	}
	if result == nil {
		return nil
	}
	raw := gjson.GetBytes(respBody, "result")
	if !raw.Exists() {
		return errors.Errorf("%s: response has neither result nor error", method)
	}
	if err := json.Unmarshal([]byte(raw.Raw), result); err != nil {
		return errors.Wrapf(err, "can't unmarshal %s result", method)
	}
	return nil
}
