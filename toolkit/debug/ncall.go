package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"xdfs/internal/client"
	"xdfs/types"

	"github.com/vmihailenco/msgpack/v5"
)

// ParseParams turns key=value pairs into a params map. true/false become
// bools and integers become int64; anything else stays a string. No pairs
// means params are absent.
func ParseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q, want key=value", types.ErrInvalidArgument, p)
		}
		if v == "true" || v == "false" {
			params[k] = v == "true"
		} else if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			params[k] = n
		} else {
			params[k] = v
		}
	}
	return params, nil
}

// NCall sends one raw request and dumps the envelope without judging it.
func NCall(ctx context.Context, c *client.Client, method string, params map[string]any, w io.Writer) error {
	var p any
	if params != nil {
		p = params
	}
	rsp, err := c.Send(ctx, method, p)
	if err != nil {
		return err
	}
	return DumpResponse(w, rsp)
}

func DumpResponse(w io.Writer, rsp *types.Response) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "success\t%v\n", show(rsp.Success))
	if rsp.Error != nil {
		fmt.Fprintf(tw, "error.message\t%v\n", show(rsp.Error.Message))
	}
	if len(rsp.Result) > 0 {
		var result any
		if err := msgpack.Unmarshal(rsp.Result, &result); err != nil {
			return err
		}
		if m, ok := result.(map[string]any); ok {
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(tw, "result.%s\t%v\n", k, m[k])
			}
		} else {
			fmt.Fprintf(tw, "result\t%v\n", result)
		}
	}
	return tw.Flush()
}

func show[T any](v *T) string {
	if v == nil {
		return "<absent>"
	}
	return fmt.Sprint(*v)
}
