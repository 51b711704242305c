package fs

import (
	"context"
	"fmt"

	"xdfs/toolkit/cli/cmd"
	"xdfs/types"
)

// mkfs wipes the remote filesystem and reports the servers left to hold it.
func CallMkfs(ctx *cmd.CliContext, c cmd.Command) error {
	reply := types.ResetReply{}
	err := ctx.Client.Do(context.TODO(), types.MethodReset, nil, &reply)
	if err != nil {
		return err
	}

	if err := renderList(ctx.StdOut, "Available servers", *reply.Replicas); err != nil {
		return err
	}
	fmt.Fprintf(ctx.StdOut, "Total space available: %s\n", FormatSize(*reply.SpaceAvailable))
	return nil
}
