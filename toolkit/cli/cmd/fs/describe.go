package fs

import (
	"context"
	"fmt"

	"xdfs/toolkit/cli/cmd"
	"xdfs/types"
)

// file <file>
func CallDescribe(ctx *cmd.CliContext, c cmd.Command) error {
	detail, err := getDetail(ctx, ctx.Resolve(c.Arg[0]))
	if err != nil {
		return err
	}

	if err := renderReplicas(ctx.StdOut, *detail.Replication); err != nil {
		return err
	}

	n := detail.NodeInfo
	fmt.Fprintf(ctx.StdOut, "Name: %s\n", n.Name)
	fmt.Fprintf(ctx.StdOut, "Created At: %s\n", FormatTime(n.CreatedAt))
	fmt.Fprintf(ctx.StdOut, "Created By: %s\n", n.CreatedBy)
	fmt.Fprintf(ctx.StdOut, "Size: %s\n", FormatSize(n.Size))
	return nil
}

func getDetail(ctx *cmd.CliContext, path types.Path) (types.FileInfoReply, error) {
	reply := types.FileInfoReply{}
	err := ctx.Client.Do(context.TODO(), types.MethodGetFileInfo, types.FileArg{
		Filename: string(path),
	}, &reply)
	return reply, err
}
