package fs

import (
	"context"

	"xdfs/toolkit/cli/cmd"
	"xdfs/types"
)

// cd <dir>
func CallCd(ctx *cmd.CliContext, c cmd.Command) error {
	target := ctx.Resolve(c.Arg[0])

	// the listing itself is discarded, only the outcome matters
	err := ctx.Client.Do(context.TODO(), types.MethodReadDir, types.DirArg{
		Dirname: string(target),
	}, nil)
	if err != nil {
		return err
	}

	ctx.Chdir(target)
	return nil
}

// ls
func CallLs(ctx *cmd.CliContext, c cmd.Command) error {
	nodes, err := ListDir(ctx, ctx.Pwd)
	if err != nil {
		return err
	}

	t := newTable(ctx.StdOut, "Node", "Type", "Created at", "Created by", "Size")
	for _, n := range nodes {
		t.Row(n.Name, n.Type, FormatTime(n.CreatedAt), n.CreatedBy, FormatSize(n.Size))
	}
	return t.Close()
}

// ListDir returns the entries of dir in server order.
func ListDir(ctx *cmd.CliContext, dir types.Path) ([]types.NodeInfo, error) {
	reply := types.ReadDirReply{}
	err := ctx.Client.Do(context.TODO(), types.MethodReadDir, types.DirArg{
		Dirname: string(dir),
	}, &reply)
	if err != nil {
		return nil, err
	}
	return *reply.Contents, nil
}
