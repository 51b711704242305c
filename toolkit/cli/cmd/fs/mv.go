package fs

import (
	"context"

	"xdfs/toolkit/cli/cmd"
	"xdfs/types"
)

func transferArg(ctx *cmd.CliContext, c cmd.Command, force bool) types.TransferArg {
	return types.TransferArg{
		ClientId: ctx.ClientId,
		From:     string(ctx.Resolve(c.Arg[0])),
		To:       string(ctx.Resolve(c.Arg[1])),
		Force:    force,
	}
}

// cp <from> <to>, cp-f <from> <to>
func CallCp(ctx *cmd.CliContext, c cmd.Command, force bool) error {
	reply := types.ReplicationReply{}
	err := ctx.Client.Do(context.TODO(), types.MethodCopyFile, transferArg(ctx, c, force), &reply)
	if err != nil {
		return err
	}
	return renderReplicas(ctx.StdOut, *reply.ReplicatedOn)
}

// mv <from> <to>, mv-f <from> <to>
func CallMv(ctx *cmd.CliContext, c cmd.Command, force bool) error {
	return ctx.Client.Do(context.TODO(), types.MethodMoveFile, transferArg(ctx, c, force), nil)
}
