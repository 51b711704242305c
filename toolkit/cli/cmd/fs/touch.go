package fs

import (
	"context"

	"xdfs/toolkit/cli/cmd"
	"xdfs/types"
)

// touch <file>
func CallTouch(ctx *cmd.CliContext, c cmd.Command) error {
	replicas, err := touch(ctx, ctx.Resolve(c.Arg[0]))
	if err != nil {
		return err
	}
	return renderReplicas(ctx.StdOut, replicas)
}

func touch(ctx *cmd.CliContext, path types.Path) ([]string, error) {
	reply := types.ReplicationReply{}
	err := ctx.Client.Do(context.TODO(), types.MethodCreateFile, types.CreateFileArg{
		Filename: string(path),
		ClientId: ctx.ClientId,
	}, &reply)
	if err != nil {
		return nil, err
	}
	return *reply.ReplicatedOn, nil
}

// rm <file>
func CallRm(ctx *cmd.CliContext, c cmd.Command) error {
	return ctx.Client.Do(context.TODO(), types.MethodUnlinkFile, types.FileArg{
		Filename: string(ctx.Resolve(c.Arg[0])),
	}, nil)
}
