package fs

import (
	"context"

	"xdfs/toolkit/cli/cmd"
	"xdfs/types"
)

// mkdir <dir>
func CallMkdir(ctx *cmd.CliContext, c cmd.Command) error {
	return mkdir(ctx, ctx.Resolve(c.Arg[0]))
}

func mkdir(ctx *cmd.CliContext, path types.Path) error {
	return ctx.Client.Do(context.TODO(), types.MethodMakeDir, types.MakeDirArg{
		Dirname:  string(path),
		ClientId: ctx.ClientId,
	}, nil)
}

// rm-r <dir>, rm-rf <dir>
func CallRmdir(ctx *cmd.CliContext, c cmd.Command, recursive bool) error {
	return ctx.Client.Do(context.TODO(), types.MethodDeleteDir, types.DeleteDirArg{
		Dirname:   string(ctx.Resolve(c.Arg[0])),
		Recursive: recursive,
	}, nil)
}
