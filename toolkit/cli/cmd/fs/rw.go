package fs

import (
	"context"
	"fmt"
	"os"

	"xdfs/toolkit/cli/cmd"
	"xdfs/types"
)

// xferdn <remote> <local>
func CallDownload(ctx *cmd.CliContext, c cmd.Command) error {
	reply, err := download(ctx, ctx.Resolve(c.Arg[0]))
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.StdOut, "Got from %s\n", *reply.From)

	return os.WriteFile(c.Arg[1], *reply.Contents, 0o644)
}

// 从xdfs读
func download(ctx *cmd.CliContext, path types.Path) (types.DownloadReply, error) {
	reply := types.DownloadReply{}
	err := ctx.Client.Do(context.TODO(), types.MethodDownloadFile, types.FileArg{
		Filename: string(path),
	}, &reply)
	return reply, err
}

// xferup <local> <remote>
func CallUpload(ctx *cmd.CliContext, c cmd.Command) error {
	contents, err := os.ReadFile(c.Arg[0])
	if err != nil {
		return err
	}

	replicas, err := upload(ctx, ctx.Resolve(c.Arg[1]), contents)
	if err != nil {
		return err
	}
	return renderReplicas(ctx.StdOut, replicas)
}

// 向xdfs写
func upload(ctx *cmd.CliContext, path types.Path, contents []byte) ([]string, error) {
	reply := types.ReplicationReply{}
	err := ctx.Client.Do(context.TODO(), types.MethodUploadFile, types.UploadArg{
		Filename: string(path),
		Contents: contents,
		ClientId: ctx.ClientId,
	}, &reply)
	if err != nil {
		return nil, err
	}
	return *reply.ReplicatedOn, nil
}
