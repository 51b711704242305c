package main

import (
	"context"
	"log"
	"os"

	"xdfs/internal/client"
	"xdfs/toolkit/cli/cmd"
	"xdfs/types"

	"github.com/urfave/cli/v2"
)

// xdfs-debug -e http://127.0.0.1:3000 files.getInfo filename=/a.txt
func main() {
	app := cli.App{
		Name:      "xdfs-debug",
		Usage:     "send one raw rpc request and dump the response envelope",
		ArgsUsage: "<method> [key=value...]",
		Flags: []cli.Flag{
			cmd.EndpointFlag,
			cmd.TimeoutFlag,
		},
		Action: func(ctx *cli.Context) error {
			endpoint := ctx.String(cmd.EndpointFlag.Name)
			if endpoint == "" {
				return types.ErrEndpointNotFound
			}
			if ctx.NArg() < 1 {
				return types.ErrNotEnoughArgs
			}
			params, err := ParseParams(ctx.Args().Tail())
			if err != nil {
				return err
			}
			c := client.NewClient(types.Addr(endpoint), client.WithTimeout(ctx.Duration(cmd.TimeoutFlag.Name)))
			return NCall(context.Background(), c, ctx.Args().First(), params, os.Stdout)
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
