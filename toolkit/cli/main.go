package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xdfs/config"
	"xdfs/internal/client"
	"xdfs/internal/common"
	"xdfs/toolkit/cli/cmd"
	"xdfs/toolkit/cli/cmd/fs"
	"xdfs/types"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

type CliEnv struct {
	ClientId string
	Endpoint types.Addr
	Timeout  time.Duration
	Log      string
	Level    string
}

func InitSetup() *cli.App {
	app := cli.App{
		Name:      "xdfs",
		Usage:     "browse and manipulate a replicated xdfs filesystem",
		ArgsUsage: "<clientId> <endpoint>",
		Flags: []cli.Flag{
			cmd.ClientIdFlag,
			cmd.EndpointFlag,
			cmd.ConfigFlag,
			cmd.TimeoutFlag,
			cmd.LogFlag,
			cmd.LevelFlag,
			cmd.NoColorFlag,
		},
		Action: func(ctx *cli.Context) error {
			env, err := preCheck(ctx)
			if err != nil {
				return err
			}
			if ctx.Bool(cmd.NoColorFlag.Name) {
				color.NoColor = true
			}
			closeLog, err := setupLog(env)
			if err != nil {
				return err
			}
			defer closeLog()
			run(env)
			return nil
		},
	}
	return &app
}

// 检查启动参数; positional args win over flags, flags over the config file
func preCheck(ctx *cli.Context) (*CliEnv, error) {
	env := &CliEnv{
		ClientId: ctx.String(cmd.ClientIdFlag.Name),
		Endpoint: types.Addr(ctx.String(cmd.EndpointFlag.Name)),
		Timeout:  ctx.Duration(cmd.TimeoutFlag.Name),
		Log:      ctx.String(cmd.LogFlag.Name),
		Level:    ctx.String(cmd.LevelFlag.Name),
	}

	path := ctx.String(cmd.ConfigFlag.Name)
	explicit := path != ""
	if !explicit {
		path = common.DefaultConfigFile
	}
	if explicit || common.IsExist(path) {
		cc, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		if err := env.merge(ctx, cc); err != nil {
			return nil, err
		}
	}

	if ctx.NArg() > 0 {
		env.ClientId = ctx.Args().Get(0)
	}
	if ctx.NArg() > 1 {
		env.Endpoint = types.Addr(ctx.Args().Get(1))
	}

	var errs []error
	if env.ClientId == "" {
		errs = append(errs, types.ErrClientIdNotFound)
	}
	if env.Endpoint == "" {
		errs = append(errs, types.ErrEndpointNotFound)
	}
	if len(errs) > 0 {
		return nil, common.JoinErrors(errs...)
	}
	return env, nil
}

func (env *CliEnv) merge(ctx *cli.Context, cc *config.Configuartion) error {
	if env.ClientId == "" {
		env.ClientId = cc.Client.Id
	}
	if env.Endpoint == "" {
		env.Endpoint = types.Addr(cc.Client.Endpoint)
	}
	if !ctx.IsSet(cmd.LogFlag.Name) && cc.Client.Log != "" {
		env.Log = cc.Client.Log
	}
	if !ctx.IsSet(cmd.LevelFlag.Name) && cc.Client.Level != "" {
		env.Level = cc.Client.Level
	}
	if !ctx.IsSet(cmd.TimeoutFlag.Name) {
		d, ok, err := cc.TimeoutValue()
		if err != nil {
			return err
		}
		if ok {
			env.Timeout = d
		}
	}
	return nil
}

func setupLog(env *CliEnv) (func(), error) {
	if !common.SetLevel(env.Level) {
		return nil, fmt.Errorf("unknown log level %q", env.Level)
	}
	if env.Log == "" {
		return func() {}, nil
	}
	f, err := common.OpenLogFile(env.Log)
	if err != nil {
		return nil, err
	}
	common.SetLogger(f)
	return func() {
		common.Sync()
		f.Close()
	}, nil
}

func run(env *CliEnv) {
	r, out, errOut := openReader()
	defer r.Close()

	cc := cmd.NewCliContext(cmd.EndPointCfg{
		Endpoint: env.Endpoint,
		ClientId: env.ClientId,
	}, client.NewClient(env.Endpoint, client.WithTimeout(env.Timeout)))
	cc.StdOut = out
	cc.StdErr = errOut

	// outside raw mode ^C arrives as a signal; an in-flight call is not waited for
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		r.Close()
		fmt.Fprintln(out, "\nBye!")
		common.Sync()
		os.Exit(0)
	}()

	common.LInfo("session start [client:%v] [endpoint:%v]", env.ClientId, env.Endpoint)
	loop(cc, r)
	fmt.Fprintln(out, "\nBye!")
}

func loop(cc *cmd.CliContext, r LineReader) {
	for {
		line, err := r.ReadLine(cc.Prompt())
		if err != nil {
			return
		}
		out := fs.Execute(cc, line)
		switch out.Status {
		case cmd.Terminate:
			return
		case cmd.Failed:
			common.LWarn("%q failed [%v %d]: %v", line, types.Kind(out.Err), types.Code(out.Err), out.Err)
			cc.Errorf("%v", out.Err)
		}
	}
}

func main() {
	setup := InitSetup()
	err := setup.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
