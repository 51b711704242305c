package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"xdfs/internal/common"
	"xdfs/types"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// Caller is the part of the RPC channel the shell needs.
type Caller interface {
	Do(ctx context.Context, method string, arg, reply any) error
}

type EndPointCfg struct {
	Endpoint types.Addr
	ClientId string
}

// CliContext is the whole interpreter state. Pwd is only ever replaced after
// a successful directory read.
type CliContext struct {
	EndPointCfg
	Client Caller
	Pwd    types.Path
	StdOut io.Writer
	StdErr io.Writer
}

func NewCliContext(cfg EndPointCfg, c Caller) *CliContext {
	return &CliContext{
		EndPointCfg: cfg,
		Client:      c,
		Pwd:         types.RootPath,
		StdOut:      os.Stdout,
		StdErr:      os.Stderr,
	}
}

// Resolve joins name onto the current directory.
func (ctx *CliContext) Resolve(name string) types.Path {
	return ctx.Pwd.Join(name)
}

// Chdir replaces the current directory wholesale.
func (ctx *CliContext) Chdir(p types.Path) {
	common.LInfo("cwd %v -> %v", ctx.Pwd, p)
	ctx.Pwd = p
}

func (ctx *CliContext) Prompt() string {
	return fmt.Sprintf("%s%s %s ", color.BlueString("XDFS:"), color.RedString("%s", ctx.Pwd), color.GreenString("%%"))
}

func (ctx *CliContext) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(ctx.StdErr, color.RedString(format, args...))
}

// Kind is the closed set of shell commands.
type Kind int

const (
	KindUnknown Kind = iota
	KindReset
	KindChangeDir
	KindListDir
	KindCreateFile
	KindFileInfo
	KindUnlinkFile
	KindRemoveDir
	KindRemoveDirRecursive
	KindCopyFile
	KindCopyFileForced
	KindMoveFile
	KindMoveFileForced
	KindMakeDir
	KindDownload
	KindUpload
	KindExit

	NumKinds
)

type kindInfo struct {
	name  string
	nargs int
	usage string
}

var kinds = [NumKinds]kindInfo{
	KindUnknown:            {name: "", nargs: 0},
	KindReset:              {name: "mkfs", nargs: 0, usage: "mkfs"},
	KindChangeDir:          {name: "cd", nargs: 1, usage: "cd <dir>"},
	KindListDir:            {name: "ls", nargs: 0, usage: "ls"},
	KindCreateFile:         {name: "touch", nargs: 1, usage: "touch <file>"},
	KindFileInfo:           {name: "file", nargs: 1, usage: "file <file>"},
	KindUnlinkFile:         {name: "rm", nargs: 1, usage: "rm <file>"},
	KindRemoveDir:          {name: "rm-r", nargs: 1, usage: "rm-r <dir>"},
	KindRemoveDirRecursive: {name: "rm-rf", nargs: 1, usage: "rm-rf <dir>"},
	KindCopyFile:           {name: "cp", nargs: 2, usage: "cp <from> <to>"},
	KindCopyFileForced:     {name: "cp-f", nargs: 2, usage: "cp-f <from> <to>"},
	KindMoveFile:           {name: "mv", nargs: 2, usage: "mv <from> <to>"},
	KindMoveFileForced:     {name: "mv-f", nargs: 2, usage: "mv-f <from> <to>"},
	KindMakeDir:            {name: "mkdir", nargs: 1, usage: "mkdir <dir>"},
	KindDownload:           {name: "xferdn", nargs: 2, usage: "xferdn <remote> <local>"},
	KindUpload:             {name: "xferup", nargs: 2, usage: "xferup <local> <remote>"},
	KindExit:               {name: "exit", nargs: 0, usage: "exit"},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, NumKinds)
	for k := KindUnknown + 1; k < NumKinds; k++ {
		m[kinds[k].name] = k
	}
	return m
}()

func (k Kind) String() string {
	if k < 0 || k >= NumKinds || k == KindUnknown {
		return "unknown"
	}
	return kinds[k].name
}

func (k Kind) Usage() string {
	if k < 0 || k >= NumKinds {
		return ""
	}
	return kinds[k].usage
}

// Command is one parsed input line.
type Command struct {
	Kind  Kind
	Token string
	Arg   []string
}

// Parse splits line on whitespace. A blank line or an unknown token yields
// a *types.ParseError; so does a command given too few arguments.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, &types.ParseError{Err: types.ErrUnknownCommand}
	}
	c := Command{Token: fields[0], Arg: fields[1:]}
	k, ok := byName[c.Token]
	if !ok {
		return c, &types.ParseError{Token: c.Token, Err: types.ErrUnknownCommand}
	}
	c.Kind = k
	if len(c.Arg) < kinds[k].nargs {
		return c, &types.ParseError{Token: c.Token, Err: fmt.Errorf("%w, usage: %s", types.ErrNotEnoughArgs, k.Usage())}
	}
	return c, nil
}

// Status is the outcome of running one line.
type Status int

const (
	Continue Status = iota
	Terminate
	Failed
)

type Outcome struct {
	Status Status
	Err    error
}

func Done() Outcome { return Outcome{Status: Continue} }

func Quit() Outcome { return Outcome{Status: Terminate} }

func Fail(err error) Outcome { return Outcome{Status: Failed, Err: err} }

var (
	ClientIdFlag = &cli.StringFlag{
		Name:    "client",
		Usage:   "client identifier recorded on writes",
		EnvVars: []string{"XDFS_CLIENT_ID"},
	}
	EndpointFlag = &cli.StringFlag{
		Name:    "endpoint",
		Usage:   "RPC endpoint url",
		Aliases: []string{"e"},
		EnvVars: []string{"XDFS_ENDPOINT"},
	}
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "xml config file",
		Aliases: []string{"c"},
		EnvVars: []string{"XDFS_CONFIG"},
	}
	TimeoutFlag = &cli.DurationFlag{
		Name:    "timeout",
		Usage:   "per request timeout, 0 disables it",
		Aliases: []string{"t"},
		EnvVars: []string{"XDFS_TIMEOUT"},
		Value:   common.DefaultTimeout,
	}
	LogFlag = &cli.StringFlag{
		Name:    "log",
		Usage:   "append logs to this file",
		EnvVars: []string{"XDFS_LOG"},
	}
	LevelFlag = &cli.StringFlag{
		Name:    "level",
		Usage:   "log level: trace, info, warn, fail",
		EnvVars: []string{"XDFS_LOG_LEVEL"},
		Value:   common.DefaultLogLevel,
	}
	NoColorFlag = &cli.BoolFlag{
		Name:    "no-color",
		Usage:   "disable colored output",
		EnvVars: []string{"XDFS_NO_COLOR"},
	}
)
