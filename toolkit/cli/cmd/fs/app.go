package fs

import (
	"fmt"

	"xdfs/toolkit/cli/cmd"
	"xdfs/types"
)

// Execute runs one input line against ctx. It never panics on bad input: a
// parse, remote, protocol or transport problem comes back as cmd.Failed with
// ctx.Pwd untouched.
func Execute(ctx *cmd.CliContext, line string) cmd.Outcome {
	c, err := cmd.Parse(line)
	if err != nil {
		return cmd.Fail(err)
	}
	if c.Kind == cmd.KindExit {
		return cmd.Quit()
	}
	if err := dispatch(ctx, c); err != nil {
		return cmd.Fail(err)
	}
	return cmd.Done()
}

// dispatch must cover every Kind; TestEveryKindDispatches fails when a new
// one is added without a case here.
func dispatch(ctx *cmd.CliContext, c cmd.Command) error {
	switch c.Kind {
	case cmd.KindReset:
		return CallMkfs(ctx, c)
	case cmd.KindChangeDir:
		return CallCd(ctx, c)
	case cmd.KindListDir:
		return CallLs(ctx, c)
	case cmd.KindCreateFile:
		return CallTouch(ctx, c)
	case cmd.KindFileInfo:
		return CallDescribe(ctx, c)
	case cmd.KindUnlinkFile:
		return CallRm(ctx, c)
	case cmd.KindRemoveDir:
		return CallRmdir(ctx, c, false)
	case cmd.KindRemoveDirRecursive:
		return CallRmdir(ctx, c, true)
	case cmd.KindCopyFile:
		return CallCp(ctx, c, false)
	case cmd.KindCopyFileForced:
		return CallCp(ctx, c, true)
	case cmd.KindMoveFile:
		return CallMv(ctx, c, false)
	case cmd.KindMoveFileForced:
		return CallMv(ctx, c, true)
	case cmd.KindMakeDir:
		return CallMkdir(ctx, c)
	case cmd.KindDownload:
		return CallDownload(ctx, c)
	case cmd.KindUpload:
		return CallUpload(ctx, c)
	case cmd.KindUnknown, cmd.KindExit, cmd.NumKinds:
	}
	return fmt.Errorf("%v: %w", c.Kind, types.ErrUnReachAble)
}
