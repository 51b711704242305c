package cmd

import (
	"errors"
	"testing"

	"xdfs/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		kind Kind
		args []string
	}{
		{"mkfs", KindReset, nil},
		{"cd photos", KindChangeDir, []string{"photos"}},
		{"  ls  ", KindListDir, nil},
		{"touch a.txt", KindCreateFile, []string{"a.txt"}},
		{"file a.txt", KindFileInfo, []string{"a.txt"}},
		{"rm a.txt", KindUnlinkFile, []string{"a.txt"}},
		{"rm-r d", KindRemoveDir, []string{"d"}},
		{"rm-rf d", KindRemoveDirRecursive, []string{"d"}},
		{"cp a\tb", KindCopyFile, []string{"a", "b"}},
		{"cp-f a b", KindCopyFileForced, []string{"a", "b"}},
		{"mv a b", KindMoveFile, []string{"a", "b"}},
		{"mv-f a b", KindMoveFileForced, []string{"a", "b"}},
		{"mkdir d", KindMakeDir, []string{"d"}},
		{"xferdn r l", KindDownload, []string{"r", "l"}},
		{"xferup l r", KindUpload, []string{"l", "r"}},
		{"exit", KindExit, nil},
		{"ls extra ignored", KindListDir, []string{"extra", "ignored"}},
	}
	for _, tt := range tests {
		c, err := Parse(tt.line)
		if err != nil {
			t.Errorf("%q: %v", tt.line, err)
			continue
		}
		if c.Kind != tt.kind {
			t.Errorf("%q: kind %v, want %v", tt.line, c.Kind, tt.kind)
		}
		if len(c.Arg) != len(tt.args) {
			t.Errorf("%q: args %v, want %v", tt.line, c.Arg, tt.args)
			continue
		}
		for i := range tt.args {
			if c.Arg[i] != tt.args[i] {
				t.Errorf("%q: arg %d = %q", tt.line, i, c.Arg[i])
			}
		}
	}
}

func TestParseUnknown(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", "foobar", "LS", "xfer"} {
		_, err := Parse(line)
		var pe *types.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: expected ParseError, got %v", line, err)
			continue
		}
		if !errors.Is(err, types.ErrUnknownCommand) {
			t.Errorf("%q: expected unknown command, got %v", line, err)
		}
	}
}

func TestParseMissingArgs(t *testing.T) {
	for _, line := range []string{"cd", "touch", "cp a", "mv-f a", "xferdn r", "xferup"} {
		_, err := Parse(line)
		if !errors.Is(err, types.ErrNotEnoughArgs) {
			t.Errorf("%q: expected not enough args, got %v", line, err)
		}
	}
}

func TestKindTable(t *testing.T) {
	seen := map[string]bool{}
	for k := KindUnknown + 1; k < NumKinds; k++ {
		name := k.String()
		if name == "" || name == "unknown" {
			t.Errorf("kind %d has no name", k)
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
		if k.Usage() == "" {
			t.Errorf("%v has no usage", k)
		}
	}
}

func TestResolveAndChdir(t *testing.T) {
	ctx := NewCliContext(EndPointCfg{ClientId: "alice"}, nil)
	if ctx.Pwd != types.RootPath {
		t.Fatalf("initial cwd %v", ctx.Pwd)
	}
	ctx.Chdir("/a/b")
	if got := ctx.Resolve("c"); got != "/a/b/c" {
		t.Errorf("resolve c = %v", got)
	}
	if got := ctx.Resolve("/x"); got != "/x" {
		t.Errorf("resolve /x = %v", got)
	}
	if ctx.Pwd != "/a/b" {
		t.Errorf("resolve mutated cwd: %v", ctx.Pwd)
	}
}
