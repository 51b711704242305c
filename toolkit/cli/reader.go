package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// LineReader hands the shell one line at a time. Any error ends the session.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type bufReader struct {
	r *bufio.Reader
	w io.Writer
}

func newBufReader(r io.Reader, w io.Writer) *bufReader {
	return &bufReader{r: bufio.NewReader(r), w: w}
}

func (b *bufReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(b.w, prompt)
	line, err := b.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (b *bufReader) Close() error { return nil }

// termReader edits lines in raw mode and keeps an in-memory history.
type termReader struct {
	fd    int
	state *term.State
	t     *term.Terminal
}

func newTermReader(in *os.File, out io.Writer) (*termReader, error) {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	return &termReader{fd: fd, state: state, t: term.NewTerminal(rw, "")}, nil
}

func (tr *termReader) ReadLine(prompt string) (string, error) {
	tr.t.SetPrompt(prompt)
	return tr.t.ReadLine()
}

// Writer translates "\n" for the raw terminal.
func (tr *termReader) Writer() io.Writer {
	return tr.t
}

func (tr *termReader) Close() error {
	return term.Restore(tr.fd, tr.state)
}

// openReader picks line editing when stdin is a terminal. out is where the
// shell should print while the reader is open.
func openReader() (r LineReader, out io.Writer, errOut io.Writer) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		tr, err := newTermReader(os.Stdin, os.Stdout)
		if err == nil {
			return tr, tr.Writer(), tr.Writer()
		}
	}
	return newBufReader(os.Stdin, os.Stdout), os.Stdout, os.Stderr
}
