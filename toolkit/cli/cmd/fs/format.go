package fs

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"
)

var sizeSuffixes = []string{"b", "k", "M", "G"}

const TimeLayout = "02/01/2006 15:04"

// FormatSize scales size by 1024 until it drops under 1024 or the last
// suffix is reached, rounding up to one decimal at each step. Display only.
func FormatSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d%s", size, sizeSuffixes[0])
	}
	v := float64(size)
	for i := 1; i < len(sizeSuffixes); i++ {
		v = ceilTenth(v / 1024)
		if v < 1024 || i == len(sizeSuffixes)-1 {
			return fmt.Sprintf("%.1f%s", v, sizeSuffixes[i])
		}
	}
	return ""
}

// the epsilon absorbs float noise such as 1.1*10 = 11.000000000000002
func ceilTenth(v float64) float64 {
	return math.Ceil(v*10-1e-9) / 10
}

// FormatTime renders epoch seconds in local time.
func FormatTime(sec int64) string {
	return time.Unix(sec, 0).Local().Format(TimeLayout)
}

type TabWriter struct {
	w *tabwriter.Writer
}

func New(w io.Writer, minwidth, tabwidth, padding int, padchar byte, flag uint) TabWriter {
	return TabWriter{
		w: tabwriter.NewWriter(w, minwidth, tabwidth, padding, padchar, flag),
	}
}

func (t TabWriter) Row(cols ...string) {
	io.WriteString(t.w, strings.Join(cols, "\t")+"\n")
}

func (t TabWriter) Close() error {
	return t.w.Flush()
}

func newTable(w io.Writer, header ...string) TabWriter {
	t := New(w, 0, 0, 2, ' ', 0)
	t.Row(header...)
	return t
}

// renderList prints one column, rows kept in server order.
func renderList(w io.Writer, header string, rows []string) error {
	t := newTable(w, header)
	for _, r := range rows {
		t.Row(r)
	}
	return t.Close()
}

func renderReplicas(w io.Writer, rows []string) error {
	return renderList(w, "Replicated on", rows)
}
