package debug

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type debug struct {
	Merge    bool
	Path     bool
	Callback bool
}

var (
	d        *debug
	colorize bool
)

func init() {
	d = &debug{}
	d.Merge = boolEnv("GODASH_DEBUG_MERGE")
	d.Path = boolEnv("GODASH_DEBUG_PATH")
	d.Callback = boolEnv("GODASH_DEBUG_CALLBACK")
	colorize = isatty.IsTerminal(os.Stderr.Fd())
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Path() bool {
	return d.Path
}
func Callback() bool {
	return d.Callback
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// Dump renders v for debug output, one line.
func Dump(v any) string {
	return strings.TrimRight(spew.Sdump(v), "\n")
}

var spewConfig = spew.ConfigState{Indent: " ", SortKeys: true}

// DumpIndent renders v over multiple lines with stable map ordering.
func DumpIndent(v any) string {
	return spewConfig.Sdump(v)
}

// TextDiff renders an insert/delete diff between two strings, colored when
// stderr is a terminal, marked with +{}/-{} otherwise.
func TextDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	var b strings.Builder
	for i := range diffs {
		df := &diffs[i]
		switch df.Type {
		case diffpatch.DiffInsert:
			if colorize {
				b.WriteString(ins.Sprint(df.Text))
			} else {
				b.WriteString("+{" + df.Text + "}")
			}
		case diffpatch.DiffDelete:
			if colorize {
				b.WriteString(del.Sprint(df.Text))
			} else {
				b.WriteString("-{" + df.Text + "}")
			}
		default:
			b.WriteString(df.Text)
		}
	}
	return b.String()
}
