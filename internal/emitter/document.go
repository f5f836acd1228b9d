package emitter

import (
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Relative locations of the image splits inside a dataset directory.
var (
	trainSplit = []string{"images", "train"}
	valSplit   = []string{"images", "test"}
)

// Render builds the dataset document for dir and classes.
// The result is a pure function of its inputs.
func Render(dir string, classes []string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("train: " + JoinPath(dir, trainSplit...) + "\n")
	b.WriteString("val: " + JoinPath(dir, valSplit...) + "\n")
	b.WriteString("nc: " + strconv.Itoa(len(classes)) + "\n")
	b.WriteString("names: " + FormatNames(classes) + "\n")

	return b.String()
}

// FormatNames renders classes as a literal list of single-quoted strings,
// e.g. ['pizza', 'sushi']. Names are not escaped.
func FormatNames(classes []string) string {
	quoted := lo.Map(classes, func(name string, _ int) string {
		return "'" + name + "'"
	})
	return "[" + strings.Join(quoted, ", ") + "]"
}

// JoinPath appends elem to base with the platform separator. Unlike
// filepath.Join it does not clean the result, so "./data" stays "./data/...".
func JoinPath(base string, elem ...string) string {
	sep := string(os.PathSeparator)
	out := base
	for _, e := range elem {
		switch {
		case e == "":
			continue
		case out == "" || strings.HasSuffix(out, sep):
			out += e
		default:
			out += sep + e
		}
	}
	return out
}
