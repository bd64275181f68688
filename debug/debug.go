// Package debug holds environment-controlled tracing switches.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Parse  bool
	Encode bool
	Patch  bool
	Match  bool
	Eval   bool
}

var (
	d  *debug
	mu sync.Mutex
	w  io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("QUILLML_DEBUG_PARSE")
	d.Encode = boolEnv("QUILLML_DEBUG_ENCODE")
	d.Patch = boolEnv("QUILLML_DEBUG_PATCH")
	d.Match = boolEnv("QUILLML_DEBUG_MATCH")
	d.Eval = boolEnv("QUILLML_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
func Eval() bool {
	return d.Eval
}

// SetOutput redirects debug output, returning the previous writer.
func SetOutput(out io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := w
	w = out
	return prev
}

// Enable turns a switch on or off by its environment variable suffix
// ("PARSE", "ENCODE", "PATCH", "MATCH", "EVAL").
func Enable(name string, on bool) {
	switch name {
	case "PARSE":
		d.Parse = on
	case "ENCODE":
		d.Encode = on
	case "PATCH":
		d.Patch = on
	case "MATCH":
		d.Match = on
	case "EVAL":
		d.Eval = on
	}
}

// Stringer lets Logf render values such as entry trees without this
// package importing their encoders.
type Stringer interface {
	DebugString() string
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case Stringer:
			args[i] = x.DebugString()
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(w, msg, args...)
}
