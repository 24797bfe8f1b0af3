package script

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrUnknownOp is returned for a line whose operation name is not recognized.
var ErrUnknownOp = errors.New("unknown operation")

// op describes a single script operation.
type op struct {
	name     string
	usage    string
	args     int
	variadic bool
	mutates  bool
}

var ops = map[string]op{
	"add":      {name: "add", usage: "add <value>...", args: 1, variadic: true, mutates: true},
	"insert":   {name: "insert", usage: "insert <index> <value>", args: 2, mutates: true},
	"remove":   {name: "remove", usage: "remove <index>", args: 1, mutates: true},
	"exchange": {name: "exchange", usage: "exchange <i> <j>", args: 2, mutates: true},
	"set":      {name: "set", usage: "set <index> <value>", args: 2, mutates: true},
	"get":      {name: "get", usage: "get <index>", args: 1},
	"clear":    {name: "clear", usage: "clear", mutates: true},
	"reserve":  {name: "reserve", usage: "reserve <capacity>", args: 1, mutates: true},
	"print":    {name: "print", usage: "print"},
	"count":    {name: "count", usage: "count"},
	"capacity": {name: "capacity", usage: "capacity"},
	"undo":     {name: "undo", usage: "undo"},
}

// Ops returns the sorted usage lines of every supported operation.
func Ops() []string {
	usages := lo.MapToSlice(ops, func(_ string, o op) string {
		return o.usage
	})
	slices.Sort(usages)
	return usages
}

// Line is a parsed script line.
type Line struct {
	Number int
	Op     string
	Args   []string
}

// maxSuggestDistance bounds how far a typo may be from an operation name to be suggested.
const maxSuggestDistance = 3

// suggest returns the closest known operation name, if any is close enough.
func suggest(name string) mo.Option[string] {
	closest := lo.MinBy(lo.Keys(ops), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	if levenshtein.Distance(name, closest) > maxSuggestDistance {
		return mo.None[string]()
	}
	return mo.Some(closest)
}

// Parse splits a raw line into an operation and its arguments.
// It returns mo.None for blank lines and comments.
func Parse(number int, raw string) (mo.Option[Line], error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "#") {
		return mo.None[Line](), nil
	}

	fields := strings.Fields(raw)
	name := strings.ToLower(fields[0])

	o, ok := ops[name]
	if !ok {
		err := fmt.Errorf("line %d: %w %s", number, ErrUnknownOp, name)
		if closest, found := suggest(name).Get(); found {
			err = fmt.Errorf("%w, did you mean %s?", err, closest)
		}
		return mo.None[Line](), err
	}

	args := fields[1:]
	if len(args) < o.args || (!o.variadic && len(args) > o.args) {
		return mo.None[Line](), fmt.Errorf("line %d: usage: %s", number, o.usage)
	}

	return mo.Some(Line{Number: number, Op: name, Args: args}), nil
}

// index parses an index argument.
func index(raw string) (int, error) {
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid index: %s", raw)
	}
	return i, nil
}
