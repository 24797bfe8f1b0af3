// Package script runs batches of collection operations read one per line.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coll-cli/coll/collection"
	"github.com/coll-cli/coll/log"
	"github.com/coll-cli/coll/util"
)

// ErrNothingToUndo is returned by undo when no mutating operation has run yet.
var ErrNothingToUndo = errors.New("nothing to undo")

// Options configures a script run.
type Options struct {
	Out         io.Writer
	StopOnError bool
	Echo        bool
}

// Report summarizes a finished run.
type Report struct {
	Executed int
	Failed   int
	Errors   []error
}

// snapshot holds enough state to restore a collection exactly.
type snapshot struct {
	items    []string
	capacity int
}

type runner struct {
	target  *collection.Collection[string]
	options *Options
	out     io.Writer
	history util.Stack[snapshot]
}

// Run executes every operation read from r against target.
// Failing lines are recorded in the report; with StopOnError the run ends at the first failure
// and that error is also returned.
func Run(r io.Reader, target *collection.Collection[string], options *Options) (*Report, error) {
	run := &runner{target: target, options: options, out: options.Out}
	if run.out == nil {
		run.out = os.Stdout
	}

	report := &Report{}
	scanner := bufio.NewScanner(r)

	for number := 1; scanner.Scan(); number++ {
		line, err := Parse(number, scanner.Text())
		if err == nil && line.IsAbsent() {
			continue
		}
		if err == nil {
			if options.Echo {
				fmt.Fprintf(run.out, "> %s\n", strings.TrimSpace(scanner.Text()))
			}
			err = run.exec(line.MustGet())
		}

		report.Executed++
		if err != nil {
			log.WithFields(log.Fields{"line": number}).Warn(err)
			report.Failed++
			report.Errors = append(report.Errors, err)
			if options.StopOnError {
				return report, err
			}
		}
	}

	return report, scanner.Err()
}

func (r *runner) exec(line Line) error {
	if ops[line.Op].mutates {
		r.history.Push(snapshot{items: r.target.Items(), capacity: r.target.Capacity()})
	}

	err := r.apply(line)
	if err != nil {
		if ops[line.Op].mutates {
			_, _ = r.history.Pop()
		}
		return fmt.Errorf("line %d: %s: %w", line.Number, line.Op, err)
	}
	return nil
}

func (r *runner) apply(line Line) error {
	c := r.target
	out := r.out
	args := line.Args

	switch line.Op {
	case "add":
		c.AddRange(args...)
	case "insert":
		i, err := index(args[0])
		if err != nil {
			return err
		}
		return c.InsertAt(i, args[1])
	case "remove":
		i, err := index(args[0])
		if err != nil {
			return err
		}
		return c.RemoveAt(i)
	case "exchange":
		i, err := index(args[0])
		if err != nil {
			return err
		}
		j, err := index(args[1])
		if err != nil {
			return err
		}
		return c.Exchange(i, j)
	case "set":
		i, err := index(args[0])
		if err != nil {
			return err
		}
		return c.Set(i, args[1])
	case "get":
		i, err := index(args[0])
		if err != nil {
			return err
		}
		item, err := c.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, item)
	case "clear":
		c.Clear()
	case "reserve":
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid capacity: %s", args[0])
		}
		return c.EnsureCapacity(n)
	case "print":
		fmt.Fprintln(out, c)
	case "count":
		fmt.Fprintln(out, c.Count())
	case "capacity":
		fmt.Fprintln(out, c.Capacity())
	case "undo":
		return r.undo()
	}

	return nil
}

// undo restores the collection to the state before the last successful mutation.
// Capacity only grows, so the restored collection keeps the larger of the two capacities.
func (r *runner) undo() error {
	prev, ok := r.history.Pop()
	if !ok {
		return ErrNothingToUndo
	}

	r.target.Clear()
	r.target.AddRange(prev.items...)
	return r.target.EnsureCapacity(prev.capacity)
}
