// Package render formats stored collections for terminal and machine consumption.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/coll-cli/coll/collection"
	"github.com/coll-cli/coll/color"
	"github.com/coll-cli/coll/style"
	"github.com/coll-cli/coll/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Output is the structured description of a collection.
type Output struct {
	// Name is the name the collection is stored under.
	Name string `json:"name"`
	// Count is the number of stored elements.
	Count int `json:"count"`
	// Capacity is the size of the allocated buffer.
	Capacity int `json:"capacity"`
	// Items are the elements in index order.
	Items []string `json:"items"`
	// Rendered is the bracketed textual form, e.g. "[a, b]".
	Rendered string `json:"rendered"`
}

// NewOutput captures the current state of c.
func NewOutput(name string, c *collection.Collection[string]) *Output {
	return &Output{
		Name:     name,
		Count:    c.Count(),
		Capacity: c.Capacity(),
		Items:    c.Items(),
		Rendered: c.String(),
	}
}

// Options tunes text output.
type Options struct {
	// Width wraps the rendering to this many columns; zero disables wrapping.
	Width        int
	ShowCapacity bool
}

// JSON writes out as a single JSON object.
func JSON(w io.Writer, out *Output) error {
	return json.NewEncoder(w).Encode(out)
}

// Text writes a header line followed by the bracketed rendering.
func Text(w io.Writer, out *Output, options Options) error {
	header := fmt.Sprintf("%s %s", style.Bold(out.Name), style.Faint(util.Quantify(out.Count, "element", "elements")))
	if options.ShowCapacity {
		header += style.Faint(fmt.Sprintf(", capacity %d", out.Capacity))
	}

	body := out.Rendered
	if options.Width > 0 {
		body = wrap.String(wordwrap.String(body, options.Width), options.Width)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", header, style.Bracket(body))
	return err
}

// Result writes a one-line summary after a mutation.
func Result(w io.Writer, mark, action string, out *Output) error {
	_, err := fmt.Fprintf(w, "%s %s %s %s\n",
		style.Fg(color.Green)(mark),
		action,
		style.Fg(color.Purple)(out.Name),
		style.Fg(color.Yellow)(out.Rendered),
	)
	return err
}
