package trace

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/wheel/pkg/wheel"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
	accent = color.New(color.FgHiCyan).SprintFunc()
)

// Print writes res as a table of frames followed by the change log.
// Unchanged pumped frames are elided unless verbose is set.
func Print(w io.Writer, res *Result, verbose bool) {
	if res.Name != "" {
		fmt.Fprintln(w, bold(color.New(color.Underline).Sprint(res.Name)))
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("STEP"), bold("T(ms)"), bold("ACTION"), bold("OFFSET"), bold("INDEX"), bold("ITEM"), bold("PHASE"))
	var last *Frame
	for i := range res.Frames {
		f := &res.Frames[i]
		if !verbose && f.Action == "frame" && last != nil && last.Offset == f.Offset && last.Phase == f.Phase {
			continue
		}
		action := f.Action
		if action == "frame" {
			action = faint(action)
		}
		tbl.AddRow(f.Step, f.Elapsed.Milliseconds(), action, f.Offset, index(f.Index), f.Item, f.Phase)
		last = f
	}
	fmt.Fprintln(w, tbl)

	fmt.Fprintln(w)
	fmt.Fprintln(w, bold("Changes"))
	if len(res.Changes) == 0 {
		fmt.Fprintln(w, faint("  none"))
		return
	}
	changes := uitable.New()
	changes.Separator = "  "
	for _, c := range res.Changes {
		changes.AddRow(fmt.Sprintf("  step %d", c.Step), index(c.Old), "->", accent(index(c.New)))
	}
	fmt.Fprintln(w, changes)
}

// WriteYAML writes res as YAML.
func WriteYAML(w io.Writer, res *Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}

func index(i int) string {
	if i == wheel.NoIndex {
		return "-"
	}
	return fmt.Sprint(i)
}
