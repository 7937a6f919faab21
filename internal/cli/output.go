package cli

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/fatih/color"

	"github.com/syssam/heragen/compiler/gate"
	"github.com/syssam/heragen/compiler/gen"
	"github.com/syssam/heragen/schema/preset"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	skipMark = color.New(color.FgYellow).Sprint("-")
	failMark = color.New(color.FgRed).Sprint("✗")
	bold     = color.New(color.Bold).SprintFunc()
	faint    = color.New(color.Faint).SprintFunc()
)

func (a *app) printCatalog() error {
	reg, err := a.cfg.Registry()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Usage: heragen generate <ENTITY_TYPE> [--industry=<TAG>] [--dry-run] [--all]")
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Available entity types (%d):\n", reg.Len())
	for _, p := range reg.All() {
		fmt.Fprintf(a.out, "  %-22s %s\n", p.Key, describe(p))
	}
	return nil
}

func describe(p preset.EntityPreset) string {
	if p.Description != "" {
		return p.Description
	}
	return p.TitlePlural
}

func printGroups(w io.Writer, reg *preset.Registry) {
	groups := reg.ByModule()
	modules := make([]preset.Module, 0, len(groups))
	for m := range groups {
		modules = append(modules, m)
	}
	slices.Sort(modules)
	for _, m := range modules {
		fmt.Fprintf(w, "%s (%d)\n", bold(m), len(groups[m]))
		for _, p := range groups[m] {
			fmt.Fprintf(w, "  %-22s %-40s %s\n", p.Key, p.SmartCode, faint(gen.ResolvePath(p)))
		}
	}
}

func printGates(w io.Writer, res *gen.Result) {
	for _, o := range res.Gates {
		if o.Skipped {
			fmt.Fprintf(w, "%s %s skipped: %s\n", skipMark, o.Gate, o.Reason)
			continue
		}
		if o.Phase == gate.Post {
			fmt.Fprintf(w, "%s %s passed after write\n", okMark, o.Gate)
			continue
		}
		fmt.Fprintf(w, "%s %s passed\n", okMark, o.Gate)
	}
}

func printResult(w io.Writer, res *gen.Result) {
	printGates(w, res)
	verb := "Generated"
	if res.DryRun {
		verb = "Would generate"
	}
	fmt.Fprintf(w, "\n%s %s %s\n", okMark, verb, bold(res.Key))
	fmt.Fprintf(w, "  smart code: %s\n", res.SmartCode)
	fmt.Fprintf(w, "  route:      /%s\n", res.Route)
	if res.Industry != "" {
		fmt.Fprintf(w, "  industry:   %s\n", res.Industry)
	}
	fmt.Fprintf(w, "  fields:     %d\n", len(res.Fields))
	for _, a := range res.Artifacts {
		fmt.Fprintf(w, "  %-8s %s %s\n", a.Feature, a.Path, faint(fmt.Sprintf("(%d bytes)", a.Size)))
	}
	if !res.DryRun {
		fmt.Fprintf(w, "  took %s\n", res.Duration.Round(time.Millisecond))
	}
}
