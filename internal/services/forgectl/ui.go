package forgectl

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"forgeapi/internal/core/forge"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey   = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleLink  = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleOK    = lipgloss.NewStyle().Foreground(colorGreen)
	styleErr   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// ErrorLine renders err for stderr
func ErrorLine(err error) string {
	return styleErr.Render(iconError) + " " + err.Error()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printKeyValue(w io.Writer, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

func printDiscovered(w io.Writer, d forge.Discovered) {
	fmt.Fprintln(w, styleOK.Render(iconSuccess)+" "+styleTitle.Render(d.Host))
	printKeyValue(w, "kind", d.Kind.String())
	printKeyValue(w, "strategy", d.Strategy)
}

func printResult(w io.Writer, r forge.Result) {
	fmt.Fprintln(w, styleTitle.Render(r.Owner+"/"+r.Repo)+" "+styleDim.Render("on "+r.Host+" ("+r.Kind.String()+")"))
	printKeyValue(w, "ref", r.Ref)
	if r.Version != r.Ref {
		printKeyValue(w, "version", r.Version)
	}
	if r.TarballURL != "" {
		fmt.Fprintln(w, styleKey.Render("tarball")+" "+styleLink.Render(r.TarballURL))
	}
	if ri := r.Repository; ri != nil {
		printKeyValue(w, "description", ri.Description)
		printKeyValue(w, "branch", ri.DefaultBranch)
		printKeyValue(w, "license", ri.License)
		printKeyValue(w, "stars", strconv.Itoa(ri.Stars))
		if ri.Archived {
			printKeyValue(w, "archived", "yes")
		}
		if ri.WebURL != "" {
			fmt.Fprintln(w, styleKey.Render("web")+" "+styleLink.Render(ri.WebURL))
		}
	}
}

func printForges(w io.Writer, rows []forgeRow, strategies []string) {
	for _, r := range rows {
		flagship := r.Flagship
		if flagship == "" {
			flagship = styleDim.Render("no flagship")
		}
		fmt.Fprintln(w, styleTitle.Render(r.Kind)+" "+flagship)
		printKeyValue(w, "operations", strings.Join(r.Operations, ", "))
		if r.Federated {
			printKeyValue(w, "federated", "yes")
		}
	}
	printKeyValue(w, "discovery", strings.Join(strategies, " → "))
}
