package forgectl

import (
	"context"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"forgeapi/internal/core/forge"
)

// opAliases are the short names accepted next to the canonical operation names
var opAliases = map[string]forge.Operation{
	"repo":   forge.OpRepository,
	"latest": forge.OpLatestRelease,
}

func (c *CLI) discoverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discover <host>",
		Short: "Report which forge serves a host and which strategy decided it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.dispatcher()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
			defer cancel()

			found, err := d.Discover(ctx, args[0])
			if err != nil {
				return c.forgeError(err)
			}
			if c.jsonOutput() {
				return printJSON(c.out, found)
			}
			printDiscovered(c.out, found)
			return nil
		},
	}
}

func (c *CLI) getCommand() *cobra.Command {
	var kind, host string

	cmd := &cobra.Command{
		Use:   "get <operation> <target> [ref]",
		Short: "Run one operation against a repository",
		Long: `Run one operation against a repository.

Operations: repository (repo), latest-release (latest), version, branch.
version and branch take a ref as the third argument.

The target is owner/repo together with --kind (flagship instance) or --host
(auto-discovered forge), or a URL such as https://codeberg.org/owner/repo.`,
		Example: `  forgectl get latest owner/repo --kind github
  forgectl get version https://gitlab.gnome.org/GNOME/gtk 4.14.0
  forgectl get branch group/sub/project main --host git.corp.example`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := parseOperation(args[0])
			if err != nil {
				return err
			}
			t, err := parseTarget(args[1], kind, host)
			if err != nil {
				return err
			}
			if len(args) == 3 {
				t.Ref = args[2]
			}
			if (op == forge.OpVersion || op == forge.OpBranch) && t.Ref == "" {
				return usageErrorf("%s needs a ref argument", op)
			}

			d, err := c.dispatcher()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
			defer cancel()

			res, err := d.Dispatch(ctx, op, t)
			if err != nil {
				return c.forgeError(err)
			}
			if c.jsonOutput() {
				return printJSON(c.out, res)
			}
			printResult(c.out, res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "forge kind (github, gitlab, forgejo, sourcehut, flakehub)")
	cmd.Flags().StringVar(&host, "host", "", "forge host; the kind is discovered unless --kind is also set")
	return cmd
}

func (c *CLI) forgesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "forges",
		Short: "List registered forges, their capabilities and flagship hosts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := c.dispatcher()
			if err != nil {
				return err
			}
			rows := forgeRows(d)
			if c.jsonOutput() {
				return printJSON(c.out, struct {
					Forges     []forgeRow `json:"forges"`
					Strategies []string   `json:"strategies"`
				}{rows, d.Strategies()})
			}
			printForges(c.out, rows, d.Strategies())
			return nil
		},
	}
}

// forgeRow is one line of the forges listing
type forgeRow struct {
	Kind       string   `json:"kind"`
	Flagship   string   `json:"flagship,omitempty"`
	Federated  bool     `json:"federated"`
	Operations []string `json:"operations"`
}

func forgeRows(d *forge.Dispatcher) []forgeRow {
	flags := d.Flagships().Hosts()
	rows := make([]forgeRow, 0, len(forge.Kinds))
	for _, k := range d.Registry().Kinds() {
		a, _ := d.Registry().Adapter(k)
		row := forgeRow{Kind: k.String(), Flagship: flags[k], Federated: k.Federated(), Operations: []string{}}
		for _, op := range forge.Operations {
			if forge.Supports(a, op) {
				row.Operations = append(row.Operations, op.String())
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func parseOperation(s string) (forge.Operation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if op, ok := opAliases[name]; ok {
		return op, nil
	}
	if op, ok := forge.ParseOperation(name); ok {
		return op, nil
	}
	return 0, usageErrorf("unknown operation %q", s)
}

// parseTarget builds a dispatcher target from a positional argument and the --kind/--host flags
// flags win over the URL host
func parseTarget(arg, kind, host string) (forge.Target, error) {
	var t forge.Target
	path := arg
	if strings.Contains(arg, "://") {
		u, err := url.Parse(arg)
		if err != nil {
			return t, usageErrorf("bad target URL %q: %v", arg, err)
		}
		t.Host = u.Host
		path = u.Path
	}
	if host != "" {
		t.Host = host
	}

	owner, repo, ok := forge.SplitPath(path)
	if !ok {
		return t, usageErrorf("target %q is not owner/repo", arg)
	}
	t.Owner, t.Repo = owner, repo

	if kind != "" {
		k, ok := forge.ParseKind(kind)
		if !ok {
			return t, &forge.UnknownKindError{Name: kind}
		}
		t.Kind = k
	}
	if t.Kind == forge.KindUnknown && forge.NormalizeHost(t.Host) == "" {
		return t, usageErrorf("need --kind, --host or a URL target")
	}
	return t, nil
}
