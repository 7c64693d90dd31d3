// Package cli implements qosctl, a command-line view of the QoS catalog.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gonzalop/duaqos"
	"github.com/gonzalop/duaqos/internal/logger"
)

// EnvPrefix prefixes the environment variables that override flags,
// e.g. DUAQOS_OUTPUT=json.
const EnvPrefix = "DUAQOS"

const rootLong = `qosctl prints the QoS profiles and action option bundles that DUA
nodes use, so their settings can be checked without writing code.

Classes: reliable, best-effort, persistent, legacy, visualization.
Categories: datum, command, scan, image, marker.`

type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	log    *zap.Logger
}

// NewRootCommand returns the qosctl command tree. Results go to out,
// logs go to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		out:    out,
		errOut: errOut,
		log:    zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "qosctl",
		Short:         "Inspect the DUA QoS profile catalog",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = logger.New(a.v.GetString("log-level"), a.errOut)
			if _, err := parseFormat(a.v.GetString("output")); err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringP("output", "o", "table", "output format: table, json or yaml")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	_ = a.v.BindPFlag("output", root.PersistentFlags().Lookup("output"))
	_ = a.v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(a.listCmd())
	root.AddCommand(a.getCmd())
	root.AddCommand(a.actionCmd())
	return root
}

func (a *app) format() format {
	f, _ := parseFormat(a.v.GetString("output"))
	return f
}

func (a *app) listCmd() *cobra.Command {
	var class string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every profile in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := duaqos.Entries()
			if class != "" {
				c, err := duaqos.ParseClass(class)
				if err != nil {
					return err
				}
				filtered := entries[:0]
				for _, e := range entries {
					if e.Class == c {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}
			a.log.Debug("listing catalog", zap.Int("entries", len(entries)), zap.String("class", class))
			return renderEntries(a.out, a.format(), entries)
		},
	}
	cmd.Flags().StringVar(&class, "class", "", "only list profiles of this class")
	return cmd
}

func (a *app) getCmd() *cobra.Command {
	var depth uint
	cmd := &cobra.Command{
		Use:     "get <class> <category>",
		Short:   "Show one profile",
		Example: "  qosctl get reliable scan\n  qosctl get persistent datum --depth 50 -o yaml",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := duaqos.ParseClass(args[0])
			if err != nil {
				return err
			}
			category, err := duaqos.ParseCategory(args[1])
			if err != nil {
				return err
			}

			var opts []duaqos.Option
			if cmd.Flags().Changed("depth") {
				opts = append(opts, duaqos.WithDepth(depth))
			}
			q, err := duaqos.Lookup(class, category, opts...)
			if err != nil {
				if cats := duaqos.Categories(class); len(cats) > 0 {
					return fmt.Errorf("%w (%s defines: %s)", err, class, joinCategories(cats))
				}
				return err
			}
			a.log.Debug("profile lookup",
				zap.Stringer("class", class),
				zap.Stringer("category", category),
				zap.Stringer("profile", q))
			return renderProfile(a.out, a.format(), class, category, q)
		},
	}
	cmd.Flags().UintVar(&depth, "depth", 0, "queue depth (default: the category's)")
	return cmd
}

func (a *app) actionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "action [server|client]",
		Short:     "Show the action server or client options",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"server", "client"},
		RunE: func(cmd *cobra.Command, args []string) error {
			role := "server"
			if len(args) == 1 {
				role = args[0]
			}
			a.log.Debug("action options", zap.String("role", role))
			if role == "client" {
				return renderAction(a.out, a.format(), role, duaqos.ActionClientOptions())
			}
			return renderAction(a.out, a.format(), role, duaqos.ActionServerOptions())
		},
	}
}

func joinCategories(cats []duaqos.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
