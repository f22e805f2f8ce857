// Command pipecheck runs the pipeline validation service or checks a
// pipeline document from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/meikuraledutech/pipecheck"
	"github.com/meikuraledutech/pipecheck/server"
)

func main() {
	root := &cobra.Command{
		Use:           "pipecheck",
		Short:         "Validate pipeline graphs for acyclicity",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), checkCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pipecheck:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP validation endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			cfg := server.FromEnv()
			srv := server.New(cfg, log)

			log.Info("listening", "addr", cfg.Addr, "allow_origin", cfg.AllowOrigin)
			return srv.Listen()
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: `Validate a {"nodes": [...], "edges": [...]} document ("-" for stdin)`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			var doc struct {
				Nodes any `json:"nodes"`
				Edges any `json:"edges"`
			}
			if err := json.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("decode pipeline: %w", err)
			}

			result, err := pipecheck.Validate(doc.Nodes, doc.Edges)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
			if !result.IsDAG {
				os.Exit(2)
			}
			return nil
		},
	}
}
