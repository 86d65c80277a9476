package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/converters"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		nodes int
		prob  float64
		seed  int64
		out   string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random connected test network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return fmt.Errorf("generate: --out is required")
			}
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomSocial(nodes, prob))
			if err != nil {
				return err
			}
			if err := converters.SaveFile(out, a.format(), g); err != nil {
				return err
			}
			s := g.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d nodes, %d edges, mean degree %.2f\n",
				out, s.Nodes, s.Edges, 2*float64(s.Edges)/float64(max(s.Nodes, 1)))

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&nodes, "nodes", "n", 20, "number of users")
	f.Float64VarP(&prob, "prob", "p", 0.3, "probability of each extra friendship")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.StringVarP(&out, "out", "o", "", "output file (.csv or .json)")

	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a dataset between CSV and JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, rep, err := converters.LoadFile(args[0], converters.FormatAuto)
			if err != nil {
				return err
			}
			if err := converters.SaveFile(args[1], converters.FormatAuto, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "converted %d nodes, %d edges (%d skipped references)\n",
				rep.Nodes, rep.Edges, rep.SkippedEdges)

			return nil
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Plain-text summary of the loaded network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.svc.Snapshot()
			if out == "" {
				return converters.WriteReport(cmd.OutOrStdout(), g)
			}
			fh, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := converters.WriteReport(fh, g); err != nil {
				fh.Close()
				return err
			}

			return fh.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")

	return cmd
}
