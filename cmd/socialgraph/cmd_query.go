package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/backbone"
	"github.com/katalvlaran/socialgraph/components"
)

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}

	return strings.Join(parts, " ")
}

func newBFSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bfs <start>",
		Short: "Breadth-first visiting order from a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := a.svc.BFS(cmd.Context(), start)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), res.Order, func(w io.Writer) {
				fmt.Fprintf(w, "order: %s\n", joinIDs(res.Order))
			})
		},
	}
}

func newDFSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dfs <start>",
		Short: "Depth-first visiting order from a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := a.svc.DFS(cmd.Context(), start)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), res.Order, func(w io.Writer) {
				fmt.Fprintf(w, "order: %s\n", joinIDs(res.Order))
			})
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	var algo string
	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Cheapest path between two users",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseID(args[0])
			if err != nil {
				return err
			}
			to, err := parseID(args[1])
			if err != nil {
				return err
			}
			alg, err := analysis.ParsePathAlgorithm(algo)
			if err != nil {
				return err
			}
			res, err := a.svc.ShortestPath(cmd.Context(), alg, from, to)
			if err != nil {
				return err
			}
			out := map[string]any{"algorithm": alg, "path": res.Path, "reachable": res.Reachable()}
			if res.Reachable() {
				out["cost"] = res.Cost
			}

			return a.emit(cmd.OutOrStdout(), out, func(w io.Writer) {
				if !res.Reachable() {
					fmt.Fprintf(w, "no path from %d to %d\n", from, to)
					return
				}
				fmt.Fprintf(w, "path: %s\ncost: %.4f\n", joinIDs(res.Path), res.Cost)
			})
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "dijkstra", "dijkstra or astar")

	return cmd
}

func newCentralityCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "centrality",
		Short: "Rank users by number of friends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.svc.DegreeCentrality(cmd.Context(), top)

			return a.emit(cmd.OutOrStdout(), res, func(w io.Writer) {
				for i, r := range res {
					fmt.Fprintf(w, "%d. %s (id %d) degree %d\n", i+1, r.Name, r.ID, r.Degree)
				}
			})
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "number of users (0 = configured default, -1 = all)")

	return cmd
}

func newBetweennessCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "betweenness",
		Short: "Rank users by how many shortest paths pass through them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.svc.Betweenness(cmd.Context(), top)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), res, func(w io.Writer) {
				for i, r := range res {
					fmt.Fprintf(w, "%d. %s (id %d) score %d\n", i+1, r.Name, r.ID, r.Score)
				}
			})
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "number of users (0 = configured default, -1 = all)")

	return cmd
}

func newColorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "color",
		Short: "Welsh–Powell colouring of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.svc.Color(cmd.Context())

			return a.emit(cmd.OutOrStdout(), res, func(w io.Writer) {
				for _, n := range a.svc.Nodes() {
					fmt.Fprintf(w, "%d %s %s\n", n.ID, n.Name, res.Colors[n.ID])
				}
				fmt.Fprintf(w, "classes: %d\n", res.ClassCount)
			})
		},
	}
}

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Connected components (communities)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			comps, err := a.svc.Components(cmd.Context())
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), comps, func(w io.Writer) {
				for i, c := range comps {
					fmt.Fprintf(w, "%d: %s\n", i, joinIDs(c))
				}
				fmt.Fprintf(w, "count: %d largest: %d\n", len(comps), components.Largest(comps))
			})
		},
	}
}

func newBackboneCmd(a *app) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "backbone",
		Short: "Minimum spanning forest of the friendship weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := backbone.ParseMethod(method)
			if err != nil {
				return err
			}
			res, err := a.svc.Backbone(cmd.Context(), m)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), res, func(w io.Writer) {
				for _, e := range res.Edges {
					fmt.Fprintf(w, "%d - %d  %.4f\n", e.Source, e.Target, e.Weight)
				}
				fmt.Fprintf(w, "trees: %d total: %.4f\n", res.Trees, res.Total)
			})
		},
	}
	cmd.Flags().StringVar(&method, "method", string(backbone.Kruskal), "kruskal or prim")

	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Node, edge and density summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := a.svc.Stats(cmd.Context())

			return a.emit(cmd.OutOrStdout(), st, func(w io.Writer) {
				fmt.Fprintf(w, "nodes: %d\nedges: %d\ndensity: %.4f\nmean weight: %.4f\nisolated: %d\n",
					st.Nodes, st.Edges, st.Density, st.MeanWeight, st.Isolated)
			})
		},
	}
}
