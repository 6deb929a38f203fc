package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/render"
)

// areasCommand lists the affected areas alphabetically.
func (c *CLI) areasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List affected areas in alphabetical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			printTitle(w, "Affected Areas (In-order)")
			printList(w, c.system().Areas())
			return nil
		},
	}
}

// bfsCommand prints the breadth-first visit order from a start place.
func (c *CLI) bfsCommand() *cobra.Command {
	var closed []string

	cmd := &cobra.Command{
		Use:   "bfs <start>",
		Short: "Show the breadth-first reachability order from a place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := c.system().BFSPath(cmd.Context(), args[0], closed...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, "BFS Path")
			printPath(w, order)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&closed, "closed", nil, "places that cannot be entered (comma-separated)")
	return cmd
}

// shortestCommand prints the minimal distance from a place to every other place.
func (c *CLI) shortestCommand() *cobra.Command {
	var reachableOnly bool

	cmd := &cobra.Command{
		Use:   "shortest <start>",
		Short: "Show the shortest distance from a place to every place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.system().ShortestPaths(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, "Shortest paths from "+args[0])
			for _, r := range rows {
				switch {
				case r.Reachable:
					printKeyValue(w, "To "+r.Area, StyleNumber.Render(strconv.FormatInt(r.Distance, 10)))
				case !reachableOnly:
					printKeyValue(w, "To "+r.Area, StyleWarning.Render("unreachable"))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reachableOnly, "reachable", false, "hide places that cannot be reached")
	return cmd
}

// routeCommand prints one shortest route between two places.
func (c *CLI) routeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Show a shortest route between two places",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.system().Route(args[0], args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, fmt.Sprintf("Route %s %s %s", r.From, iconArrow, r.To))
			printPath(w, r.Path)
			printKeyValue(w, "Distance", StyleNumber.Render(strconv.FormatInt(r.Distance, 10)))
			return nil
		},
	}
}

type dotOpts struct {
	output string
	svg    bool
	from   string
	to     string
}

// dotCommand writes the road network as DOT, or as SVG with --svg.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the road network as Graphviz DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := commandLogger(ctx)
			sys := c.system()

			ro := render.Options{Affected: sys.Areas()}
			if (opts.from == "") != (opts.to == "") {
				return fmt.Errorf("--from and --to must be given together")
			}
			if opts.from != "" {
				r, err := sys.Route(opts.from, opts.to)
				if err != nil {
					return err
				}
				ro.Highlight = r.Path
				ro.Title = fmt.Sprintf("%s %s %s (%d)", r.From, iconArrow, r.To, r.Distance)
			}

			data := []byte(render.ToDOT(sys.Roads(), ro))
			if opts.svg {
				err := timed(logger, "svg rendered", func() error {
					svg, err := render.RenderSVG(ctx, string(data))
					data = svg
					return err
				})
				if err != nil {
					return err
				}
			}

			if err := writeOutput(cmd.OutOrStdout(), opts.output, data); err != nil {
				return err
			}
			if opts.output != "" {
				printSuccess(cmd.ErrOrStderr(), "Wrote %s", opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG instead of DOT")
	cmd.Flags().StringVar(&opts.from, "from", "", "highlight the shortest route starting here")
	cmd.Flags().StringVar(&opts.to, "to", "", "highlight the shortest route ending here")
	return cmd
}
