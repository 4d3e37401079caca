package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spbench/bench"
	"github.com/katalvlaran/spbench/dijkstra"
	"github.com/katalvlaran/spbench/instance"
)

func runCmd() *cobra.Command {
	var (
		flagInstance string
		flagAlgo     string
		flagPath     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve one instance with one engine and print a single result line",
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := instance.Load(flagInstance)
			if err != nil {
				return err
			}
			a, err := dijkstra.ParseAlgorithm(flagAlgo)
			if err != nil {
				return err
			}
			current.cfg.Algorithms = []string{string(a)}
			current.cfg.ReturnPath = flagPath

			r, err := current.runner()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()
			rep, err := r.Run(ctx, []*instance.Instance{inst})
			if err != nil {
				return err
			}
			for _, run := range rep.Runs {
				fmt.Println(bench.FormatLine(run))
				if flagPath && len(run.Path) > 0 {
					fmt.Printf("Path=%s\n", strings.Join(run.Path, "->"))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagInstance, "instance", "i", "", "Instance JSON file")
	cmd.Flags().StringVarP(&flagAlgo, "algo", "a", "heap", "Engine: heap (A, pq) or scan (B, array)")
	cmd.Flags().BoolVar(&flagPath, "path", false, "Also print the shortest path")
	_ = cmd.MarkFlagRequired("instance")

	return cmd
}

func batchCmd() *cobra.Command {
	var (
		flagDir  string
		flagCSV  string
		flagJSON string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every engine over every instance in a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			insts, err := loadDir(flagDir)
			if err != nil {
				return err
			}
			r, err := current.runner()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()
			rep, err := r.Run(ctx, insts)
			if err != nil {
				return err
			}

			bench.WriteTable(os.Stdout, rep)
			if flagCSV != "" {
				if err := writeFile(flagCSV, func(f *os.File) error { return bench.WriteCSV(f, rep.Runs) }); err != nil {
					return err
				}
			}
			if flagJSON != "" {
				if err := writeFile(flagJSON, func(f *os.File) error { return bench.WriteJSON(f, rep) }); err != nil {
					return err
				}
			}
			if n := len(rep.Mismatches); n > 0 {
				return fmt.Errorf("%d cross-engine mismatch(es)", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagDir, "dir", "d", "data", "Directory of instance JSON files")
	cmd.Flags().StringVar(&flagCSV, "csv", "", "Write per-run rows as CSV")
	cmd.Flags().StringVar(&flagJSON, "json", "", "Write the full report as JSON")

	return cmd
}

func scaleCmd() *cobra.Command {
	var (
		flagInstance string
		flagSteps    []int
	)

	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Run both engines on growing prefixes of one instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := instance.Load(flagInstance)
			if err != nil {
				return err
			}
			r, err := current.runner()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()
			rep, err := r.Scale(ctx, inst, flagSteps)
			if err != nil {
				return err
			}
			bench.WriteScale(os.Stdout, rep)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagInstance, "instance", "i", "", "Instance JSON file")
	cmd.Flags().IntSliceVar(&flagSteps, "steps", nil, "Prefix sizes (default from config)")
	_ = cmd.MarkFlagRequired("instance")

	return cmd
}

func statsCmd() *cobra.Command {
	var (
		flagInstance string
		flagDir      string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Describe the size, density and weight distribution of instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			var insts []*instance.Instance
			switch {
			case flagInstance != "":
				inst, err := instance.Load(flagInstance)
				if err != nil {
					return err
				}
				insts = append(insts, inst)
			default:
				var err error
				if insts, err = loadDir(flagDir); err != nil {
					return err
				}
			}
			for _, inst := range insts {
				st := instance.Describe(inst)
				fmt.Printf("%s: nodes=%d sources=%d arcs=%d density=%.6f weight[min=%g max=%g mean=%.4f median=%g std=%.4f]\n",
					inst.Name, st.Nodes, st.Sources, st.Arcs, st.Density,
					st.MinWeight, st.MaxWeight, st.MeanWeight, st.MedianWeight, st.StdDevWeight)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagInstance, "instance", "i", "", "Instance JSON file")
	cmd.Flags().StringVarP(&flagDir, "dir", "d", "data", "Directory of instance JSON files, used without --instance")

	return cmd
}

func loadDir(dir string) ([]*instance.Instance, error) {
	paths, err := instance.Dir(dir)
	if err != nil {
		return nil, err
	}
	insts := make([]*instance.Instance, 0, len(paths))
	for _, p := range paths {
		inst, err := instance.Load(p)
		if err != nil {
			return nil, err
		}
		insts = append(insts, inst)
	}
	current.log.Info().Str("dir", dir).Int("instances", len(insts)).Msg("instances loaded")

	return insts, nil
}

func writeFile(path string, fn func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(f)
}
