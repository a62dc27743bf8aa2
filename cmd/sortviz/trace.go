package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lanrat/sortviz"
	"github.com/lanrat/sortviz/replay"
	"github.com/lanrat/sortviz/tracefile"
)

var (
	traceAlgorithm string
	traceTrait     string
	traceValues    string
	traceData      string
	traceOut       string
	traceSeed      int64
	traceRandomize bool
)

var (
	compareColor = color.New(color.FgYellow)
	swapColor    = color.New(color.FgRed)
	holdColor    = color.New(color.FgCyan)
	slideColor   = color.New(color.FgBlue)
	joinColor    = color.New(color.FgGreen)
	mergeColor   = color.New(color.FgMagenta)
)

// traceCmd computes and prints a step trace
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Compute the step trace of one sort",
	Long: `Computes the full step trace of sorting the given values (or a YAML
dataset) by the chosen trait and algorithm, prints every step, and
optionally writes the trace to a file for later replay.`,
	RunE: runTrace,
}

// replayCmd replays a saved trace file
var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Replay a saved trace file and print the final arrangement",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

// algorithmsCmd lists the demonstration cycle
var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the algorithms in demonstration cycle order",
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range sortviz.Algorithms() {
			fmt.Printf("%s -> %s\n", a, a.Next())
		}
	},
}

func init() {
	traceCmd.Flags().StringVarP(&traceAlgorithm, "algorithm", "a", "bubble", "algorithm: bubble, insertion, selection, merge, stupid")
	traceCmd.Flags().StringVarP(&traceTrait, "trait", "t", "", "trait to sort by (required with --data)")
	traceCmd.Flags().StringVar(&traceValues, "values", "", "comma separated values to sort, e.g. 5,3,4,1,2")
	traceCmd.Flags().StringVar(&traceData, "data", "", "YAML dataset file of named items with per-trait values")
	traceCmd.Flags().StringVarP(&traceOut, "out", "o", "", "write the trace to this file")
	traceCmd.Flags().Int64Var(&traceSeed, "seed", 0, "seed the shuffle randomness for a reproducible trace")
	traceCmd.Flags().BoolVar(&traceRandomize, "randomize", false, "emit a randomize trace instead of sorting")
}

func runTrace(cmd *cobra.Command, args []string) error {
	items, values, err := loadItems()
	if err != nil {
		return err
	}

	config := &sortviz.Config{Logger: logger}
	if cmd.Flags().Changed("seed") {
		config.Rand = sortviz.SeededRand(traceSeed)
	}

	trait := sortviz.Trait(traceTrait)
	var steps []sortviz.Step
	var label string
	algorithm := sortviz.BubbleSort
	if traceRandomize {
		steps = sortviz.RandomizePositionsConfig(items, config)
		label = "randomize"
	} else {
		algorithm, err = sortviz.ParseAlgorithm(traceAlgorithm)
		if err != nil {
			return err
		}
		steps, err = sortviz.SortConfig(items, trait, algorithm, config)
		if err != nil {
			return err
		}
		label = algorithm.String()
	}

	for _, step := range steps {
		printStep(step)
	}
	fmt.Printf("%s steps over %s items (%s)\n",
		humanize.Comma(int64(len(steps))), humanize.Comma(int64(len(items))), label)

	if traceOut != "" {
		if traceRandomize {
			return errors.New("randomize traces cannot be saved to a trace file")
		}
		header := tracefile.NewHeader(algorithm, trait, values)
		if err := tracefile.WriteFile(traceOut, header, steps); err != nil {
			return err
		}
		fmt.Printf("trace %s written to %s\n", header.ID, traceOut)
	}
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	header, steps, err := tracefile.ReadFile(args[0])
	if err != nil {
		return err
	}
	final, err := replay.Apply(header.Values, steps)
	if err != nil {
		return err
	}
	fmt.Printf("trace %s: %s by %q, %s steps\n",
		header.ID, header.Algorithm, header.Trait, humanize.Comma(int64(len(steps))))
	fmt.Printf("initial: %v\n", header.Values)
	fmt.Printf("final:   %v\n", final)
	return nil
}

// loadItems builds the item list from --values or --data, also returning the
// plain trait values for the trace file header.
func loadItems() ([]sortviz.TraitValuer, []float64, error) {
	switch {
	case traceValues != "" && traceData != "":
		return nil, nil, errors.New("--values and --data are mutually exclusive")
	case traceData != "":
		ds, err := loadDataset(traceData)
		if err != nil {
			return nil, nil, err
		}
		if traceTrait == "" {
			traceTrait = string(ds.Trait)
		}
		if traceTrait == "" {
			return nil, nil, errors.New("--trait is required when the dataset does not name one")
		}
		return ds.sortables(sortviz.Trait(traceTrait))
	case traceValues != "":
		var values []float64
		for _, part := range strings.Split(traceValues, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("bad value %q: %w", part, err)
			}
			values = append(values, v)
		}
		return sortviz.ScalarItems(values...), values, nil
	default:
		return nil, nil, errors.New("one of --values or --data is required")
	}
}

func printStep(step sortviz.Step) {
	var c *color.Color
	switch step.(type) {
	case sortviz.Compare:
		c = compareColor
	case sortviz.Swap:
		c = swapColor
	case sortviz.Hold, sortviz.Unhold:
		c = holdColor
	case sortviz.Slide:
		c = slideColor
	case sortviz.Join:
		c = joinColor
	case sortviz.MergeComplete:
		c = mergeColor
	default:
		c = color.New()
	}
	c.Println(step.String())
}
