package main

import (
	"context"
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/klog/v2"

	"sigs.k8s.io/moo-indicators/apis/indicators/v1alpha1"
	"sigs.k8s.io/moo-indicators/pkg/multiobjective"
	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
	"sigs.k8s.io/moo-indicators/pkg/multiobjective/util"
)

const usage = `Usage: moo-indicators <command> [flags]

Commands:
  hv        compute the hypervolume of one or more objective matrix files
  refdirs   generate reference directions on the unit simplex
`

func main() {
	defer klog.Flush()
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "hv":
		err = runHypervolume(ctx, args[1:], stdout, stderr)
	case "refdirs":
		err = runRefDirs(ctx, args[1:], stdout)
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// newFlagSet returns a flag set that also carries the klog flags.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)
	return fs
}

func runHypervolume(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("hv")
	config := fs.String("config", "", "HypervolumeArgs YAML file")
	refPoint := fs.String("ref-point", "", "reference point, e.g. \"1.1,1.1\"")
	pfFile := fs.String("pf", "", "file holding a sample of the Pareto front")
	ideal := fs.String("ideal", "", "ideal point overriding the one derived from --pf")
	nadir := fs.String("nadir", "", "nadir point overriding the one derived from --pf")
	nds := fs.Bool("nds", true, "only count the non-dominated points")
	normRefPoint := fs.Bool("norm-ref-point", true, "normalize the reference point like the points")
	command := fs.String("hv-command", "", "external hypervolume executable to use instead of the built-in computation")
	timeout := fs.Duration("timeout", 0, "timeout of a single --hv-command run")
	plot := fs.String("plot", "", "write a scatter plot of the first 2-D input to this HTML file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("hv: no input files")
	}

	hvArgs := &v1alpha1.HypervolumeArgs{}
	if *config != "" {
		loaded, err := v1alpha1.LoadFile(*config, v1alpha1.LoadHypervolumeArgs)
		if err != nil {
			return err
		}
		hvArgs = loaded
	}

	var err error
	if fs.Changed("ref-point") {
		if hvArgs.RefPoint, err = util.ParseVector(*refPoint); err != nil {
			return fmt.Errorf("--ref-point: %w", err)
		}
	}
	if fs.Changed("ideal") {
		if hvArgs.Ideal, err = util.ParseVector(*ideal); err != nil {
			return fmt.Errorf("--ideal: %w", err)
		}
	}
	if fs.Changed("nadir") {
		if hvArgs.Nadir, err = util.ParseVector(*nadir); err != nil {
			return fmt.Errorf("--nadir: %w", err)
		}
	}
	if fs.Changed("pf") {
		hvArgs.ParetoFrontFile = *pfFile
	}
	if fs.Changed("nds") || hvArgs.NDS == nil {
		hvArgs.NDS = nds
	}
	if fs.Changed("norm-ref-point") || hvArgs.NormRefPoint == nil {
		hvArgs.NormRefPoint = normRefPoint
	}
	if *command != "" {
		hvArgs.Command = &v1alpha1.HypervolumeCommand{Path: *command}
	}
	if hvArgs.Command != nil && fs.Changed("timeout") {
		hvArgs.Command.Timeout = nil
		if *timeout > 0 {
			hvArgs.Command.Timeout = &metav1.Duration{Duration: *timeout}
		}
	}

	indicator, err := multiobjective.NewIndicator(ctx, hvArgs)
	if err != nil {
		return err
	}

	logger := klog.FromContext(ctx)
	failed := 0
	for i, path := range fs.Args() {
		val, F, err := evaluateFile(ctx, indicator, path)
		if err != nil {
			// one failed file must not abort a sweep over many files
			failed++
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			logger.V(2).Info("hypervolume computation failed", "file", path, "err", err)
			val = math.Inf(-1)
		}
		fmt.Fprintf(stdout, "%s\t%g\n", path, val)

		if i == 0 && err == nil && *plot != "" {
			if err := writePlot(*plot, path, F, hvArgs); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("hv: %d of %d files failed", failed, fs.NArg())
	}
	return nil
}

func evaluateFile(ctx context.Context, indicator framework.Indicator, path string) (float64, framework.ObjectiveMatrix, error) {
	F, err := util.ReadMatrixFile(path)
	if err != nil {
		return 0, nil, err
	}
	klog.FromContext(ctx).V(2).Info("evaluating", "file", path, "points", humanize.Comma(int64(len(F))))
	val, err := indicator.Evaluate(F)
	return val, F, err
}

func writePlot(out, title string, F framework.ObjectiveMatrix, hvArgs *v1alpha1.HypervolumeArgs) error {
	var pf framework.ObjectiveMatrix
	if hvArgs.ParetoFrontFile != "" {
		var err error
		if pf, err = util.ReadMatrixFile(hvArgs.ParetoFrontFile); err != nil {
			return err
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := util.PlotFront(f, title, F, pf, hvArgs.RefPoint); err != nil {
		return err
	}
	return f.Close()
}

func runRefDirs(ctx context.Context, args []string, stdout io.Writer) error {
	fs := newFlagSet("refdirs")
	config := fs.String("config", "", "ReferenceDirectionsArgs YAML file")
	nObj := fs.Int32("n-obj", 3, "number of objectives")
	nRefs := fs.Int32("n-refs", 91, "number of reference directions")
	maxSections := fs.Int32("max-sections", 100, "exclusive upper bound of the lattice resolution search")
	fillUp := fs.Bool("fill-up", true, "add random directions when the lattice comes up short")
	seed := fs.Uint64("seed", 0, "seed of the random fill-up directions")
	output := fs.String("output", "", "write the directions to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rdArgs := &v1alpha1.ReferenceDirectionsArgs{}
	if *config != "" {
		loaded, err := v1alpha1.LoadFile(*config, v1alpha1.LoadReferenceDirectionsArgs)
		if err != nil {
			return err
		}
		rdArgs = loaded
	}
	if *config == "" || fs.Changed("n-obj") {
		rdArgs.NumObjectives = *nObj
	}
	if *config == "" || fs.Changed("n-refs") {
		rdArgs.NumDirections = *nRefs
	}
	if fs.Changed("max-sections") || rdArgs.MaxSections == nil {
		rdArgs.MaxSections = maxSections
	}
	if fs.Changed("fill-up") || rdArgs.FillUp == nil {
		rdArgs.FillUp = fillUp
	}
	if fs.Changed("seed") {
		rdArgs.Seed = seed
	}

	dirs, err := multiobjective.ReferenceDirections(ctx, rdArgs)
	if err != nil {
		return err
	}
	klog.FromContext(ctx).V(2).Info("generated reference directions",
		"objectives", rdArgs.NumObjectives, "requested", humanize.Comma(int64(rdArgs.NumDirections)), "generated", humanize.Comma(int64(len(dirs))))

	w := stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	m := make(framework.ObjectiveMatrix, len(dirs))
	for i, d := range dirs {
		m[i] = d
	}
	return util.WriteMatrix(w, m)
}
