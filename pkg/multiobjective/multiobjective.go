package multiobjective

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"

	"sigs.k8s.io/moo-indicators/apis/indicators/v1alpha1"
	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
	"sigs.k8s.io/moo-indicators/pkg/multiobjective/indicators/hypervolume"
	"sigs.k8s.io/moo-indicators/pkg/multiobjective/refdirs"
	"sigs.k8s.io/moo-indicators/pkg/multiobjective/util"
)

// NewIndicator builds the performance indicator described by obj. The
// Pareto front file referenced by the args, if any, is read once here.
func NewIndicator(ctx context.Context, obj runtime.Object) (framework.Indicator, error) {
	logger := klog.FromContext(ctx)

	args, ok := obj.(*v1alpha1.HypervolumeArgs)
	if !ok {
		return nil, fmt.Errorf("want args to be of type HypervolumeArgs, got %T", obj)
	}
	args = args.DeepCopy()
	v1alpha1.SetDefaults_HypervolumeArgs(args)
	if err := v1alpha1.ValidateHypervolumeArgs(args); err != nil {
		return nil, err
	}
	logger.V(5).Info("creating hypervolume indicator", "refPoint", args.RefPoint, "paretoFront", args.ParetoFrontFile, "external", args.Command != nil)

	var pf framework.ObjectiveMatrix
	if args.ParetoFrontFile != "" {
		var err error
		pf, err = util.ReadMatrixFile(args.ParetoFrontFile)
		if err != nil {
			return nil, err
		}
	}

	hv, err := hypervolume.New(
		hypervolume.WithRefPoint(args.RefPoint),
		hypervolume.WithParetoFront(pf),
		hypervolume.WithIdeal(args.Ideal),
		hypervolume.WithNadir(args.Nadir),
		hypervolume.WithNDS(*args.NDS),
		hypervolume.WithNormRefPoint(*args.NormRefPoint),
		hypervolume.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	if args.Command == nil {
		return hv, nil
	}

	ref := args.RefPoint
	if ref == nil {
		ref = hypervolume.DefaultRefPoint(pf)
	}
	return &commandIndicator{
		command: &hypervolume.Command{
			Path:    args.Command.Path,
			Timeout: args.Command.Timeout.Duration,
		},
		refPoint: ref,
		nds:      *args.NDS,
		logger:   logger,
	}, nil
}

// commandIndicator evaluates the hypervolume in raw objective space with an
// external executable.
type commandIndicator struct {
	command  *hypervolume.Command
	refPoint []float64
	nds      bool
	logger   klog.Logger
}

var _ framework.Indicator = &commandIndicator{}

func (c *commandIndicator) Name() string {
	return hypervolume.Name
}

func (c *commandIndicator) Evaluate(F framework.ObjectiveMatrix) (float64, error) {
	if err := F.Validate(); err != nil {
		return 0, err
	}
	if c.nds {
		F = F.Rows(framework.FindNonDominated(F))
	}
	ctx := klog.NewContext(context.Background(), c.logger)
	return c.command.Compute(ctx, F, c.refPoint)
}

const directionCacheTTL = 10 * time.Minute

// directionCache holds the reproducible direction sets handed out by
// ReferenceDirections.
var directionCache = refdirs.NewCache(directionCacheTTL)

// ReferenceDirections generates the reference directions described by obj.
func ReferenceDirections(ctx context.Context, obj runtime.Object) ([][]float64, error) {
	logger := klog.FromContext(ctx)

	args, ok := obj.(*v1alpha1.ReferenceDirectionsArgs)
	if !ok {
		return nil, fmt.Errorf("want args to be of type ReferenceDirectionsArgs, got %T", obj)
	}
	args = args.DeepCopy()
	v1alpha1.SetDefaults_ReferenceDirectionsArgs(args)
	if err := v1alpha1.ValidateReferenceDirectionsArgs(args); err != nil {
		return nil, err
	}

	opts := []refdirs.Option{
		refdirs.WithMaxSections(int(*args.MaxSections)),
		refdirs.WithFillUp(*args.FillUp),
		refdirs.WithLogger(logger),
	}
	nObj, nRefs := int(args.NumObjectives), int(args.NumDirections)

	switch {
	case args.Seed != nil:
		opts = append(opts, refdirs.WithRand(rand.New(rand.NewPCG(*args.Seed, *args.Seed))))
		variant := fmt.Sprintf("max=%d/fill=%t/seed=%d", *args.MaxSections, *args.FillUp, *args.Seed)
		return directionCache.FromNVariant(variant, nObj, nRefs, opts...)
	case !*args.FillUp:
		variant := fmt.Sprintf("max=%d/fill=false", *args.MaxSections)
		return directionCache.FromNVariant(variant, nObj, nRefs, opts...)
	default:
		// unseeded fill-up is random on every call
		return refdirs.FromN(nObj, nRefs, opts...)
	}
}
