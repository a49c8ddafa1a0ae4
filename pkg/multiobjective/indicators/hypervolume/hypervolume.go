// Package hypervolume implements the dominated hypervolume indicator.
package hypervolume

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"

	"sigs.k8s.io/moo-indicators/pkg/multiobjective/framework"
	"sigs.k8s.io/moo-indicators/pkg/multiobjective/normalization"
)

const (
	Name = "Hypervolume"
)

var (
	// ErrNoRefPoint is returned when neither a reference point nor a Pareto
	// front to derive it from is configured.
	ErrNoRefPoint = errors.New("hypervolume needs a reference point")
	// ErrDimensionMismatch is returned when points and the reference point
	// have a different number of objectives.
	ErrDimensionMismatch = errors.New("number of objectives does not match the reference point")
)

var _ framework.Indicator = &Indicator{}

// Indicator scores an objective matrix by the volume it dominates up to a
// reference point. Its configuration is fixed at construction, so one
// Indicator can be shared between goroutines.
type Indicator struct {
	refPoint      []float64
	ideal         []float64
	nadir         []float64
	normalization *normalization.Normalization
	nds           bool
	oracle        *Oracle
	logger        logr.Logger
}

type options struct {
	refPoint     []float64
	pf           framework.ObjectiveMatrix
	ideal        []float64
	nadir        []float64
	nds          bool
	normRefPoint bool
	logger       logr.Logger
}

// Option configures an Indicator.
type Option func(*options)

// WithRefPoint sets the reference point explicitly.
func WithRefPoint(ref []float64) Option {
	return func(o *options) {
		o.refPoint = ref
	}
}

// WithParetoFront sets a sample front. It provides the ideal and nadir points
// and, when no reference point is given, the reference point as its
// per-objective maximum.
func WithParetoFront(pf framework.ObjectiveMatrix) Option {
	return func(o *options) {
		o.pf = pf
	}
}

// WithIdeal overrides the ideal point derived from the Pareto front.
func WithIdeal(ideal []float64) Option {
	return func(o *options) {
		o.ideal = ideal
	}
}

// WithNadir overrides the nadir point derived from the Pareto front.
func WithNadir(nadir []float64) Option {
	return func(o *options) {
		o.nadir = nadir
	}
}

// WithNDS controls whether evaluated points are reduced to their
// non-dominated subset first. Enabled by default.
func WithNDS(nds bool) Option {
	return func(o *options) {
		o.nds = nds
	}
}

// WithNormRefPoint controls whether the reference point is normalized like
// the evaluated points. Enabled by default.
func WithNormRefPoint(norm bool) Option {
	return func(o *options) {
		o.normRefPoint = norm
	}
}

// WithLogger sets the logger.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a hypervolume indicator. It fails with ErrNoRefPoint when no
// reference point is given and none can be derived from a Pareto front.
func New(opts ...Option) (*Indicator, error) {
	o := &options{
		nds:          true,
		normRefPoint: true,
		logger:       klog.Background(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := o.pf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid front: %w", err)
	}

	ideal, nadir := normalization.DeriveIdealNadir(o.pf, o.ideal, o.nadir)
	norm := normalization.New(ideal, nadir)

	ref := o.refPoint
	if ref == nil {
		ref = DefaultRefPoint(o.pf)
	}
	if len(ref) == 0 {
		return nil, ErrNoRefPoint
	}
	if n := o.pf.NumObjectives(); n > 0 && n != len(ref) {
		return nil, fmt.Errorf("front has %d objectives, reference point %d: %w", n, len(ref), ErrDimensionMismatch)
	}
	if err := checkBound("ideal", ideal, len(ref)); err != nil {
		return nil, err
	}
	if err := checkBound("nadir", nadir, len(ref)); err != nil {
		return nil, err
	}

	if o.normRefPoint {
		ref = norm.Forward(ref)
	} else {
		ref = framework.ObjectiveSpacePoint(ref).Clone()
	}

	o.logger.V(5).Info("created hypervolume indicator", "refPoint", ref, "ideal", ideal, "nadir", nadir, "nds", o.nds)

	return &Indicator{
		refPoint:      ref,
		ideal:         ideal,
		nadir:         nadir,
		normalization: norm,
		nds:           o.nds,
		oracle:        NewOracle(ref),
		logger:        o.logger,
	}, nil
}

// DefaultRefPoint returns the per-objective maximum of pf, or nil for an
// empty front.
func DefaultRefPoint(pf framework.ObjectiveMatrix) []float64 {
	if len(pf) == 0 {
		return nil
	}
	ref := pf[0].Clone()
	for _, p := range pf[1:] {
		for j := range ref {
			if p[j] > ref[j] {
				ref[j] = p[j]
			}
		}
	}
	return ref
}

func checkBound(name string, bound []float64, n int) error {
	if bound != nil && len(bound) != n {
		return fmt.Errorf("%s point has %d objectives, reference point %d: %w", name, len(bound), n, ErrDimensionMismatch)
	}
	return nil
}

func (hv *Indicator) Name() string {
	return Name
}

// Evaluate returns the hypervolume of F in normalized space. F is not
// modified. Every point is expected to be weakly dominated by the reference
// point; points outside of it add no volume.
func (hv *Indicator) Evaluate(F framework.ObjectiveMatrix) (float64, error) {
	if len(F) == 0 {
		return 0, nil
	}
	if err := F.Validate(); err != nil {
		return 0, err
	}
	if n := F.NumObjectives(); n != len(hv.refPoint) {
		return 0, fmt.Errorf("points have %d objectives, reference point %d: %w", n, len(hv.refPoint), ErrDimensionMismatch)
	}

	points := hv.normalization.ForwardMatrix(F)
	if hv.nds {
		nonDom := framework.FindNonDominated(points)
		hv.logger.V(5).Info("filtered dominated points", "points", len(points), "nonDominated", len(nonDom))
		points = points.Rows(nonDom)
	}

	return hv.oracle.Compute(points), nil
}

// RefPoint returns the reference point in normalized space.
func (hv *Indicator) RefPoint() []float64 {
	return framework.ObjectiveSpacePoint(hv.refPoint).Clone()
}

// Ideal returns the ideal point used for normalization, or nil.
func (hv *Indicator) Ideal() []float64 {
	return framework.ObjectiveSpacePoint(hv.ideal).Clone()
}

// Nadir returns the nadir point used for normalization, or nil.
func (hv *Indicator) Nadir() []float64 {
	return framework.ObjectiveSpacePoint(hv.nadir).Clone()
}
