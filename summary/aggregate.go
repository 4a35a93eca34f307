package summary

import (
	"context"
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nimezhu/hicstat/hic"
	"github.com/nimezhu/hicstat/hic/normtype"
)

// Result is the outcome of one aggregation. Totals are not yet doubled.
type Result struct {
	Totals      Totals
	Chromosomes []hic.Chromosome
	// Table holds the raw sum of every chromosome pair, indexed by position
	// in Chromosomes. It is nil when there are no chromosomes.
	Table *mat64.SymDense
}

// Aggregator sums the valid contacts of every chromosome pair of Source
// at one zoom and normalization.
type Aggregator struct {
	Source  Dataset
	Zoom    hic.Zoom
	Norm    normtype.Type
	Workers int
	Logger  zerolog.Logger
}

// Aggregate visits every pair once. Any source error aborts the run and no
// totals are returned.
func (a *Aggregator) Aggregate(ctx context.Context) (Result, error) {
	chrs := a.Source.Chromosomes()
	it := NewPairIterator(len(chrs))
	sums := make([]int64, it.Len())

	var err error
	if a.Workers > 1 {
		err = a.sumParallel(ctx, chrs, it, sums)
	} else {
		err = a.sumSequential(ctx, chrs, it, sums)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Chromosomes: chrs}
	if len(chrs) > 0 {
		res.Table = mat64.NewSymDense(len(chrs), nil)
	}
	it.Reset()
	for k := 0; ; k++ {
		p, ok := it.Next()
		if !ok {
			break
		}
		res.Totals = res.Totals.Add(p, sums[k])
		res.Table.SetSym(p.I, p.J, float64(sums[k]))
	}
	return res, nil
}

func (a *Aggregator) sumSequential(ctx context.Context, chrs []hic.Chromosome, it *PairIterator, sums []int64) error {
	for k := 0; ; k++ {
		p, ok := it.Next()
		if !ok {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		sum, err := a.PairSum(chrs[p.I], chrs[p.J])
		if err != nil {
			return err
		}
		sums[k] = sum
	}
}

// sumParallel runs a bounded pool of workers. Each worker writes only its
// own slot of sums. A canceled ctx is an error even when every started
// worker succeeded.
func (a *Aggregator) sumParallel(ctx context.Context, chrs []hic.Chromosome, it *PairIterator, sums []int64) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Workers)
	for k := 0; ; k++ {
		p, ok := it.Next()
		if !ok {
			break
		}
		if gctx.Err() != nil {
			break
		}
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := a.PairSum(chrs[p.I], chrs[p.J])
			if err != nil {
				return err
			}
			sums[k] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// PairSum returns the sum of the valid contacts between x and y over the
// stored triangle of the whole region. A pair without a matrix
// or without data at the zoom sums to zero.
func (a *Aggregator) PairSum(x, y hic.Chromosome) (int64, error) {
	log := a.Logger.With().Str("chr1", x.Name).Str("chr2", y.Name).Logger()
	m, err := a.Source.MatrixFor(x, y)
	if err != nil {
		return 0, fmt.Errorf("matrix %s-%s: %w", x.Name, y.Name, err)
	}
	if m == nil {
		log.Debug().Msg("no matrix")
		return 0, nil
	}
	zd := m.ZoomData(a.Zoom)
	if zd == nil {
		log.Debug().Str("zoom", a.Zoom.String()).Msg("no zoom data")
		return 0, nil
	}
	binSize := int64(a.Zoom.BinSize)
	rowEnd := int(x.Length / binSize)
	colEnd := int(y.Length / binSize)
	blocks, err := zd.BlocksOverlapping(0, 0, rowEnd, colEnd, a.Norm, fillUnderDiagonal)
	if err != nil {
		return 0, fmt.Errorf("blocks %s-%s: %w", x.Name, y.Name, err)
	}
	var sum int64
	for _, b := range blocks {
		sum = addSat(sum, SumRecords(b.Records()))
	}
	log.Debug().Int("blocks", len(blocks)).Int64("sum", sum).Msg("pair")
	return sum, nil
}

// SumRecords adds the counts of records, skipping NaN and infinite values.
// Each count is truncated toward zero before it is added. Counts beyond the
// int64 range and the running sum saturate at math.MaxInt64 / math.MinInt64.
func SumRecords(records []hic.ContactRecord) int64 {
	var sum int64
	for _, r := range records {
		v := float64(r.Counts)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum = addSat(sum, truncSat(v))
	}
	return sum
}

// truncSat converts v to int64 toward zero, clamping out-of-range values.
func truncSat(v float64) int64 {
	switch {
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

func addSat(a, b int64) int64 {
	c := a + b
	if a > 0 && b > 0 && c < 0 {
		return math.MaxInt64
	}
	if a < 0 && b < 0 && c >= 0 {
		return math.MinInt64
	}
	return c
}
