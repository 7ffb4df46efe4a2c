package motion

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tuneinsight/biquat/polynomial"
	"github.com/tuneinsight/biquat/utils"
	"github.com/tuneinsight/biquat/utils/factorization"
)

// ParametersLiteral is a literal representation of the parameters of a Factorizer.
type ParametersLiteral struct {
	// Prec is the precision in bits of the root isolation, 0 selects DefaultDomain.Prec.
	Prec uint `json:"prec"`
	// Reverse processes the factors of the norm polynomial in descending order
	// of the real part of their roots.
	Reverse bool `json:"reverse"`
}

// Factorizer factorizes motion polynomials with a fixed set of parameters.
// It is safe for concurrent use.
type Factorizer struct {
	dom     Domain
	reverse bool
	logger  *zap.Logger
}

// NewFactorizer creates a new Factorizer from the given parameters.
// It returns an error if the precision is non-zero and smaller than factorization.MinPrec.
func NewFactorizer(params ParametersLiteral) (*Factorizer, error) {

	dom := DefaultDomain

	if params.Prec != 0 {
		if params.Prec < factorization.MinPrec {
			return nil, fmt.Errorf("cannot NewFactorizer: %w: Prec=%d < %d", ErrArgument, params.Prec, factorization.MinPrec)
		}
		dom.Prec = params.Prec
	}

	return &Factorizer{
		dom:     dom,
		reverse: params.Reverse,
		logger:  zap.NewNop(),
	}, nil
}

// ParametersLiteral returns the ParametersLiteral of the Factorizer.
func (f *Factorizer) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Prec:    f.dom.Prec,
		Reverse: f.reverse,
	}
}

// WithLogger returns a shallow copy of the Factorizer logging to logger.
// A nil logger disables logging.
func (f *Factorizer) WithLogger(logger *zap.Logger) *Factorizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factorizer{
		dom:     f.dom,
		reverse: f.reverse,
		logger:  logger,
	}
}

// Factorize returns the linear factors of p whose product, from left to right, is p.
func (f *Factorizer) Factorize(p *polynomial.Poly) ([]*polynomial.Poly, error) {

	if reduced, err := IsReduced(p); err != nil {
		return nil, fmt.Errorf("cannot Factorize: %w", err)
	} else if !reduced {
		f.logger.Warn("polynomial is not reduced", zap.Stringer("poly", p))
	}

	factors, err := normFactors(p, &f.dom)
	if err != nil {
		return nil, fmt.Errorf("cannot Factorize: %w", err)
	}

	if f.reverse {
		utils.ReverseSliceInPlace(factors)
	}

	f.logger.Debug("norm polynomial factored",
		zap.Stringer("poly", p),
		zap.Int("factors", len(factors)))

	out, err := factorizeFromList(p, factors, func(norm, lin *polynomial.Poly) {
		f.logger.Debug("linear factor split off",
			zap.Stringer("norm", norm),
			zap.Stringer("factor", lin))
	})

	if err != nil {
		return nil, fmt.Errorf("cannot Factorize: %w", err)
	}

	return out, nil
}

// FactorizeAll factorizes the given polynomials concurrently. The i-th entry of the
// output holds the factors of polys[i]. The first error cancels the remaining work
// and is returned.
func (f *Factorizer) FactorizeAll(ctx context.Context, polys []*polynomial.Poly) ([][]*polynomial.Poly, error) {

	out := make([][]*polynomial.Poly, len(polys))

	g, ctx := errgroup.WithContext(ctx)

	for i := range polys {
		i := i
		g.Go(func() (err error) {

			if err = ctx.Err(); err != nil {
				return
			}

			if out[i], err = f.Factorize(polys[i]); err != nil {
				f.logger.Error("factorization failed", zap.Int("index", i), zap.Error(err))
				return fmt.Errorf("polynomial %d: %w", i, err)
			}

			return
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cannot FactorizeAll: %w", err)
	}

	return out, nil
}
