// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"context"
	stderrors "errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/versiontheca/pkg/constraint"
	"github.com/NVIDIA/versiontheca/pkg/defaults"
	"github.com/NVIDIA/versiontheca/pkg/errors"
	"github.com/NVIDIA/versiontheca/pkg/header"
	"github.com/NVIDIA/versiontheca/pkg/version"
)

// Builder runs operations for one dialect.
type Builder struct {
	// Dialect parses every version handled by the builder.
	Dialect version.Dialect

	// MaxVersions bounds the number of versions per call.
	MaxVersions int

	// Concurrency bounds the parallel parsing done by Sort.
	Concurrency int
}

// Option is a functional option for configuring a Builder.
type Option func(*Builder)

// WithMaxVersions bounds the number of versions accepted per call.
func WithMaxVersions(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.MaxVersions = n
		}
	}
}

// WithConcurrency sets the number of parser goroutines used by Sort.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.Concurrency = n
		}
	}
}

// NewBuilder returns a Builder for dialect d.
func NewBuilder(d version.Dialect, opts ...Option) *Builder {
	b := &Builder{
		Dialect:     d,
		MaxVersions: defaults.MaxBulkRequests,
		Concurrency: defaults.SortConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) header(kind header.Kind) header.Header {
	return *header.New(header.WithKind(kind), header.WithDialect(b.Dialect.String()))
}

func (b *Builder) observe(op string, start time.Time, n int, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	d := b.Dialect.String()
	operationsTotal.WithLabelValues(op, d, outcome).Inc()
	operationDuration.WithLabelValues(op, d).Observe(time.Since(start).Seconds())
	versionsProcessed.WithLabelValues(op, d).Add(float64(n))
}

// checkDialect rejects dialects the registry does not know.
func (b *Builder) checkDialect() error {
	if _, err := version.ParseDialect(b.Dialect.String()); err != nil {
		return errors.WrapVersion("unsupported version type", err)
	}
	return nil
}

func (b *Builder) checkInputs(versions []string) error {
	if err := b.checkDialect(); err != nil {
		return err
	}
	if len(versions) == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "at least one version is required")
	}
	if len(versions) > b.MaxVersions {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "too many versions",
			map[string]any{"count": len(versions), "max": b.MaxVersions})
	}
	return nil
}

func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeTimeout, "operation canceled", err)
	}
	return nil
}

func (b *Builder) parse(s string) (*version.Version, error) {
	v, err := version.ParseVersion(b.Dialect, s)
	if err != nil {
		return nil, errors.WrapVersion(fmt.Sprintf("cannot parse version %q", s), err)
	}
	return v, nil
}

// Canonicalize parses each version and records its canonical form. Invalid
// versions are reported in the results and counted in Invalid.
func (b *Builder) Canonicalize(ctx context.Context, versions []string) (rep *CanonicalReport, err error) {
	defer func(start time.Time) { b.observe("canonicalize", start, len(versions), err) }(time.Now())

	if err := b.checkInputs(versions); err != nil {
		return nil, err
	}

	rep = &CanonicalReport{
		Header:  b.header(header.KindCanonicalReport),
		Results: make([]Result, 0, len(versions)),
	}
	for _, s := range versions {
		if err := canceled(ctx); err != nil {
			return nil, err
		}
		res := Result{Input: s}
		if v, perr := b.parse(s); perr != nil {
			res.Error = perr.Error()
			res.Code = string(errors.CodeOf(perr))
			rep.Invalid++
		} else {
			res.Output = v.String()
			res.Valid = true
		}
		rep.Results = append(rep.Results, res)
	}
	return rep, nil
}

// Compare orders left against right. When op is not empty the report also
// says whether "left op right" holds.
func (b *Builder) Compare(ctx context.Context, left, op, right string) (rep *ComparisonReport, err error) {
	defer func(start time.Time) { b.observe("compare", start, 2, err) }(time.Now())

	if err := b.checkDialect(); err != nil {
		return nil, err
	}
	if err := canceled(ctx); err != nil {
		return nil, err
	}

	rep = &ComparisonReport{
		Header: b.header(header.KindComparisonReport),
		Left:   left,
		Right:  right,
	}

	if op == "" {
		l, err := b.parse(left)
		if err != nil {
			return nil, err
		}
		r, err := b.parse(right)
		if err != nil {
			return nil, err
		}
		cmp, err := l.Compare(r)
		if err != nil {
			return nil, errors.WrapVersion("cannot compare versions", err)
		}
		rep.Result = cmp
		return rep, nil
	}

	operator, err := constraint.ParseOperator(op)
	if err != nil {
		return nil, err
	}
	cmp, holds, err := constraint.Compare(b.Dialect, left, operator, right)
	if err != nil {
		return nil, err
	}
	rep.Operator = string(operator)
	rep.Result = cmp
	rep.Holds = &holds
	return rep, nil
}

// Step computes the next or previous version of each input. Level is the
// 1-based upstream position to step; 0 selects the last upstream part of
// each version. A non-empty format is parsed with the same dialect and
// bounds every part.
func (b *Builder) Step(ctx context.Context, dir Direction, versions []string, level int, format string) (rep *StepReport, err error) {
	defer func(start time.Time) { b.observe(string(dir), start, len(versions), err) }(time.Now())

	if dir != DirectionNext && dir != DirectionPrevious {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown direction",
			map[string]any{"direction": string(dir)})
	}
	if err := b.checkInputs(versions); err != nil {
		return nil, err
	}
	if err := b.checkLevel(level); err != nil {
		return nil, err
	}

	var fv *version.Version
	if format != "" {
		if fv, err = b.parse(format); err != nil {
			return nil, errors.WrapWithContext(errors.CodeOf(err), "invalid format version", err,
				map[string]any{"format": format})
		}
	}

	rep = &StepReport{
		Header:    b.header(header.KindStepReport),
		Direction: dir,
		Level:     level,
		Format:    format,
		Results:   make([]Result, 0, len(versions)),
	}
	for _, s := range versions {
		if err := canceled(ctx); err != nil {
			return nil, err
		}
		res := Result{Input: s}
		if out, serr := b.step(dir, s, level, fv); serr != nil {
			res.Error = serr.Error()
			res.Code = string(errors.CodeOf(serr))
			rep.Invalid++
		} else {
			res.Output = out
			res.Valid = true
		}
		rep.Results = append(rep.Results, res)
	}
	return rep, nil
}

func (b *Builder) checkLevel(level int) error {
	limit := version.MaxParts
	if b.Dialect == version.DialectDecimal {
		limit = 2
	}
	if level < 0 || level > limit {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("level must be between 1 and %d", limit),
			map[string]any{"level": level})
	}
	return nil
}

func (b *Builder) step(dir Direction, s string, level int, format *version.Version) (string, error) {
	v, err := b.parse(s)
	if err != nil {
		return "", err
	}
	v.SetFormat(format)

	pos := level - 1
	if level == 0 {
		start, end := v.Trait().Upstream()
		pos = max(end-start-1, 0)
	}

	op := v.Next
	if dir == DirectionPrevious {
		op = v.Previous
	}
	if err := callStep(op, pos); err != nil {
		return "", errors.WrapVersion(fmt.Sprintf("cannot compute %s version of %q", dir, s), err)
	}
	return v.String(), nil
}

// callStep converts a position contract violation into an error.
func callStep(op func(int) error, pos int) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			perr, ok := rec.(error)
			if !ok || !stderrors.Is(perr, version.ErrInvalidParameter) {
				panic(rec)
			}
			err = perr
		}
	}()
	return op(pos)
}

// Sort parses the versions in parallel and returns them in canonical form,
// ascending unless reverse is set. Equal versions keep their input order.
// Any invalid version fails the whole call.
func (b *Builder) Sort(ctx context.Context, versions []string, reverse bool) (rep *SortReport, err error) {
	defer func(start time.Time) { b.observe("sort", start, len(versions), err) }(time.Now())

	if err := b.checkInputs(versions); err != nil {
		return nil, err
	}

	parsed := make([]*version.Version, len(versions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.Concurrency)
	for i, s := range versions {
		g.Go(func() error {
			if err := canceled(gctx); err != nil {
				return err
			}
			v, err := b.parse(s)
			if err != nil {
				return err
			}
			parsed[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(parsed, func(l, r *version.Version) int {
		cmp, _ := l.Compare(r)
		if reverse {
			return -cmp
		}
		return cmp
	})

	rep = &SortReport{
		Header:   b.header(header.KindSortReport),
		Reverse:  reverse,
		Versions: make([]string, 0, len(parsed)),
	}
	for _, v := range parsed {
		rep.Versions = append(rep.Versions, v.String())
	}
	return rep, nil
}
