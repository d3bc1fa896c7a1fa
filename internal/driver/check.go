// Package driver runs the usage gate over fixture compilations, fanning the
// per-file checks out across workers and folding diagnostics into one sorted
// bag.
package driver

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"expgate/internal/diag"
	"expgate/internal/fixture"
	"expgate/internal/sema"
	"expgate/internal/source"
)

// Options configure one driver run.
type Options struct {
	// Jobs caps parallel workers; 0 means one per CPU.
	Jobs int
	// MaxDiagnostics bounds each per-file bag and the merged bag.
	MaxDiagnostics int
	// Names rebinds the well-known annotation classes.
	Names sema.WellKnown
}

// FileResult holds the outcome for one manifest.
type FileResult struct {
	Path string
	Comp *fixture.Compilation
	Bag  *diag.Bag
}

// CheckFiles loads every manifest and gates its references. Manifests are
// loaded serially (the FileSet is not safe for concurrent writes); checks
// run in parallel because they only read resolved state and write into
// per-file bags.
func CheckFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []FileResult, error) {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 100
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	fs := source.NewFileSet()
	paths = dedupSorted(paths)
	results := make([]FileResult, len(paths))
	for i, path := range paths {
		comp, err := fixture.Load(path, fs)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		results[i] = FileResult{Path: path, Comp: comp}
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range results {
		i := i
		g.Go(func() error {
			bag := diag.NewBag(opts.MaxDiagnostics)
			comp := results[i].Comp
			sema.Check(comp.Usages, comp.Decls, sema.Options{
				Reporter: diag.BagReporter{Bag: bag},
				Names:    opts.Names,
			})
			results[i].Bag = bag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fs, results, nil
}

// Merge folds per-file bags into one deterministic bag: merged, deduplicated
// and sorted by source position.
func Merge(results []FileResult, maxDiagnostics int) *diag.Bag {
	if maxDiagnostics <= 0 {
		for _, res := range results {
			if res.Bag != nil {
				maxDiagnostics += res.Bag.Len()
			}
		}
	}
	out := diag.NewBag(maxDiagnostics)
	for _, res := range results {
		if res.Bag != nil {
			out.Merge(res.Bag)
		}
	}
	out.Dedup()
	out.Sort()
	return out
}

// dedupSorted returns the unique paths in deterministic order.
func dedupSorted(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
