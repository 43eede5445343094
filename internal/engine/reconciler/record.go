package reconciler

import (
	"context"
	"fmt"

	"go.trai.ch/rauri/internal/core/domain"
)

// RecordBuild resolves what the build in dir produced and tracks it: the primary
// package plus every debug companion that ended up installed.
//
// Name resolution never fails; the returned resolution falls back to requested.
// The error reports only a failure to persist the tracked set.
func (r *Reconciler) RecordBuild(ctx context.Context, dir, requested string) (domain.ArtifactResolution, error) {
	res := r.artifacts.Resolve(ctx, dir, requested)
	if res.Resolved && res.Name != requested {
		r.logger.Debug(fmt.Sprintf("%s was built as %s", requested, res.Name))
	}

	names := []string{res.Name}
	for _, dbg := range res.Debug {
		installed, err := r.db.IsInstalled(ctx, dbg)
		if err != nil {
			r.logger.Debug(fmt.Sprintf("not tracking %s: %v", dbg, err))
			continue
		}
		if installed {
			names = append(names, dbg)
		}
	}

	set, err := r.store.Load()
	if err != nil {
		return res, err
	}
	before := len(set)
	for _, n := range names {
		set.Add(n)
	}
	if len(set) == before {
		return res, nil
	}
	return res, r.store.Save(set)
}
