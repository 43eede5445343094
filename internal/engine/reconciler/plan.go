package reconciler

import (
	"context"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
)

// PlanUpdates builds one UpdatePlan per tracked base package. Debug companions
// share the plan of their base package.
//
// Packages that are not installed, cannot be queried, or have no usable upstream
// metadata are reported in Skipped and left out of the plan. Only an unreadable
// tracking store fails the call.
func (r *Reconciler) PlanUpdates(ctx context.Context) (domain.UpdateReport, error) {
	var report domain.UpdateReport

	set, err := r.store.Load()
	if err != nil {
		return report, err
	}

	for _, base := range set.BaseNames() {
		installed, ok, err := r.db.InstalledVersion(ctx, base)
		if err != nil {
			report.Skipped = append(report.Skipped, domain.SkippedPackage{
				Name: base, Reason: domain.SkipQueryFailed, Err: err,
			})
			continue
		}
		if !ok {
			report.Skipped = append(report.Skipped, domain.SkippedPackage{
				Name: base, Reason: domain.SkipNotInstalled,
			})
			continue
		}

		info, err := r.metadata.Info(ctx, base)
		if err != nil {
			report.Skipped = append(report.Skipped, domain.SkippedPackage{
				Name:   base,
				Reason: domain.SkipMetadataUnavailable,
				Err:    zerr.Wrap(err, domain.ErrMetadataUnavailable.Error()),
			})
			continue
		}

		report.Plans = append(report.Plans, domain.UpdatePlan{
			BaseName:         base,
			InstalledVersion: installed,
			UpstreamVersion:  info.Version,
			NeedsUpdate:      r.comparator.IsOutdated(installed, info.Version),
		})
	}

	return report, nil
}
