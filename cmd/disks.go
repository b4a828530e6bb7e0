package cmd

import (
	"fmt"

	"github.com/ftahirops/maascheck/audit"
	"github.com/ftahirops/maascheck/maas"
	"github.com/ftahirops/maascheck/report"
	"github.com/ftahirops/maascheck/ui"
)

// runDisks audits every fetched machine against the storage policy:
// a 1TB+ SSD boot disk plus at least one additional 1TB+ SSD.
func runDisks(opts options) error {
	machines, err := maas.Machines(opts.query)
	if err != nil {
		return err
	}
	fmt.Println(report.CountLine(len(machines)))

	buckets := report.NewDiskBuckets()
	var items []ui.Item

	for i := range machines {
		m := &machines[i]
		name := m.Name()
		assessment := audit.AssessDisks(m)
		category := audit.Categorize(assessment)

		buckets.Add(name, category)
		if opts.tui {
			items = append(items, ui.Item{
				Name:   name,
				Pass:   assessment.MeetsPolicy(),
				Detail: report.DiskDetail(name, assessment),
			})
			continue
		}
		fmt.Println(report.DiskDetail(name, assessment))
	}

	if opts.tui {
		if err := ui.Browse("maascheck disks — storage policy", items); err != nil {
			return err
		}
	}

	fmt.Println(report.DiskSummary(buckets))
	return nil
}
