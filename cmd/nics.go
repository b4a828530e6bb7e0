package cmd

import (
	"fmt"

	"github.com/ftahirops/maascheck/audit"
	"github.com/ftahirops/maascheck/maas"
	"github.com/ftahirops/maascheck/report"
	"github.com/ftahirops/maascheck/ui"
)

// runNICs audits every fetched machine against the network policy:
// at least three physically connected non-VLAN interfaces.
func runNICs(opts options) error {
	machines, err := maas.Machines(opts.query)
	if err != nil {
		return err
	}
	fmt.Println(report.CountLine(len(machines)))

	var buckets report.NICBuckets
	var items []ui.Item

	for i := range machines {
		m := &machines[i]
		name := m.Name()
		assessment := audit.AssessInterfaces(m)

		buckets.Add(name, assessment.MeetsPolicy())
		if opts.tui {
			items = append(items, ui.Item{
				Name:   name,
				Pass:   assessment.MeetsPolicy(),
				Detail: report.NICDetail(name, assessment),
			})
			continue
		}
		fmt.Println(report.NICDetail(name, assessment))
	}

	if opts.tui {
		if err := ui.Browse("maascheck nics — network policy", items); err != nil {
			return err
		}
	}

	fmt.Println(report.NICSummary(&buckets))
	return nil
}
