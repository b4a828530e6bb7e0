// Package report renders per-machine detail blocks and end-of-run
// summaries for both compliance policies. Rendering is pure string
// building; styling never changes the report's characters, only their
// color, so tests compare rendered text directly.
package report

import (
	"fmt"
	"strings"

	"github.com/ftahirops/maascheck/audit"
)

const reportWidth = 60

func rule() string   { return dimStyle.Render(strings.Repeat("-", reportWidth)) }
func banner() string { return titleStyle.Render(strings.Repeat("=", reportWidth)) }

// CountLine is printed once, right after the fetch.
func CountLine(n int) string {
	return fmt.Sprintf("Number of machines returned: %d", n)
}

// ── Storage policy ──────────────────────────────────────────────────────────

// categoryHeadings maps each remediation category to its summary block
// heading. Keep the wording action-oriented; these lines end up in
// hardware-ordering tickets.
var categoryHeadings = map[audit.Category]string{
	audit.NoChangeNeeded:          "NO CHANGES NEEDED",
	audit.NeedBootDiskReplacement: "REPLACE BOOT DISK with 1TB+ SSD",
	audit.NeedSecondDiskReplace:   "REPLACE SECOND DISK with 1TB+ SSD",
	audit.NeedSecondDiskAddition:  "ADD SECOND 1TB+ SSD",
	audit.NeedBootAndSecondDisk:   "REPLACE BOOT DISK + ADD/REPLACE SECOND DISK",
}

// DiskDetail renders the per-machine storage block, leading blank line
// included.
func DiskDetail(name string, a audit.DiskAssessment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s %s\n", headerStyle.Render("Machine:"), name)
	fmt.Fprintf(&sb, "Boot disk: %s\n", a.BootInfo)
	fmt.Fprintf(&sb, "Block devices (%d):\n", len(a.DeviceInfo))
	for _, info := range a.DeviceInfo {
		fmt.Fprintf(&sb, "  - %s\n", info)
	}

	fmt.Fprintf(&sb, "\nRequirements check:\n")
	fmt.Fprintf(&sb, "  Boot disk is 1TB+ SSD: %s\n", checkmark(a.BootQualifies))
	fmt.Fprintf(&sb, "  Additional 1TB+ SSDs: %d (need ≥1)\n", a.Additional1TBSSDs)
	fmt.Fprintf(&sb, "  Machine meets requirements: %s\n", verdict(a.MeetsPolicy()))
	sb.WriteString(rule())

	return sb.String()
}

// DiskBuckets accumulates machine names per remediation category,
// preserving first-seen order within each bucket.
type DiskBuckets struct {
	members map[audit.Category][]string
	total   int
}

// NewDiskBuckets returns empty buckets for all five categories.
func NewDiskBuckets() *DiskBuckets {
	return &DiskBuckets{members: make(map[audit.Category][]string)}
}

// Add files a machine under its category.
func (b *DiskBuckets) Add(name string, c audit.Category) {
	b.members[c] = append(b.members[c], name)
	b.total++
}

// Total returns the number of machines added.
func (b *DiskBuckets) Total() int { return b.total }

// Compliant returns how many machines need no changes.
func (b *DiskBuckets) Compliant() int { return len(b.members[audit.NoChangeNeeded]) }

// Members returns the machines filed under a category, first-seen order.
func (b *DiskBuckets) Members(c audit.Category) []string { return b.members[c] }

// DiskSummary renders the end-of-run storage summary: one block per
// non-empty category in fixed order, then totals.
func DiskSummary(b *DiskBuckets) string {
	var sb strings.Builder

	sb.WriteString("\n" + banner() + "\n")
	sb.WriteString(titleStyle.Render("SUMMARY - Changes needed to meet requirements:") + "\n")
	sb.WriteString(banner() + "\n")

	for _, c := range audit.Categories {
		members := b.Members(c)
		if len(members) == 0 {
			continue
		}
		heading := fmt.Sprintf("%s (%d machines):", categoryHeadings[c], len(members))
		if c == audit.NoChangeNeeded {
			heading = okStyle.Render(heading)
		} else {
			heading = warnStyle.Render(heading)
		}
		fmt.Fprintf(&sb, "\n%s\n", heading)
		for _, m := range members {
			fmt.Fprintf(&sb, "  - %s\n", m)
		}
	}

	fmt.Fprintf(&sb, "\nTotal machines: %d\n", b.Total())
	fmt.Fprintf(&sb, "Machines meeting requirements: %d", b.Compliant())

	return sb.String()
}

// ── Network policy ──────────────────────────────────────────────────────────

// NICDetail renders the per-machine interface block, leading blank line
// included.
func NICDetail(name string, a audit.InterfaceAssessment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s %s %s\n", headerStyle.Render("Machine:"), name, checkmark(a.MeetsPolicy()))
	fmt.Fprintf(&sb, "Network interfaces (%d):\n", len(a.Interfaces))

	if len(a.Interfaces) == 0 {
		sb.WriteString("  No interface information available\n")
	}
	for _, iface := range a.Interfaces {
		state := "disabled"
		if iface.Enabled {
			state = "enabled"
		}
		conn := "disconnected"
		if iface.Connected {
			conn = "connected"
		}
		fmt.Fprintf(&sb, "  - %s: %s, %s\n", iface.Name, state, conn)
		fmt.Fprintf(&sb, "    Interface speed: %s\n", audit.FormatSpeed(iface.InterfaceSpeed))
		fmt.Fprintf(&sb, "    Link speed: %s\n", audit.FormatSpeed(iface.LinkSpeed))
	}

	fmt.Fprintf(&sb, "\nConnected NICs: %d (need ≥%d)\n", a.ConnectedCount, audit.MinConnectedNICs)
	fmt.Fprintf(&sb, "Meets requirement: %s\n", verdict(a.MeetsPolicy()))
	sb.WriteString(rule())

	return sb.String()
}

// NICBuckets accumulates pass/fail machine names in first-seen order.
type NICBuckets struct {
	Meeting    []string
	NotMeeting []string
}

// Add files a machine under pass or fail.
func (b *NICBuckets) Add(name string, meets bool) {
	if meets {
		b.Meeting = append(b.Meeting, name)
	} else {
		b.NotMeeting = append(b.NotMeeting, name)
	}
}

// Total returns the number of machines added.
func (b *NICBuckets) Total() int { return len(b.Meeting) + len(b.NotMeeting) }

// NICSummary renders the end-of-run network summary.
func NICSummary(b *NICBuckets) string {
	var sb strings.Builder

	sb.WriteString("\n" + banner() + "\n")
	sb.WriteString(titleStyle.Render("SUMMARY - Network Interface Requirements:") + "\n")
	sb.WriteString(banner() + "\n")

	fmt.Fprintf(&sb, "\nTotal machines processed: %d\n", b.Total())
	fmt.Fprintf(&sb, "Machines meeting requirements (≥%d connected NICs): %d\n",
		audit.MinConnectedNICs, len(b.Meeting))
	fmt.Fprintf(&sb, "Machines not meeting requirements: %d\n", len(b.NotMeeting))

	if len(b.Meeting) > 0 {
		heading := fmt.Sprintf("✅ MACHINES MEETING REQUIREMENTS (%d):", len(b.Meeting))
		fmt.Fprintf(&sb, "\n%s\n", okStyle.Render(heading))
		for _, m := range b.Meeting {
			fmt.Fprintf(&sb, "  - %s\n", m)
		}
	}
	if len(b.NotMeeting) > 0 {
		heading := fmt.Sprintf("❌ MACHINES NOT MEETING REQUIREMENTS (%d):", len(b.NotMeeting))
		fmt.Fprintf(&sb, "\n%s\n", failStyle.Render(heading))
		for _, m := range b.NotMeeting {
			fmt.Fprintf(&sb, "  - %s\n", m)
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
