package report

import (
	"strings"
	"testing"

	"github.com/ftahirops/maascheck/audit"
)

func TestCountLine(t *testing.T) {
	if got := CountLine(17); got != "Number of machines returned: 17" {
		t.Errorf("CountLine = %q", got)
	}
}

func TestDiskDetail(t *testing.T) {
	a := audit.DiskAssessment{
		BootInfo:          "sda - 1.82 TiB (2.00 TB) (ssd)",
		BootIsSSD:         true,
		BootQualifies:     true,
		Additional1TBSSDs: 1,
		DeviceInfo: []string{
			"sda: 1.82 TiB (2.00 TB) (ssd)",
			"sdb: 0.91 TiB (1.00 TB) (ssd)",
		},
	}
	out := DiskDetail("rack1-node4", a)

	for _, want := range []string{
		"rack1-node4",
		"Boot disk: sda - 1.82 TiB (2.00 TB) (ssd)",
		"Block devices (2):",
		"  - sdb: 0.91 TiB (1.00 TB) (ssd)",
		"Requirements check:",
		"  Boot disk is 1TB+ SSD: ✅",
		"  Additional 1TB+ SSDs: 1 (need ≥1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DiskDetail missing %q in:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "\n") {
		t.Error("DiskDetail should start with a blank separator line")
	}
}

func TestDiskSummaryOrderAndBuckets(t *testing.T) {
	b := NewDiskBuckets()
	b.Add("m-both", audit.NeedBootAndSecondDisk)
	b.Add("m-ok-1", audit.NoChangeNeeded)
	b.Add("m-boot", audit.NeedBootDiskReplacement)
	b.Add("m-ok-2", audit.NoChangeNeeded)

	out := DiskSummary(b)

	for _, want := range []string{
		"SUMMARY - Changes needed to meet requirements:",
		"NO CHANGES NEEDED (2 machines):",
		"REPLACE BOOT DISK with 1TB+ SSD (1 machines):",
		"REPLACE BOOT DISK + ADD/REPLACE SECOND DISK (1 machines):",
		"Total machines: 4",
		"Machines meeting requirements: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DiskSummary missing %q in:\n%s", want, out)
		}
	}

	// Empty categories produce no block.
	for _, absent := range []string{"REPLACE SECOND DISK with 1TB+ SSD", "ADD SECOND 1TB+ SSD ("} {
		if strings.Contains(out, absent) {
			t.Errorf("DiskSummary includes empty bucket %q", absent)
		}
	}

	// Fixed category order, first-seen member order within a bucket.
	okIdx := strings.Index(out, "NO CHANGES NEEDED")
	bootIdx := strings.Index(out, "REPLACE BOOT DISK with")
	bothIdx := strings.Index(out, "REPLACE BOOT DISK + ADD")
	if !(okIdx < bootIdx && bootIdx < bothIdx) {
		t.Errorf("category blocks out of order: %d %d %d", okIdx, bootIdx, bothIdx)
	}
	if strings.Index(out, "m-ok-1") > strings.Index(out, "m-ok-2") {
		t.Error("bucket members not in first-seen order")
	}
}

func TestNICDetail(t *testing.T) {
	s1000 := 1000
	s100 := 100
	a := audit.InterfaceAssessment{
		Interfaces: []audit.InterfaceReport{
			{Name: "eno1", Enabled: true, InterfaceSpeed: &s1000, LinkSpeed: &s1000, Connected: true},
			{Name: "eno2", Enabled: false, InterfaceSpeed: &s100, LinkSpeed: nil, Connected: false},
		},
		ConnectedCount: 1,
	}
	out := NICDetail("rack1-node4", a)

	for _, want := range []string{
		"Network interfaces (2):",
		"  - eno1: enabled, connected",
		"    Interface speed: 1 Gbps",
		"    Link speed: 1 Gbps",
		"  - eno2: disabled, disconnected",
		"    Link speed: unknown",
		"Connected NICs: 1 (need ≥3)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("NICDetail missing %q in:\n%s", want, out)
		}
	}
}

func TestNICDetailNoInterfaces(t *testing.T) {
	out := NICDetail("bare", audit.InterfaceAssessment{})
	if !strings.Contains(out, "No interface information available") {
		t.Errorf("NICDetail missing empty-list notice:\n%s", out)
	}
}

func TestNICSummary(t *testing.T) {
	var b NICBuckets
	b.Add("pass-1", true)
	b.Add("fail-1", false)
	b.Add("pass-2", true)

	out := NICSummary(&b)

	for _, want := range []string{
		"SUMMARY - Network Interface Requirements:",
		"Total machines processed: 3",
		"Machines meeting requirements (≥3 connected NICs): 2",
		"Machines not meeting requirements: 1",
		"MACHINES MEETING REQUIREMENTS (2):",
		"MACHINES NOT MEETING REQUIREMENTS (1):",
		"  - pass-1",
		"  - fail-1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("NICSummary missing %q in:\n%s", want, out)
		}
	}
}

func TestNICSummaryOmitsEmptyBlocks(t *testing.T) {
	var b NICBuckets
	b.Add("fail-1", false)

	out := NICSummary(&b)
	if strings.Contains(out, "MACHINES MEETING REQUIREMENTS (") {
		t.Errorf("NICSummary includes empty meeting block:\n%s", out)
	}
}
