package audit

import (
	"fmt"

	"github.com/ftahirops/maascheck/model"
)

// MinDiskSize is the storage-policy disk threshold: one decimal terabyte.
// The TiB figure shown in reports is display-only and never compared.
const MinDiskSize int64 = 1_000_000_000_000

// Category says what hardware change a machine needs to meet the
// storage policy. Exactly one applies to every machine.
type Category string

const (
	NoChangeNeeded          Category = "no_change_needed"
	NeedBootDiskReplacement Category = "need_boot_disk_replacement"
	NeedSecondDiskReplace   Category = "need_second_disk_replacement"
	NeedSecondDiskAddition  Category = "need_second_disk_addition"
	NeedBootAndSecondDisk   Category = "need_both_boot_and_second_disk"
)

// Categories lists every category in summary display order.
var Categories = []Category{
	NoChangeNeeded,
	NeedBootDiskReplacement,
	NeedSecondDiskReplace,
	NeedSecondDiskAddition,
	NeedBootAndSecondDisk,
}

// DiskAssessment is the storage-policy view of one machine.
type DiskAssessment struct {
	BootInfo      string // human-readable boot disk line
	BootIsSSD     bool
	BootQualifies bool // SSD and >= MinDiskSize

	Additional1TBSSDs  int  // qualifying SSDs other than the boot disk
	HasSmallNonBootSSD bool // non-boot SSD under the threshold exists

	DeviceInfo []string // one line per block device, boot disk included
}

// MeetsPolicy reports whether the machine needs no storage changes.
func (a DiskAssessment) MeetsPolicy() bool {
	return a.BootQualifies && a.Additional1TBSSDs >= 1
}

// AssessDisks inspects a machine's boot disk and block devices against the
// storage policy. Missing fields never fail the assessment: an absent boot
// disk is a size-0 non-SSD, an absent device list counts zero additional
// SSDs.
func AssessDisks(m *model.MachineRecord) DiskAssessment {
	var a DiskAssessment

	boot := m.BootDisk
	if boot == nil {
		a.BootInfo = "No boot disk information available"
	} else {
		a.BootIsSSD = boot.IsSSD()
		a.BootQualifies = a.BootIsSSD && boot.Size >= MinDiskSize

		name := boot.Name
		if name == "" {
			name = "unknown"
		}
		kind := "not ssd"
		if a.BootIsSSD {
			kind = "ssd"
		}
		a.BootInfo = fmt.Sprintf("%s - %s (%s)", name, FormatSize(boot.Size), kind)
	}

	for i := range m.BlockDevices {
		dev := &m.BlockDevices[i]

		name := dev.Name
		if name == "" {
			name = "unnamed"
		}
		kind := "unknown"
		switch {
		case dev.IsSSD():
			kind = "ssd"
		case dev.IsRotary():
			kind = "rotary"
		}
		a.DeviceInfo = append(a.DeviceInfo,
			fmt.Sprintf("%s: %s (%s)", name, FormatSize(dev.Size), kind))

		// The boot disk also appears in blockdevice_set; it never counts
		// toward the additional-SSD requirement.
		if boot != nil && dev.ID == boot.ID {
			continue
		}
		switch {
		case dev.IsSSD() && dev.Size >= MinDiskSize:
			a.Additional1TBSSDs++
		case dev.IsSSD():
			a.HasSmallNonBootSSD = true
		}
	}

	return a
}

// Categorize maps an assessment to its remediation category. The decision
// table is total over {boot qualifies} x {additional SSD present}; the
// default branch exists only to catch an edit that breaks totality.
func Categorize(a DiskAssessment) Category {
	boot := a.BootQualifies
	hasAdditional := a.Additional1TBSSDs >= 1

	switch {
	case boot && hasAdditional:
		return NoChangeNeeded
	case !boot && hasAdditional:
		return NeedBootDiskReplacement
	case boot && !hasAdditional:
		if a.HasSmallNonBootSSD {
			return NeedSecondDiskReplace
		}
		return NeedSecondDiskAddition
	case !boot && !hasAdditional:
		return NeedBootAndSecondDisk
	default:
		panic("audit: remediation decision table is not total")
	}
}
