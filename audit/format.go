package audit

import "fmt"

// FormatSize renders a byte count in both binary and decimal terabytes,
// e.g. 2_000_000_000_000 -> "1.82 TiB (2.00 TB)". Display only; policy
// comparisons always use raw bytes against MinDiskSize.
func FormatSize(bytes int64) string {
	tib := float64(bytes) / (1 << 40)
	tb := float64(bytes) / 1e12
	return fmt.Sprintf("%.2f TiB (%.2f TB)", tib, tb)
}

// FormatSpeed renders a link speed reported in Mbps. Values of a gigabit
// or more are shown in whole Gbps (truncated, not rounded); a nil speed
// means MAAS could not read the hardware.
func FormatSpeed(mbps *int) string {
	if mbps == nil {
		return "unknown"
	}
	if *mbps >= 1000 {
		return fmt.Sprintf("%d Gbps", *mbps/1000)
	}
	return fmt.Sprintf("%d Mbps", *mbps)
}
