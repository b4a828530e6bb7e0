package model

import "strings"

// MachineRecord is the subset of a MAAS machine object this tool reads.
// Everything else in the (very large) `maas machines read` payload is
// ignored by the decoder.
type MachineRecord struct {
	Hostname string `json:"hostname"`
	FQDN     string `json:"fqdn"`
	SystemID string `json:"system_id"`

	BootDisk     *BlockDevice  `json:"boot_disk"`
	BlockDevices []BlockDevice `json:"blockdevice_set"`
	Interfaces   []Interface   `json:"interface_set"`
}

// Name resolves a display name for the machine: hostname, then fqdn,
// then system_id, then "unknown".
func (m *MachineRecord) Name() string {
	switch {
	case m.Hostname != "":
		return m.Hostname
	case m.FQDN != "":
		return m.FQDN
	case m.SystemID != "":
		return m.SystemID
	}
	return "unknown"
}

// BlockDevice holds the storage attributes MAAS reports per disk.
type BlockDevice struct {
	ID   int      `json:"id"`
	Name string   `json:"name"`
	Size int64    `json:"size"` // bytes
	Tags []string `json:"tags"`
}

// IsSSD reports whether MAAS tagged the device as solid-state.
func (d *BlockDevice) IsSSD() bool {
	return d.hasTag("ssd")
}

// IsRotary reports whether MAAS tagged the device as spinning media.
func (d *BlockDevice) IsRotary() bool {
	return d.hasTag("rotary")
}

func (d *BlockDevice) hasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Interface holds the link attributes MAAS reports per NIC.
//
// The speed fields are pointers because MAAS emits null for hardware it
// could not interrogate; null and 0 both mean "not connected" for the
// link speed, but render differently ("unknown" vs "0 Mbps").
type Interface struct {
	Name           string `json:"name"`
	Enabled        bool   `json:"enabled"`
	InterfaceSpeed *int   `json:"interface_speed"` // Mbps, negotiated capability
	LinkSpeed      *int   `json:"link_speed"`      // Mbps, currently active
}

// IsVLAN reports whether the interface is a VLAN sub-interface
// (dotted name, e.g. "eth0.10").
func (i *Interface) IsVLAN() bool {
	return strings.Contains(i.Name, ".")
}

// IsConnected reports whether the interface currently negotiates a link.
func (i *Interface) IsConnected() bool {
	return i.LinkSpeed != nil && *i.LinkSpeed > 0
}
