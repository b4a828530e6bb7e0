package audit

import "github.com/ftahirops/maascheck/model"

// MinConnectedNICs is the network-policy threshold: every machine needs at
// least this many physically connected non-VLAN interfaces.
const MinConnectedNICs = 3

// InterfaceReport is the per-NIC view used for display. VLAN
// sub-interfaces never produce one.
type InterfaceReport struct {
	Name           string
	Enabled        bool
	InterfaceSpeed *int // Mbps, nil if MAAS reported null
	LinkSpeed      *int // Mbps, nil if MAAS reported null
	Connected      bool
}

// InterfaceAssessment is the network-policy view of one machine.
type InterfaceAssessment struct {
	Interfaces     []InterfaceReport
	ConnectedCount int
}

// MeetsPolicy reports whether enough physical interfaces are connected.
func (a InterfaceAssessment) MeetsPolicy() bool {
	return a.ConnectedCount >= MinConnectedNICs
}

// AssessInterfaces counts a machine's connected physical interfaces. VLAN
// sub-interfaces (dotted names) are excluded from both the report and the
// count; an interface is connected iff its link speed is present and
// positive. An absent interface list assesses as zero interfaces.
func AssessInterfaces(m *model.MachineRecord) InterfaceAssessment {
	var a InterfaceAssessment

	for i := range m.Interfaces {
		iface := &m.Interfaces[i]
		if iface.IsVLAN() {
			continue
		}

		name := iface.Name
		if name == "" {
			name = "unknown"
		}
		connected := iface.IsConnected()
		if connected {
			a.ConnectedCount++
		}
		a.Interfaces = append(a.Interfaces, InterfaceReport{
			Name:           name,
			Enabled:        iface.Enabled,
			InterfaceSpeed: iface.InterfaceSpeed,
			LinkSpeed:      iface.LinkSpeed,
			Connected:      connected,
		})
	}

	return a
}
