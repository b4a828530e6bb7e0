package audit

import (
	"testing"

	"github.com/ftahirops/maascheck/model"
)

func iface(name string, enabled bool, linkSpeed *int) model.Interface {
	return model.Interface{Name: name, Enabled: enabled, LinkSpeed: linkSpeed}
}

func speed(v int) *int { return &v }

func TestAssessInterfaces(t *testing.T) {
	tests := []struct {
		name          string
		machine       model.MachineRecord
		wantConnected int
		wantListed    int
		wantPass      bool
	}{
		{
			"vlan excluded and zero link speed not connected",
			model.MachineRecord{Interfaces: []model.Interface{
				iface("eth0", true, speed(1000)),
				iface("eth1", true, speed(0)),
				iface("eth1.10", true, speed(1000)),
				iface("eth2", true, speed(100)),
			}},
			2, 3, false,
		},
		{
			"three connected passes",
			model.MachineRecord{Interfaces: []model.Interface{
				iface("eno1", true, speed(10000)),
				iface("eno2", true, speed(1)),
				iface("eno3", false, speed(1000)),
			}},
			3, 3, true,
		},
		{
			"null link speed means disconnected",
			model.MachineRecord{Interfaces: []model.Interface{
				iface("eth0", true, nil),
				iface("eth1", true, speed(1000)),
			}},
			1, 2, false,
		},
		{
			"no interface list",
			model.MachineRecord{},
			0, 0, false,
		},
		{
			"only vlan interfaces",
			model.MachineRecord{Interfaces: []model.Interface{
				iface("bond0.100", true, speed(1000)),
				iface("bond0.200", true, speed(1000)),
			}},
			0, 0, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AssessInterfaces(&tt.machine)
			if a.ConnectedCount != tt.wantConnected {
				t.Errorf("ConnectedCount = %d, want %d", a.ConnectedCount, tt.wantConnected)
			}
			if len(a.Interfaces) != tt.wantListed {
				t.Errorf("len(Interfaces) = %d, want %d", len(a.Interfaces), tt.wantListed)
			}
			if a.MeetsPolicy() != tt.wantPass {
				t.Errorf("MeetsPolicy() = %v, want %v", a.MeetsPolicy(), tt.wantPass)
			}
		})
	}
}

func TestAssessInterfacesUnnamedInterface(t *testing.T) {
	m := model.MachineRecord{Interfaces: []model.Interface{
		{Enabled: true, LinkSpeed: speed(1000)},
	}}
	a := AssessInterfaces(&m)
	if len(a.Interfaces) != 1 || a.Interfaces[0].Name != "unknown" {
		t.Errorf("unnamed interface rendered as %+v, want name %q", a.Interfaces, "unknown")
	}
}
