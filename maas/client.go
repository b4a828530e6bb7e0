package maas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ftahirops/maascheck/model"
)

// Query selects which machines the MAAS CLI returns.
type Query struct {
	Profile  string // logged-in MAAS CLI profile (required)
	Tag      string // optional exact-match tag filter
	Hostname string // optional exact-match hostname filter
}

// Args builds the argument list for the `maas` binary.
func (q Query) Args() []string {
	args := []string{q.Profile, "machines", "read"}
	if q.Tag != "" {
		args = append(args, "tags="+q.Tag)
	}
	if q.Hostname != "" {
		args = append(args, "hostname="+q.Hostname)
	}
	return args
}

// Machines runs `maas <profile> machines read` and decodes the JSON array
// it prints. Invocation failure and undecodable output are both fatal for
// the caller; there is no partial result.
func Machines(q Query) ([]model.MachineRecord, error) {
	path, err := exec.LookPath("maas")
	if err != nil {
		return nil, fmt.Errorf("maas CLI not found in PATH: %w", err)
	}

	cmd := exec.Command(path, q.Args()...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("maas command failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("maas command failed: %w", err)
	}

	machines, err := Parse(out)
	if err != nil {
		return nil, err
	}
	return machines, nil
}

// Parse decodes the machine array from raw `maas machines read` output.
func Parse(data []byte) ([]model.MachineRecord, error) {
	var machines []model.MachineRecord
	if err := json.Unmarshal(data, &machines); err != nil {
		return nil, fmt.Errorf("parsing maas JSON output: %w", err)
	}
	return machines, nil
}
