package health

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

const serviceCheckTimeout = 3 * time.Second

// CheckServices queries the state of each named service. On systemd hosts it
// shells out to `systemctl is-active`; elsewhere every service reports
// "unknown" with an explanatory detail. An empty name list returns nil.
func CheckServices(ctx context.Context, names []string) []ServiceStatus {
	if len(names) == 0 {
		return nil
	}

	if _, err := exec.LookPath("systemctl"); err != nil {
		statuses := make([]ServiceStatus, 0, len(names))
		for _, name := range names {
			statuses = append(statuses, ServiceStatus{
				Name:   name,
				Status: "unknown",
				Detail: "service check not supported on this host",
			})
		}
		return statuses
	}

	statuses := make([]ServiceStatus, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, checkSystemdUnit(ctx, name))
	}
	return statuses
}

func checkSystemdUnit(ctx context.Context, name string) ServiceStatus {
	ctx, cancel := context.WithTimeout(ctx, serviceCheckTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "systemctl", "is-active", name)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	// `is-active` exits non-zero for inactive units but still prints the
	// state; trust stdout when present.
	status := strings.TrimSpace(stdout.String())
	if status == "" {
		if err != nil {
			status = "error"
		} else {
			status = "unknown"
		}
	}
	return ServiceStatus{
		Name:   name,
		Status: status,
		Detail: strings.TrimSpace(stderr.String()),
	}
}
