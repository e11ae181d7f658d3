package systemd

import (
	"strings"
	"testing"
)

func TestUnits(t *testing.T) {
	units := Units("/usr/local/bin/remnd")

	byName := make(map[string]Unit, len(units))
	for _, u := range units {
		byName[u.Name] = u
	}

	if len(units) != 5 {
		t.Fatalf("got %d units, want 5", len(units))
	}

	cases := []struct {
		name     string
		contains string
		enable   bool
	}{
		{"remnd-due.service", "ExecStart=/usr/local/bin/remnd notify", false},
		{"remnd-due.timer", "OnUnitActiveSec=1min", true},
		{"remnd-renotify.service", "ExecStart=/usr/local/bin/remnd renotify", false},
		{"remnd-renotify.timer", "OnUnitActiveSec=1h", true},
		{"remnd-catchup.service", "ExecStart=/usr/local/bin/remnd catchup", true},
	}

	for _, tc := range cases {
		u, ok := byName[tc.name]
		if !ok {
			t.Errorf("missing unit %s", tc.name)
			continue
		}
		if !strings.Contains(u.Contents, tc.contains) {
			t.Errorf("%s does not contain %q:\n%s", tc.name, tc.contains, u.Contents)
		}
		if u.Enable != tc.enable {
			t.Errorf("%s enable = %v, want %v", tc.name, u.Enable, tc.enable)
		}
	}

	// The catch-up service runs once per session start, not on a timer.
	if !strings.Contains(byName["remnd-catchup.service"].Contents, "WantedBy=default.target") {
		t.Error("catch-up service is not wanted by default.target")
	}
}
