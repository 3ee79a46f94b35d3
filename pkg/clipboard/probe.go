package clipboard

import (
	"io"
	"os/exec"
)

// CommandExists reports whether name resolves on the search path, using
// `where` on Windows and `which` everywhere else. The probe is advisory and
// never fails: any anomaly, including a missing probe binary, reads as "not
// found".
func CommandExists(name string) bool {
	probe := "which"
	if Current() == Windows {
		probe = "where"
	}
	cmd := exec.Command(probe, name)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run() == nil
}
