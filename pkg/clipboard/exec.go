package clipboard

import (
	"context"
	"os/exec"

	"clipctl/pkg/errors"
)

// readText spawns the read command with no stdin and captures its output.
// stderr is captured too: exec.Cmd.Output attaches it to the ExitError, so
// the wrapped failure carries whatever the utility printed.
func readText(ctx context.Context, e Entry) (string, error) {
	cmd := exec.CommandContext(ctx, e.Read[0], e.Read[1:]...)
	out, err := cmd.Output()
	if err != nil {
		return "", errors.ReadError(err)
	}
	text := string(out)
	if e.PostRead != nil {
		text = e.PostRead(text)
	}
	return text, nil
}

// writeText pipes text into the write command's stdin, closes the pipe to
// signal end-of-input and waits for the child to exit. No output is
// consumed.
func writeText(ctx context.Context, e Entry, text string) error {
	cmd := exec.CommandContext(ctx, e.Write[0], e.Write[1:]...)
	in, err := cmd.StdinPipe()
	if err != nil {
		return errors.WriteError(err)
	}
	if err := cmd.Start(); err != nil {
		return errors.WriteError(err)
	}
	if _, err := in.Write([]byte(text)); err != nil {
		return errors.WriteError(err)
	}
	if err := in.Close(); err != nil {
		return errors.WriteError(err)
	}
	if err := cmd.Wait(); err != nil {
		return errors.WriteError(err)
	}
	return nil
}
