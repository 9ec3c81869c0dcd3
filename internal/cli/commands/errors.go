package commands

import "fmt"

func wrapCommandError(command string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s failed: %w", command, err)
}
