package cli

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
)

// copyWithClear places secret on the clipboard, counts down on one terminal
// line, then overwrites the clipboard. Blocks until the clear happens so the
// process cannot exit with the secret still held.
func copyWithClear(secret string, clearAfter time.Duration) error {
	if err := clipboard.WriteAll(secret); err != nil {
		return err
	}

	secs := int(clearAfter.Seconds())
	for i := secs; i > 0; i-- {
		fmt.Printf("\rPassword copied to clipboard. Clearing in %2d seconds...", i)
		time.Sleep(time.Second)
	}
	if err := clipboard.WriteAll(""); err != nil {
		return err
	}
	fmt.Printf("\r%-60s\n", "Clipboard cleared.")
	return nil
}

// copyToClipboard places secret on the clipboard with no scheduled clear.
func copyToClipboard(secret string) error {
	return clipboard.WriteAll(secret)
}

// copyAndForget places secret on the clipboard and schedules a background
// clear. Used from the TUI where a blocking countdown would freeze the view.
func copyAndForget(secret string, clearAfter time.Duration) error {
	if err := clipboard.WriteAll(secret); err != nil {
		return err
	}
	time.AfterFunc(clearAfter, func() {
		_ = clipboard.WriteAll("")
	})
	return nil
}
