//go:build unix

package main

import (
	"bufio"
	"os"
	"strings"

	"readaloud/internal/cli/scheme/colours"
	"readaloud/internal/speech"
)

// controlLoop takes pause/resume commands from the terminal while the
// engine speaks. It returns once the engine falls idle or the user
// stops or quits.
func controlLoop(ctl *speech.Controller) error {
	colours.Info.Println("controls: [p]ause  [r]esume  [t]oggle  [s]top  [q]uit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctl.State() == speech.StateIdle {
			return nil
		}

		var err error
		switch strings.TrimSpace(scanner.Text()) {
		case "p":
			err = ctl.Pause()
		case "r":
			err = ctl.Resume()
		case "t":
			err = ctl.Toggle()
		case "s":
			return ctl.Terminate(true)
		case "q":
			return nil
		default:
			continue
		}
		if err != nil {
			colours.Warning.Printf("%v\n", err)
		}
	}
	return scanner.Err()
}
