package widget

import "log"

// warnResizeFailed logs a failed TIOCSWINSZ resize and lets Draw continue:
// the pty keeps its previous geometry until the next successful resize, a
// soft inconsistency rather than a fatal error.
func warnResizeFailed(err error) {
	log.Printf("widget: resize failed: %v", err)
}
