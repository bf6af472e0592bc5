package terminal

import "os"

// Reset restores the terminal after a hard exit: cursor visible, attributes
// cleared, alternate screen left, mouse reporting off. Bubbletea does this
// on a clean quit; the signal path needs it done by hand.
func Reset() {
	os.Stdout.WriteString("\033[?25h")
	os.Stdout.WriteString("\033[0m")
	os.Stdout.WriteString("\033[?1049l")
	os.Stdout.WriteString("\033[?1000l")
	os.Stdout.WriteString("\033[?1002l")
	os.Stdout.WriteString("\033[?1003l")
	os.Stdout.WriteString("\033[?1006l")
	os.Stdout.Sync()
}
