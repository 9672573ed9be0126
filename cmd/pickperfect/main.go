// Command pickperfect inspects colors, samples palettes from HTML files and
// images, and manages the picker history from the terminal.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
