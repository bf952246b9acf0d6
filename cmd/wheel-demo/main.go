// Command wheel-demo shows the wheel picker in the terminal: a time picker
// with one wheel per field, or a single wheel over a list of strings.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
