// Command quotes is a terminal client for the quotes API.
package main

import "os"

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
