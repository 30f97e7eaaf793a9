// This program runs the GYATCOIN mining simulator from the terminal.
package main

import "github.com/ardanlabs/gyatcoin/app/tooling/gyat/cmd"

func main() {
	cmd.Execute()
}
