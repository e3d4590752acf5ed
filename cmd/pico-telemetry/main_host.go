//go:build !(rp2040 || rp2350)

package main

import "os"

func main() {
	println("pico-telemetry needs a TinyGo rp2040 or rp2350 target; use cmd/fkdtoa on the host")
	os.Exit(1)
}
