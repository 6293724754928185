// cmd/moonshine-thermo/main.go
package main

import (
	"moonshine/internal/appshell"
	"moonshine/internal/thermoapp"
)

func main() { appshell.Main(thermoapp.RunContext) }
