// main is the entry point for the wayscan CLI.
package main

import (
	"github.com/wayscan/wayscan/cmd"
	"github.com/wayscan/wayscan/internal/contract"
	"github.com/wayscan/wayscan/internal/iocache"
)

func main() {
	err := cmd.Execute()
	iocache.CloseStores()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
