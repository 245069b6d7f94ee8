// Package main is the entry point for the filesan application.
package main

import (
	"github.com/filesan-cli/filesan/cmd"
	"github.com/filesan-cli/filesan/config"
	"github.com/filesan-cli/filesan/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
