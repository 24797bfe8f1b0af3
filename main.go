// Package main is the entry point for the coll application.
package main

import (
	"github.com/coll-cli/coll/cmd"
	"github.com/coll-cli/coll/config"
	"github.com/coll-cli/coll/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
