package main

import (
	"github.com/samber/lo"
	"github.com/valtips-cli/valtips/cmd"
	"github.com/valtips-cli/valtips/config"
	"github.com/valtips-cli/valtips/log"
	"github.com/valtips-cli/valtips/network"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	network.Setup()

	cmd.Execute()
}
