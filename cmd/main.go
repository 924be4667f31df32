package cmd

import "github.com/google/subcommands"

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&holdingsCmd{},
	&currencyCmd{},
	&moversCmd{},
	&drilldownCmd{},
	&visualizerCmd{},
	&chartCmd{},
	&topicCmd{},
}
