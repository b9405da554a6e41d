package oei

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/othello/cmd/internal/opt"
	"github.com/nelhage/othello/oei"
)

type Command struct {
	opt opt.Minimax
}

func (*Command) Name() string     { return "oei" }
func (*Command) Synopsis() string { return "Run the engine in OEI mode" }
func (*Command) Usage() string {
	return `oei

Run the engine in OEI mode, a UCI-like line protocol on stdin and
stdout suitable for being driven by an external controller.

`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine := oei.NewEngine(os.Stdin, os.Stdout)
	engine.ConfigFactory = c.opt.BuildConfig
	if err := engine.Run(ctx); err != nil {
		log.Println("oei: ", err.Error())
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
