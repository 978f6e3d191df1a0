// fpconv shows IEEE-754 encodings of binary numbers.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

// CLI defines the fpconv command-line interface.
type CLI struct {
	Format  string `help:"Output format: text, json or cbor." enum:"text,json,cbor" default:"text" env:"FPCONV_FORMAT"`
	Verbose bool   `short:"v" help:"Enable verbose diagnostics."`

	Encode encodeCmd `cmd:"" help:"Encode a binary number given as whole part, fraction and a power-of-two exponent."`
	Decode decodeCmd `cmd:"" help:"Decode a bit pattern given in hex (0x...), binary (0b...) or as spaced fields."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fpconv"),
		kong.Description("Convert binary numbers to IEEE-754 half, single and double precision encodings."),
		kong.UsageOnError(),
	)
	e := &env{
		out:    os.Stdout,
		format: cli.Format,
		log:    newLogger(os.Stderr, cli.Verbose),
	}
	ctx.FatalIfErrorf(ctx.Run(e))
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
