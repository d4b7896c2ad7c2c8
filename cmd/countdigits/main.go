// Command countdigits prints how many digits integers take in binary, octal,
// decimal, hexadecimal and optionally any other radix, without formatting them.
//
// Usage:
//
//	countdigits [--type=T] [--radix=N] [--checked] [--nonzero] [--boundaries] [--] VALUE...
//
// Values may use the 0b, 0o and 0x prefixes of Go literals. Put negative
// values after "--" so they are not read as flags.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
)

func main() {
	app := kingpin.New("countdigits", "Counts the digits of integers in a radix without formatting them.")

	logs := &LoggerConfig{}
	logs.Register(app)

	cmd := &CountCommand{}
	cmd.Register(app, NewWriterPrinter(os.Stdout), logs.Logger)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		level.Error(logs.Logger()).Log("msg", "countdigits failed", "err", err)
		os.Exit(1)
	}
}
