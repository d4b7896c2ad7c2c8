package main

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/clickermonkey/countdigits"
)

// kind reads values of one integer type.
type kind struct {
	parse func(s string, nonZero bool) (countdigits.Counter, error)
	// boundaries is nil for the 128-bit types.
	boundaries func(radix uint64, emit func(digits uint, largest string))
}

var kindNames = []string{"i8", "i16", "i32", "i64", "i128", "int", "u8", "u16", "u32", "u64", "u128", "uint"}

var kinds = map[string]kind{
	"i8":   signedKind[int8](8),
	"i16":  signedKind[int16](16),
	"i32":  signedKind[int32](32),
	"i64":  signedKind[int64](64),
	"int":  signedKind[int](strconv.IntSize),
	"u8":   unsignedKind[uint8](8),
	"u16":  unsignedKind[uint16](16),
	"u32":  unsignedKind[uint32](32),
	"u64":  unsignedKind[uint64](64),
	"uint": unsignedKind[uint](strconv.IntSize),
	"i128": {parse: parseInt128},
	"u128": {parse: parseUint128},
}

func signedKind[T constraints.Signed](bitSize int) kind {
	return kind{
		parse: func(s string, nonZero bool) (countdigits.Counter, error) {
			n, err := strconv.ParseInt(s, 0, bitSize)
			if err != nil {
				return nil, errors.Wrap(err, "parse value")
			}
			return counterOf(T(n), nonZero)
		},
		boundaries: boundariesOf[T],
	}
}

func unsignedKind[T constraints.Unsigned](bitSize int) kind {
	return kind{
		parse: func(s string, nonZero bool) (countdigits.Counter, error) {
			n, err := strconv.ParseUint(s, 0, bitSize)
			if err != nil {
				return nil, errors.Wrap(err, "parse value")
			}
			return counterOf(T(n), nonZero)
		},
		boundaries: boundariesOf[T],
	}
}

func counterOf[T constraints.Integer](v T, nonZero bool) (countdigits.Counter, error) {
	if !nonZero {
		return countdigits.Of(v), nil
	}
	n, ok := countdigits.NewNonZero(v)
	if !ok {
		return nil, errors.Wrap(countdigits.ErrZero, "--nonzero value")
	}
	return n, nil
}

func boundariesOf[T constraints.Integer](radix uint64, emit func(digits uint, largest string)) {
	for digits, largest := range countdigits.Boundaries[T](radix) {
		emit(digits, fmt.Sprint(largest))
	}
}

func parseInt128(s string, nonZero bool) (countdigits.Counter, error) {
	v, err := countdigits.ParseInt128(s)
	if err != nil {
		return nil, err
	}
	if !nonZero {
		return v, nil
	}
	n, ok := countdigits.NewNonZeroInt128(v)
	if !ok {
		return nil, errors.Wrap(countdigits.ErrZero, "--nonzero value")
	}
	return n, nil
}

func parseUint128(s string, nonZero bool) (countdigits.Counter, error) {
	v, err := countdigits.ParseUint128(s)
	if err != nil {
		return nil, err
	}
	if !nonZero {
		return v, nil
	}
	n, ok := countdigits.NewNonZeroUint128(v)
	if !ok {
		return nil, errors.Wrap(countdigits.ErrZero, "--nonzero value")
	}
	return n, nil
}

// CountCommand prints the digit counts of integers.
type CountCommand struct {
	printer   Printer
	getLogger func() log.Logger

	kind       string
	radix      string
	checked    bool
	nonZero    bool
	boundaries bool
	values     []string
}

// Register is used to register the command's flags and arguments to the application.
func (c *CountCommand) Register(app *kingpin.Application, printer Printer, getLogger func() log.Logger) {
	c.printer = printer
	c.getLogger = getLogger

	app.Flag("type", "Integer type the values are read as.").Default("i64").EnumVar(&c.kind, kindNames...)
	app.Flag("radix", "Also count the digits in this radix.").PlaceHolder("N").StringVar(&c.radix)
	app.Flag("checked", "Print digits=none for a radix below 2 instead of failing.").BoolVar(&c.checked)
	app.Flag("nonzero", "Read values as nonzero integers; zero is an error.").BoolVar(&c.nonZero)
	app.Flag("boundaries", "Print the largest value of --type for each digit count in --radix (default 10).").BoolVar(&c.boundaries)
	app.Arg("value", "Integers to count.").StringsVar(&c.values)
	app.Action(c.count)
}

func (c *CountCommand) count(_ *kingpin.ParseContext) error {
	logger := c.getLogger()

	radix, hasRadix, err := c.parseRadix()
	if err != nil {
		return err
	}

	k := kinds[c.kind]
	if c.boundaries {
		if k.boundaries == nil {
			return errors.Errorf("--boundaries is not supported for --type=%s", c.kind)
		}
		if !hasRadix {
			radix = 10
		}
		if err := countdigits.CheckRadix(radix); err != nil {
			level.Warn(logger).Log("msg", "no boundaries to print", "err", err)
			return nil
		}
		k.boundaries(radix, func(digits uint, largest string) {
			c.printer.PrintLine(fmt.Sprintf("digits=%d max=%s", digits, largest))
		})
		return nil
	}

	if len(c.values) == 0 {
		return errors.New("at least one value is required")
	}
	for _, s := range c.values {
		counter, err := k.parse(s, c.nonZero)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("value=%s bits=%d octal=%d decimal=%d hex=%d",
			s, counter.CountBits(), counter.CountOctalDigits(), counter.CountDigits(), counter.CountHexDigits())
		if hasRadix {
			line += c.radixColumns(counter, radix)
		}
		level.Debug(logger).Log("msg", "counted digits", "type", c.kind, "value", s)
		c.printer.PrintLine(line)
	}
	return nil
}

// parseRadix reads --radix. Without --checked an invalid radix is an error
// here, so CountDigitsRadix cannot panic later.
func (c *CountCommand) parseRadix() (radix uint64, ok bool, err error) {
	if c.radix == "" {
		return 0, false, nil
	}
	radix, err = strconv.ParseUint(c.radix, 0, 64)
	if err != nil {
		return 0, false, errors.Wrap(err, "parse --radix")
	}
	if !c.checked {
		if err := countdigits.CheckRadix(radix); err != nil {
			return 0, false, errors.Wrap(err, "--radix")
		}
	}
	return radix, true, nil
}

func (c *CountCommand) radixColumns(counter countdigits.Counter, radix uint64) string {
	if !c.checked {
		return fmt.Sprintf(" radix=%d digits=%d", radix, counter.CountDigitsRadix(radix))
	}
	n, ok := counter.CheckedCountDigitsRadix(radix)
	if !ok {
		return fmt.Sprintf(" radix=%d digits=none", radix)
	}
	return fmt.Sprintf(" radix=%d digits=%d", radix, n)
}
