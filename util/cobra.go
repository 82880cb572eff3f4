package util

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
)

// ExtractUnknownArgs returns the args that are neither a
// flag known to flags nor the value consumed by such a flag.
func ExtractUnknownArgs(flags *pflag.FlagSet, args []string) []string {
	var unknown []string

	for i := 0; i < len(args); i++ {
		a := args[i]

		f := lookupFlag(flags, a)
		if f == nil {
			unknown = append(unknown, a)
			continue
		}

		// --flag value, but not --flag=value or boolean flags
		if !strings.Contains(a, "=") && f.NoOptDefVal == "" && i+1 < len(args) {
			i++
		}
	}

	return unknown
}

func lookupFlag(flags *pflag.FlagSet, arg string) *pflag.Flag {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		return flags.Lookup(strings.SplitN(arg[2:], "=", 2)[0])
	case strings.HasPrefix(arg, "-") && len(arg) > 1:
		var f *pflag.Flag
		for _, s := range arg[1:] {
			// pflag panics on shorthands longer than one byte
			if utf8.RuneLen(s) != 1 {
				return nil
			}

			if f = flags.ShorthandLookup(string(s)); f == nil {
				return nil
			}
		}

		return f
	default:
		return nil
	}
}
