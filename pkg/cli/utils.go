package cli

import "github.com/urfave/cli/v3"

// joinFlags concatenates the flag sets of several config structs
func joinFlags(sets ...[]cli.Flag) []cli.Flag {
	n := 0
	for _, set := range sets {
		n += len(set)
	}
	flags := make([]cli.Flag, 0, n)
	for _, set := range sets {
		flags = append(flags, set...)
	}
	return flags
}
