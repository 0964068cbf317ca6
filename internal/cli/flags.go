package cli

import "github.com/spf13/pflag"

// addJSONFlag registers the shared --json output switch.
func addJSONFlag(fs *pflag.FlagSet, target *bool, usage string) {
	fs.BoolVar(target, "json", false, usage)
}

// addHistoryFlag registers --history, which bypasses the database.
func addHistoryFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVar(target, "history", "", "Read academic history from a .csv or .xlsx file instead of the database")
}
