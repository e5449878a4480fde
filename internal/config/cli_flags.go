package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().Bool("json", false, "Log in JSON format")
	cmd.PersistentFlags().String("timeout", DefaultHTTPTimeout.String(), "Hard timeout for each fetch")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent string")
	cmd.PersistentFlags().IntP("concurrency", "c", DefaultMaxConcurrent, "Max fetches in flight at once")
	cmd.PersistentFlags().String("delay", DefaultFetchDelay.String(), "Pause after each completed fetch")
	cmd.PersistentFlags().StringArrayP("header", "H", nil, "Extra request header (e.g., -H \"Accept: text/html\")")
}
