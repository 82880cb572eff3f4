package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/nStangl/chained-hashtable/hashtable"
	"github.com/nStangl/chained-hashtable/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfg      = hashtable.DefaultConfig()
	loglevel string
	rootCmd  = &cobra.Command{
		Use:     "hashtable",
		Short:   "Explore a separately chained hash table",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			// allow the loglevel as a trailing positional arg
			if unparsed := util.ExtractUnknownArgs(cmd.Flags(), args); len(unparsed) > 0 && isLogLevel(unparsed[len(unparsed)-1]) {
				loglevel = unparsed[len(unparsed)-1]
			}

			setLogLevel(loglevel)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			log.WithFields(log.Fields{"buckets": cfg.Buckets, "hasher": cfg.Hasher}).Debug("configuration loaded")

			return nil
		},
	}
)

func init() {
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().IntVarP(&cfg.Buckets, "buckets", "b", hashtable.DefaultSize, "Number of buckets, fixed for the life of the table")
	rootCmd.PersistentFlags().StringVarP(&cfg.Hasher, "hasher", "H", hashtable.DefaultHasher, "Key hash function, one of "+strings.Join(hashtable.Hashers(), ", "))
	rootCmd.PersistentFlags().StringVarP(&loglevel, "loglevel", "o", "INFO", "Loglevel, e.g., INFO, DEBUG, ...")

	rootCmd.AddCommand(demoCmd, wordsCmd, benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'\n", err)
		os.Exit(1)
	}
}

func isLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "all", "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "all", "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
		log.Warnf("Invalid log level '%s'. Setting log level to 'info'", level)
	}
}
