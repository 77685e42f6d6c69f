// heapctl runs an interactive console over a min or max heap of integers.
package main

import (
	"fmt"
	"os"

	"github.com/g-m-twostay/go-containers/Heaps"
	"github.com/g-m-twostay/go-containers/internal/config"
	"github.com/g-m-twostay/go-containers/internal/console"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	confPath string
	kind     string
	logLevel string
	quiet    bool
)

func init() {
	pflag.CommandLine.SetOutput(os.Stdout)
	pflag.CommandLine.Usage = printUsage

	pflag.StringVarP(&confPath, "config", "c", "", "path to a TOML config file")
	pflag.StringVarP(&kind, "kind", "k", "", "heap kind, min or max (overrides the config)")
	pflag.StringVarP(&logLevel, "log-level", "l", "", "log level (overrides the config)")
	pflag.BoolVarP(&quiet, "quiet", "q", false, "don't print a prompt")
}

func main() {
	pflag.Parse()
	log := logrus.New()
	log.SetOutput(os.Stderr)

	conf := config.Default()
	if confPath != "" {
		var err error
		if conf, err = config.Read(confPath); err != nil {
			log.WithError(err).Fatal("Couldn't load config.")
		}
	}
	if kind != "" {
		conf.Kind = kind
	}
	if logLevel != "" {
		conf.LogLevel = logLevel
	}
	if quiet {
		conf.Prompt = ""
	}
	if err := conf.Validate(); err != nil {
		log.WithError(err).Error("Invalid configuration.")
		pflag.CommandLine.Usage()
		os.Exit(1)
	}
	log.SetLevel(conf.Level())

	h := Heaps.New[int](conf.HeapKind())
	log.WithFields(logrus.Fields{"kind": h.Kind(), "order": conf.Order()}).Debug("Starting session.")
	if err := console.NewSession(h, conf, os.Stdout, log).Run(os.Stdin); err != nil {
		log.WithError(err).Fatal("Session failed.")
	}
}

func printUsage() {
	fmt.Print(
		"Usage of heapctl:\n" +
			"    heapctl [-c config.toml] [-k min|max] [-l level] [-q]\n")
	fmt.Println()
	fmt.Println("Flags:")
	pflag.CommandLine.PrintDefaults()
	fmt.Println()
	fmt.Println("Commands are read from stdin, one per line. Type help for the list.")
}
