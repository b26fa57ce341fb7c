// Command space-vectors is an interactive calculator for 3-D analytic
// geometry: vectors, lines, and planes in normal and parametric form.
//
// Without arguments it starts a line-edited REPL; `space-vectors eval
// "<expression>"` evaluates a single expression and exits.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	spacevectors "github.com/astahfrom/space-vectors"
)

var (
	configPath string
	debug      bool

	log = logrus.New()
)

func main() {
	root := &cobra.Command{
		Use:   "space-vectors",
		Short: "calculator for vectors, lines and planes in 3-D space",
		Long: `space-vectors evaluates expressions over 3-D geometric elements:
vectors, lines, and planes in normal or parametric form.

Examples:
  cross (1,0,0), (0,1,0)
  angle (0,0,0) + t (1,0,0), 1x+0y+0z-2=0
  intersection (0,0,0) + t (0,0,1), 0x+0y+1z-2=0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runREPL(cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log parse trees and evaluation details")

	root.AddCommand(&cobra.Command{
		Use:   "eval <expression>",
		Short: "evaluate one expression and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := strings.Join(args, " ")
			out, err := evalLine(src)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// evalLine parses and evaluates one expression, wrapping lex/parse errors
// with a caret snippet of the source.
func evalLine(src string) (string, error) {
	node, err := spacevectors.Parse(src)
	if err != nil {
		return "", spacevectors.WrapErrorWithSource(err, src)
	}
	log.WithField("tree", fmt.Sprintf("%v", node)).Debug("parsed")

	v, err := spacevectors.Eval(node)
	if err != nil {
		return "", err
	}
	return spacevectors.FormatValue(v), nil
}
