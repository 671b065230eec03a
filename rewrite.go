package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sirkon/hoare/internal/engine"
	"github.com/sirkon/hoare/internal/report"
)

var (
	flagRoot    string
	flagConfig  string
	flagRelease bool
)

var rewriteCommand = &cobra.Command{
	Use:   "rewrite",
	Short: "inject contracts and write a build overlay",
	Long:  ``,
	RunE: func(*cobra.Command, []string) error {
		return runPass(func(e *engine.Engine) error {
			return e.Run()
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{rewriteCommand, checkCommand} {
		cmd.Flags().StringVar(&flagRoot, "root", ".", "project root to scan")
		cmd.Flags().StringVar(&flagConfig, "config", "hoare.yaml", "configuration file")
	}
	rewriteCommand.Flags().BoolVar(&flagRelease, "release", false, "skip debug_ contracts")
}

// runPass wires the configuration, reporter, and engine together, executes
// the pass, and turns accumulated diagnostics into a non-zero exit.
func runPass(pass func(e *engine.Engine) error) error {
	log := logrus.StandardLogger()

	cfg, err := engine.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagRelease {
		cfg.Debug = false
	}

	var rep report.Reporter
	e := engine.New(flagRoot, cfg, &rep, log)
	if err := pass(e); err != nil {
		return err
	}

	reps := rep.Reports()
	for _, r := range reps {
		log.WithFields(logrus.Fields{
			"rule":  r.RuleCode.String(),
			"phase": r.Phase.String(),
			"pos":   r.Pos.String(),
		}).Warn(r.Message)
	}
	if len(reps) > 0 {
		return errors.Errorf("%d contract problem(s) found", len(reps))
	}

	return nil
}
