package main

import (
	"github.com/spf13/cobra"

	"github.com/sirkon/hoare/internal/engine"
)

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "validate contract directives without rewriting anything",
	Long:  ``,
	RunE: func(*cobra.Command, []string) error {
		return runPass(func(e *engine.Engine) error {
			return e.Check()
		})
	},
}
