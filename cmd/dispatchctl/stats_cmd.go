package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type statsCmd struct {
	pretty bool
}

func (c *statsCmd) registerFlags() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "GetMetrics",
	}
	cmd.Flags().BoolVar(&c.pretty, "pretty", false, "pretty-print the metrics JSON")
	return cmd
}

func (c *statsCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	path := "/admin/metrics.json"
	if c.pretty {
		path += "?pretty=true"
	}
	body, err := cl.get(path)
	if err != nil {
		return err
	}
	fmt.Println(body)
	return nil
}
