package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type statusCmd struct{}

func (c *statusCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "GetHealth",
	}
}

func (c *statusCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	body, err := cl.get("/health")
	if err != nil {
		return err
	}
	fmt.Println("dispatchd health:", body)
	return nil
}
