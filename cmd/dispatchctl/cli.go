// dispatchctl is a command-line client for a running dispatchd's admin
// surface. Grounded on scootapi/client/cli.go's simpleCLIClient: a root
// cobra.Command with an --addr flag shared by every subcommand.
package main

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

const defaultAdminAddr = "localhost:9091"

type cliClient struct {
	rootCmd *cobra.Command
	addr    string
	http    *http.Client
}

func newCLIClient() *cliClient {
	c := &cliClient{http: &http.Client{Timeout: 5 * time.Second}}
	c.rootCmd = &cobra.Command{
		Use:   "dispatchctl",
		Short: "dispatchctl is a command-line client for dispatchd's admin endpoint",
		Run:   func(*cobra.Command, []string) {},
	}
	c.addCmd(&statusCmd{})
	c.addCmd(&statsCmd{})
	return c
}

func (c *cliClient) Exec() error {
	return c.rootCmd.Execute()
}

func (c *cliClient) addCmd(cmd command) {
	cobraCmd := cmd.registerFlags()
	cobraCmd.Flags().StringVar(&c.addr, "addr", defaultAdminAddr, "dispatchd admin address")
	cobraCmd.RunE = func(innerCmd *cobra.Command, args []string) error {
		return cmd.run(c, innerCmd, args)
	}
	c.rootCmd.AddCommand(cobraCmd)
}

func (c *cliClient) get(path string) (string, error) {
	url := fmt.Sprintf("http://%s%s", c.addr, path)
	resp, err := c.http.Get(url)
	if err != nil {
		return "", fmt.Errorf("dialing %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %v", url, err)
	}
	return string(body), nil
}

type command interface {
	registerFlags() *cobra.Command
	run(cl *cliClient, cmd *cobra.Command, args []string) error
}

func main() {
	if err := newCLIClient().Exec(); err != nil {
		fmt.Println(err)
	}
}
