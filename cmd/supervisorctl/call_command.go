package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	supervisor "github.com/axondata/go-supervisor"
)

func newCallCommand(ctx *commandContext) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "call <method> [args...]",
		Short: "Invoke any remote method and print the reply as JSON",
		Long: "Invoke a remote method by its short name. Arguments that parse as integers " +
			"are sent as ints, true and false as booleans, and everything else as strings.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				if raw {
					params = append(params, arg)
					continue
				}
				params = append(params, parseCallArg(arg))
			}

			return ctx.withClient(func(client *supervisor.Client) error {
				reply, err := client.Call(cmd.Context(), args[0], params...)
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(reply, "", "  ")
				if err != nil {
					return fmt.Errorf("encode reply: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Send every argument as a string")
	return cmd
}

func parseCallArg(arg string) any {
	if n, err := strconv.Atoi(arg); err == nil {
		return n
	}
	switch arg {
	case "true":
		return true
	case "false":
		return false
	}
	return arg
}
