package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"termtap/internal/client"
)

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.Flags().StringP("addr", "a", "127.0.0.1:8789", "capture server address (host:port)")
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List targets on a running capture server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		list, err := client.New(addr).Sessions(cmd.Context())
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("no sessions")
			return nil
		}
		for _, s := range list {
			fmt.Printf("- %s: %d bytes retained (since %s)\n", s.Name, s.Retained, s.Created)
		}
		return nil
	},
}
