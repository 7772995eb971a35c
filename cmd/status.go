/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var (
	healthyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	workingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	stackKeyStyle = lipgloss.NewStyle().Bold(true)
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <name>",
	Short: "Show the status of a service instance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		p, err := getProvider(cmd)
		if err != nil {
			return err
		}

		info, err := p.GetStackStatus(cmd.Context(), name)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", stackKeyStyle.Render("Service:"), info.Name)
		fmt.Printf("%s  %s\n", stackKeyStyle.Render("Status:"), renderStatus(info.Status))
		if info.CreatedAt != nil {
			fmt.Printf("%s %s\n", stackKeyStyle.Render("Created:"), info.CreatedAt.Format("2006-01-02 15:04:05 MST"))
		}
		return nil
	},
}

// renderStatus colours a stack status: green for settled, red for failed or
// rolled back, yellow while an operation is running
func renderStatus(status string) string {
	switch {
	case strings.HasSuffix(status, "ROLLBACK_COMPLETE"), strings.HasSuffix(status, "_FAILED"):
		return failedStyle.Render(status)
	case strings.HasSuffix(status, "_COMPLETE"):
		return healthyStyle.Render(status)
	default:
		return workingStyle.Render(status)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
