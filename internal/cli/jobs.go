package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/workbridge/client/internal/app"
	"github.com/workbridge/client/internal/core/domain"
)

func jobsCmd(a *app.App, out printerFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse and apply for jobs",
	}
	cmd.AddCommand(jobsListCmd(a, out), jobsApplyCmd(a, out))
	return cmd
}

func jobsListCmd(a *app.App, out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := a.Jobs.ListJobs(cmd.Context())
			if err != nil {
				return fmt.Errorf("error loading jobs: %w", sessionErr(err))
			}
			views := newJobViews(jobs)
			return out(cmd).print(views, jobHeaders, jobRows(views))
		},
	}
}

func jobsApplyCmd(a *app.App, out printerFunc) *cobra.Command {
	var proposal, bid string

	cmd := &cobra.Command{
		Use:   "apply JOB_ID",
		Short: "Submit a proposal for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id %q", args[0])
			}
			in := domain.ApplicationInput{JobID: id, Proposal: proposal}
			if bid != "" {
				if in.BidAmount, err = decimal.NewFromString(bid); err != nil {
					return fmt.Errorf("bid amount must be a number")
				}
			}

			submitted, err := a.Jobs.Apply(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("error: %w", sessionErr(err))
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "Application submitted successfully!")
			views := newApplicationViews([]domain.Application{*submitted})
			return out(cmd).print(views[0], applicationHeaders, applicationRows(views))
		},
	}

	cmd.Flags().StringVar(&proposal, "proposal", "", "your proposal")
	cmd.Flags().StringVar(&bid, "bid", "", "bid amount in dollars")
	return cmd
}

func applicationsCmd(a *app.App, out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "applications",
		Short: "List your submitted applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			apps, err := a.Jobs.MyApplications(cmd.Context())
			if err != nil {
				return fmt.Errorf("error loading applications: %w", sessionErr(err))
			}
			views := newApplicationViews(apps)
			return out(cmd).print(views, applicationHeaders, applicationRows(views))
		},
	}
}
