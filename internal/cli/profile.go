package cli

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/workbridge/client/internal/app"
	"github.com/workbridge/client/internal/core/domain"
)

func profileCmd(a *app.App, out printerFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
	}
	cmd.AddCommand(profileShowCmd(a, out), profileEditCmd(a, out))
	return cmd
}

func profileShowCmd(a *app.App, out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile of the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, profile, err := a.Profiles.Current(cmd.Context())
			if err != nil {
				return sessionErr(err)
			}
			v := newProfileView(account, profile)
			return out(cmd).print(v, profileHeaders, v.rows())
		},
	}
}

func profileEditCmd(a *app.App, out printerFunc) *cobra.Command {
	var title, bio, rate, skills string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change profile fields; omitted flags keep their value",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			account, profile, err := a.Profiles.Current(ctx)
			if err != nil {
				return sessionErr(err)
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				profile.Title = title
			}
			if flags.Changed("bio") {
				profile.Bio = bio
			}
			if flags.Changed("skills") {
				profile.Skills = skills
			}
			if flags.Changed("hourly-rate") {
				d, err := decimal.NewFromString(rate)
				if err != nil {
					return fmt.Errorf("error updating profile: hourly rate must be a number")
				}
				profile.HourlyRate = d
			}

			if err := a.Profiles.Update(ctx, account.ID, profile); err != nil {
				return fmt.Errorf("error updating profile: %w", err)
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "Profile updated successfully!")
			v := newProfileView(account, profile)
			return out(cmd).print(v, profileHeaders, v.rows())
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "professional title")
	cmd.Flags().StringVar(&bio, "bio", "", "short bio")
	cmd.Flags().StringVar(&rate, "hourly-rate", "", "hourly rate in dollars")
	cmd.Flags().StringVar(&skills, "skills", "", "comma separated skills")
	return cmd
}

func sessionErr(err error) error {
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return fmt.Errorf("not logged in; run `workbridge login` first")
	}
	return err
}
