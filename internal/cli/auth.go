package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workbridge/client/internal/app"
	"github.com/workbridge/client/internal/core/domain"
)

func registerCmd(a *app.App, out printerFunc) *cobra.Command {
	var email, password, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and start a session",
		Long:  "Register with the marketplace API. When the API is unreachable the account is created in the local store instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			if role != domain.RoleFreelancer && role != domain.RoleRecruiter {
				return fmt.Errorf("--role must be %s or %s", domain.RoleFreelancer, domain.RoleRecruiter)
			}

			in := domain.NewRegisterInput(email, password, role)
			if err := in.Validate(); err != nil {
				return fmt.Errorf("sign up failed: %w", err)
			}

			account, err := a.Auth.Register(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("sign up failed: %w", err)
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "Account created successfully!")
			v := newAccountView(account)
			return out(cmd).print(v, accountHeaders, v.rows())
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address; its local part becomes the username")
	cmd.Flags().StringVar(&password, "password", "", "password, at least 6 characters")
	cmd.Flags().StringVar(&role, "role", domain.RoleFreelancer, "freelancer or recruiter")
	return cmd
}

func loginCmd(a *app.App, out printerFunc) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a username or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}

			account, err := a.Auth.Login(cmd.Context(), domain.Credentials{Username: username, Password: password})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "Login successful!")
			v := newAccountView(account)
			return out(cmd).print(v, accountHeaders, v.rows())
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username or email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	return cmd
}

func logoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func whoamiCmd(a *app.App, out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account of the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := a.Auth.CurrentUser(cmd.Context())
			if err != nil {
				return sessionErr(err)
			}
			v := newAccountView(account)
			return out(cmd).print(v, accountHeaders, v.rows())
		},
	}
}
