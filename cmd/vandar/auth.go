package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.store.Login(cmd.Context(), email, password)
			a.flushNotifications(cmd)
			return err
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newSignupCommand(a *app) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account (verification email follows)",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.store.Signup(cmd.Context(), name, email, password)
			a.flushNotifications(cmd)
			if err != nil {
				return err
			}
			if msg != "" {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newVerifyEmailCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify-email TOKEN",
		Short: "Verify the account email with a token from the inbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.store.VerifyEmail(cmd.Context(), args[0])
			a.flushNotifications(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newForgotPasswordCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password EMAIL",
		Short: "Request a password reset email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.store.ForgotPassword(cmd.Context(), args[0])
			a.flushNotifications(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newResetPasswordCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password TOKEN NEW_PASSWORD",
		Short: "Set a new password with a reset token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.store.ResetPassword(cmd.Context(), args[0], args[1])
			a.flushNotifications(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			user := a.store.Session().User
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>", user.Name, user.Email)
			if !user.Verified {
				fmt.Fprint(cmd.OutOrStdout(), " (unverified)")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and discard the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.Logout(cmd.Context())
			a.flushNotifications(cmd)
			return nil
		},
	}
}
