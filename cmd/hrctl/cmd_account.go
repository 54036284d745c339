package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zaer/hr-service/internal/repository"
	"github.com/zaer/hr-service/internal/service"
)

var (
	accountPassword  string
	accountStaff     bool
	accountSuperuser bool
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage login accounts",
}

var accountCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a login account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountCreate,
}

var tokenCmd = &cobra.Command{
	Use:   "token <username>",
	Short: "Print a signed access token for an existing account",
	Args:  cobra.ExactArgs(1),
	RunE:  runToken,
}

func init() {
	accountCreateCmd.Flags().StringVarP(&accountPassword, "password", "p", "", "account password")
	accountCreateCmd.Flags().BoolVar(&accountStaff, "staff", false, "grant staff privileges")
	accountCreateCmd.Flags().BoolVar(&accountSuperuser, "superuser", false, "grant superuser privileges (implies --staff)")
	_ = accountCreateCmd.MarkFlagRequired("password")
	accountCmd.AddCommand(accountCreateCmd)
}

func authService(e *env) *service.AuthService {
	return service.NewAuthService(*e.cfg, repository.NewAccountRepository(e.pg.PoolHandle()))
}

func runAccountCreate(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	account, err := authService(e).CreateAccount(cmd.Context(), service.AccountInput{
		Username:    args[0],
		Password:    accountPassword,
		IsStaff:     accountStaff,
		IsSuperuser: accountSuperuser,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created account %s (%s) staff=%t superuser=%t\n",
		account.Username, account.ID, account.IsStaff, account.IsSuperuser)
	return nil
}

func runToken(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	token, err := authService(e).IssueToken(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, token.Token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", token.ExpiresAt.Format(time.RFC3339))
	return nil
}
