package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tradebook/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the journal API",
	Long: `Sign in with email and password. The cookie credential is stored in the
credentials file so later commands stay signed in.

Example:
  tradebook login --email you@example.com`,
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the journal API",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored credential",
	RunE:  runLogout,
}

var (
	authEmail    string
	authPassword string
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)

	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVarP(&authEmail, "email", "e", "", "account email (required)")
		c.Flags().StringVarP(&authPassword, "password", "p", "", "account password (prompted when omitted)")
		c.MarkFlagRequired("email")
	}
}

func runLogin(cmd *cobra.Command, args []string) error {
	password, err := readPassword()
	if err != nil {
		return err
	}

	token, err := auth.Login(cmd.Context(), cfg.API.URL, authEmail, password)
	if err != nil {
		return err
	}
	if err := auth.SaveToken(cfg.API.CredentialsFile, token); err != nil {
		return err
	}

	fmt.Printf("✓ Signed in as %s\n", authEmail)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	password, err := readPassword()
	if err != nil {
		return err
	}

	token, err := auth.Register(cmd.Context(), cfg.API.URL, authEmail, password)
	if err != nil {
		return err
	}
	if err := auth.SaveToken(cfg.API.CredentialsFile, token); err != nil {
		return err
	}

	fmt.Printf("✓ Account created, signed in as %s\n", authEmail)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	token, err := auth.LoadToken(cfg.API.CredentialsFile)
	if err == nil {
		// Best effort: the credential file is cleared either way.
		if err := auth.Logout(cmd.Context(), cfg.API.URL, token); err != nil {
			fmt.Printf("server logout failed: %v\n", err)
		}
	}

	if err := auth.ClearToken(cfg.API.CredentialsFile); err != nil {
		return err
	}
	fmt.Println("✓ Signed out")
	return nil
}

func readPassword() (string, error) {
	if authPassword != "" {
		return authPassword, nil
	}

	fmt.Print("Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimSpace(line)
	if password == "" {
		return "", fmt.Errorf("password is required")
	}
	return password, nil
}
