package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fahmaliyi/mypw/vault"
)

const resetPhrase = "destroy my vault"

var genOpts = struct {
	length    int
	noUpper   bool
	noLower   bool
	noDigits  bool
	noSymbols bool
}{}

// rootCmd runs the interactive browser when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "mypw",
	Short: "A terminal password manager",
	Long: `mypw keeps your credentials in a single encrypted file, unlocked by one
master password. Run without arguments for the interactive browser, or use
the subcommands for one-shot operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		printBanner()
		s, err := login()
		if err != nil {
			return err
		}
		defer s.close()
		return runTUI(s)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new password vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		store := vault.NewStore(cfg.VaultPath, nil)
		if store.Exists() {
			printWarn("Vault already exists at %s. Aborting initialization.", cfg.VaultPath)
			return vault.ErrVaultExists
		}

		password, err := promptNewPassword()
		if err != nil {
			return err
		}
		defer vault.Zero(password)

		if err := store.Init(password); err != nil {
			return err
		}
		printOK("Vault initialized at %s", cfg.VaultPath)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new credential entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := login()
		if err != nil {
			return err
		}
		defer s.close()
		return s.addEntry()
	},
}

var getCmd = &cobra.Command{
	Use:   "get <service>",
	Short: "Show the entry for a service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := login()
		if err != nil {
			return err
		}
		defer s.close()
		return s.getEntry(args[0])
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all services in the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := login()
		if err != nil {
			return err
		}
		defer s.close()
		s.listEntries()
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <service>",
	Short: "Delete the entry for a service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := login()
		if err != nil {
			return err
		}
		defer s.close()
		return s.deleteEntry(args[0])
	},
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a secure password",
	RunE: func(cmd *cobra.Command, args []string) error {
		classes := vault.Classes{
			Upper:   !genOpts.noUpper,
			Lower:   !genOpts.noLower,
			Digits:  !genOpts.noDigits,
			Symbols: !genOpts.noSymbols,
		}
		password, err := vault.Generate(genOpts.length, classes)
		if err != nil {
			return err
		}
		fmt.Printf("Generated password: %s\n", okStyle.Render(password))
		if err := copyToClipboard(password); err != nil {
			printDim("Clipboard unavailable: %v", err)
			return nil
		}
		printDim("Copied to clipboard.")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Destroy the vault and start over",
	Long: `Deletes the existing vault file and creates a fresh, empty one under a
new master password. Every stored credential is irrecoverably lost.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}

		printWarn("This permanently destroys the vault at %s.", cfg.VaultPath)
		if !ConfirmPhrase("All entries will be lost", resetPhrase) {
			printDim("Operation cancelled.")
			return nil
		}

		password, err := promptNewPassword()
		if err != nil {
			return err
		}
		defer vault.Zero(password)

		if err := vault.NewStore(cfg.VaultPath, nil).Reset(password); err != nil {
			return err
		}
		printOK("Vault reset. Previous contents are gone.")
		return nil
	},
}

func init() {
	genCmd.Flags().IntVarP(&genOpts.length, "length", "l", 20, "password length")
	genCmd.Flags().BoolVar(&genOpts.noUpper, "no-upper", false, "exclude uppercase letters")
	genCmd.Flags().BoolVar(&genOpts.noLower, "no-lower", false, "exclude lowercase letters")
	genCmd.Flags().BoolVar(&genOpts.noDigits, "no-digits", false, "exclude digits")
	genCmd.Flags().BoolVar(&genOpts.noSymbols, "no-symbols", false, "exclude symbols")

	rootCmd.AddCommand(initCmd, addCmd, getCmd, listCmd, deleteCmd, genCmd, resetCmd)
}

// Execute runs the command tree and maps core errors to exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, vault.ErrVaultNotFound):
			printError("No vault found. Run `mypw init` to get started.")
		case errors.Is(err, vault.ErrDecryptionFailed):
			printError("Decryption failed. Incorrect master password or corrupt vault.")
		case errors.Is(err, vault.ErrVaultExists):
			// Message already printed by the init command.
		default:
			printError("%v", err)
		}
		os.Exit(1)
	}
}
