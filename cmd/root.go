package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/teller/cmd/account"
	"github.com/hance08/teller/cmd/customer"
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	application := &app.App{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   "teller",
		Short: "teller is a terminal bank ledger for staff and card holders",
		Long: `teller keeps a small set of bank accounts.

Staff create accounts and register a card + PIN for them; card holders log in
with their card and PIN to check their balance, deposit and withdraw.
Run without a subcommand to start an interactive session.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			if cmd.Parent() == nil && cfg.Operator.Secret == "" {
				if err := initWizard(); err != nil {
					return err
				}
			}

			built, done, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			*application = *built
			cleanup = done

			if err := application.Service.Load(); err != nil {
				pterm.Warning.Printf("%s. Starting with an empty ledger.\n", errhandler.Capitalize(err.Error()))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{app: application}
			return runner.Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(customer.NewCustomerCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))

	err := rootCmd.Execute()
	cleanup()

	if err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

func initConfig() error {
	// a .env file in the working directory is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read .env file: %w", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	defaults := config.NewDefault()
	viper.SetDefault("storage.driver", defaults.Storage.Driver)
	viper.SetDefault("storage.path", defaults.Storage.Path)
	viper.SetDefault("operator.secret", defaults.Operator.Secret)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)
	viper.SetDefault("log.file", defaults.Log.File)

	viper.SetEnvPrefix("TELLER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func initWizard() error {
	secret, err := prompts.PromptInitOperatorSecret()
	if err != nil {
		return err
	}

	viper.Set("operator.secret", secret)
	cfg.Operator.Secret = secret

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Println("Configuration saved. Staff login is now enabled.")

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	defaults := config.NewDefault()
	v := viper.New()
	v.Set("storage.driver", defaults.Storage.Driver)
	v.Set("storage.path", defaults.Storage.Path)
	v.Set("operator.secret", defaults.Operator.Secret)
	v.Set("log.level", defaults.Log.Level)
	v.Set("log.format", defaults.Log.Format)
	v.Set("log.file", defaults.Log.File)

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
