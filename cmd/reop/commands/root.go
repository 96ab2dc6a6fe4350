package commands

import (
	"github.com/spf13/cobra"

	"reop/internal/app"
)

var (
	home        string
	ident       string
	pubkeyPath  string
	seckeyPath  string
	keyringPath string
	quiet       bool

	appCtx *app.Wire
)

// Execute builds and runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:   "reop",
		Short: "Sign, verify, encrypt and decrypt files with Ed25519/Curve25519",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config{
				Home:        home,
				PubKeyPath:  pubkeyPath,
				SecKeyPath:  seckeyPath,
				KeyRingPath: keyringPath,
			}
			if cfg.Home == "" {
				def, err := app.DefaultConfig()
				if err != nil {
					return err
				}
				cfg.Home = def.Home
			}
			wire, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = wire
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config directory (default $HOME/.reop)")
	root.PersistentFlags().StringVarP(&ident, "ident", "i", "", "identity string")
	root.PersistentFlags().StringVarP(&pubkeyPath, "pubkey", "p", "", "public key file (default $HOME/.reop/pubkey)")
	root.PersistentFlags().StringVarP(&seckeyPath, "seckey", "s", "", "secret key file (default $HOME/.reop/seckey)")
	root.PersistentFlags().StringVar(&keyringPath, "keyring", "", "public key-ring file (default $HOME/.reop/pubkeyring)")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")

	root.AddCommand(generateCmd(), signCmd(), verifyCmd(), encryptCmd(), decryptCmd())
	return root.Execute()
}
