package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reop/internal/domain"
	"reop/internal/keyops"
)

func generateCmd() *cobra.Command {
	var noPassword bool
	var rounds uint32

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new signing and encryption keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := ""
			kdfRounds := rounds
			if noPassword {
				kdfRounds = domain.NoPasswordKDFRounds
			} else {
				var err error
				phrase, err = appCtx.Passphrase.ReadPassphrase("passphrase: ", true)
				if err != nil {
					return err
				}
			}

			kp, err := keyops.Generate(ident, phrase, kdfRounds)
			if err != nil {
				return err
			}
			if err := writePublicKey(appCtx.Config.PubKeyPath, kp.Public); err != nil {
				return err
			}
			if err := writeSecretKey(appCtx.Config.SecKeyPath, kp.Secret); err != nil {
				return err
			}

			if !quiet {
				fmt.Printf("generated keypair: %s\n", appCtx.Config.PubKeyPath)
				fmt.Printf("                   %s\n", appCtx.Config.SecKeyPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&noPassword, "no-password", "n", false, "do not protect the secret key with a passphrase")
	cmd.Flags().Uint32VarP(&rounds, "rounds", "r", domain.DefaultKDFRounds, "bcrypt-pbkdf iteration count")
	return cmd
}
