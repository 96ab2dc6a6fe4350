package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reop/internal/domain"
	"reop/internal/envelope"
	"reop/internal/keyops"
)

func signCmd() *cobra.Command {
	var embedded bool
	var msgfile string
	var sigfile string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Produce a detached or embedded Ed25519 signature over a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			if msgfile == "" {
				return fmt.Errorf("must specify a message file (-m)")
			}
			out := sigfile
			if out == "" {
				var err error
				out, err = defaultOutPath(msgfile, ".sig")
				if err != nil {
					return err
				}
			}

			sec, err := loadSecretKey(appCtx.Config.SecKeyPath)
			if err != nil {
				return err
			}
			defer zeroizeSecretKey(&sec)
			msg, err := appCtx.Files.ReadAll(msgfile, domain.MaxInputBytes)
			if err != nil {
				return err
			}
			sig := keyops.Sign(sec, msg)

			var rendered []byte
			if embedded {
				rendered = envelope.EncodeSignedMessage(msg, sig.Ident, envelope.MarshalSignature(sig))
			} else {
				rendered = envelope.EncodeBlock(envelope.KindSignature, sig.Ident, envelope.MarshalSignature(sig))
			}
			if err := appCtx.Files.WriteAll(out, rendered, 0o644, false); err != nil {
				return err
			}

			if !quiet {
				fmt.Printf("signature written to %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&embedded, "embed", "e", false, "embed the signature with the message instead of writing it detached")
	cmd.Flags().StringVarP(&msgfile, "message", "m", "", "message file to sign")
	cmd.Flags().StringVarP(&sigfile, "sigfile", "x", "", "signature output file (default <message>.sig)")
	return cmd
}
