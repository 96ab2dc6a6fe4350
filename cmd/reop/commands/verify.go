package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reop/internal/domain"
	"reop/internal/envelope"
	"reop/internal/keyops"
)

func verifyCmd() *cobra.Command {
	var embedded bool
	var msgfile string
	var sigfile string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a detached or embedded Ed25519 signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			var explicitPub *domain.PublicKey
			if pubkeyPath != "" {
				pub, err := loadPublicKey(pubkeyPath)
				if err != nil {
					return err
				}
				explicitPub = &pub
			}

			if embedded {
				path := sigfile
				if path == "" {
					path = msgfile
				}
				if path == "" {
					return fmt.Errorf("must specify the signed message file (-m or -x)")
				}
				data, err := appCtx.Files.ReadAll(path, domain.MaxInputBytes)
				if err != nil {
					return err
				}
				if _, err := keyops.VerifyEmbedded(data, explicitPub, appCtx.KeyRing); err != nil {
					return err
				}
			} else {
				if msgfile == "" {
					return fmt.Errorf("must specify a message file (-m)")
				}
				sig := sigfile
				if sig == "" {
					var err error
					sig, err = defaultOutPath(msgfile, ".sig")
					if err != nil {
						return err
					}
				}

				msg, err := appCtx.Files.ReadAll(msgfile, domain.MaxInputBytes)
				if err != nil {
					return err
				}
				sigData, err := appCtx.Files.ReadAll(sig, domain.MaxInputBytes)
				if err != nil {
					return err
				}
				sigIdent, sigPayload, err := envelope.DecodeBlock(sigData, envelope.KindSignature, domain.SignatureSize)
				if err != nil {
					return err
				}
				parsed, err := envelope.UnmarshalSignature(sigPayload)
				if err != nil {
					return err
				}
				parsed.Ident = sigIdent

				pub := explicitPub
				if pub == nil {
					resolved, ok, err := appCtx.KeyRing.FindPublicKeyByIdent(sigIdent)
					if err != nil {
						return err
					}
					if !ok {
						return fmt.Errorf("no public key found for ident %q", sigIdent)
					}
					pub = &resolved
				}
				if err := keyops.Verify(*pub, msg, parsed); err != nil {
					return err
				}
			}

			if !quiet {
				fmt.Println("Signature Verified")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&embedded, "embed", "e", false, "verify an embedded signed message instead of a detached signature")
	cmd.Flags().StringVarP(&msgfile, "message", "m", "", "message file")
	cmd.Flags().StringVarP(&sigfile, "sigfile", "x", "", "signature (or, with --embed, signed message) file")
	return cmd
}
