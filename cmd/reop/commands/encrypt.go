package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reop/internal/cryptops"
	"reop/internal/domain"
	"reop/internal/envelope"
	"reop/internal/primitives"
	"reop/internal/reoperr"
)

func encryptCmd() *cobra.Command {
	var msgfile string
	var xfile string
	var binaryOut bool
	var v1compat bool

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message, symmetrically or for a recipient's public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if msgfile == "" {
				return fmt.Errorf("must specify a message file (-m)")
			}
			out := xfile
			if out == "" {
				var err error
				out, err = defaultOutPath(msgfile, ".enc")
				if err != nil {
					return err
				}
			}

			msg, err := appCtx.Files.ReadAll(msgfile, domain.MaxInputBytes)
			if err != nil {
				return err
			}

			var header, ciphertext []byte
			var envIdent string

			usePubkey := pubkeyPath != "" || ident != ""
			if usePubkey {
				if seckeyPath == "" && appCtx.Config.SecKeyPath == "" {
					return fmt.Errorf("specify a seckey and a pubkey or ident")
				}
				recipient, err := resolveRecipientPublicKey()
				if err != nil {
					return err
				}
				sec, err := loadSecretKey(appCtx.Config.SecKeyPath)
				if err != nil {
					return err
				}
				defer zeroizeSecretKey(&sec)

				if v1compat {
					buf := append([]byte(nil), msg...)
					nonce, tagBytes, err := primitives.PubEncrypt(buf, recipient.EncKey, sec.EncKey)
					if err != nil {
						return err
					}
					env := domain.LegacyCSEnvelope{
						EncAlg:      domain.Tag2(domain.EncAlgCS),
						SecRandomID: sec.RandomID,
						PubRandomID: recipient.RandomID,
						Nonce:       nonce,
						Tag:         tagBytes,
					}
					header = envelope.MarshalLegacyCSEnvelope(env)
					ciphertext = buf
					envIdent = sec.Ident
				} else {
					env, ct, err := cryptops.EncryptPublicKey(msg, domain.Keypair{Secret: sec}, recipient)
					if err != nil {
						return err
					}
					header = envelope.MarshalPublicKeyEnvelope(env)
					ciphertext = ct
					envIdent = env.Ident
				}
			} else {
				phrase, err := appCtx.Passphrase.ReadPassphrase("passphrase: ", true)
				if err != nil {
					return err
				}
				h, ct, err := cryptops.EncryptSymmetric(msg, phrase, domain.DefaultKDFRounds)
				if err != nil {
					return err
				}
				header = envelope.MarshalSymmetricHeader(h)
				ciphertext = ct
			}

			var rendered []byte
			if binaryOut {
				rendered = envelope.EncodeBinaryMessage(envIdent, header, ciphertext)
			} else {
				rendered = envelope.EncodeEncryptedMessage(envIdent, header, ciphertext)
			}
			if err := appCtx.Files.WriteAll(out, rendered, 0o644, false); err != nil {
				return err
			}

			if !quiet {
				fmt.Printf("ciphertext written to %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&msgfile, "message", "m", "", "plaintext message file")
	cmd.Flags().StringVarP(&xfile, "xfile", "x", "", "ciphertext output file (default <message>.enc)")
	cmd.Flags().BoolVarP(&binaryOut, "binary", "b", false, "write the binary framing instead of armored")
	cmd.Flags().BoolVar(&v1compat, "v1compat", false, "write the legacy non-ephemeral (CS) envelope")
	return cmd
}

// resolveRecipientPublicKey loads the recipient's public key from the
// explicit --pubkey path, or looks it up by --ident in the key-ring.
func resolveRecipientPublicKey() (domain.PublicKey, error) {
	if pubkeyPath != "" {
		return loadPublicKey(pubkeyPath)
	}
	if ident != "" {
		pub, ok, err := appCtx.KeyRing.FindPublicKeyByIdent(ident)
		if err != nil {
			return domain.PublicKey{}, err
		}
		if !ok {
			return domain.PublicKey{}, reoperr.NoKeyf("no public key found for ident %q", ident)
		}
		return pub, nil
	}
	return domain.PublicKey{}, fmt.Errorf("specify a recipient public key (-p) or ident (-i)")
}
