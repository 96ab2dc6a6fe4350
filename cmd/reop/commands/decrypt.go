package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"reop/internal/cryptops"
	"reop/internal/domain"
	"reop/internal/envelope"
)

func decryptCmd() *cobra.Command {
	var msgfile string
	var xfile string

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a message, symmetric or public-key, armored or binary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if msgfile == "" {
				return fmt.Errorf("must specify an output message file (-m)")
			}
			in := xfile
			if in == "" {
				var err error
				in, err = defaultOutPath(msgfile, ".enc")
				if err != nil {
					return err
				}
			}

			encdata, err := appCtx.Files.ReadAll(in, domain.MaxInputBytes)
			if err != nil {
				return err
			}

			var tag, envIdent string
			var header, ciphertext []byte
			if bytes.HasPrefix(encdata, domain.BinaryMagic[:]) {
				tag, header, envIdent, ciphertext, err = envelope.DecodeBinaryMessage(encdata)
			} else {
				envIdent, header, ciphertext, err = envelope.DecodeEncryptedMessage(encdata)
				if err == nil {
					tag, err = headerTag(header)
				}
			}
			if err != nil {
				return err
			}

			var plain []byte
			switch tag {
			case domain.SymAlgSP:
				h, uerr := envelope.UnmarshalSymmetricHeader(header)
				if uerr != nil {
					return uerr
				}
				phrase, perr := appCtx.Passphrase.ReadPassphrase("passphrase: ", false)
				if perr != nil {
					return perr
				}
				plain, err = cryptops.DecryptSymmetric(h, ciphertext, phrase)

			case domain.EncAlgEC:
				env, uerr := envelope.UnmarshalPublicKeyEnvelope(header)
				if uerr != nil {
					return uerr
				}
				recipientSec, serr := loadSecretKey(appCtx.Config.SecKeyPath)
				if serr != nil {
					return serr
				}
				defer zeroizeSecretKey(&recipientSec)
				senderPub, perr := resolveSenderPublicKey(envIdent)
				if perr != nil {
					return perr
				}
				plain, err = cryptops.DecryptPublicKey(env, ciphertext, recipientSec, senderPub)

			case domain.EncAlgCS:
				env, uerr := envelope.UnmarshalLegacyCSEnvelope(header)
				if uerr != nil {
					return uerr
				}
				recipientSec, serr := loadSecretKey(appCtx.Config.SecKeyPath)
				if serr != nil {
					return serr
				}
				defer zeroizeSecretKey(&recipientSec)
				senderPub, perr := resolveSenderPublicKey(envIdent)
				if perr != nil {
					return perr
				}
				plain, err = cryptops.DecryptLegacyCS(env, ciphertext, recipientSec, senderPub)

			case domain.EncAlgES:
				env, uerr := envelope.UnmarshalLegacyESEnvelope(header)
				if uerr != nil {
					return uerr
				}
				recipientSec, serr := loadSecretKey(appCtx.Config.SecKeyPath)
				if serr != nil {
					return serr
				}
				defer zeroizeSecretKey(&recipientSec)
				plain, err = cryptops.DecryptLegacyES(env, ciphertext, recipientSec)

			default:
				return fmt.Errorf("unhandled envelope tag %q", tag)
			}
			if err != nil {
				return err
			}

			if err := appCtx.Files.WriteAll(msgfile, plain, 0o644, false); err != nil {
				return err
			}
			if !quiet {
				fmt.Printf("plaintext written to %s\n", msgfile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&msgfile, "message", "m", "", "plaintext output file")
	cmd.Flags().StringVarP(&xfile, "xfile", "x", "", "ciphertext input file (default <message>.enc)")
	return cmd
}

// headerTag recovers the 2-byte algorithm tag that opens an armored
// envelope header, used to dispatch after the header block has already
// been base64-decoded.
func headerTag(header []byte) (string, error) {
	if len(header) < 2 {
		return "", fmt.Errorf("envelope header too short")
	}
	return string(header[:2]), nil
}

func resolveSenderPublicKey(ident string) (domain.PublicKey, error) {
	if pubkeyPath != "" {
		return loadPublicKey(pubkeyPath)
	}
	pub, ok, err := appCtx.KeyRing.FindPublicKeyByIdent(ident)
	if err != nil {
		return domain.PublicKey{}, err
	}
	if !ok {
		return domain.PublicKey{}, fmt.Errorf("no public key found for ident %q", ident)
	}
	return pub, nil
}
