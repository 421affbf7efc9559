package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/MKhiriev/go-safe-share/internal/utils"
	"github.com/spf13/cobra"
)

// ErrNoTokenSubject is returned by `token` when neither --user nor a
// configured user id names the token subject.
var ErrNoTokenSubject = errors.New("token subject is required: pass --user")

// tokenCommand mints a bearer token for a blob server sharing the sign key.
// It is meant for development and self-hosted setups without a separate
// identity provider.
func (c *cli) tokenCommand() *cobra.Command {
	var (
		signKey string
		issuer  string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:         "token",
		Short:       "Mint a bearer token for a blob server",
		Long:        "Sign an HS256 token whose subject is --user with the blob server's sign key (APP_TOKEN_SIGN_KEY or --sign-key).",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationStandalone: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.flags.userID == "" {
				return ErrNoTokenSubject
			}

			overrides := c.flags.overrides()
			overrides.App.TokenSignKey = signKey
			overrides.App.TokenIssuer = issuer
			overrides.App.TokenDuration = ttl

			cfg, err := config.GetTokenConfig(c.flags.configPath, overrides)
			if err != nil {
				return err
			}

			token, err := utils.GenerateJWTToken(cfg.Issuer, c.flags.userID, cfg.Duration, cfg.SignKey)
			if err != nil {
				return fmt.Errorf("mint token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return nil
		},
	}

	cmd.Flags().StringVar(&signKey, "sign-key", "", "HMAC key shared with the blob server")
	cmd.Flags().StringVar(&issuer, "issuer", "", "token issuer (defaults to the configured issuer)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to the configured duration)")
	return cmd
}
