package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/rs/zerolog"

	appConfig "postforge/config"
)

// Identity is the resolved caller of a request.
type Identity struct {
	UserID string
	Email  string
}

// TokenVerifier exchanges a bearer token for an identity with the external
// provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// CognitoVerifier resolves access tokens against a Cognito user pool.
type CognitoVerifier struct {
	client *cognitoidentityprovider.Client
	logger zerolog.Logger
}

func NewCognitoVerifier(ctx context.Context, cfg *appConfig.Config, logger zerolog.Logger) (*CognitoVerifier, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Cognito.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &CognitoVerifier{
		client: cognitoidentityprovider.NewFromConfig(awsCfg),
		logger: logger,
	}, nil
}

// Verify asks Cognito who holds the token. Provider errors are logged here and
// never surfaced to the caller.
func (v *CognitoVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	out, err := v.client.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(token),
	})
	if err != nil {
		v.logger.Warn().Err(err).Msg("token verification failed")
		return Identity{}, fmt.Errorf("token validation failed: %w", err)
	}

	identity := Identity{UserID: aws.ToString(out.Username)}
	for _, attr := range out.UserAttributes {
		if aws.ToString(attr.Name) == "email" {
			identity.Email = aws.ToString(attr.Value)
		}
	}
	return identity, nil
}
