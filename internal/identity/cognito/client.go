package cognito

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cognitoidentityprovider"

	"user-service/internal/config"
	"user-service/internal/identity"
	"user-service/internal/token"
)

const (
	attrEmail         = "email"
	attrEmailVerified = "email_verified"
	attrGivenName     = "given_name"
	attrFamilyName    = "family_name"
	attrCustomRole    = "custom:role"

	attrValueTrue = "true"
)

// Client implements identity.Gateway against an AWS Cognito user pool.
// The underlying service client is safe for concurrent use and is reused
// across requests.
type Client struct {
	userPoolID string
	clientID   string
	svc        *cognitoidentityprovider.CognitoIdentityProvider
}

// NewClient creates a Cognito client for the configured user pool. Static
// credentials are used when configured, otherwise the SDK's default chain
// applies.
func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWS.Region),
	}

	if cfg.AWS.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, err
	}

	return &Client{
		userPoolID: cfg.Cognito.UserPoolID,
		clientID:   cfg.Cognito.ClientID,
		svc:        cognitoidentityprovider.New(sess),
	}, nil
}

// Authenticate performs a USER_PASSWORD_AUTH flow and returns the issued
// token set.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*identity.Tokens, error) {
	input := &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: aws.String(cognitoidentityprovider.AuthFlowTypeUserPasswordAuth),
		ClientId: aws.String(c.clientID),
		AuthParameters: map[string]*string{
			"USERNAME": aws.String(email),
			"PASSWORD": aws.String(password),
		},
	}

	output, err := c.svc.InitiateAuthWithContext(ctx, input)
	if err != nil {
		return nil, classify(err)
	}

	result := output.AuthenticationResult
	if result == nil {
		// A challenge (e.g. NEW_PASSWORD_REQUIRED) means no tokens were
		// issued; surface it as a credential failure.
		return nil, classify(errNoTokensIssued)
	}

	return &identity.Tokens{
		AccessToken:  aws.StringValue(result.AccessToken),
		IDToken:      aws.StringValue(result.IdToken),
		RefreshToken: aws.StringValue(result.RefreshToken),
	}, nil
}

// CreateUser provisions a directory entry with the invitation message
// suppressed, then promotes the temporary password to a permanent one so
// the account is immediately usable.
func (c *Client) CreateUser(ctx context.Context, input identity.CreateUserInput) (*identity.CreatedUser, error) {
	createInput := &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId:        aws.String(c.userPoolID),
		Username:          aws.String(input.Email),
		TemporaryPassword: aws.String(input.TemporaryPassword),
		MessageAction:     aws.String(cognitoidentityprovider.MessageActionTypeSuppress),
		UserAttributes: []*cognitoidentityprovider.AttributeType{
			{Name: aws.String(attrEmail), Value: aws.String(input.Email)},
			{Name: aws.String(attrEmailVerified), Value: aws.String(attrValueTrue)},
			{Name: aws.String(attrGivenName), Value: aws.String(input.FirstName)},
			{Name: aws.String(attrFamilyName), Value: aws.String(input.LastName)},
			{Name: aws.String(attrCustomRole), Value: aws.String(input.Role)},
		},
	}

	output, err := c.svc.AdminCreateUserWithContext(ctx, createInput)
	if err != nil {
		return nil, classify(err)
	}

	setPasswordInput := &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(input.Email),
		Password:   aws.String(input.TemporaryPassword),
		Permanent:  aws.Bool(true),
	}

	if _, err := c.svc.AdminSetUserPasswordWithContext(ctx, setPasswordInput); err != nil {
		return nil, classify(err)
	}

	created := &identity.CreatedUser{}
	if output.User != nil {
		created.UserID = aws.StringValue(output.User.Username)
		created.Status = aws.StringValue(output.User.UserStatus)
	}

	return created, nil
}

// ListUsers returns up to limit directory entries.
func (c *Client) ListUsers(ctx context.Context, limit int64) ([]identity.User, error) {
	input := &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(c.userPoolID),
		Limit:      aws.Int64(limit),
	}

	output, err := c.svc.ListUsersWithContext(ctx, input)
	if err != nil {
		return nil, classify(err)
	}

	users := make([]identity.User, 0, len(output.Users))
	for _, entry := range output.Users {
		user := identity.User{
			Status: aws.StringValue(entry.UserStatus),
			Role:   token.DefaultRole,
		}
		if entry.UserCreateDate != nil {
			user.CreatedDate = *entry.UserCreateDate
		}
		if entry.UserLastModifiedDate != nil {
			user.LastModifiedDate = *entry.UserLastModifiedDate
		}

		for _, attr := range entry.Attributes {
			switch aws.StringValue(attr.Name) {
			case attrEmail:
				user.Email = aws.StringValue(attr.Value)
			case attrGivenName:
				user.FirstName = aws.StringValue(attr.Value)
			case attrFamilyName:
				user.LastName = aws.StringValue(attr.Value)
			case attrCustomRole:
				user.Role = aws.StringValue(attr.Value)
			}
		}

		users = append(users, user)
	}

	return users, nil
}
