package cognito

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cognitoidentityprovider"

	apperrors "user-service/pkg/errors"
)

const (
	msgEmailExists        = "a user with this email already exists"
	msgInvalidRequest     = "invalid request parameters"
	msgInvalidCredentials = "invalid email or password"
	msgTooManyRequests    = "too many requests, please try again later"
	msgProviderFailure    = "identity provider request failed"
)

var errNoTokensIssued = errors.New("authentication produced no tokens")

// classify maps provider failures onto the pkg/errors taxonomy. Raw
// provider error text never reaches callers; handlers only see the mapped
// kind and its generic message.
func classify(err error) error {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		if errors.Is(err, errNoTokensIssued) {
			return apperrors.Unauthorized(msgInvalidCredentials)
		}
		return apperrors.Unavailable(msgProviderFailure, err)
	}

	switch aerr.Code() {
	case cognitoidentityprovider.ErrCodeUsernameExistsException:
		return apperrors.Conflict(msgEmailExists)
	case cognitoidentityprovider.ErrCodeInvalidPasswordException,
		cognitoidentityprovider.ErrCodeInvalidParameterException:
		return apperrors.Validation(msgInvalidRequest)
	case cognitoidentityprovider.ErrCodeNotAuthorizedException,
		cognitoidentityprovider.ErrCodeUserNotConfirmedException,
		cognitoidentityprovider.ErrCodePasswordResetRequiredException,
		cognitoidentityprovider.ErrCodeUserNotFoundException:
		return apperrors.Unauthorized(msgInvalidCredentials)
	case cognitoidentityprovider.ErrCodeTooManyRequestsException:
		return apperrors.Throttled(msgTooManyRequests)
	default:
		return apperrors.Unavailable(msgProviderFailure, err)
	}
}
