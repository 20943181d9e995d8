package cognito

import (
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cognitoidentityprovider"

	apperrors "user-service/pkg/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"username exists", cognitoidentityprovider.ErrCodeUsernameExistsException, apperrors.ErrConflict},
		{"invalid password", cognitoidentityprovider.ErrCodeInvalidPasswordException, apperrors.ErrValidation},
		{"invalid parameter", cognitoidentityprovider.ErrCodeInvalidParameterException, apperrors.ErrValidation},
		{"not authorized", cognitoidentityprovider.ErrCodeNotAuthorizedException, apperrors.ErrUnauthorized},
		{"user not confirmed", cognitoidentityprovider.ErrCodeUserNotConfirmedException, apperrors.ErrUnauthorized},
		{"password reset required", cognitoidentityprovider.ErrCodePasswordResetRequiredException, apperrors.ErrUnauthorized},
		{"user not found", cognitoidentityprovider.ErrCodeUserNotFoundException, apperrors.ErrUnauthorized},
		{"too many requests", cognitoidentityprovider.ErrCodeTooManyRequestsException, apperrors.ErrThrottled},
		{"unrecognized code", cognitoidentityprovider.ErrCodeInternalErrorException, apperrors.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := awserr.New(tt.code, "provider detail text", nil)
			got := classify(raw)
			if !errors.Is(got, tt.want) {
				t.Errorf("classify(%s) = %v, want kind %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassifyNonAWSError(t *testing.T) {
	got := classify(errors.New("connection refused"))
	if !errors.Is(got, apperrors.ErrUnavailable) {
		t.Errorf("classify(plain error) = %v, want kind ErrUnavailable", got)
	}
}

func TestClassifyNoTokensIssued(t *testing.T) {
	got := classify(errNoTokensIssued)
	if !errors.Is(got, apperrors.ErrUnauthorized) {
		t.Errorf("classify(errNoTokensIssued) = %v, want kind ErrUnauthorized", got)
	}
}

// Raw provider detail must not surface in the caller-facing message.
func TestClassifyHidesProviderDetail(t *testing.T) {
	raw := awserr.New(cognitoidentityprovider.ErrCodeNotAuthorizedException, "Incorrect username or password.", nil)

	var appErr *apperrors.AppError
	if !errors.As(classify(raw), &appErr) {
		t.Fatal("classify should return an AppError")
	}
	if strings.Contains(appErr.Message, "Incorrect username") {
		t.Errorf("caller-facing message leaks provider text: %q", appErr.Message)
	}
}
