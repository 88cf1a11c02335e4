package cognito

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

// ErrRejected はプロバイダがドメイン上の理由で操作を拒否した場合のエラー。
// 識別子の重複、属性の不正、パスワードポリシー違反など。
var ErrRejected = errors.New("identity provider rejected the request")

// ErrAuthenticationRejected は資格情報の検証に失敗した場合のエラー。
var ErrAuthenticationRejected = errors.New("authentication rejected")

// ErrUnavailable はプロバイダとの通信やサービス側の障害によるエラー。
var ErrUnavailable = errors.New("identity provider unavailable")

// classify はCognito SDKのエラーをゲートウェイ共通のエラー分類に変換する。
// 既知のエラー型以外はすべてErrUnavailableとして扱う。
func classify(err error) error {
	var (
		usernameExists   *types.UsernameExistsException
		invalidParameter *types.InvalidParameterException
		invalidPassword  *types.InvalidPasswordException
		notAuthorized    *types.NotAuthorizedException
		userNotFound     *types.UserNotFoundException
		userNotConfirmed *types.UserNotConfirmedException
	)

	switch {
	case errors.As(err, &usernameExists),
		errors.As(err, &invalidParameter),
		errors.As(err, &invalidPassword):
		return fmt.Errorf("%w: %s", ErrRejected, apiMessage(err))
	case errors.As(err, &notAuthorized),
		errors.As(err, &userNotFound),
		errors.As(err, &userNotConfirmed):
		return fmt.Errorf("%w: %s", ErrAuthenticationRejected, apiMessage(err))
	}

	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// apiMessage はAWS APIエラーから人間可読なメッセージを取り出す。
func apiMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorMessage()
	}
	return err.Error()
}
