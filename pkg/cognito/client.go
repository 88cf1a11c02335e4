package cognito

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// api はCognito SDKのうちゲートウェイが使用する操作のみを切り出したインターフェース。
// テストではこのインターフェースを偽物に差し替える。
type api interface {
	AdminCreateUser(ctx context.Context, params *cip.AdminCreateUserInput, optFns ...func(*cip.Options)) (*cip.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cip.AdminSetUserPasswordInput, optFns ...func(*cip.Options)) (*cip.AdminSetUserPasswordOutput, error)
	AdminInitiateAuth(ctx context.Context, params *cip.AdminInitiateAuthInput, optFns ...func(*cip.Options)) (*cip.AdminInitiateAuthOutput, error)
}

// Client はCognitoユーザープールへのIDプロバイダクライアント。
// プロセス起動時に一度だけ生成し、全リクエストで共有する。並行使用しても安全。
type Client struct {
	// api はCognito SDKクライアント。
	api api
	// userPoolID は操作対象のユーザープールID。
	userPoolID string
	// clientID は管理者認証フローで使用するアプリクライアントID。
	clientID string
}

// Config はCognitoクライアントの接続設定。
type Config struct {
	// Region はAWSリージョン（例: "ap-northeast-1"）。
	Region string
	// UserPoolID は操作対象のユーザープールID。
	UserPoolID string
	// ClientID は管理者認証フローで使用するアプリクライアントID。
	ClientID string
	// Endpoint はCognitoエンドポイントの上書きURL。
	// 空の場合はSDKのデフォルトを使用する。ローカルエミュレータ向け。
	Endpoint string
}

// New は新しいCognitoクライアントを生成する。
// AWS認証情報はSDKのデフォルトチェーン（環境変数、IAMロール等）から解決される。
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.UserPoolID == "" {
		return nil, fmt.Errorf("ユーザープールIDが設定されていません")
	}
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("アプリクライアントIDが設定されていません")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("AWS設定の読み込みに失敗: %w", err)
	}

	sdk := cip.NewFromConfig(awsCfg, func(o *cip.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Client{
		api:        sdk,
		userPoolID: cfg.UserPoolID,
		clientID:   cfg.ClientID,
	}, nil
}

// Profile はアカウント作成時にプロバイダへ転送するユーザー属性。
// ゲートウェイは内容を保存せず、そのままCognitoへ渡す。
type Profile struct {
	// Email はアカウントの一意識別子となるメールアドレス。
	Email string
	// FirstName は名。Cognitoのgiven_name属性に対応する。
	FirstName string
	// LastName は姓。Cognitoのfamily_name属性に対応する。
	LastName string
}

// TokenBundle は認証成功時にCognitoが発行するトークンの組。
// ゲートウェイは内容を検査・復号・変更せず、そのまま呼び出し元へ返す。
type TokenBundle struct {
	// AccessToken はAPIアクセス用トークン。
	AccessToken string
	// IDToken はユーザー属性を含むIDトークン。
	IDToken string
	// RefreshToken はトークン更新用トークン。
	RefreshToken string
}

// CreateAccount はユーザープールにアカウントを登録する。
// アカウント作成はバックエンド主導のため、メールアドレスは検証済みとして登録し、
// Cognitoからの招待メッセージ送信は抑止する。
// 識別子が既に存在する場合や属性が不正な場合はErrRejectedを返す。
func (c *Client) CreateAccount(ctx context.Context, profile Profile) error {
	_, err := c.api.AdminCreateUser(ctx, &cip.AdminCreateUserInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(profile.Email),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(profile.Email)},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
			{Name: aws.String("given_name"), Value: aws.String(profile.FirstName)},
			{Name: aws.String("family_name"), Value: aws.String(profile.LastName)},
		},
		MessageAction: types.MessageActionTypeSuppress,
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

// FinalizePassword はアカウントのパスワードを恒久パスワードとして確定する。
// Permanent=trueで設定するため、初回ログイン時のパスワード変更は要求されない。
// パスワードポリシー違反の場合はErrRejectedを返す。
func (c *Client) FinalizePassword(ctx context.Context, username, password string) error {
	_, err := c.api.AdminSetUserPassword(ctx, &cip.AdminSetUserPasswordInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(username),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

// Authenticate は管理者認証フロー（ADMIN_USER_PASSWORD_AUTH）で資格情報を検証する。
// ゲートウェイ自身がユーザーに代わって認証する信頼済みバックエンドのフロー。
// 資格情報が一致しない場合はErrAuthenticationRejectedを返す。
func (c *Client) Authenticate(ctx context.Context, username, password string) (TokenBundle, error) {
	out, err := c.api.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		UserPoolId: aws.String(c.userPoolID),
		ClientId:   aws.String(c.clientID),
		AuthFlow:   types.AuthFlowTypeAdminUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return TokenBundle{}, classify(err)
	}

	// パスワードは恒久設定されているためチャレンジ応答は想定外。
	// トークンなしの成功は認証失敗として扱う。
	if out.AuthenticationResult == nil {
		return TokenBundle{}, fmt.Errorf("%w: authentication challenge is not supported", ErrAuthenticationRejected)
	}

	return TokenBundle{
		AccessToken:  aws.ToString(out.AuthenticationResult.AccessToken),
		IDToken:      aws.ToString(out.AuthenticationResult.IdToken),
		RefreshToken: aws.ToString(out.AuthenticationResult.RefreshToken),
	}, nil
}
