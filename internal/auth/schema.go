package auth

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// authenticateRequest は認証リクエストのJSON構造。
type authenticateRequest struct {
	// Email はアカウントの識別子となるメールアドレス。
	Email string `json:"email"`
	// Password は検証対象のパスワード。ログ出力もレスポンスへの出力も禁止。
	Password string `json:"password"`
}

// Validate は必須フィールドの存在とメールアドレス形式を検証する。
// 検証失敗は終端エラーであり、プロバイダ呼び出しは行われない。
func (r authenticateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// createUserRequest はユーザー作成リクエストのJSON構造。
type createUserRequest struct {
	// Email はアカウントの識別子となるメールアドレス。
	Email string `json:"email"`
	// FirstName は名。
	FirstName string `json:"firstName"`
	// LastName は姓。
	LastName string `json:"lastName"`
	// Password は初期パスワード。ログ出力もレスポンスへの出力も禁止。
	Password string `json:"password"`
}

// Validate は必須フィールドの存在とメールアドレス形式を検証する。
// 検証失敗は終端エラーであり、プロバイダ呼び出しは行われない。
func (r createUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// tokenResponse は認証成功時に返すトークンの組のJSON構造。
// プロバイダが発行したトークンを検査せずそのまま転送する。
type tokenResponse struct {
	// AccessToken はAPIアクセス用トークン。
	AccessToken string `json:"accessToken"`
	// IDToken はユーザー属性を含むIDトークン。
	IDToken string `json:"idToken"`
	// RefreshToken はトークン更新用トークン。
	RefreshToken string `json:"refreshToken"`
}
