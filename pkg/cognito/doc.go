// Package cognito はAmazon Cognitoユーザープールへの薄いアダプタを提供する。
//
// アカウント作成、パスワード確定、管理者認証フローの3操作のみを公開し、
// ビジネスロジックは持たない。SDKのエラーはゲートウェイ共通のエラー分類
// （ErrRejected / ErrAuthenticationRejected / ErrUnavailable）に変換される。
package cognito
