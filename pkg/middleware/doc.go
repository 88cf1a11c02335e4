// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// 任意オリジンを許可するCORS設定、パニックリカバリ、リクエストID付与など、
// 認証ゲートウェイの全エンドポイントで共通して使用するミドルウェアを含む。
package middleware
