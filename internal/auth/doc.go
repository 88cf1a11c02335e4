// Package auth は認証ゲートウェイサービスの内部実装を提供する。
//
// ユーザー作成と認証の2つの操作を公開し、実体は外部のマネージドIDプロバイダ
// （Cognitoユーザープール）へ委譲する。ゲートウェイ自身は資格情報もセッションも
// 保持しないステートレスな境界であり、プロバイダの応答と失敗を安定した
// 呼び出し元向けレスポンスへ変換する責務のみを持つ。
package auth
