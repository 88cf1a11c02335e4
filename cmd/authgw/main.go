// 認証ゲートウェイサービスのエントリポイント。
// ユーザー作成と認証の2操作を外部IDプロバイダ（Cognitoユーザープール）へ委譲する。
// ゲートウェイ自身は資格情報もユーザーレコードも保持しないステートレスなサービス。
package main

import (
	"log"
	"os"

	"github.com/nao1215/authgw/internal/auth"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server, err := auth.NewServer(port)
	if err != nil {
		log.Fatalf("認証ゲートウェイサーバーの初期化に失敗: %v", err)
	}

	log.Printf("認証ゲートウェイサービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("認証ゲートウェイサービスの起動に失敗: %v", err)
	}
}
