package auth

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/authgw/pkg/cognito"
	"github.com/nao1215/authgw/pkg/middleware"
)

// identityProvider は外部IDプロバイダに要求する操作のインターフェース。
// 実装はpkg/cognitoのClientだが、テストでは偽物に差し替える。
type identityProvider interface {
	// CreateAccount はプロバイダにアカウントを登録する。
	CreateAccount(ctx context.Context, profile cognito.Profile) error
	// FinalizePassword はアカウントのパスワードを恒久パスワードとして確定する。
	FinalizePassword(ctx context.Context, username, password string) error
	// Authenticate は資格情報を検証し、トークンの組を返す。
	Authenticate(ctx context.Context, username, password string) (cognito.TokenBundle, error)
}

// Server は認証ゲートウェイサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// idp は外部IDプロバイダへのクライアント。
	// プロセス起動時に一度だけ生成し、全リクエストで共有する。
	idp identityProvider
}

// NewServer は新しい認証ゲートウェイサーバーを生成する。
// Cognitoクライアントの初期化を行い、ルーティングとミドルウェアを設定する。
func NewServer(port string) (*Server, error) {
	idp, err := cognito.New(context.Background(), cognito.Config{
		Region:     os.Getenv("AWS_REGION"),
		UserPoolID: os.Getenv("USER_POOL_ID"),
		ClientID:   os.Getenv("USER_POOL_CLIENT_ID"),
		Endpoint:   os.Getenv("COGNITO_ENDPOINT"),
	})
	if err != nil {
		return nil, fmt.Errorf("Cognitoクライアントの初期化に失敗: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	s := &Server{
		router: router,
		port:   port,
		idp:    idp,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	auth := s.router.Group("/auth")
	{
		// ユーザー作成
		auth.POST("/users", s.handleCreateUser())
		// 認証（トークン発行）
		auth.POST("/login", s.handleAuthenticate())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "authgw"})
	})
}

// handleCreateUser はユーザー作成を処理するハンドラを返す。
// 入力検証後、プロバイダへのアカウント登録とパスワード確定を順に行う。
// 2段階の操作にトランザクション保証はなく、パスワード確定に失敗した場合は
// パスワード未確定のアカウントがプロバイダ側に残る。
func (s *Server) handleCreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failCreate(c, fmt.Errorf("invalid request body: %v", err))
			return
		}
		if err := req.Validate(); err != nil {
			failCreate(c, err)
			return
		}

		ctx := c.Request.Context()
		if err := s.idp.CreateAccount(ctx, cognito.Profile{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}); err != nil {
			log.Printf("アカウント作成エラー: request_id=%s, %v", middleware.GetRequestID(c), err)
			failCreate(c, err)
			return
		}

		if err := s.idp.FinalizePassword(ctx, req.Email, req.Password); err != nil {
			// アカウントは作成済みのため、パスワード未確定のまま残る。
			// 補償削除は行わない。運用で回復できるよう対象アカウントをログに残す。
			log.Printf("パスワード確定エラー（アカウントは作成済み）: email=%s, request_id=%s, %v",
				req.Email, middleware.GetRequestID(c), err)
			failCreate(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "User created successfully",
			"email":   req.Email,
		})
	}
}

// handleAuthenticate は認証を処理するハンドラを返す。
// 入力検証後、プロバイダの管理者認証フローで資格情報を検証し、
// 発行されたトークンの組をそのまま呼び出し元へ返す。
func (s *Server) handleAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req authenticateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failAuthenticate(c, fmt.Errorf("invalid request body: %v", err))
			return
		}
		if err := req.Validate(); err != nil {
			failAuthenticate(c, err)
			return
		}

		tokens, err := s.idp.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			log.Printf("認証エラー: request_id=%s, %v", middleware.GetRequestID(c), err)
			failAuthenticate(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Authentication successful",
			"tokens": tokenResponse{
				AccessToken:  tokens.AccessToken,
				IDToken:      tokens.IDToken,
				RefreshToken: tokens.RefreshToken,
			},
		})
	}
}

// failCreate はユーザー作成の全失敗を同一のレスポンス形状へ変換する。
// 入力不正・プロバイダ拒否・プロバイダ障害は原因を問わず500を返し、
// 原因はerrorフィールドのメッセージでのみ区別できる。
func failCreate(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Error creating user",
		"error":   err.Error(),
	})
}

// failAuthenticate は認証の全失敗を同一のレスポンス形状へ変換する。
// 入力不正・資格情報不一致・プロバイダ障害は原因を問わず401を返す。
func failAuthenticate(c *gin.Context, err error) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"message": "Authentication failed",
		"error":   err.Error(),
	})
}
