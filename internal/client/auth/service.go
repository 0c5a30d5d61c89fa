package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/streakbox/streakbox/internal/client/api"
	"github.com/streakbox/streakbox/internal/client/storage"
	"github.com/streakbox/streakbox/internal/crypto"
	"github.com/streakbox/streakbox/internal/validation"
	pkgapi "github.com/streakbox/streakbox/pkg/api"
)

// ErrSessionExpired возвращается, когда сохраненный токен истек
var ErrSessionExpired = errors.New("session expired, login again")

//go:generate moq -out service_mock.go . Service

// Service defines the interface for authentication and session management.
// Мастер-пароль никогда не сохраняется и не уходит на сервер: наружу
// передается только SHA256 хеш производного Argon2id ключа.
type Service interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, username, masterPassword string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию локально
	Login(ctx context.Context, username, masterPassword string) (*LoginResult, error)

	// Logout удаляет локальную сессию
	Logout(ctx context.Context) error

	// IsAuthenticated проверяет наличие живой сессии
	IsAuthenticated(ctx context.Context) (bool, error)

	// Session возвращает сохраненные данные сессии
	Session(ctx context.Context) (*storage.AuthData, error)

	// AccessToken возвращает действующий access token.
	// Возвращает ErrSessionExpired, если токен истек.
	AccessToken(ctx context.Context) (string, error)
}

type service struct {
	apiClient httpClient.ClientAPI
	store     storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient httpClient.ClientAPI, store storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, username, masterPassword string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(masterPassword); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	publicSalt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	authKeyHash, err := s.authKeyHash(username, masterPassword, publicSalt)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
		PublicSalt:  publicSalt,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("Registered new account", "username", username, "user_id", resp.UserID)

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
	}, nil
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	UserID      string
	Username    string
	AccessToken string
	ExpiresIn   int64 // время жизни access token в секундах
}

// Login выполняет аутентификацию пользователя и сохраняет сессию
func (s *service) Login(ctx context.Context, username, masterPassword string) (*LoginResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(masterPassword); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	saltResp, err := s.apiClient.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	authKeyHash, err := s.authKeyHash(username, masterPassword, saltResp.PublicSalt)
	if err != nil {
		return nil, err
	}

	tokenResp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// Идентичность аккаунта нужна sync engine для защиты от смены аккаунта
	account, err := s.apiClient.Account(ctx, tokenResp.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	auth := &storage.AuthData{
		Username:    username,
		UserID:      account.UserID,
		AccessToken: tokenResp.AccessToken,
		PublicSalt:  saltResp.PublicSalt,
		ExpiresAt:   s.now().Unix() + tokenResp.ExpiresIn,
	}
	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Logged in", "username", username, "user_id", account.UserID)

	return &LoginResult{
		UserID:      account.UserID,
		Username:    username,
		AccessToken: tokenResp.AccessToken,
		ExpiresIn:   tokenResp.ExpiresIn,
	}, nil
}

// Logout удаляет локальную сессию. Отсутствие сессии не ошибка.
func (s *service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsAuthenticated проверяет наличие живой сессии
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.AccessToken(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) || errors.Is(err, ErrSessionExpired) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Session возвращает сохраненные данные сессии
func (s *service) Session(ctx context.Context) (*storage.AuthData, error) {
	return s.store.GetAuth(ctx)
}

// AccessToken возвращает действующий access token
func (s *service) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		return "", err
	}

	if auth.ExpiresAt > 0 && s.now().Unix() >= auth.ExpiresAt {
		return "", ErrSessionExpired
	}

	return auth.AccessToken, nil
}

func (s *service) authKeyHash(username, masterPassword, publicSalt string) (string, error) {
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(masterPassword, username, publicSalt)
	if err != nil {
		return "", fmt.Errorf("failed to derive auth key: %w", err)
	}

	hash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return "", fmt.Errorf("failed to hash auth key: %w", err)
	}

	return hash, nil
}
