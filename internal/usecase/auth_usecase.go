package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"crosstop/internal/domain/model"
	repo "crosstop/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// 会員登録の入力
type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Phone           string
	Email           string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
}

// AuthUsecase は会員登録・ログインとアクセストークン発行
type AuthUsecase struct {
	tx         repo.TransactionManager
	userRepo   repo.UserRepository
	jwtSecret  []byte
	accessTTL  time.Duration
	bcryptCost int
}

func NewAuthUsecase(
	tx repo.TransactionManager,
	userRepo repo.UserRepository,
	jwtSecret string,
	accessTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		tx:         tx,
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  accessTTL,
		bcryptCost: 12,
	}
}

// Register はUserとCustomerを1トランザクションで作る。
// ユーザー名が既にあれば ErrDuplicateUser で、どちらも作られない
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthOutput, error) {
	fields := map[string]string{}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		fields["username"] = "required"
	}
	if in.Password == "" {
		fields["password"] = "required"
	} else if len(in.Password) < 8 {
		fields["password"] = "must be at least 8 characters"
	}
	if in.Password != in.ConfirmPassword {
		fields["confirm_password"] = "passwords do not match"
	}
	if strings.TrimSpace(in.Phone) == "" {
		fields["phone"] = "required"
	}
	if len(fields) > 0 {
		return AuthOutput{}, NewValidationError(fields)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	var user model.User

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, findErr := r.Users().FindByUsername(ctx, username)
		if findErr == nil {
			return ErrDuplicateUser
		}
		if !errors.Is(findErr, repo.ErrNotFound) {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		user = model.User{
			Username:     username,
			Email:        strings.TrimSpace(in.Email),
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			PasswordHash: string(hashed),
		}
		if err := r.Users().Create(ctx, &user); err != nil {
			// ユニーク制約に当たったら重複扱い
			return ErrDuplicateUser
		}

		userID := user.ID
		_, err := r.Customers().Create(ctx, model.Customer{
			UserID: &userID,
			Phone:  strings.TrimSpace(in.Phone),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return AuthOutput{}, err
	}

	return u.issue(user)
}

// Login はパスワード検証してトークンを返す
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (AuthOutput, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return AuthOutput{}, NewValidationError(map[string]string{"username": "required", "password": "required"})
	}

	user, err := u.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return AuthOutput{}, NewValidationError(map[string]string{"username": "user not found"})
	}
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return AuthOutput{}, NewValidationError(map[string]string{"password": "wrong password"})
	}

	return u.issue(user)
}

// HS256 アクセストークン
func (u *AuthUsecase) issue(user model.User) (AuthOutput, error) {
	now := time.Now()
	expiresAt := now.Add(u.accessTTL)

	claims := jwt.MapClaims{
		"sub": user.ID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.jwtSecret)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return AuthOutput{
		Token:     signed,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Username:  user.Username,
	}, nil
}
