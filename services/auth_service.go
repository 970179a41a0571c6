package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"table-order/models"
	"table-order/utils"
)

type AuthService struct {
	users  UserStore
	tables TableStore
	secret string
	ttl    time.Duration
}

func NewAuthService(users UserStore, tables TableStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, tables: tables, secret: secret, ttl: ttl}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	token, err := utils.GenerateUserToken(user.ID, user.Role, s.secret, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &models.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}

// QRLogin exchanges a table's QR code for a customer token bound to that table.
func (s *AuthService) QRLogin(ctx context.Context, req models.QRLoginRequest) (*models.QRLoginResponse, error) {
	table, err := s.tables.FindByQRCode(ctx, req.QRCode)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidQRCode
		}
		return nil, fmt.Errorf("find table: %w", err)
	}
	if !table.IsActive {
		return nil, ErrInvalidQRCode
	}

	token, err := utils.GenerateTableToken(table.TableNumber, models.RoleCustomer, s.secret, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &models.QRLoginResponse{
		Token:       token,
		TableNumber: table.TableNumber,
		Role:        models.RoleCustomer,
	}, nil
}

// Authenticate resolves a bearer token to an identity. User tokens are checked against
// the store so deleted accounts lose access immediately.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Identity, error) {
	claims, err := utils.ValidateToken(token, s.secret)
	if err != nil {
		return nil, err
	}

	switch {
	case claims.UserID != 0:
		user, err := s.users.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, fmt.Errorf("find user: %w", err)
		}
		if !user.IsActive {
			return nil, ErrInactiveAccount
		}
		return &models.Identity{
			UserID:      user.ID,
			Username:    user.Username,
			Role:        user.Role,
			TableNumber: user.TableNumber,
			User:        user,
		}, nil
	case claims.TableNumber != 0:
		tableNumber := claims.TableNumber
		return &models.Identity{
			Role:        models.RoleCustomer,
			TableNumber: &tableNumber,
			IsTemporary: true,
		}, nil
	default:
		return nil, utils.ErrInvalidToken
	}
}
