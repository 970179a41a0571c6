package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"table-order/models"
	"table-order/utils"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, invalid("", "Username and password are required.")
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if !models.ValidRole(role) {
		return nil, invalid("role", "Invalid role %q.", role)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:    username,
		Password:    hashedPassword,
		Role:        role,
		IsActive:    true,
		TableNumber: req.TableNumber,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, invalid("username", "Username already exists.")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update applies the provided fields; a non-empty password is re-hashed.
func (s *UserService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, invalid("username", "Username must not be empty.")
		}
		user.Username = username
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, invalid("role", "Invalid role %q.", *req.Role)
		}
		user.Role = *req.Role
	}
	if req.TableNumber != nil {
		user.TableNumber = req.TableNumber
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hashedPassword
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, invalid("username", "Username already exists.")
		}
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete refuses to remove the account performing the request.
func (s *UserService) Delete(ctx context.Context, id, actorID int64) error {
	if id == actorID {
		return invalid("", "Cannot delete your own account.")
	}
	return s.users.Delete(ctx, id)
}
