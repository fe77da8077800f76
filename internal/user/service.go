package user

import (
	"errors"
	"strings"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo          UserRepository
	allowlist     []string
	adminPassHash string
}

func NewUserService(repo UserRepository, allowlist []string, adminPassHash string) *UserService {
	return &UserService{
		repo:          repo,
		allowlist:     allowlist,
		adminPassHash: adminPassHash,
	}
}

// Register creates a league account keyed by normalized email and returns a
// signed token plus the stored user.
func (s *UserService) Register(req RegisterRequest) (string, *User, error) {
	name := strings.TrimSpace(req.Name)
	email := NormalizeEmail(req.Email)
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return "", nil, apperrors.NewAppError(400, "name and a valid email are required", nil)
	}
	if !EmailAllowed(email, s.allowlist) {
		return "", nil, apperrors.NewAppError(403, "registration is limited to invited participants", nil)
	}

	existing, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, apperrors.NewAppError(409, "a user with this email already exists", nil)
	}

	created, err := s.repo.CreateUser(name, email)
	if err != nil {
		return "", nil, err
	}

	token, errJWT := GenerateJWT(created.ID, false)
	if errJWT != nil {
		return "", nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, created, nil
}

// Login is passwordless: knowing the registered email is enough, the league
// runs among friends. Lookups go through the same normalization as Register.
func (s *UserService) Login(req LoginRequest) (string, *User, error) {
	email := NormalizeEmail(req.Email)
	u, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, apperrors.NewAppError(404, "user not found, register first", nil)
	}

	token, errJWT := GenerateJWT(u.ID, false)
	if errJWT != nil {
		return "", nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, u, nil
}

// AdminLogin checks the commissioner password and returns a token with the
// admin claim set.
func (s *UserService) AdminLogin(req AdminLoginRequest) (string, error) {
	if s.adminPassHash == "" {
		return "", apperrors.NewAppError(503, "admin password not configured", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPassHash), []byte(req.Password)); err != nil {
		return "", apperrors.NewAppError(401, "incorrect admin password", errors.New("invalid credentials"))
	}

	token, errJWT := GenerateJWT(0, true)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (s *UserService) GetUser(id uint) (*User, error) {
	u, err := s.repo.GetUser(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewAppError(404, "user not found", nil)
	}
	return u, nil
}

func (s *UserService) ListUsers() ([]User, error) {
	return s.repo.GetAllUsers()
}

func (s *UserService) UpdateUser(id uint, req UpdateUserRequest) error {
	name := strings.TrimSpace(req.Name)
	email := NormalizeEmail(req.Email)
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return apperrors.NewAppError(400, "name and a valid email are required", nil)
	}

	existing, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return apperrors.NewAppError(409, "a user with this email already exists", nil)
	}
	return s.repo.UpdateUser(id, name, email)
}

func (s *UserService) DeleteUser(id uint) error {
	return s.repo.DeleteUser(id)
}
