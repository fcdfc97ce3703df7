package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/configs"
	"github.com/steve-ongera/AgriLink/entity"
	"github.com/steve-ongera/AgriLink/pkg/apperr"
	"github.com/steve-ongera/AgriLink/repository"
	"github.com/steve-ongera/AgriLink/utils"
)

type AuthService struct {
	Cfg  *configs.Config
	Repo *repository.UserRepository
}

func NewAuthService(cfg *configs.Config, repo *repository.UserRepository) *AuthService {
	return &AuthService{Cfg: cfg, Repo: repo}
}

type RegisterIn struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	UserType    string `json:"userType" binding:"required,oneof=farmer buyer transporter"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type AuthOut struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (s *AuthService) Register(in *RegisterIn) (*AuthOut, error) {
	taken, err := s.Repo.UsernameOrEmailTaken(in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Validation("username or email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := entity.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    string(hash),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		UserType:    in.UserType,
		PhoneNumber: in.PhoneNumber,
	}
	if err := s.Repo.Create(&u); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(u.ID, u.UserType, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &AuthOut{Token: token, User: &u}, nil
}

type LoginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *AuthService) Login(in *LoginIn) (*AuthOut, error) {
	u, err := s.Repo.ByUsername(in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("invalid username or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)); err != nil {
		return nil, apperr.Validation("invalid username or password")
	}

	token, err := utils.GenerateToken(u.ID, u.UserType, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &AuthOut{Token: token, User: u}, nil
}
