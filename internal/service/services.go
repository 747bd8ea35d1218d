package service

import (
	"github.com/AlexanderSS88/adboard/internal/config"
	"github.com/AlexanderSS88/adboard/internal/repository"
)

type Services struct {
	Auth        *AuthService
	User        *UserService
	Advertising *AdvertisingService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, repos.Token, cfg),
		User:        NewUserService(repos.User),
		Advertising: NewAdvertisingService(repos.Advertising),
	}
}
