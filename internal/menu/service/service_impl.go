package service

import (
	"context"
	"strings"

	catalogdomain "github.com/smallbiznis/carta/internal/catalog/domain"
	"github.com/smallbiznis/carta/internal/menu/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo catalogdomain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo catalogdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("menu.service"),
		repo: p.Repo,
	}
}

func (s *Service) BySlug(ctx context.Context, slug string) (*domain.View, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.ErrNotFound
	}

	tree, err := s.repo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, domain.ErrNotFound
	}

	return Assemble(tree), nil
}
