package catalog

import (
	"context"
	"errors"
	"fmt"

	servicesRepo "github.com/nekositon/NS-StudioService/internal/infra/storage/services"
	"github.com/nekositon/NS-StudioService/internal/service/catalog/models"
)

// Service сервис каталога услуг студии
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает все услуги в порядке отображения на сайте
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching service catalog")

	services, err := s.serviceRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetByTitle возвращает услугу по точному названию
func (s *Service) GetByTitle(ctx context.Context, title string) (*models.ServiceResponse, error) {
	s.logger.Info("GetByTitle: fetching service title=%s", title)

	service, err := s.serviceRepo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByTitle: service title=%s not found", title)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByTitle: repository error for title=%s: %v", title, err)
		return nil, fmt.Errorf("%w: GetByTitle - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainService(service)
	return &resp, nil
}
