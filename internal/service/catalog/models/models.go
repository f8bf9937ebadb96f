package models

import (
	"github.com/nekositon/NS-StudioService/internal/domain"
)

// ServiceResponse карточка услуги студии
type ServiceResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Description string  `json:"description"`
	Price       string  `json:"price"`  // отображаемая цена, например "₱ 20,000"
	Amount      int64   `json:"amount"` // числовое значение цены
	Image       *string `json:"image,omitempty"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Subtitle:    s.Subtitle,
		Description: s.Description,
		Price:       s.Price,
		Amount:      domain.ParseDisplayPrice(s.Price),
		Image:       s.Image,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		resp.Services = append(resp.Services, FromDomainService(s))
	}
	return resp
}
