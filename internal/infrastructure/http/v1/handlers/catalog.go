package handlers

import (
	"nautica/internal/domain/catalog/club"
	"nautica/internal/domain/catalog/tour"
	"nautica/internal/domain/catalog/yacht"
	"nautica/internal/infrastructure/http/v1/dto"
)

// YachtHandler serves the yacht catalog.
type YachtHandler = ProductHandler[*yacht.Yacht, dto.CreateYachtRequest]

// NewYachtHandler creates a new yacht handler.
func NewYachtHandler(base *BaseHandler, service *yacht.Service) *YachtHandler {
	return NewProductHandler(base, ProductHandlerConfig[*yacht.Yacht, dto.CreateYachtRequest]{
		Service:    service,
		EntityName: "yacht",
		MapCreateDTO: func(req dto.CreateYachtRequest) *yacht.Yacht {
			return req.ToModel()
		},
		SetID: func(y *yacht.Yacht, id int64) { y.ID = id },
	})
}

// TourHandler serves the tour catalog.
type TourHandler = ProductHandler[*tour.Tour, dto.CreateTourRequest]

// NewTourHandler creates a new tour handler.
func NewTourHandler(base *BaseHandler, service *tour.Service) *TourHandler {
	return NewProductHandler(base, ProductHandlerConfig[*tour.Tour, dto.CreateTourRequest]{
		Service:    service,
		EntityName: "tour",
		MapCreateDTO: func(req dto.CreateTourRequest) *tour.Tour {
			return req.ToModel()
		},
		SetID: func(t *tour.Tour, id int64) { t.ID = id },
	})
}

// ClubHandler serves the club catalog.
type ClubHandler = ProductHandler[*club.Club, dto.CreateClubRequest]

// NewClubHandler creates a new club handler.
func NewClubHandler(base *BaseHandler, service *club.Service) *ClubHandler {
	return NewProductHandler(base, ProductHandlerConfig[*club.Club, dto.CreateClubRequest]{
		Service:    service,
		EntityName: "club",
		MapCreateDTO: func(req dto.CreateClubRequest) *club.Club {
			return req.ToModel()
		},
		SetID: func(c *club.Club, id int64) { c.ID = id },
	})
}
