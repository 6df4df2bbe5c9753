package dto

import (
	"nautica/internal/core/types"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/domain/catalog/club"
	"nautica/internal/domain/catalog/tour"
	"nautica/internal/domain/catalog/yacht"
)

// CreateYachtRequest is the yacht catalog payload.
type CreateYachtRequest struct {
	Name        string      `json:"name" binding:"required"`
	Capacity    int         `json:"capacity" binding:"required"`
	Length      string      `json:"length"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Features    *string     `json:"features"`
	Price       types.Money `json:"price"`
	Status      string      `json:"status"`
	CategoryID  int64       `json:"categoryId" binding:"required"`
}

func (r *CreateYachtRequest) ToModel() *yacht.Yacht {
	return &yacht.Yacht{
		Name:        r.Name,
		Capacity:    r.Capacity,
		Length:      r.Length,
		Location:    r.Location,
		Description: r.Description,
		Features:    r.Features,
		Price:       r.Price,
		Status:      r.Status,
		CategoryID:  r.CategoryID,
	}
}

// CreateTourRequest is the tour catalog payload.
type CreateTourRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Price       types.Money `json:"price"`
	Location    string      `json:"location"`
	Status      string      `json:"status"`
	Schedule    *string     `json:"schedule"`
	Duration    *string     `json:"duration"`
	MinimumAge  *string     `json:"minimumAge"`
	Transport   *string     `json:"transport"`
	CategoryID  int64       `json:"categoryId" binding:"required"`
}

func (r *CreateTourRequest) ToModel() *tour.Tour {
	return &tour.Tour{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Location:    r.Location,
		Status:      r.Status,
		Schedule:    r.Schedule,
		Duration:    r.Duration,
		MinimumAge:  r.MinimumAge,
		Transport:   r.Transport,
		CategoryID:  r.CategoryID,
	}
}

// CreateClubRequest is the club catalog payload.
type CreateClubRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	Website        *string `json:"website"`
	CategoryID     int64   `json:"categoryId" binding:"required"`
	StateID        int64   `json:"stateId" binding:"required"`
	MunicipalityID int64   `json:"municipalityId" binding:"required"`
	LocalityID     int64   `json:"localityId" binding:"required"`
}

func (r *CreateClubRequest) ToModel() *club.Club {
	return &club.Club{
		Name:           r.Name,
		Description:    r.Description,
		Address:        r.Address,
		Phone:          r.Phone,
		Website:        r.Website,
		CategoryID:     r.CategoryID,
		StateID:        r.StateID,
		MunicipalityID: r.MunicipalityID,
		LocalityID:     r.LocalityID,
	}
}

// CreateCategoryRequest is the category payload. Kind comes from the route.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r *CreateCategoryRequest) ToModel(kind category.Kind) *category.Category {
	return &category.Category{Kind: kind, Name: r.Name}
}

// AddImageRequest carries a base64-encoded image upload.
type AddImageRequest struct {
	// Data is raw base64 or a data URL ("data:image/webp;base64,...").
	Data        string `json:"data" binding:"required"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

// AddCharacteristicRequest names a product feature.
type AddCharacteristicRequest struct {
	Name string `json:"name" binding:"required"`
}
