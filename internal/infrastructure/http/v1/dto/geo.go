package dto

// CreateStateRequest names a new state.
type CreateStateRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateMunicipalityRequest attaches a municipality to a state.
type CreateMunicipalityRequest struct {
	Name    string `json:"name" binding:"required"`
	StateID int64  `json:"stateId" binding:"required"`
}

// CreateLocalityRequest attaches a locality to a municipality.
type CreateLocalityRequest struct {
	Name           string `json:"name" binding:"required"`
	MunicipalityID int64  `json:"municipalityId" binding:"required"`
}
