package dtos

type SetConditionRequest struct {
	Condition string `json:"condition" binding:"required"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
