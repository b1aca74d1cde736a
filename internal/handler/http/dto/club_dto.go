package dto

type CreateClubRequest struct {
	Name          string `json:"name" binding:"required,max=80"`
	Description   string `json:"description" binding:"max=2000"`
	CoordinatorID string `json:"coordinator_id" binding:"required"`
}

type DecideJoinRequest struct {
	Decision string `json:"decision" binding:"required,joindecision"`
}
