package dto

type CreateSecurityLogDTO struct {
	UserID    uint64 `json:"user_id" validate:"required"`
	Action    string `json:"action" validate:"required,max=255"`
	IPAddress string `json:"ip_address" validate:"required,ip"`
}

type UpdateSecurityLogDTO struct {
	Action    *string `json:"action" validate:"omitempty,max=255"`
	IPAddress *string `json:"ip_address" validate:"omitempty,ip"`
}
