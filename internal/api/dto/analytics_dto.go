package dto

type CreateAnalyticsDTO struct {
	ContentID uint64 `json:"content_id" validate:"required"`
	Views     uint64 `json:"views"`
	Likes     uint64 `json:"likes"`
	Shares    uint64 `json:"shares"`
}

type UpdateAnalyticsDTO struct {
	Views  *uint64 `json:"views"`
	Likes  *uint64 `json:"likes"`
	Shares *uint64 `json:"shares"`
}
