package dto

type CreateSEODataDTO struct {
	ContentID       uint64  `json:"content_id" validate:"required"`
	MetaTitle       string  `json:"meta_title" validate:"required,max=255"`
	MetaDescription string  `json:"meta_description"`
	Keywords        string  `json:"keywords" validate:"max=255"`
	CanonicalURL    *string `json:"canonical_url" validate:"omitempty,url,max=200"`
}

type UpdateSEODataDTO struct {
	ContentID       *uint64 `json:"content_id" validate:"omitempty,gt=0"`
	MetaTitle       *string `json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string `json:"meta_description"`
	Keywords        *string `json:"keywords" validate:"omitempty,max=255"`
	CanonicalURL    *string `json:"canonical_url" validate:"omitempty,url,max=200"`
}
