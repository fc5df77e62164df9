package dto

type CreateTranslationDTO struct {
	ContentID       uint64 `json:"content_id" validate:"required"`
	Language        string `json:"language" validate:"required,max=10"`
	TranslatedTitle string `json:"translated_title" validate:"required,max=255"`
	TranslatedBody  string `json:"translated_body"`
}

type UpdateTranslationDTO struct {
	ContentID       *uint64 `json:"content_id" validate:"omitempty,gt=0"`
	Language        *string `json:"language" validate:"omitempty,max=10"`
	TranslatedTitle *string `json:"translated_title" validate:"omitempty,max=255"`
	TranslatedBody  *string `json:"translated_body"`
}
