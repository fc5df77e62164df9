package model

type SEOData struct {
	ID              uint64  `gorm:"primaryKey" json:"id"`
	ContentID       uint64  `gorm:"not null;uniqueIndex:idx_content_id" json:"content_id"`
	MetaTitle       string  `gorm:"type:varchar(255);not null" json:"meta_title"`
	MetaDescription string  `gorm:"type:text;not null" json:"meta_description"`
	Keywords        string  `gorm:"type:varchar(255);not null" json:"keywords"`
	CanonicalURL    *string `gorm:"type:varchar(200)" json:"canonical_url"`

	Content *Content `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
}

func (SEOData) TableName() string {
	return "seo_data"
}

func (s *SEOData) String() string {
	return s.MetaTitle
}

func (s *SEOData) PrimaryKey() uint64 {
	return s.ID
}

func (s *SEOData) AdminValue(field string) any {
	switch field {
	case "content":
		return contentTitle(s.Content, s.ContentID)
	case "meta_title":
		return s.MetaTitle
	case "meta_description":
		return s.MetaDescription
	case "keywords":
		return s.Keywords
	case "canonical_url":
		return s.CanonicalURL
	}
	return nil
}
