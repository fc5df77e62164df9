package model

type Integration struct {
	ID       uint64          `gorm:"primaryKey" json:"id"`
	Name     IntegrationName `gorm:"type:varchar(100);not null" json:"name"`
	APIKey   string          `gorm:"type:varchar(255);not null" json:"api_key"`
	IsActive bool            `gorm:"not null;index:idx_is_active" json:"is_active"`
}

func (Integration) TableName() string {
	return "integrations"
}

func (i *Integration) String() string {
	return string(i.Name)
}

func (i *Integration) PrimaryKey() uint64 {
	return i.ID
}

func (i *Integration) AdminValue(field string) any {
	switch field {
	case "name":
		return i.Name
	case "is_active":
		return i.IsActive
	}
	return nil
}
