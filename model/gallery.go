package model

type GalleryImage struct {
	DTO
	FileName     string `gorm:"not null" json:"fileName"`
	URL          string `gorm:"not null" json:"url"`
	OriginalName string `json:"originalName"`
	PublicID     string `gorm:"index" json:"-"`
}
