package content

import "time"

type Section struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title     string         `gorm:"not null" json:"title"`
	Subtitle  string         `json:"subtitle"`
	Body      string         `json:"body"`
	CtaText   string         `json:"ctaText"`
	CtaLink   string         `json:"ctaLink"`
	Visible   bool           `gorm:"default:true" json:"visible"`
	SortOrder int            `gorm:"default:0" json:"sortOrder"`
	Images    []SectionImage `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type SectionImage struct {
	ID        string `gorm:"primaryKey" json:"id"`
	SectionID string `gorm:"index;not null" json:"sectionId"`
	URL       string `gorm:"not null" json:"url"`
	Alt       string `json:"alt"`
	Role      string `gorm:"default:'background'" json:"role"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
}

type GalleryItem struct {
	ID          string             `gorm:"primaryKey" json:"id"`
	Name        string             `gorm:"not null" json:"name"`
	Slug        string             `gorm:"uniqueIndex;not null" json:"slug"`
	Description string             `json:"description"`
	WoodType    string             `json:"woodType"`
	Dimensions  string             `json:"dimensions"`
	Featured    bool               `gorm:"default:false" json:"featured"`
	Visible     bool               `gorm:"default:true" json:"visible"`
	SortOrder   int                `gorm:"default:0" json:"sortOrder"`
	Images      []GalleryItemImage `gorm:"foreignKey:GalleryItemID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type GalleryItemImage struct {
	ID            string `gorm:"primaryKey" json:"id"`
	GalleryItemID string `gorm:"index;not null" json:"galleryItemId"`
	URL           string `gorm:"not null" json:"url"`
	Alt           string `json:"alt"`
	Type          string `gorm:"default:'full'" json:"type"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	SortOrder     int    `gorm:"default:0" json:"sortOrder"`
}

type MenuItem struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Label     string `gorm:"not null" json:"label"`
	Href      string `gorm:"not null" json:"href"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
	Visible   bool   `gorm:"default:true" json:"visible"`
}

type SiteSetting struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `json:"value"`
	Label string `json:"label"`
}

type ContactSubmission struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `gorm:"not null" json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Section) TableName() string           { return "cms.sections" }
func (SectionImage) TableName() string      { return "cms.section_images" }
func (GalleryItem) TableName() string       { return "cms.gallery_items" }
func (GalleryItemImage) TableName() string  { return "cms.gallery_item_images" }
func (MenuItem) TableName() string          { return "cms.menu_items" }
func (SiteSetting) TableName() string       { return "cms.site_settings" }
func (ContactSubmission) TableName() string { return "cms.contact_submissions" }
