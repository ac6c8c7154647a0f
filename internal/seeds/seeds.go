package seeds

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bartek-filipiuk/dw-zizi/internal/auth"
	"github.com/bartek-filipiuk/dw-zizi/internal/content"
	"github.com/bartek-filipiuk/dw-zizi/internal/db"
	"github.com/bartek-filipiuk/dw-zizi/internal/uploads"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Fixture is the shape of seeds/content.yaml.
type Fixture struct {
	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		Role     string `yaml:"role"`
	} `yaml:"admin"`
	Sections []struct {
		Slug      string       `yaml:"slug"`
		Title     string       `yaml:"title"`
		Subtitle  string       `yaml:"subtitle"`
		Body      string       `yaml:"body"`
		CtaText   string       `yaml:"cta_text"`
		CtaLink   string       `yaml:"cta_link"`
		SortOrder int          `yaml:"sort_order"`
		Images    []imageEntry `yaml:"images"`
	} `yaml:"sections"`
	Gallery []struct {
		Name        string       `yaml:"name"`
		Slug        string       `yaml:"slug"`
		Description string       `yaml:"description"`
		WoodType    string       `yaml:"wood_type"`
		Dimensions  string       `yaml:"dimensions"`
		Featured    bool         `yaml:"featured"`
		SortOrder   int          `yaml:"sort_order"`
		Images      []imageEntry `yaml:"images"`
	} `yaml:"gallery"`
	Menu []struct {
		Label     string `yaml:"label"`
		Href      string `yaml:"href"`
		SortOrder int    `yaml:"sort_order"`
	} `yaml:"menu"`
	Settings []struct {
		Key   string `yaml:"key"`
		Value string `yaml:"value"`
		Label string `yaml:"label"`
	} `yaml:"settings"`
}

type imageEntry struct {
	File      string `yaml:"file"`
	Alt       string `yaml:"alt"`
	Role      string `yaml:"role"`
	Type      string `yaml:"type"`
	SortOrder int    `yaml:"sort_order"`
}

// Run wipes the content tables and loads the fixture. Seed images are
// read from imagesDir and copied into the store's seed partition; a
// missing image file skips that image instead of failing the run.
func Run(store *uploads.Store, fixturePath, imagesDir string) error {
	data, err := os.ReadFile(fixturePath)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}

	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}

	// Clear existing data, children first.
	for _, model := range []any{
		&content.GalleryItemImage{}, &content.GalleryItem{},
		&content.SectionImage{}, &content.Section{},
		&content.MenuItem{}, &content.ContactSubmission{},
		&content.SiteSetting{}, &auth.User{},
	} {
		if err := db.DB.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fx.Admin.Password), 12)
	if err != nil {
		return err
	}
	user := auth.User{
		ID:           uuid.NewString(),
		Email:        fx.Admin.Email,
		PasswordHash: string(hash),
		Name:         fx.Admin.Name,
		Role:         fx.Admin.Role,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return err
	}
	log.Println("Admin user created:", user.Email)

	copySeed := func(file string) (uploads.Result, bool) {
		result, err := store.CopySeed(filepath.Join(imagesDir, file), file)
		if err != nil {
			log.Println("Skipping seed image", file, ":", err)
			return uploads.Result{}, false
		}
		return result, true
	}

	for _, s := range fx.Sections {
		section := content.Section{
			ID:        uuid.NewString(),
			Slug:      s.Slug,
			Title:     s.Title,
			Subtitle:  s.Subtitle,
			Body:      s.Body,
			CtaText:   s.CtaText,
			CtaLink:   s.CtaLink,
			Visible:   true,
			SortOrder: s.SortOrder,
		}
		for _, img := range s.Images {
			result, ok := copySeed(img.File)
			if !ok {
				continue
			}
			role := img.Role
			if role == "" {
				role = "background"
			}
			section.Images = append(section.Images, content.SectionImage{
				ID:        uuid.NewString(),
				URL:       result.URL,
				Alt:       img.Alt,
				Role:      role,
				Width:     result.Width,
				Height:    result.Height,
				SortOrder: img.SortOrder,
			})
		}
		if err := db.DB.Create(&section).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded", len(fx.Sections), "sections")

	for _, g := range fx.Gallery {
		item := content.GalleryItem{
			ID:          uuid.NewString(),
			Name:        g.Name,
			Slug:        g.Slug,
			Description: g.Description,
			WoodType:    g.WoodType,
			Dimensions:  g.Dimensions,
			Featured:    g.Featured,
			Visible:     true,
			SortOrder:   g.SortOrder,
		}
		if item.Slug == "" {
			item.Slug = content.Slugify(item.Name)
		}
		for _, img := range g.Images {
			result, ok := copySeed(img.File)
			if !ok {
				continue
			}
			imgType := img.Type
			if imgType == "" {
				imgType = "full"
			}
			item.Images = append(item.Images, content.GalleryItemImage{
				ID:        uuid.NewString(),
				URL:       result.URL,
				Alt:       img.Alt,
				Type:      imgType,
				Width:     result.Width,
				Height:    result.Height,
				SortOrder: img.SortOrder,
			})
		}
		if err := db.DB.Create(&item).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded", len(fx.Gallery), "gallery items")

	for _, m := range fx.Menu {
		item := content.MenuItem{
			ID:        uuid.NewString(),
			Label:     m.Label,
			Href:      m.Href,
			SortOrder: m.SortOrder,
			Visible:   true,
		}
		if err := db.DB.Create(&item).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded", len(fx.Menu), "menu items")

	for _, s := range fx.Settings {
		setting := content.SiteSetting{
			ID:    uuid.NewString(),
			Key:   s.Key,
			Value: s.Value,
			Label: s.Label,
		}
		if err := db.DB.Create(&setting).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded", len(fx.Settings), "settings")

	return nil
}
