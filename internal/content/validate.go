package content

import (
	"errors"
	"net/mail"
	"unicode/utf8"
)

// Inputs mirror the admin form payloads. Optional fields are pointers so
// an absent field can be told apart from an explicit zero value.

type sectionInput struct {
	Title     *string `json:"title"`
	Subtitle  *string `json:"subtitle"`
	Body      *string `json:"body"`
	CtaText   *string `json:"ctaText"`
	CtaLink   *string `json:"ctaLink"`
	Visible   *bool   `json:"visible"`
	SortOrder *int    `json:"sortOrder"`
}

type galleryItemInput struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	WoodType    *string `json:"woodType"`
	Dimensions  *string `json:"dimensions"`
	Featured    *bool   `json:"featured"`
	Visible     *bool   `json:"visible"`
	SortOrder   *int    `json:"sortOrder"`
}

type menuItemInput struct {
	Label     *string `json:"label"`
	Href      *string `json:"href"`
	SortOrder *int    `json:"sortOrder"`
	Visible   *bool   `json:"visible"`
}

type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type settingInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// Validation reports the first violated constraint's message, matching
// what the admin forms show the user.

func validateSection(in sectionInput) error {
	if in.Title == nil || *in.Title == "" {
		return errors.New("Title is required")
	}
	if utf8.RuneCountInString(*in.Title) > 200 {
		return errors.New("Title must be at most 200 characters")
	}
	if in.Subtitle != nil && utf8.RuneCountInString(*in.Subtitle) > 500 {
		return errors.New("Subtitle must be at most 500 characters")
	}
	if in.CtaText != nil && utf8.RuneCountInString(*in.CtaText) > 100 {
		return errors.New("CTA text must be at most 100 characters")
	}
	if in.CtaLink != nil && utf8.RuneCountInString(*in.CtaLink) > 500 {
		return errors.New("CTA link must be at most 500 characters")
	}
	return nil
}

func validateGalleryItem(in galleryItemInput) error {
	if in.Name == nil || *in.Name == "" {
		return errors.New("Name is required")
	}
	if utf8.RuneCountInString(*in.Name) > 200 {
		return errors.New("Name must be at most 200 characters")
	}
	if in.Slug != nil && utf8.RuneCountInString(*in.Slug) > 200 {
		return errors.New("Slug must be at most 200 characters")
	}
	if in.WoodType != nil && utf8.RuneCountInString(*in.WoodType) > 100 {
		return errors.New("Wood type must be at most 100 characters")
	}
	if in.Dimensions != nil && utf8.RuneCountInString(*in.Dimensions) > 100 {
		return errors.New("Dimensions must be at most 100 characters")
	}
	return nil
}

func validateMenuItem(in menuItemInput) error {
	if in.Label == nil || *in.Label == "" {
		return errors.New("Label is required")
	}
	if utf8.RuneCountInString(*in.Label) > 100 {
		return errors.New("Label must be at most 100 characters")
	}
	if in.Href == nil || *in.Href == "" {
		return errors.New("Link is required")
	}
	if utf8.RuneCountInString(*in.Href) > 500 {
		return errors.New("Link must be at most 500 characters")
	}
	return nil
}

func validateContact(in contactInput) error {
	if utf8.RuneCountInString(in.Name) < 2 {
		return errors.New("Name must be at least 2 characters")
	}
	if utf8.RuneCountInString(in.Name) > 100 {
		return errors.New("Name must be at most 100 characters")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return errors.New("Invalid email address")
	}
	if utf8.RuneCountInString(in.Phone) > 20 {
		return errors.New("Phone must be at most 20 characters")
	}
	if utf8.RuneCountInString(in.Message) < 10 {
		return errors.New("Message must be at least 10 characters")
	}
	if utf8.RuneCountInString(in.Message) > 2000 {
		return errors.New("Message must be at most 2000 characters")
	}
	return nil
}

func validateSetting(in settingInput) error {
	if in.Key == "" {
		return errors.New("Key is required")
	}
	return nil
}
