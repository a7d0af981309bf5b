package dtos

import "github.com/justsurfingit/amp-job-portal/internal/models"

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
}

func (r *EventRequest) ToEvent(id string) models.Event {
	return models.Event{
		ID:          id,
		Title:       r.Title,
		Date:        r.Date,
		Location:    r.Location,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

type BlogRequest struct {
	Title   string `json:"title" binding:"required"`
	Author  string `json:"author" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (r *BlogRequest) ToBlog(id, date string) models.Blog {
	return models.Blog{ID: id, Title: r.Title, Author: r.Author, Content: r.Content, Date: date}
}

type EmailTemplateRequest struct {
	Name    string `json:"name" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

func (r *EmailTemplateRequest) ToTemplate(id string) models.EmailTemplate {
	return models.EmailTemplate{ID: id, Name: r.Name, Subject: r.Subject, Body: r.Body}
}

// SendTemplateRequest fills a template's placeholders and names the recipient.
type SendTemplateRequest struct {
	To     string            `json:"to" binding:"required,email"`
	Values map[string]string `json:"values"`
}

type SuccessStoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Comment  string `json:"comment" binding:"required"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

func (r *SuccessStoryRequest) ToStory(id string) models.SuccessStory {
	return models.SuccessStory{ID: id, Name: r.Name, Role: r.Role, Comment: r.Comment, ImageURL: r.ImageURL}
}

type GalleryItemRequest struct {
	Type  string `json:"type" binding:"required,oneof=image video"`
	URL   string `json:"url" binding:"required"`
	Title string `json:"title" binding:"required"`
}

func (r *GalleryItemRequest) ToItem(id string) models.GalleryItem {
	return models.GalleryItem{ID: id, Type: models.MediaType(r.Type), URL: r.URL, Title: r.Title}
}

type BannerRequest struct {
	Name        string `json:"name" binding:"required"`
	Style       string `json:"style"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ButtonText  string `json:"button_text"`
	Link        string `json:"link"`
	IsActive    bool   `json:"is_active"`
}

func (r *BannerRequest) ToBanner(id string) models.Banner {
	return models.Banner{
		ID:          id,
		Name:        r.Name,
		Style:       r.Style,
		Title:       r.Title,
		Description: r.Description,
		ButtonText:  r.ButtonText,
		Link:        r.Link,
		IsActive:    r.IsActive,
	}
}
