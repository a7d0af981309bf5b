package store

import (
	"slices"

	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
	"github.com/justsurfingit/amp-job-portal/internal/models"
)

func templateID(t models.EmailTemplate) string { return t.ID }

func storyID(st models.SuccessStory) string { return st.ID }

func galleryID(g models.GalleryItem) string { return g.ID }

func bannerID(b models.Banner) string { return b.ID }

// --- Events ---

func (s *Store) Events() []models.Event {
	return cloneOrEmpty(s.events)
}

func (s *Store) AddEvent(ev models.Event) {
	s.events = append(s.events, ev)
}

// --- Blogs ---

// Blogs returns the feed newest first.
func (s *Store) Blogs() []models.Blog {
	return cloneOrEmpty(s.blogs)
}

// AddBlog puts b at the front of the feed.
func (s *Store) AddBlog(b models.Blog) {
	s.blogs = slices.Insert(s.blogs, 0, b)
}

// --- Email templates ---

func (s *Store) EmailTemplates() []models.EmailTemplate {
	return cloneOrEmpty(s.templates)
}

func (s *Store) EmailTemplate(id string) (models.EmailTemplate, bool) {
	i := indexByID(s.templates, id, templateID)
	if i < 0 {
		return models.EmailTemplate{}, false
	}
	return s.templates[i], true
}

// AddEmailTemplate appends t unless the collection already holds
// MaxEmailTemplates entries, in which case it reports false and changes nothing.
func (s *Store) AddEmailTemplate(t models.EmailTemplate) bool {
	if len(s.templates) >= MaxEmailTemplates {
		return false
	}
	s.templates = append(s.templates, t)
	return true
}

func (s *Store) DeleteEmailTemplate(id string) error {
	var ok bool
	if s.templates, ok = removeByID(s.templates, id, templateID); !ok {
		return apperrors.NotFound("email template "+id, nil)
	}
	return nil
}

// --- Success stories ---

func (s *Store) SuccessStories() []models.SuccessStory {
	return cloneOrEmpty(s.stories)
}

func (s *Store) AddSuccessStory(st models.SuccessStory) {
	s.stories = append(s.stories, st)
}

func (s *Store) UpdateSuccessStory(st models.SuccessStory) error {
	i := indexByID(s.stories, st.ID, storyID)
	if i < 0 {
		return apperrors.NotFound("success story "+st.ID, nil)
	}
	s.stories[i] = st
	return nil
}

func (s *Store) DeleteSuccessStory(id string) error {
	var ok bool
	if s.stories, ok = removeByID(s.stories, id, storyID); !ok {
		return apperrors.NotFound("success story "+id, nil)
	}
	return nil
}

// --- Gallery ---

func (s *Store) Gallery() []models.GalleryItem {
	return cloneOrEmpty(s.gallery)
}

func (s *Store) AddGalleryItem(item models.GalleryItem) {
	s.gallery = append(s.gallery, item)
}

func (s *Store) DeleteGalleryItem(id string) error {
	var ok bool
	if s.gallery, ok = removeByID(s.gallery, id, galleryID); !ok {
		return apperrors.NotFound("gallery item "+id, nil)
	}
	return nil
}

// --- Banners ---

// Banners is a fixed set: entries are edited in place, never added or removed.
func (s *Store) Banners() []models.Banner {
	return cloneOrEmpty(s.banners)
}

func (s *Store) UpdateBanner(b models.Banner) error {
	i := indexByID(s.banners, b.ID, bannerID)
	if i < 0 {
		return apperrors.NotFound("banner "+b.ID, nil)
	}
	s.banners[i] = b
	return nil
}
