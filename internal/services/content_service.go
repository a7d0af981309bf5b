package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/justsurfingit/amp-job-portal/internal/dtos"
	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
	"github.com/justsurfingit/amp-job-portal/internal/models"
	"github.com/justsurfingit/amp-job-portal/internal/store"
)

type EventWindow string

const (
	EventsUpcoming EventWindow = "UPCOMING"
	EventsPast     EventWindow = "PAST"
	EventsAll      EventWindow = "ALL"
)

// ContentService runs the admin content-management commands.
type ContentService struct {
	Store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewContentService(st *store.Store, logger *zap.Logger) *ContentService {
	return &ContentService{Store: st, logger: logger, now: time.Now}
}

// EventsFor splits events around the day of now: an event dated today is
// still upcoming. Events with an unreadable date only show up under ALL.
func (s *ContentService) EventsFor(window EventWindow, now time.Time) ([]models.Event, error) {
	window = EventWindow(strings.ToUpper(string(window)))
	if window == "" {
		window = EventsUpcoming
	}
	if window != EventsUpcoming && window != EventsPast && window != EventsAll {
		return nil, apperrors.InvalidInput("unknown event filter "+string(window), nil)
	}

	today := now.Format(dateLayout)
	out := []models.Event{}
	for _, ev := range s.Store.Events() {
		if window == EventsAll {
			out = append(out, ev)
			continue
		}
		if _, err := time.Parse(dateLayout, ev.Date); err != nil {
			s.logger.Warn("Skipping event with bad date", zap.String("event_id", ev.ID), zap.String("date", ev.Date))
			continue
		}
		// Same layout on both sides, so string order is date order.
		upcoming := ev.Date >= today
		if upcoming == (window == EventsUpcoming) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (s *ContentService) AddEvent(req *dtos.EventRequest) (models.Event, error) {
	if err := dtos.Validate(req); err != nil {
		return models.Event{}, err
	}
	ev := req.ToEvent(uuid.NewString())
	s.Store.AddEvent(ev)
	return ev, nil
}

// PublishBlog puts a post at the top of the feed, dated today.
func (s *ContentService) PublishBlog(req *dtos.BlogRequest) (models.Blog, error) {
	if err := dtos.Validate(req); err != nil {
		return models.Blog{}, err
	}
	b := req.ToBlog(uuid.NewString(), s.now().Format(dateLayout))
	s.Store.AddBlog(b)
	s.logger.Info("Blog published", zap.String("blog_id", b.ID), zap.String("title", b.Title))
	return b, nil
}

// AddTemplate stores a new email template unless the quota is used up.
func (s *ContentService) AddTemplate(req *dtos.EmailTemplateRequest) (Outcome, models.EmailTemplate, error) {
	if err := dtos.Validate(req); err != nil {
		return Outcome{}, models.EmailTemplate{}, err
	}
	t := req.ToTemplate(uuid.NewString())
	if !s.Store.AddEmailTemplate(t) {
		return denied(fmt.Sprintf("Limit reached: you can keep at most %d email templates.", store.MaxEmailTemplates)), models.EmailTemplate{}, nil
	}
	return done("Template saved."), t, nil
}

func (s *ContentService) DeleteTemplate(id string, confirmed bool) (Outcome, error) {
	if _, ok := s.Store.EmailTemplate(id); !ok {
		return Outcome{}, apperrors.NotFound("email template "+id, nil)
	}
	if !confirmed {
		return confirm("Are you sure you want to delete this template?"), nil
	}
	if err := s.Store.DeleteEmailTemplate(id); err != nil {
		return Outcome{}, err
	}
	return done("Template deleted."), nil
}

func (s *ContentService) AddStory(req *dtos.SuccessStoryRequest) (models.SuccessStory, error) {
	if err := dtos.Validate(req); err != nil {
		return models.SuccessStory{}, err
	}
	st := req.ToStory(uuid.NewString())
	s.Store.AddSuccessStory(st)
	return st, nil
}

func (s *ContentService) UpdateStory(id string, req *dtos.SuccessStoryRequest) (models.SuccessStory, error) {
	if err := dtos.Validate(req); err != nil {
		return models.SuccessStory{}, err
	}
	st := req.ToStory(id)
	if err := s.Store.UpdateSuccessStory(st); err != nil {
		return models.SuccessStory{}, err
	}
	return st, nil
}

func (s *ContentService) DeleteStory(id string, confirmed bool) (Outcome, error) {
	if !containsID(s.Store.SuccessStories(), id, storyIDOf) {
		return Outcome{}, apperrors.NotFound("success story "+id, nil)
	}
	if !confirmed {
		return confirm("Are you sure you want to delete this success story?"), nil
	}
	if err := s.Store.DeleteSuccessStory(id); err != nil {
		return Outcome{}, err
	}
	return done("Success story deleted."), nil
}

func (s *ContentService) AddGalleryItem(req *dtos.GalleryItemRequest) (models.GalleryItem, error) {
	if err := dtos.Validate(req); err != nil {
		return models.GalleryItem{}, err
	}
	item := req.ToItem(uuid.NewString())
	s.Store.AddGalleryItem(item)
	return item, nil
}

func (s *ContentService) DeleteGalleryItem(id string, confirmed bool) (Outcome, error) {
	if !containsID(s.Store.Gallery(), id, galleryIDOf) {
		return Outcome{}, apperrors.NotFound("gallery item "+id, nil)
	}
	if !confirmed {
		return confirm("Are you sure you want to delete this item?"), nil
	}
	if err := s.Store.DeleteGalleryItem(id); err != nil {
		return Outcome{}, err
	}
	return done("Gallery item deleted."), nil
}

// UpdateBanner edits a banner in place. Banners form a fixed set, so an
// unknown id changes nothing.
func (s *ContentService) UpdateBanner(id string, req *dtos.BannerRequest) (models.Banner, error) {
	if err := dtos.Validate(req); err != nil {
		return models.Banner{}, err
	}
	b := req.ToBanner(id)
	s.Store.Lenient().UpdateBanner(b)
	return b, nil
}

func storyIDOf(st models.SuccessStory) string { return st.ID }

func galleryIDOf(g models.GalleryItem) string { return g.ID }

func containsID[T any](items []T, id string, idOf func(T) string) bool {
	for _, item := range items {
		if idOf(item) == id {
			return true
		}
	}
	return false
}
