package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SAP-F-2025/course-catalog-service/internal/cache"
	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

// preferenceService keeps appearance settings per user, last write wins.
// Redis holds them when configured; the local map always mirrors the latest
// write so a Redis outage degrades to process memory.
type preferenceService struct {
	store     *cache.CacheHelper
	notifier  NotificationService
	logger    *slog.Logger
	validator *validator.Validator

	// writeMu serializes the read-merge-write of a user's settings.
	writeMu sync.Mutex

	mu    sync.RWMutex
	local map[string]models.Appearance
}

func NewPreferenceService(cm *cache.CacheManager, notifier NotificationService, logger *slog.Logger, validator *validator.Validator) PreferenceService {
	var store *cache.CacheHelper
	if cm != nil {
		store = cm.Preference
	}
	return &preferenceService{
		store:     store,
		notifier:  notifier,
		logger:    logger,
		validator: validator,
		local:     make(map[string]models.Appearance),
	}
}

func appearanceKey(userID string) string {
	return "appearance:" + userID
}

func (s *preferenceService) GetAppearance(ctx context.Context, userID string) models.Appearance {
	if s.store.Available() {
		var a models.Appearance
		err := s.store.Get(ctx, appearanceKey(userID), &a)
		if err == nil {
			return a
		}
		if !errors.Is(err, cache.ErrCacheNotFound) {
			s.logger.Warn("Preference read failed, using local copy", "user_id", userID, "error", err)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.local[userID]; ok {
		return a
	}
	return models.DefaultAppearance()
}

func (s *preferenceService) save(ctx context.Context, userID string, a models.Appearance) {
	s.mu.Lock()
	s.local[userID] = a
	s.mu.Unlock()

	if err := s.store.Set(ctx, appearanceKey(userID), a, cache.PreferenceCacheConfig.TTL); err != nil {
		s.logger.Warn("Preference write failed, kept locally", "user_id", userID, "error", err)
	}
}

// UpdateAppearance applies the provided settings and emits one notification
// per setting that changed.
func (s *preferenceService) UpdateAppearance(ctx context.Context, sess *session.Session, req *AppearanceUpdateRequest) (models.Appearance, []models.Notification, error) {
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return models.Appearance{}, nil, errors
	}

	userID := sess.User().ID
	s.writeMu.Lock()
	current := s.GetAppearance(ctx, userID)
	next := current
	var pending []models.Notification

	if req.Theme != nil && models.Theme(*req.Theme) != current.Theme {
		next.Theme = models.Theme(*req.Theme)
		pending = append(pending, models.NewNotification("Theme Updated", fmt.Sprintf("Theme has been updated to %s.", next.Theme)))
	}
	if req.FontSize != nil && *req.FontSize != current.FontSize {
		next.FontSize = *req.FontSize
		pending = append(pending, models.NewNotification("Font Size Updated", fmt.Sprintf("Font size has been updated to %dpx.", next.FontSize)))
	}
	if req.Animations != nil && *req.Animations != current.Animations {
		next.Animations = *req.Animations
		pending = append(pending, models.NewNotification("Animations Setting Updated", fmt.Sprintf("Animations are now %s.", enabledWord(next.Animations))))
	}
	if req.ReducedMotion != nil && *req.ReducedMotion != current.ReducedMotion {
		next.ReducedMotion = *req.ReducedMotion
		pending = append(pending, models.NewNotification("Reduced Motion Setting Updated", fmt.Sprintf("Reduced motion is now %s.", enabledWord(next.ReducedMotion))))
	}
	if req.HighContrast != nil && *req.HighContrast != current.HighContrast {
		next.HighContrast = *req.HighContrast
		pending = append(pending, models.NewNotification("High Contrast Setting Updated", fmt.Sprintf("High contrast mode is now %s.", enabledWord(next.HighContrast))))
	}

	if len(pending) == 0 {
		s.writeMu.Unlock()
		return current, []models.Notification{}, nil
	}

	s.save(ctx, userID, next)
	s.writeMu.Unlock()

	sent := make([]models.Notification, 0, len(pending))
	for _, n := range pending {
		published, err := notifyNow(ctx, s.notifier, sess, n)
		if err != nil {
			return next, sent, err
		}
		sent = append(sent, published)
	}
	return next, sent, nil
}

// ResetAppearance drops the stored settings so the user sees the defaults again.
func (s *preferenceService) ResetAppearance(ctx context.Context, userID string) models.Appearance {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	delete(s.local, userID)
	s.mu.Unlock()

	cache.SafeDelete(ctx, s.store, appearanceKey(userID))
	return models.DefaultAppearance()
}

func enabledWord(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
