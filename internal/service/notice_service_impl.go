package service

import (
	"context"
	"errors"

	"github.com/narabid/bidassist/internal/api"
	"github.com/narabid/bidassist/internal/domain"
	"github.com/narabid/bidassist/internal/repository"
)

type noticeService struct {
	client api.Client
	cache  repository.NoticeCacheRepo
}

// NewNoticeService creates a NoticeService with an offline cache fallback.
func NewNoticeService(client api.Client, cache repository.NoticeCacheRepo) NoticeService {
	return &noticeService{client: client, cache: cache}
}

func (s *noticeService) Latest(ctx context.Context, limit int) ([]domain.Notice, bool, error) {
	notices, err := s.client.ListNotices(ctx)
	if err == nil {
		_ = s.cache.ReplaceAll(ctx, notices)
		if limit > 0 && len(notices) > limit {
			notices = notices[:limit]
		}
		return notices, false, nil
	}

	if !errors.Is(err, api.ErrUnavailable) && !errors.Is(err, api.ErrTimeout) {
		return nil, false, err
	}

	cached, cacheErr := s.cache.List(ctx, limit)
	if cacheErr != nil {
		return nil, false, err
	}
	return cached, true, nil
}
