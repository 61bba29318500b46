package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"reelsmith/pkg/config"
	"reelsmith/pkg/model"
)

// ErrNoYouTubeKey is returned when no Data API key is configured.
var ErrNoYouTubeKey = errors.New("youtube api key is missing")

// YouTube fetches short-form video metadata from the YouTube Data API.
type YouTube struct {
	svc        *youtube.Service
	region     string
	maxResults int64
}

// NewYouTube creates a Data API client from cfg.
func NewYouTube(ctx context.Context, cfg config.YouTubeConfig) (*YouTube, error) {
	if cfg.Key == "" {
		return nil, ErrNoYouTubeKey
	}
	opts := []option.ClientOption{option.WithAPIKey(cfg.Key)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	n := cfg.MaxResults
	if n <= 0 {
		n = config.DefaultConfig().YouTube.MaxResults
	}
	return &YouTube{svc: svc, region: cfg.Region, maxResults: n}, nil
}

// Search returns the most viewed short videos matching query, in search
// order. A blank query returns the region's most popular videos instead.
func (y *YouTube) Search(ctx context.Context, query string) ([]model.VideoRecord, error) {
	if query == "" {
		return y.Trending(ctx)
	}

	call := y.svc.Search.List([]string{"id"}).
		Q(query).
		Type("video").
		VideoDuration("short").
		Order("viewCount").
		MaxResults(y.maxResults)
	if y.region != "" {
		call = call.RegionCode(y.region)
	}
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return []model.VideoRecord{}, nil
	}

	vresp, err := y.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube videos: %w", err)
	}

	byID := make(map[string]*youtube.Video, len(vresp.Items))
	for _, v := range vresp.Items {
		byID[v.Id] = v
	}
	ordered := make([]*youtube.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return toRecords(ordered), nil
}

// Trending returns the region's most popular videos.
func (y *YouTube) Trending(ctx context.Context) ([]model.VideoRecord, error) {
	call := y.svc.Videos.List([]string{"snippet", "statistics"}).
		Chart("mostPopular").
		MaxResults(y.maxResults)
	if y.region != "" {
		call = call.RegionCode(y.region)
	}
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube trending: %w", err)
	}
	return toRecords(resp.Items), nil
}

func toRecords(items []*youtube.Video) []model.VideoRecord {
	out := make([]model.VideoRecord, 0, len(items))
	for _, v := range items {
		if v.Snippet == nil {
			continue
		}
		rec := model.VideoRecord{
			Title:       v.Snippet.Title,
			Description: CleanDescription(v.Snippet.Description),
			PublishedAt: datePart(v.Snippet.PublishedAt),
			Channel:     v.Snippet.ChannelTitle,
		}
		if v.Statistics != nil {
			rec.Views = int64(v.Statistics.ViewCount)
		}
		if err := rec.Validate(); err != nil {
			slog.Debug("YouTube: skipping video", "id", v.Id, "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out
}

func datePart(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
