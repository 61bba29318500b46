package model

import (
	"fmt"
	"strings"
)

// VideoRecord holds metadata about one short-form video.
type VideoRecord struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"` // optional
	Views       int64  `json:"views"`
	PublishedAt string `json:"publishedAt"`
	Channel     string `json:"channel,omitempty"` // optional
}

// NewVideoRecord builds a validated VideoRecord.
func NewVideoRecord(title, description string, views int64, publishedAt, channel string) (VideoRecord, error) {
	v := VideoRecord{
		Title:       title,
		Description: description,
		Views:       views,
		PublishedAt: publishedAt,
		Channel:     channel,
	}
	if err := v.Validate(); err != nil {
		return VideoRecord{}, err
	}
	return v, nil
}

// Validate rejects records with a blank title or a negative view count.
func (v *VideoRecord) Validate() error {
	if strings.TrimSpace(v.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidVideo)
	}
	if v.Views < 0 {
		return fmt.Errorf("%w: views must be non-negative, got %d", ErrInvalidVideo, v.Views)
	}
	return nil
}

// ValidateVideos validates every record and reports the first offending index.
func ValidateVideos(videos []VideoRecord) error {
	for i := range videos {
		if err := videos[i].Validate(); err != nil {
			return fmt.Errorf("video %d: %w", i, err)
		}
	}
	return nil
}

// NicheVideoRecord is a VideoRecord enriched with audience research fields.
type NicheVideoRecord struct {
	VideoRecord
	Problem           string `json:"problem,omitempty"`
	Audience          string `json:"audience,omitempty"`
	Solution          string `json:"solution,omitempty"`
	EmotionalTriggers string `json:"emotional_triggers,omitempty"`
	Niche             string `json:"niche,omitempty"`
	SubNiche          string `json:"sub_niche,omitempty"`
	PainPoints        string `json:"pain_points,omitempty"`
	ValueProposition  string `json:"value_proposition,omitempty"`
}

// HasNicheData reports whether any of the research fields is set.
func (v *NicheVideoRecord) HasNicheData() bool {
	return v.Problem != "" || v.Audience != "" || v.Solution != "" || v.Niche != "" ||
		v.EmotionalTriggers != "" || v.SubNiche != "" || v.PainPoints != "" || v.ValueProposition != ""
}

// Records strips the niche fields.
func Records(videos []NicheVideoRecord) []VideoRecord {
	out := make([]VideoRecord, len(videos))
	for i := range videos {
		out[i] = videos[i].VideoRecord
	}
	return out
}
