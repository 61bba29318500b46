// Package ingest loads video records from JSON, the YouTube Data API and the
// built-in samples.
package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"reelsmith/pkg/model"
)

// DecodeVideos reads either a JSON array of videos or an object with a
// "videos" array. Unknown fields are ignored. Descriptions are cleaned and
// every record is validated.
func DecodeVideos(r io.Reader) ([]model.NicheVideoRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read videos: %w", err)
	}
	data = bytes.TrimSpace(data)

	var videos []model.NicheVideoRecord
	if len(data) > 0 && data[0] == '{' {
		var env struct {
			Videos []model.NicheVideoRecord `json:"videos"`
		}
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidRequest, err)
		}
		videos = env.Videos
	} else if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidRequest, err)
	}

	CleanNicheVideos(videos)
	for i := range videos {
		if err := videos[i].Validate(); err != nil {
			return nil, fmt.Errorf("video %d: %w", i, err)
		}
	}
	if videos == nil {
		videos = []model.NicheVideoRecord{}
	}
	return videos, nil
}

// CleanVideos cleans every description in place.
func CleanVideos(videos []model.VideoRecord) {
	for i := range videos {
		videos[i].Description = CleanDescription(videos[i].Description)
	}
}

// CleanNicheVideos is CleanVideos for enriched records.
func CleanNicheVideos(videos []model.NicheVideoRecord) {
	for i := range videos {
		videos[i].Description = CleanDescription(videos[i].Description)
	}
}

// LoadFile decodes the videos stored at path.
func LoadFile(path string) ([]model.NicheVideoRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	videos, err := DecodeVideos(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return videos, nil
}

// WriteJSON writes v as indented JSON to path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
