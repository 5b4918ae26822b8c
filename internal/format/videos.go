package format

import (
	"github.com/bilgisen/kientruc/internal/models"
)

const (
	VideoFallbackThumbnail   = "https://images.unsplash.com/photo-1472220625704-91e1462799b2?auto=format&fit=crop&w=900&q=80"
	VideoFallbackChannel     = "Doi thoai Kien truc"
	VideoFallbackTitle       = "Video Doi thoai Kien truc"
	VideoFallbackDescription = "Video moi nhat tu Doi thoai Kien truc."
	VideoFallbackURL         = "#"
	VideoDateUnknown         = "Vua cap nhat"

	VideoDescriptionLimit = 140

	youtubeWatchURL = "https://www.youtube.com/watch?v="
)

var videoThumbnailFields = []field[models.YoutubeVideo]{
	func(v models.YoutubeVideo) string { return v.Thumbnail },
	func(v models.YoutubeVideo) string { return v.Thumbnails.HighURL() },
	func(v models.YoutubeVideo) string { return v.Thumbnails.MediumURL() },
	func(v models.YoutubeVideo) string {
		if v.Thumbnails == nil {
			return ""
		}
		return v.Thumbnails.URL
	},
}

var videoURLFields = []field[models.YoutubeVideo]{
	func(v models.YoutubeVideo) string { return v.URL },
	func(v models.YoutubeVideo) string { return v.Link },
	func(v models.YoutubeVideo) string {
		if v.VideoID == "" {
			return ""
		}
		return youtubeWatchURL + v.VideoID
	},
}

var videoChannelFields = []field[models.YoutubeVideo]{
	func(v models.YoutubeVideo) string { return v.ChannelTitle },
	func(v models.YoutubeVideo) string { return v.Channel },
	func(v models.YoutubeVideo) string { return v.Author },
}

var videoTitleFields = []field[models.YoutubeVideo]{
	func(v models.YoutubeVideo) string { return v.Title },
}

func VideoThumbnail(v models.YoutubeVideo) string {
	return firstOf(v, videoThumbnailFields, VideoFallbackThumbnail)
}

func VideoURL(v models.YoutubeVideo) string {
	return firstOf(v, videoURLFields, VideoFallbackURL)
}

func VideoChannel(v models.YoutubeVideo) string {
	return firstOf(v, videoChannelFields, VideoFallbackChannel)
}

func VideoTitle(v models.YoutubeVideo) string {
	return firstOf(v, videoTitleFields, VideoFallbackTitle)
}

// VideoDescription unlike PostExcerpt falls back to a placeholder when empty.
func VideoDescription(v models.YoutubeVideo) string {
	desc := Truncate(v.Description, VideoDescriptionLimit)
	if desc == "" {
		return VideoFallbackDescription
	}
	return desc
}

// VideoDate renders dd/mm/yyyy. Unparseable input is returned as is.
func VideoDate(value string) string {
	if value == "" {
		return VideoDateUnknown
	}
	t, ok := parseDate(value)
	if !ok {
		return value
	}
	return shortDate(t)
}
