package domain

import "regexp"

type Attraction struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Transport   string   `json:"transport"`
	MRT         *string  `json:"mrt"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Images      []string `json:"images"`
}

// AttractionSnapshot is the denormalized slice of an attraction carried
// inside bookings and orders.
type AttractionSnapshot struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Image   string `json:"image"`
}

var imageURLPattern = regexp.MustCompile(`https?://\S+?\.(?:jpg|png|JPG|PNG)`)

// ExtractImageURLs pulls image URLs out of the raw images column, which
// stores them as a single text blob.
func ExtractImageURLs(raw string) []string {
	return imageURLPattern.FindAllString(raw, -1)
}

// FirstImageURL returns the first image URL in the blob, or "" when none.
func FirstImageURL(raw string) string {
	urls := ExtractImageURLs(raw)
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
