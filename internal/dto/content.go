package dto

// CreateUpdateRequest publishes a news/update entry.
type CreateUpdateRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Date    string `json:"date" validate:"required"`
}

// PhotoItemRequest is one photo inside a photo-set payload.
type PhotoItemRequest struct {
	URL  string `json:"url" validate:"required"`
	Name string `json:"name"`
}

// CreateEventPhotoRequest publishes an event photo set.
type CreateEventPhotoRequest struct {
	EventName string             `json:"eventName" validate:"required"`
	EventDate string             `json:"eventDate" validate:"required"`
	Photos    []PhotoItemRequest `json:"photos" validate:"required,min=1,dive"`
}

// CreateYearPhotoRequest publishes a gallery or reunion photo set.
type CreateYearPhotoRequest struct {
	Year   int                `json:"year" validate:"required"`
	Photos []PhotoItemRequest `json:"photos" validate:"required,min=1,dive"`
}

// CreateChapterPhotoRequest publishes a chapter photo set.
type CreateChapterPhotoRequest struct {
	ChapterType string             `json:"chapterType" validate:"required"`
	Year        int                `json:"year" validate:"required"`
	Photos      []PhotoItemRequest `json:"photos" validate:"required,min=1,dive"`
}

// SetOverrideRequest replaces a scalar page override.
type SetOverrideRequest struct {
	Value string `json:"value" validate:"required"`
}

// OverrideResponse returns a scalar override value.
type OverrideResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
