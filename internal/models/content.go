package models

import "time"

// Update is a published news/update entry.
type Update struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// PhotoItem is a single uploaded photo inside a photo set.
type PhotoItem struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// EventPhoto groups photos for a named event.
type EventPhoto struct {
	ID        string      `json:"id"`
	EventName string      `json:"eventName"`
	EventDate string      `json:"eventDate"`
	Photos    []PhotoItem `json:"photos"`
	CreatedAt time.Time   `json:"createdAt"`
}

// GalleryPhoto groups gallery photos by year.
type GalleryPhoto struct {
	ID        string      `json:"id"`
	Year      int         `json:"year"`
	Photos    []PhotoItem `json:"photos"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ChapterPhoto groups photos per regional chapter and year.
type ChapterPhoto struct {
	ID          string      `json:"id"`
	ChapterType string      `json:"chapterType"`
	Year        int         `json:"year"`
	Photos      []PhotoItem `json:"photos"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ReunionPhoto groups reunion photos by year.
type ReunionPhoto struct {
	ID        string      `json:"id"`
	Year      int         `json:"year"`
	Photos    []PhotoItem `json:"photos"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Statistics is the dashboard summary: list lengths plus nested photo
// totals for the gallery and reunion sets.
type Statistics struct {
	Updates          int `json:"updates"`
	Events           int `json:"events"`
	GalleryPhotos    int `json:"galleryPhotos"`
	ReunionPhotos    int `json:"reunionPhotos"`
	RegisteredUsers  int `json:"registeredUsers"`
	Donations        int `json:"donations"`
	Memberships      int `json:"memberships"`
	PendingApprovals int `json:"pendingApprovals"`
}
