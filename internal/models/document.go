package models

import "time"

type FeedPost struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Summary   string    `json:"summary"`
	Published time.Time `json:"published"`
	Author    string    `json:"author"`
}

// RenderedDocument is a finished SVG card. Name is the output file name.
type RenderedDocument struct {
	Name   string
	Markup string
	Width  int
	Height int
}
