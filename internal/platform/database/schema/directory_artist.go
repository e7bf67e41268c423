// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns used by the PostgreSQL repositories.
package schema

// DirectoryArtistTable represents the 'directory.artist' table
type DirectoryArtistTable struct {
	Table              string
	ID                 string
	Slug               string
	Name               string
	Email              string
	ProfileImage       string
	Genre              string
	Skills             string
	Location           string
	Experience         string
	Rating             string
	PriceRange         string
	Availability       string
	Description        string
	Portfolio          string
	SocialMedia        string
	PerformanceHistory string
	VerificationStatus string
	JoinedAt           string
	Position           string
}

// DirectoryArtist is the schema definition for directory.artist
var DirectoryArtist = DirectoryArtistTable{
	Table:              "directory.artist",
	ID:                 "id",
	Slug:               "slug",
	Name:               "name",
	Email:              "email",
	ProfileImage:       "profileimage",
	Genre:              "genre",
	Skills:             "skills",
	Location:           "location",
	Experience:         "experience",
	Rating:             "rating",
	PriceRange:         "pricerange",
	Availability:       "availability",
	Description:        "description",
	Portfolio:          "portfolio",
	SocialMedia:        "socialmedia",
	PerformanceHistory: "performancehistory",
	VerificationStatus: "verificationstatus",
	JoinedAt:           "joinedat",
	Position:           "position",
}

// Columns lists every writable column in scan order. Position is assigned by the database.
func (t DirectoryArtistTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Name, t.Email, t.ProfileImage, t.Genre, t.Skills, t.Location,
		t.Experience, t.Rating, t.PriceRange, t.Availability, t.Description, t.Portfolio,
		t.SocialMedia, t.PerformanceHistory, t.VerificationStatus, t.JoinedAt,
	}
}
