// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import "slices"

// # Vocabularies

var (
	genres = []string{
		"Classical", "Bollywood", "Rock", "Pop", "Folk", "Jazz", "Electronic",
		"Hip Hop", "Indie", "Fusion", "Blues", "Country", "Ghazal", "Sufi",
	}

	locations = []string{
		"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune", "Ahmedabad",
	}

	skills = []string{
		"Vocals", "Guitar", "Piano", "Drums", "Bass", "Violin", "Flute", "Harmonium",
		"Tabla", "Sitar", "Saxophone", "Keyboard", "Stage Performance", "Songwriting",
		"Music Production", "Sound Engineering",
	}
)

// filterGenreCount is how many genres the listing sidebar offers as checkboxes.
const filterGenreCount = 10

// Options holds the predefined tag vocabularies offered to clients.
//
// They are suggestions only: onboarding also accepts custom genre and skill tags,
// and the filter matches whatever tags an artist carries.
type Options struct {
	Genres       []string `json:"genres"`
	FilterGenres []string `json:"filterGenres"`
	Locations    []string `json:"locations"`
	Skills       []string `json:"skills"`
}

// DefaultOptions returns fresh copies of the vocabularies.
func DefaultOptions() Options {
	return Options{
		Genres:       slices.Clone(genres),
		FilterGenres: slices.Clone(genres[:filterGenreCount]),
		Locations:    slices.Clone(locations),
		Skills:       slices.Clone(skills),
	}
}
