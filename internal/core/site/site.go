// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package site serves the marketing content of the home and about pages.
package site

import "github.com/eventfulindia/eventful/internal/core/artist"

// Stat is one headline figure.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Step is one entry of the "how it works" walkthrough.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Feature is one selling point on the about page.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

// Home is the landing page payload.
type Home struct {
	Featured    []*artist.Artist `json:"featured"`
	ArtistCount int              `json:"artistCount"`
	Stats       []Stat           `json:"stats"`
	HowItWorks  []Step           `json:"howItWorks"`
}

// About is the about page payload.
type About struct {
	Stats    []Stat       `json:"stats"`
	Features []Feature    `json:"features"`
	Team     []TeamMember `json:"team"`
}

func homeStats() []Stat {
	return []Stat{
		{Label: "Active Artists", Value: "1,500+"},
		{Label: "Events Hosted", Value: "10,000+"},
		{Label: "Average Rating", Value: "4.8"},
	}
}

func howItWorks() []Step {
	return []Step{
		{Title: "Discover Artists", Description: "Browse through our curated collection of talented artists across various genres and styles."},
		{Title: "Connect & Book", Description: "Reach out to artists directly, discuss your requirements, and finalize booking details."},
		{Title: "Plan Your Event", Description: "Coordinate with your chosen artist to plan the perfect performance for your special occasion."},
		{Title: "Enjoy & Review", Description: "Experience an amazing performance and share your feedback to help other event organizers."},
	}
}

// AboutPage returns the static about page content.
func AboutPage() About {
	return About{
		Stats: []Stat{
			{Label: "Active Artists", Value: "2,500+"},
			{Label: "Events Hosted", Value: "15,000+"},
			{Label: "Cities Covered", Value: "50+"},
			{Label: "Average Rating", Value: "4.9"},
		},
		Features: []Feature{
			{Title: "Diverse Talent Pool", Description: "From classical maestros to contemporary performers, discover artists across all genres and styles."},
			{Title: "Instant Booking", Description: "Book your favorite artists in minutes with our streamlined booking process and real-time availability."},
			{Title: "Quality Assured", Description: "All artists are verified and rated by our community to ensure the highest quality performances."},
			{Title: "Personalized Experience", Description: "Our AI-powered recommendations help you find the perfect artist for your unique event needs."},
		},
		Team: []TeamMember{
			{
				Name:  "Priya Sharma",
				Role:  "Founder & CEO",
				Image: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=400",
				Bio:   "Former music industry executive with 15+ years of experience in artist management and event production.",
			},
			{
				Name:  "Rajesh Kumar",
				Role:  "CTO",
				Image: "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=400",
				Bio:   "Tech visionary who previously built scalable platforms for major entertainment companies.",
			},
			{
				Name:  "Anita Desai",
				Role:  "Head of Artist Relations",
				Image: "https://images.pexels.com/photos/1181690/pexels-photo-1181690.jpeg?auto=compress&cs=tinysrgb&w=400",
				Bio:   "Artist advocate with deep connections in the Indian music scene and passion for emerging talent.",
			},
		},
	}
}
