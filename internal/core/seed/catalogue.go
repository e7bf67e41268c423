// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

import (
	"time"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/core/booking"
	"github.com/eventfulindia/eventful/internal/core/event"
	"github.com/eventfulindia/eventful/pkg/pointer"
)

// ManagerID owns every seeded event and booking.
const ManagerID = "1"

const pexels = "https://images.pexels.com/photos/"

func photo(id string) string {
	return pexels + id + "/pexels-photo-" + id + ".jpeg?auto=compress&cs=tinysrgb&w=400"
}

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func instant(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Artists returns a fresh copy of the demo roster.
func Artists() []*artist.Artist {
	return []*artist.Artist{
		{
			ID:           "1",
			Name:         "Arjun Sharma",
			Email:        "arjun.sharma@example.com",
			ProfileImage: photo("1043471"),
			Genre:        []string{"Classical", "Bollywood"},
			Location:     "Mumbai",
			Experience:   8,
			Rating:       4.8,
			PriceRange:   "₹25,000 - ₹50,000",
			Availability: true,
			Portfolio: artist.Portfolio{
				Images: []string{photo("1190298"), photo("1105666")},
				Videos: []string{"video1.mp4"},
				Audio:  []string{"track1.mp3"},
			},
			SocialMedia: artist.SocialMedia{
				Instagram: "@arjunsharmamusic",
				YouTube:   "ArjunSharmaOfficial",
				Spotify:   "arjun-sharma",
			},
			Description: "Professional classical and Bollywood vocalist with 8+ years of experience. Specializes in live performances and studio recordings.",
			Skills:      []string{"Vocals", "Harmonium", "Stage Performance"},
			PerformanceHistory: []artist.Performance{{
				ID:        "1",
				EventName: "Mumbai Music Festival",
				Venue:     "NSCI Dome",
				Date:      "2024-01-15",
				Rating:    4.9,
				Feedback:  "Outstanding performance",
			}},
			VerificationStatus: artist.StatusVerified,
			JoinedDate:         day("2023-06-15"),
		},
		{
			ID:           "2",
			Name:         "Priya Rajesh",
			Email:        "priya.rajesh@example.com",
			ProfileImage: photo("1239291"),
			Genre:        []string{"Contemporary", "Folk"},
			Location:     "Delhi",
			Experience:   5,
			Rating:       4.5,
			PriceRange:   "₹15,000 - ₹30,000",
			Availability: true,
			Portfolio: artist.Portfolio{
				Images: []string{photo("1631677"), photo("1631677")},
				Videos: []string{},
				Audio:  []string{},
			},
			SocialMedia:        artist.SocialMedia{Instagram: "@priyarajeshmusic"},
			Description:        "Versatile singer specializing in contemporary and folk music. Known for soulful performances and crowd engagement.",
			Skills:             []string{"Vocals", "Guitar", "Songwriting"},
			PerformanceHistory: []artist.Performance{},
			VerificationStatus: artist.StatusVerified,
			JoinedDate:         day("2023-08-20"),
		},
		{
			ID:           "3",
			Name:         "Rohit Mehta",
			Email:        "rohit.mehta@example.com",
			ProfileImage: photo("1699161"),
			Genre:        []string{"Rock", "Pop"},
			Location:     "Bangalore",
			Experience:   10,
			Rating:       4.9,
			PriceRange:   "₹40,000 - ₹75,000",
			Availability: false,
			Portfolio: artist.Portfolio{
				Images: []string{photo("1105666")},
				Videos: []string{},
				Audio:  []string{},
			},
			SocialMedia: artist.SocialMedia{
				Instagram: "@rohitmehta_music",
				YouTube:   "RohitMehtaBand",
			},
			Description:        "Lead guitarist and vocalist with 10 years in the rock scene. Has performed at major festivals across India.",
			Skills:             []string{"Guitar", "Vocals", "Bass"},
			PerformanceHistory: []artist.Performance{},
			VerificationStatus: artist.StatusVerified,
			JoinedDate:         day("2023-03-10"),
		},
	}
}

// Events returns a fresh copy of the demo events.
func Events() []*event.Event {
	return []*event.Event{
		{
			ID:             "1",
			Title:          "Corporate Annual Gala",
			Description:    "Annual celebration for company employees and partners",
			Date:           "2024-03-15",
			Venue:          "Grand Ballroom, Hotel Taj",
			Location:       "Mumbai",
			Type:           "Corporate",
			Budget:         150000,
			RequiredGenres: []string{"Classical", "Contemporary"},
			Status:         event.StatusPlanning,
			OrganizerID:    ManagerID,
			Capacity:       500,
			ImageURL:       photo("1540406"),
		},
		{
			ID:             "2",
			Title:          "Wedding Reception",
			Description:    "Elegant wedding reception celebrating love and music",
			Date:           "2024-04-20",
			Venue:          "Palace Gardens",
			Location:       "Delhi",
			Type:           "Wedding",
			Budget:         200000,
			RequiredGenres: []string{"Bollywood", "Folk"},
			Status:         event.StatusConfirmed,
			OrganizerID:    ManagerID,
			ArtistID:       "1",
			Capacity:       300,
			ImageURL:       photo("1444442"),
		},
	}
}

// Bookings returns a fresh copy of the demo booking ledger.
func Bookings() []*booking.Booking {
	return []*booking.Booking{
		{
			ID:            "1",
			EventID:       "2",
			ArtistID:      "1",
			ManagerID:     ManagerID,
			Status:        booking.StatusConfirmed,
			ProposedPrice: 45000,
			FinalPrice:    pointer.To(50000),
			Messages: []booking.Message{
				{
					ID:         "1",
					SenderID:   ManagerID,
					SenderType: booking.SenderManager,
					Content:    "Hello Arjun, we would like to book you for our wedding reception.",
					Timestamp:  instant("2024-01-20T10:00:00Z"),
				},
				{
					ID:         "2",
					SenderID:   "1",
					SenderType: booking.SenderArtist,
					Content:    "Thank you for reaching out! I would be delighted to perform at your event.",
					Timestamp:  instant("2024-01-20T10:30:00Z"),
				},
			},
			CreatedAt: instant("2024-01-20T09:00:00Z"),
			UpdatedAt: instant("2024-01-20T11:00:00Z"),
		},
	}
}
