// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package onboarding runs the four-step wizard through which a performer
submits a profile for review.

A draft holds the form data and the current step. Moving forward requires
the current step to be complete; submitting on the last step turns the
draft into a pending artist profile.
*/
package onboarding

import (
	"strings"
	"time"

	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/pkg/pointer"
	"github.com/eventfulindia/eventful/pkg/slice"
)

// # Steps

const (
	StepBasicInfo = iota
	StepSkills
	StepPortfolio
	StepReview
)

var stepTitles = []string{
	"Basic Information",
	"Skills & Experience",
	"Portfolio & Social Media",
	"Review & Submit",
}

// LastStep is the index of the review step.
const LastStep = StepReview

// DefaultProfileImage is used when a submission carries no image.
const DefaultProfileImage = "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=400"

// Step describes one wizard page.
type Step struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

// Steps lists the wizard pages in order.
func Steps() []Step {
	steps := make([]Step, len(stepTitles))
	for i, title := range stepTitles {
		steps[i] = Step{Index: i, Title: title}
	}
	return steps
}

// # Form Data

// Form is everything collected across the wizard.
//
// Experience is a pointer because an untouched field is incomplete while an
// explicit 0 is a valid answer.
type Form struct {
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Location     string             `json:"location"`
	Description  string             `json:"description"`
	Genre        []string           `json:"genre"`
	Skills       []string           `json:"skills"`
	Experience   *int               `json:"experience"`
	PriceRange   string             `json:"priceRange"`
	ProfileImage string             `json:"profileImage"`
	Portfolio    artist.Portfolio   `json:"portfolio"`
	SocialMedia  artist.SocialMedia `json:"socialMedia"`
}

// FormPatch is a partial form update. Nil fields are left untouched.
type FormPatch struct {
	Name         *string             `json:"name"`
	Email        *string             `json:"email"`
	Phone        *string             `json:"phone"`
	Location     *string             `json:"location"`
	Description  *string             `json:"description"`
	Genre        *[]string           `json:"genre"`
	Skills       *[]string           `json:"skills"`
	Experience   *int                `json:"experience"`
	PriceRange   *string             `json:"priceRange"`
	ProfileImage *string             `json:"profileImage"`
	Portfolio    *artist.Portfolio   `json:"portfolio"`
	SocialMedia  *artist.SocialMedia `json:"socialMedia"`
}

// Merge lays the patch over f. Tag lists are cleaned with [NormalizeTags].
func (f Form) Merge(p FormPatch) Form {
	f.Name = pointer.Fallback(p.Name, f.Name)
	f.Email = pointer.Fallback(p.Email, f.Email)
	f.Phone = pointer.Fallback(p.Phone, f.Phone)
	f.Location = pointer.Fallback(p.Location, f.Location)
	f.Description = pointer.Fallback(p.Description, f.Description)
	f.PriceRange = pointer.Fallback(p.PriceRange, f.PriceRange)
	f.ProfileImage = pointer.Fallback(p.ProfileImage, f.ProfileImage)
	f.Portfolio = pointer.Fallback(p.Portfolio, f.Portfolio)
	f.SocialMedia = pointer.Fallback(p.SocialMedia, f.SocialMedia)

	if p.Experience != nil {
		f.Experience = pointer.To(*p.Experience)
	}
	if p.Genre != nil {
		f.Genre = NormalizeTags(*p.Genre)
	}
	if p.Skills != nil {
		f.Skills = NormalizeTags(*p.Skills)
	}
	return f
}

// NormalizeTags trims each tag, drops blanks and keeps the first of any repeats.
func NormalizeTags(tags []string) []string {
	trimmed := slice.Map(tags, strings.TrimSpace)
	return slice.Dedupe(slice.Filter(trimmed, func(tag string) bool { return tag != "" }))
}

// # Step Validity

// Missing returns the incomplete fields of a step, empty when the step is valid.
func (f Form) Missing(step int) []apperr.FieldError {
	var missing []apperr.FieldError
	require := func(field string, ok bool) {
		if !ok {
			missing = append(missing, apperr.FieldError{Field: field, Message: "This field is required"})
		}
	}
	present := func(s string) bool { return s != "" }

	switch step {
	case StepBasicInfo:
		require(artist.FieldName, present(f.Name))
		require(artist.FieldEmail, present(f.Email))
		require(FieldPhone, present(f.Phone))
		require(artist.FieldLocation, present(f.Location))
		require(artist.FieldDescription, present(f.Description))
	case StepSkills:
		require(artist.FieldGenre, len(f.Genre) > 0)
		require(artist.FieldSkills, len(f.Skills) > 0)
		require(artist.FieldExperience, f.Experience != nil && *f.Experience >= 0)
		require(artist.FieldPriceRange, present(f.PriceRange))
	case StepPortfolio:
		require(artist.FieldProfileImage, present(f.ProfileImage))
	case StepReview:
	default:
		require("step", false)
	}
	return missing
}

// StepValid reports whether step is complete.
func (f Form) StepValid(step int) bool {
	return len(f.Missing(step)) == 0
}

// FieldPhone is only collected for the review team; profiles do not carry it.
const FieldPhone = "phone"

// # Draft

// Draft is a wizard in progress.
type Draft struct {
	ID        string    `json:"id"`
	Step      int       `json:"step"`
	Form      Form      `json:"form"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Progress is a draft together with its navigation state.
type Progress struct {
	*Draft
	StepTitle string `json:"stepTitle"`
	StepValid bool   `json:"stepValid"`
	CanGoBack bool   `json:"canGoBack"`
	IsLast    bool   `json:"isLast"`
}

// Progress describes where the draft stands.
func (d *Draft) Progress() *Progress {
	return &Progress{
		Draft:     d,
		StepTitle: stepTitles[d.Step],
		StepValid: d.Form.StepValid(d.Step),
		CanGoBack: d.Step > StepBasicInfo,
		IsLast:    d.Step == LastStep,
	}
}

/*
Next advances one step.

The current step must be valid; otherwise the missing fields are returned as
a VALIDATION_ERROR and the draft stays put. On the last step Next does nothing.
*/
func (d *Draft) Next() error {
	if missing := d.Form.Missing(d.Step); len(missing) > 0 {
		return apperr.ValidationError("Current step is incomplete", missing...)
	}
	if d.Step < LastStep {
		d.Step++
	}
	return nil
}

// Prev moves back one step. On the first step it does nothing.
func (d *Draft) Prev() {
	if d.Step > StepBasicInfo {
		d.Step--
	}
}

// ReadyToSubmit fails unless the draft is on the review step with every step complete.
func (d *Draft) ReadyToSubmit() error {
	if d.Step != LastStep {
		return apperr.Conflict("Submission is only possible from the review step")
	}

	var missing []apperr.FieldError
	for step := StepBasicInfo; step <= LastStep; step++ {
		missing = append(missing, d.Form.Missing(step)...)
	}
	if len(missing) > 0 {
		return apperr.ValidationError("Profile is incomplete", missing...)
	}
	return nil
}

// Artist builds the pending profile a submission creates.
func (d *Draft) Artist(now time.Time) *artist.Artist {
	form := d.Form

	profileImage := form.ProfileImage
	if profileImage == "" {
		profileImage = DefaultProfileImage
	}

	return &artist.Artist{
		Name:               form.Name,
		Email:              form.Email,
		ProfileImage:       profileImage,
		Genre:              slice.Map(form.Genre, strings.Clone),
		Skills:             slice.Map(form.Skills, strings.Clone),
		Location:           form.Location,
		Experience:         pointer.Fallback(form.Experience, 0),
		Rating:             0,
		PriceRange:         form.PriceRange,
		Availability:       true,
		Description:        form.Description,
		Portfolio:          form.Portfolio,
		SocialMedia:        form.SocialMedia,
		PerformanceHistory: []artist.Performance{},
		VerificationStatus: artist.StatusPending,
		JoinedDate:         now,
	}
}
