package web

import (
	"fmt"
	"strconv"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

const (
	metaKeywords    = "OpenNextJS, Cloudflare, Next.js %d, Next.js, React, Cloudflare Workers, deployment"
	ogImagePath     = "/og-image.png"
	ogImageWidth    = 1200
	ogImageHeight   = 630
	ogLocale        = "en_US"
	twitterCardType = "summary_large_image"
)

// MetaTag is a single <meta> element. Exactly one of Name or Property is set.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// Link is a single <link> element.
type Link struct {
	Rel  string
	Href string
}

// PageMeta is everything the home page puts in its <head>.
type PageMeta struct {
	Title string
	Tags  []MetaTag
	Links []Link
}

// defaultMetaData stands in for a record that has not been resolved.
func defaultMetaData() entities.LoaderData {
	return entities.LoaderData{
		VersionInfo: entities.VersionInfo{
			IsTargetVersionYet: false,
			VersionNumber:      15,
			Version:            "15.x.x",
		},
		IssueDates: entities.IssueDates{DaysSinceCreation: 0},
	}
}

// GenerateHomePageMeta builds the title, description, Open Graph and Twitter
// tags for the home page. A nil record is replaced by a "not yet" default.
func GenerateHomePageMeta(settings *entities.Settings, data *entities.LoaderData) PageMeta {
	record := defaultMetaData()
	if data != nil {
		record = *data
	}

	status := statusWord(record.IsTargetVersionYet)
	title := fmt.Sprintf("Is OpenNextJS Cloudflare Using Next.js %d? %s", settings.TargetVersion, status)
	description := homeDescription(settings, record)
	image := settings.BaseURL + ogImagePath

	return PageMeta{
		Title: title,
		Tags: []MetaTag{
			{Name: "description", Content: description},
			{Name: "keywords", Content: fmt.Sprintf(metaKeywords, settings.TargetVersion)},
			{Name: "author", Content: settings.SiteName},
			{Name: "robots", Content: "index, follow"},

			{Property: "og:title", Content: title},
			{Property: "og:description", Content: description},
			{Property: "og:type", Content: "website"},
			{Property: "og:url", Content: settings.BaseURL},
			{Property: "og:site_name", Content: settings.SiteName},
			{Property: "og:locale", Content: ogLocale},
			{Property: "og:image", Content: image},
			{Property: "og:image:width", Content: strconv.Itoa(ogImageWidth)},
			{Property: "og:image:height", Content: strconv.Itoa(ogImageHeight)},
			{Property: "og:image:alt", Content: fmt.Sprintf(
				"OpenNextJS Cloudflare Next.js %d Status: %s", settings.TargetVersion, status,
			)},

			{Name: "twitter:card", Content: twitterCardType},
			{Name: "twitter:title", Content: title},
			{Name: "twitter:description", Content: description},
			{Name: "twitter:image", Content: image},
			{Name: "twitter:url", Content: settings.BaseURL},
			{Name: "twitter:site", Content: settings.TwitterHandle},
			{Name: "twitter:creator", Content: settings.TwitterHandle},
		},
		Links: []Link{
			{Rel: "canonical", Href: settings.BaseURL},
		},
	}
}

// Lookup returns the content of the tag with the given name or property.
func (m PageMeta) Lookup(key string) (string, bool) {
	for _, tag := range m.Tags {
		if tag.Name == key || tag.Property == key {
			return tag.Content, true
		}
	}
	return "", false
}

func homeDescription(settings *entities.Settings, record entities.LoaderData) string {
	if record.IsTargetVersionYet {
		return fmt.Sprintf("OpenNextJS Cloudflare is now using Next.js %s! 🎉", record.Version)
	}
	return fmt.Sprintf(
		"OpenNextJS Cloudflare is still NOT using Next.js %d. "+
			"It's been %d days since the issue was created. Currently using Next.js %s.",
		settings.TargetVersion, record.DaysSinceCreation, record.Version,
	)
}

func statusWord(reached bool) string {
	if reached {
		return "YES"
	}
	return "NO"
}
