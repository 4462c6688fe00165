//go:build unit

package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/isopennextyet/internal/infrastructure/presenters/web"
	"github.com/rios0rios0/isopennextyet/test/domain/entitybuilders"
)

func TestGenerateHomePageMeta(t *testing.T) {
	t.Parallel()

	t.Run("should describe a not yet status with the default record when data is nil", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		meta := web.GenerateHomePageMeta(settings, nil)

		// then
		assert.Equal(t, "Is OpenNextJS Cloudflare Using Next.js 16? NO", meta.Title)
		description, ok := meta.Lookup("description")
		require.True(t, ok)
		assert.Equal(t,
			"OpenNextJS Cloudflare is still NOT using Next.js 16. "+
				"It's been 0 days since the issue was created. Currently using Next.js 15.x.x.",
			description,
		)
	})

	t.Run("should celebrate the resolved version when the target is reached", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		data := entitybuilders.NewLoaderDataBuilder().WithVersion("16.0.1", 16, true).BuildLoaderData()

		// when
		meta := web.GenerateHomePageMeta(settings, &data)

		// then
		assert.Equal(t, "Is OpenNextJS Cloudflare Using Next.js 16? YES", meta.Title)
		description, _ := meta.Lookup("og:description")
		assert.Equal(t, "OpenNextJS Cloudflare is now using Next.js 16.0.1! 🎉", description)
		alt, _ := meta.Lookup("og:image:alt")
		assert.Equal(t, "OpenNextJS Cloudflare Next.js 16 Status: YES", alt)
	})

	t.Run("should mention the days since creation when the target is not reached", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		data := entitybuilders.NewLoaderDataBuilder().WithDaysSinceCreation(42).BuildLoaderData()

		// when
		meta := web.GenerateHomePageMeta(settings, &data)

		// then
		description, _ := meta.Lookup("twitter:description")
		assert.Contains(t, description, "It's been 42 days since the issue was created")
		assert.Contains(t, description, "Currently using Next.js 15.5.6.")
	})

	t.Run("should point social tags and the canonical link at the base URL", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().
			WithBaseURL("https://isopennext16yet.example.org").
			BuildSettings()

		// when
		meta := web.GenerateHomePageMeta(settings, nil)

		// then
		expected := map[string]string{
			"keywords":            "OpenNextJS, Cloudflare, Next.js 16, Next.js, React, Cloudflare Workers, deployment",
			"author":              "Is Open Next 16 Yet?",
			"robots":              "index, follow",
			"og:type":             "website",
			"og:url":              "https://isopennext16yet.example.org",
			"og:site_name":        "Is Open Next 16 Yet?",
			"og:locale":           "en_US",
			"og:image":            "https://isopennext16yet.example.org/og-image.png",
			"og:image:width":      "1200",
			"og:image:height":     "630",
			"twitter:card":        "summary_large_image",
			"twitter:image":       "https://isopennext16yet.example.org/og-image.png",
			"twitter:url":         "https://isopennext16yet.example.org",
			"twitter:site":        "@opennextjs",
			"twitter:creator":     "@opennextjs",
			"og:title":            "Is OpenNextJS Cloudflare Using Next.js 16? NO",
			"twitter:title":       "Is OpenNextJS Cloudflare Using Next.js 16? NO",
			"og:image:alt":        "OpenNextJS Cloudflare Next.js 16 Status: NO",
		}
		for key, want := range expected {
			got, ok := meta.Lookup(key)
			assert.True(t, ok, key)
			assert.Equal(t, want, got, key)
		}
		require.Len(t, meta.Links, 1)
		assert.Equal(t, web.Link{Rel: "canonical", Href: "https://isopennext16yet.example.org"}, meta.Links[0])
	})

	t.Run("should set exactly one of name or property on every tag", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		meta := web.GenerateHomePageMeta(settings, nil)

		// then
		assert.Len(t, meta.Tags, 21)
		for _, tag := range meta.Tags {
			assert.NotEqual(t, tag.Name == "", tag.Property == "", "%+v", tag)
			assert.NotEmpty(t, tag.Content, "%+v", tag)
		}
	})
}
