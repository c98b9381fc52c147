package recommend

import (
	"strconv"

	"litflix/internal/platform/qloo"
)

// Entity is the one canonical shape exposed to clients, regardless of
// which envelope or field convention the provider used. Only entity_id,
// name and type are guaranteed; everything else is omitted when the
// source record lacks it.
type Entity struct {
	EntityID    string     `json:"entity_id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	ImageURL    string     `json:"image_url,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	RatingCount *int       `json:"rating_count,omitempty"`
	Author      string     `json:"author,omitempty"`
	Properties  Properties `json:"properties"`
	External    *External  `json:"external,omitempty"`
}

type Properties struct {
	ShortDescription string    `json:"short_description,omitempty"`
	Description      string    `json:"description,omitempty"`
	PublicationYear  *int      `json:"publication_year,omitempty"`
	PublicationDate  string    `json:"publication_date,omitempty"`
	Genre            string    `json:"genre,omitempty"`
	PageCount        *int      `json:"page_count,omitempty"`
	Language         string    `json:"language,omitempty"`
	Publisher        string    `json:"publisher,omitempty"`
	ISBN13           string    `json:"isbn13,omitempty"`
	Format           string    `json:"format,omitempty"`
	Image            *ImageRef `json:"image,omitempty"`
}

type ImageRef struct {
	URL string `json:"url"`
}

type External struct {
	Goodreads string `json:"goodreads,omitempty"`
}

// Normalize converts a raw provider record into the canonical shape.
// Per attribute it prefers the top-level field and falls back to the
// same key under the properties sub-record. The entity type is always
// the requested one; the provider's own type tagging is not trusted.
// Normalization is idempotent: every source field has exactly one
// canonical destination, so a canonical record round-trips unchanged.
func Normalize(raw qloo.RawEntity, requestedType qloo.EntityType, fallbackName string) Entity {
	name := rawString(raw, "name")
	if name == "" {
		name = fallbackName
	}

	imageURL := resolveImage(raw)

	e := Entity{
		EntityID:    rawString(raw, "entity_id"),
		Name:        name,
		Type:        string(requestedType),
		ImageURL:    imageURL,
		Rating:      rawFloat(raw, "rating"),
		RatingCount: rawInt(raw, "rating_count"),
		Author:      rawString(raw, "author"),
		Properties: Properties{
			ShortDescription: propString(raw, "short_description"),
			Description:      propString(raw, "description"),
			PublicationYear:  propInt(raw, "publication_year"),
			PublicationDate:  propString(raw, "publication_date"),
			Genre:            propString(raw, "genre"),
			PageCount:        propInt(raw, "page_count"),
			Language:         propString(raw, "language"),
			Publisher:        propString(raw, "publisher"),
			ISBN13:           propString(raw, "isbn13"),
			Format:           propString(raw, "format"),
		},
	}
	if imageURL != "" {
		e.Properties.Image = &ImageRef{URL: imageURL}
	}
	if goodreads := resolveGoodreads(raw); goodreads != "" {
		e.External = &External{Goodreads: goodreads}
	}
	return e
}

// NormalizeAll maps a raw result list to canonical entities, dropping
// records that carry no entity id at all.
func NormalizeAll(raws []qloo.RawEntity, requestedType qloo.EntityType, fallbackName string) []Entity {
	entities := make([]Entity, 0, len(raws))
	for _, raw := range raws {
		e := Normalize(raw, requestedType, fallbackName)
		if e.EntityID == "" {
			continue
		}
		entities = append(entities, e)
	}
	return entities
}

// resolveImage probes the known image locations in fixed order and
// takes the first usable value.
func resolveImage(raw qloo.RawEntity) string {
	for _, key := range []string{"image_url", "image", "cover_image"} {
		if s := rawString(raw, key); s != "" {
			return s
		}
	}
	if props := subRecord(raw, "properties"); props != nil {
		if image := subRecord(props, "image"); image != nil {
			return rawString(image, "url")
		}
	}
	return ""
}

func resolveGoodreads(raw qloo.RawEntity) string {
	if s := rawString(raw, "goodreads_id"); s != "" {
		return s
	}
	if external := subRecord(raw, "external"); external != nil {
		return rawString(external, "goodreads")
	}
	return ""
}

func subRecord(raw map[string]any, key string) map[string]any {
	m, _ := raw[key].(map[string]any)
	return m
}

func rawString(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

// propString reads a string field from the top level, falling back to
// the properties sub-record.
func propString(raw qloo.RawEntity, key string) string {
	if s := rawString(raw, key); s != "" {
		return s
	}
	if props := subRecord(raw, "properties"); props != nil {
		return rawString(props, key)
	}
	return ""
}

func rawFloat(raw map[string]any, key string) *float64 {
	switch v := raw[key].(type) {
	case float64:
		return &v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}
	return nil
}

func rawInt(raw map[string]any, key string) *int {
	switch v := raw[key].(type) {
	case float64:
		n := int(v)
		return &n
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

func propInt(raw qloo.RawEntity, key string) *int {
	if n := rawInt(raw, key); n != nil {
		return n
	}
	if props := subRecord(raw, "properties"); props != nil {
		return rawInt(props, key)
	}
	return nil
}
