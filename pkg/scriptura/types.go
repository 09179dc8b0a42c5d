package scriptura

import (
	"time"
)

// PaginatedResponse represents a paginated list response. Data preserves the
// server's array order. NextPageToken is nil on the last page; the library
// never follows it automatically.
type PaginatedResponse[T any] struct {
	Data          []T     `json:"data"`
	NextPageToken *string `json:"next_page_token,omitempty"`
	TotalCount    *int    `json:"total_count,omitempty"`
}

// Canon identifies the canonical division a book belongs to.
type Canon string

// Canon values.
const (
	CanonOldTestament Canon = "old_testament"
	CanonNewTestament Canon = "new_testament"
	CanonDeuterocanon Canon = "deuterocanon"
)

// TextDirection is the writing direction of a language.
type TextDirection string

// TextDirection values.
const (
	TextDirectionLTR TextDirection = "ltr"
	TextDirectionRTL TextDirection = "rtl"
)

// BibleVersion represents a Bible translation/version.
type BibleVersion struct {
	ID             int     `json:"id"`
	Abbreviation   string  `json:"abbreviation"`
	Title          string  `json:"title"`
	LanguageTag    string  `json:"language_tag"`
	CopyrightShort *string `json:"copyright_short,omitempty"`
	CopyrightLong  *string `json:"copyright_long,omitempty"`
}

// BookIntro is the introductory content for a book.
type BookIntro struct {
	ID        string `json:"id"`
	PassageID string `json:"passage_id"`
	Title     string `json:"title"`
}

// Verse is the metadata for a single verse.
type Verse struct {
	ID        string `json:"id"`
	PassageID string `json:"passage_id"`
	Title     string `json:"title"`
}

// Chapter represents a chapter within a book. Verses is populated only when
// the server includes it.
type Chapter struct {
	ID        string  `json:"id"`
	PassageID string  `json:"passage_id"`
	Title     string  `json:"title"`
	Verses    []Verse `json:"verses,omitempty"`
}

// Book represents a book within a Bible version. ID is the USFM identifier
// (e.g., "GEN", "MAT").
type Book struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	FullTitle    *string    `json:"full_title,omitempty"`
	Abbreviation string     `json:"abbreviation"`
	Canon        Canon      `json:"canon"`
	Chapters     []Chapter  `json:"chapters,omitempty"`
	Intro        *BookIntro `json:"intro,omitempty"`
}

// Passage is the actual content of a scripture reference. ID is the USFM
// reference; Reference is human-readable (e.g., "John 3:16").
type Passage struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Reference string `json:"reference"`
}

// Language represents a language supported by the API. ID is a BCP 47 tag;
// Language is the ISO 639 code.
type Language struct {
	ID                 string            `json:"id"`
	Language           string            `json:"language"`
	Script             *string           `json:"script,omitempty"`
	ScriptName         *string           `json:"script_name,omitempty"`
	Aliases            []string          `json:"aliases,omitempty"`
	DisplayNames       map[string]string `json:"display_names,omitempty"`
	Scripts            []string          `json:"scripts,omitempty"`
	Variants           []string          `json:"variants,omitempty"`
	Countries          []string          `json:"countries,omitempty"`
	TextDirection      TextDirection     `json:"text_direction"`
	WritingPopulation  int               `json:"writing_population,omitempty"`
	SpeakingPopulation int               `json:"speaking_population,omitempty"`
	DefaultBibleID     *int              `json:"default_bible_id,omitempty"`
}

// License represents a Bible content license granted to a developer.
type License struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Version        int        `json:"version"`
	OrganizationID string     `json:"organization_id"`
	HTML           string     `json:"html"`
	BibleIDs       []int      `json:"bible_ids,omitempty"`
	URI            *string    `json:"uri,omitempty"`
	AgreedAt       *time.Time `json:"agreed_dt,omitempty"`
	UserID         string     `json:"yvp_user_id"`
}

// OrganizationAddress is an organization's physical address.
type OrganizationAddress struct {
	FormattedAddress         string  `json:"formatted_address"`
	PlaceID                  string  `json:"place_id"`
	Latitude                 float64 `json:"latitude"`
	Longitude                float64 `json:"longitude"`
	AdministrativeAreaLevel1 string  `json:"administrative_area_level_1"`
	Locality                 string  `json:"locality"`
	Country                  string  `json:"country"`
}

// Organization represents a Bible publisher. ID is a UUID.
type Organization struct {
	ID                   string              `json:"id"`
	ParentOrganizationID *string             `json:"parent_organization_id,omitempty"`
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	Email                *string             `json:"email,omitempty"`
	Phone                *string             `json:"phone,omitempty"`
	PrimaryLanguage      string              `json:"primary_language"`
	WebsiteURL           string              `json:"website_url"`
	Address              OrganizationAddress `json:"address"`
}

// VerseOfTheDay is a per-day scripture reference, keyed by day of year 1-366.
type VerseOfTheDay struct {
	Day       int    `json:"day"`
	PassageID string `json:"passage_id"`
}
