package scriptura

import (
	"net/url"
	"strconv"
)

// PassageFormat selects the rendering of passage content.
type PassageFormat string

// PassageFormat values.
const (
	PassageFormatText PassageFormat = "text"
	PassageFormatHTML PassageFormat = "html"
)

// VersionListOptions are the query parameters for listing Bible versions.
// LanguageRanges is required by the server and sent as a repeated
// "language_ranges[]" key.
type VersionListOptions struct {
	LanguageRanges []string
	LicenseID      *int
}

// ToValues converts the options to url.Values. Absent optional parameters
// are omitted entirely rather than sent empty.
func (o *VersionListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	for _, r := range o.LanguageRanges {
		values.Add("language_ranges[]", r)
	}

	if o.LicenseID != nil {
		values.Set("license_id", strconv.Itoa(*o.LicenseID))
	}

	return values
}

// PassageOptions are the query parameters for fetching passage content.
// A zero Format means PassageFormatText.
type PassageOptions struct {
	Format          PassageFormat
	IncludeHeadings bool
	IncludeNotes    bool
}

// ToValues converts the options to url.Values. The format and include flags
// are always sent; the server treats their absence and their defaults
// differently for cached responses.
func (o *PassageOptions) ToValues() url.Values {
	format := PassageFormatText

	includeHeadings := false
	includeNotes := false

	if o != nil {
		if o.Format != "" {
			format = o.Format
		}

		includeHeadings = o.IncludeHeadings
		includeNotes = o.IncludeNotes
	}

	values := url.Values{}
	values.Set("format", string(format))
	values.Set("include_headings", strconv.FormatBool(includeHeadings))
	values.Set("include_notes", strconv.FormatBool(includeNotes))

	return values
}

// LanguageListOptions are the query parameters for listing languages.
type LanguageListOptions struct {
	Country   string
	PageSize  int
	PageToken string
}

// ToValues converts the options to url.Values.
func (o *LanguageListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.Country != "" {
		values.Set("country", o.Country)
	}

	if o.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(o.PageSize))
	}

	if o.PageToken != "" {
		values.Set("page_token", o.PageToken)
	}

	return values
}

// LicenseListOptions are the query parameters for listing licenses.
type LicenseListOptions struct {
	BibleID      *int
	DeveloperID  string
	AllAvailable *bool
}

// ToValues converts the options to url.Values.
func (o *LicenseListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.BibleID != nil {
		values.Set("bible_id", strconv.Itoa(*o.BibleID))
	}

	if o.DeveloperID != "" {
		values.Set("developer_id", o.DeveloperID)
	}

	if o.AllAvailable != nil {
		values.Set("all_available", strconv.FormatBool(*o.AllAvailable))
	}

	return values
}

// OrganizationListOptions are the query parameters for listing organizations.
// AcceptLanguage is sent as an Accept-Language request header, not a query
// parameter, and localizes the text fields of the response.
type OrganizationListOptions struct {
	BibleID        *int
	AcceptLanguage string
}

// ToValues converts the options to url.Values.
func (o *OrganizationListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.BibleID != nil {
		values.Set("bible_id", strconv.Itoa(*o.BibleID))
	}

	return values
}
