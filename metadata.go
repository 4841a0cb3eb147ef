package clipper

// DefaultLanguage is reported when the document does not declare one.
const DefaultLanguage = "en"

// Metadata describes a page. Absent values are empty strings.
type Metadata struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Description   string `json:"description"`
	Author        string `json:"author"`
	PublishedDate string `json:"publishedDate"`
	ModifiedDate  string `json:"modifiedDate"`
	SiteName      string `json:"siteName"`
	Language      string `json:"language"`
	Keywords      string `json:"keywords"`

	// CanonicalURL is the canonical link of the page, or URL when the page
	// declares none.
	CanonicalURL string `json:"canonicalUrl"`
}
