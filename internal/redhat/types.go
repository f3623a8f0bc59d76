package redhat

import "unicode/utf8"

// Well-known case statuses returned by the support API. The dashboard
// only queries for cases in a waiting state.
const (
	StatusWaitingOnRedHat   = "Waiting on Red Hat"
	StatusWaitingOnCustomer = "Waiting on Customer"
)

// Severity levels as the support API spells them. Anything else is
// rendered with the default style.
const (
	SeverityUrgent = "Urgent"
	SeverityHigh   = "High"
	SeverityNormal = "Normal"
	SeverityLow    = "Low"
)

// summaryMaxRunes caps case summaries for display. The API can return
// multi-kilobyte summaries; the dashboard never needs more than this.
const summaryMaxRunes = 100

const caseURLPrefix = "https://access.redhat.com/support/cases/#/case/"

// Case is one support case in display-ready form. Values are mapped
// straight off the wire on every fetch and discarded on the next;
// there is no identity or lifecycle beyond a single refresh pass.
type Case struct {
	Number       string
	Summary      string
	Severity     string
	Status       string
	Product      string
	LastModified string
}

// URL returns the customer-portal deep link for the case.
func (c Case) URL() string {
	return caseURLPrefix + c.Number
}

// WaitingOnRedHat reports whether the ball is in Red Hat's court.
func (c Case) WaitingOnRedHat() bool {
	return c.Status == StatusWaitingOnRedHat
}

// tokenResponse mirrors the SSO token endpoint payload. Only the
// fields the client consumes are declared.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// caseFilterRequest mirrors the /support/v1/cases/filter body.
type caseFilterRequest struct {
	AccountNumber string   `json:"accountNumber"`
	Statuses      []string `json:"statuses"`
}

// caseFilterResponse mirrors the /support/v1/cases/filter payload.
type caseFilterResponse struct {
	Cases []caseRecord `json:"cases"`
}

// caseRecord describes one case entry in transport form.
type caseRecord struct {
	CaseNumber       string `json:"caseNumber"`
	Summary          string `json:"summary"`
	Severity         string `json:"severity"`
	Status           string `json:"status"`
	Product          string `json:"product"`
	LastModifiedDate string `json:"lastModifiedDate"`
}

// toCase maps a wire record into display form, truncating the summary
// and leaving absent fields as empty strings.
func (r caseRecord) toCase() Case {
	return Case{
		Number:       r.CaseNumber,
		Summary:      truncateRunes(r.Summary, summaryMaxRunes),
		Severity:     r.Severity,
		Status:       r.Status,
		Product:      r.Product,
		LastModified: r.LastModifiedDate,
	}
}

// truncateRunes cuts s to at most max runes. Truncating runes instead
// of bytes keeps multibyte summaries intact.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
