package models

import "time"

// Document types supported per identity. Exactly one document is generated,
// chosen at creation and never re-rolled.
type DocumentType string

const (
	DocumentTypeIDCard        DocumentType = "idcard"
	DocumentTypePassport      DocumentType = "passport"
	DocumentTypeDriverLicense DocumentType = "driverlicense"
)

// DocumentTypes lists all valid document types.
var DocumentTypes = []DocumentType{DocumentTypeIDCard, DocumentTypePassport, DocumentTypeDriverLicense}

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeIDCard, DocumentTypePassport, DocumentTypeDriverLicense:
		return true
	}
	return false
}

// Social media platforms an identity may carry a profile on.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedin  Platform = "linkedin"
	PlatformTiktok    Platform = "tiktok"
)

// Platforms lists all supported platforms.
var Platforms = []Platform{PlatformFacebook, PlatformTwitter, PlatformInstagram, PlatformLinkedin, PlatformTiktok}

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

// Card networks for generated credit cards.
const (
	CardVisa       = "visa"
	CardMastercard = "mastercard"
	CardAmex       = "amex"
	CardDiscover   = "discover"
)

// Identity is one synthetic person record with all associated sub-documents.
type Identity struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      string    `json:"gender"`
	DateOfBirth string    `json:"date_of_birth"`
	Age         int       `json:"age"`
	Nationality string    `json:"nationality"`
	Address     Address   `json:"address"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`

	AutoDelete   AutoDelete   `json:"auto_delete"`
	DocumentType DocumentType `json:"document_type"`
	Documents    Documents    `json:"documents"`

	SocialMedia map[Platform]*SocialProfile `json:"social_media"`
	TempEmail   TempEmail                   `json:"temp_email"`
	Banking     Banking                     `json:"banking"`
}

// Address is always fully populated.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// AutoDelete is the user-adjustable rolling expiry clock, independent of the
// fixed 7-day ExpiresAt deadline. DeleteAt is always populated, even when
// disabled.
type AutoDelete struct {
	Enabled        bool      `json:"enabled"`
	DeleteAt       time.Time `json:"delete_at"`
	TimeoutMinutes int       `json:"timeout_minutes"`
}

// Documents holds per-type sub-records. Only the entry matching the identity's
// DocumentType is ever populated; the others stay nil and must survive
// persistence as absent.
type Documents struct {
	IDCard        *IDCard        `json:"idcard,omitempty"`
	Passport      *Passport      `json:"passport,omitempty"`
	DriverLicense *DriverLicense `json:"driverlicense,omitempty"`
}

type IDCard struct {
	Number           string    `json:"number"`
	IssueDate        time.Time `json:"issue_date"`
	ExpiryDate       time.Time `json:"expiry_date"`
	IssuingAuthority string    `json:"issuing_authority"`
}

type Passport struct {
	Number         string    `json:"number"`
	IssueDate      time.Time `json:"issue_date"`
	ExpiryDate     time.Time `json:"expiry_date"`
	IssuingCountry string    `json:"issuing_country"`
	PassportType   string    `json:"passport_type"`
}

type DriverLicense struct {
	Number       string    `json:"number"`
	IssueDate    time.Time `json:"issue_date"`
	ExpiryDate   time.Time `json:"expiry_date"`
	IssuingState string    `json:"issuing_state"`
	Class        string    `json:"class"`
	Restrictions []string  `json:"restrictions"`
}

type SocialProfile struct {
	Username   string    `json:"username"`
	ProfileURL string    `json:"profile_url"`
	Followers  int       `json:"followers"`
	Following  int       `json:"following"`
	Bio        string    `json:"bio"`
	JoinDate   time.Time `json:"join_date"`
}

// TempEmail is generated before the rest of the contact block; the identity's
// Email field always equals Address.
type TempEmail struct {
	Address   string `json:"address"`
	AccessURL string `json:"access_url"`
	Password  string `json:"password,omitempty"`
	Provider  string `json:"provider"`
}

type Banking struct {
	BankName      string      `json:"bank_name"`
	AccountNumber string      `json:"account_number"`
	RoutingNumber string      `json:"routing_number"`
	AccountType   string      `json:"account_type"`
	Balance       float64     `json:"balance"`
	Currency      string      `json:"currency"`
	CreditCard    *CreditCard `json:"credit_card,omitempty"`
}

type CreditCard struct {
	Number     string `json:"number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	Type       string `json:"type"`
}

// AvatarURL derives the avatar reference for an identity id. The same id always
// resolves to the same avatar across reloads.
func AvatarURL(id string) string {
	return "https://i.pravatar.cc/150?u=" + id
}

// ActiveDocumentNumber returns the number of the identity's active document,
// or "" when the document is absent.
func (i *Identity) ActiveDocumentNumber() string {
	switch i.DocumentType {
	case DocumentTypeIDCard:
		if i.Documents.IDCard != nil {
			return i.Documents.IDCard.Number
		}
	case DocumentTypePassport:
		if i.Documents.Passport != nil {
			return i.Documents.Passport.Number
		}
	case DocumentTypeDriverLicense:
		if i.Documents.DriverLicense != nil {
			return i.Documents.DriverLicense.Number
		}
	}
	return ""
}

// ActiveDocumentDates returns the issue and expiry dates of the active
// document. Zero times mean the document is absent.
func (i *Identity) ActiveDocumentDates() (issued, expires time.Time) {
	switch i.DocumentType {
	case DocumentTypeIDCard:
		if d := i.Documents.IDCard; d != nil {
			return d.IssueDate, d.ExpiryDate
		}
	case DocumentTypePassport:
		if d := i.Documents.Passport; d != nil {
			return d.IssueDate, d.ExpiryDate
		}
	case DocumentTypeDriverLicense:
		if d := i.Documents.DriverLicense; d != nil {
			return d.IssueDate, d.ExpiryDate
		}
	}
	return time.Time{}, time.Time{}
}

// HasActiveDocument reports whether the sub-document matching DocumentType is
// populated.
func (i *Identity) HasActiveDocument() bool {
	return i.ActiveDocumentNumber() != ""
}
