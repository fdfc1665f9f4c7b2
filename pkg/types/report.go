package types

import "time"

// TimeLayout is the timestamp format used in report documents. Second
// precision, no zone; lexical order equals chronological order.
const TimeLayout = "2006-01-02T15:04:05"

// Timestamp formats t in the document timestamp layout.
func Timestamp(t time.Time) string {
	return t.Format(TimeLayout)
}

// Meta carries the identifying fields of a report. ID and OwnerID are set
// at creation and never change afterwards.
type Meta struct {
	ID            string `json:"id"`
	OwnerID       string `json:"owner_id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	Title         string `json:"title"`
	SchemaVersion int    `json:"schema_version"`
}

// Event describes when the incident occurred, was observed, and was
// reported to the operations center. Dates and times are kept as separate
// strings the way the entry forms capture them.
type Event struct {
	DateOccurrence string `json:"date_occurrence"`
	TimeOccurrence string `json:"time_occurrence"`
	DateObserved   string `json:"date_observed"`
	TimeObserved   string `json:"time_observed"`
	DateReported   string `json:"date_reported"`
	TimeReported   string `json:"time_reported"`
	EventNumber    string `json:"event_number"`
	ObjectType     string `json:"object_type"`
	Description    string `json:"description"`
}

// Location is the incident address. GPS coordinates are pointers so that
// "not recorded" is distinguishable from 0,0.
type Location struct {
	Region            string   `json:"region"`
	City              string   `json:"city"`
	Street            string   `json:"street"`
	HouseNumber       string   `json:"house_number"`
	OrientationNumber string   `json:"orientation_number"`
	ParcelNumber      string   `json:"parcel_number"`
	PostalCode        string   `json:"postal_code"`
	GPSLat            *float64 `json:"gps_lat"`
	GPSLon            *float64 `json:"gps_lon"`
	GPSNote           string   `json:"gps_note"`
}

// Conditions records the environment at the time of the incident.
type Conditions struct {
	Weather      string `json:"weather"`
	TemperatureC int    `json:"temperature_c"`
	Visibility   string `json:"visibility"`
}

// PartyAddress is the address block repeated inside Party records.
type PartyAddress struct {
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
}

// Party kinds.
const (
	PartyNaturalPerson = "natural_person"
	PartyLegalEntity   = "legal_entity"
	PartySelfEmployed  = "self_employed"
)

// Party is an owner or user of the affected object. The field set is the
// superset across the three kinds; unused fields stay empty.
type Party struct {
	Kind           string       `json:"kind"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	BirthDate      string       `json:"birth_date"`
	CompanyName    string       `json:"company_name"`
	CompanyID      string       `json:"company_id"`
	IDCard         string       `json:"id_card"`
	Address        PartyAddress `json:"address"`
	Representative *Party       `json:"representative,omitempty"`
}

// Participants lists everyone involved on the response side plus the
// owners and users of the affected object.
type Participants struct {
	Investigators []string `json:"investigators"`
	Commander     string   `json:"commander"`
	Units         string   `json:"units"`
	Assist        string   `json:"assist"`
	Owners        []Party  `json:"owners"`
	Users         []Party  `json:"users"`
}

// Findings holds the investigator's conclusions.
type Findings struct {
	Origin            string `json:"origin"`
	Cause             string `json:"cause"`
	DamageEstimateCZK int    `json:"damage_estimate_czk"`
}

// Witness is one interviewed person.
type Witness struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Contact   string `json:"contact"`
	Statement string `json:"statement"`
}

// Witnesses collects the free-form statement record and the structured
// witness list.
type Witnesses struct {
	Statements string    `json:"statements"`
	People     []Witness `json:"people"`
}

// Sketch holds the annotation text for the scene sketch. The drawing
// itself lives in the attachments directory.
type Sketch struct {
	Note string `json:"note"`
}

// Notes is the shared free-form notes section.
type Notes struct {
	Text string `json:"text"`
}

// Attachment kinds.
const (
	AttachmentSketch = "sketch"
	AttachmentPhoto  = "photo"
	AttachmentFile   = "file"
)

// Attachment references one stored file. Entries are append-only; they are
// never edited after being recorded.
type Attachment struct {
	Kind         string `json:"kind"`
	OriginalName string `json:"original_name"`
	StoredPath   string `json:"stored_path"`
	UploadedAt   string `json:"uploaded_at"`
}

// Report is one persisted incident report document.
type Report struct {
	Meta         Meta         `json:"meta"`
	Event        Event        `json:"event"`
	Location     Location     `json:"location"`
	Conditions   Conditions   `json:"conditions"`
	Participants Participants `json:"participants"`
	Findings     Findings     `json:"findings"`
	Witnesses    Witnesses    `json:"witnesses"`
	Sketch       Sketch       `json:"sketch"`
	Notes        Notes        `json:"notes"`
	Attachments  []Attachment `json:"attachments"`
}

// Touch refreshes the modification timestamp.
func (r *Report) Touch(now time.Time) {
	r.Meta.UpdatedAt = Timestamp(now)
}

// SectionNames lists the editable sections in document order. Meta and
// attachments are managed by the store and session, not by field edits.
var SectionNames = []string{
	"event", "location", "conditions", "participants",
	"findings", "witnesses", "sketch", "notes",
}

// IsSection reports whether name is an editable section.
func IsSection(name string) bool {
	for _, s := range SectionNames {
		if s == name {
			return true
		}
	}
	return false
}

// Summary is the listing view of one report.
type Summary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	OwnerID   string `json:"owner_id"`
	CreatedAt string `json:"created_at"`
}
