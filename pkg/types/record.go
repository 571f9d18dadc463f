package types

import "time"

// ValuationRecord is the aggregate for one property valuation job. Every
// section is optional; a record comes into existence the first time any
// section is written for its id.
type ValuationRecord struct {
	ID                    string                 `db:"id" json:"id"`
	Overview              *Overview              `db:"overview" json:"overview,omitempty"`
	ValuationDetails      *ValuationDetails      `db:"valuation_details" json:"valuationDetails,omitempty"`
	PropertyDetails       *PropertyDetails       `db:"property_details" json:"propertyDetails,omitempty"`
	LocationDetails       *LocationDetails       `db:"location_details" json:"locationDetails,omitempty"`
	RoomFeatures          *RoomFeatures          `db:"room_features" json:"roomFeatures,omitempty"`
	Photos                Photos                 `db:"photos" json:"photos,omitempty"`
	Descriptors           *Descriptors           `db:"descriptors" json:"descriptors,omitempty"`
	AncillaryImprovements *AncillaryImprovements `db:"ancillary_improvements" json:"ancillaryImprovements,omitempty"`
	StatutoryDetails      *StatutoryDetails      `db:"statutory_details" json:"statutoryDetails,omitempty"`
	SiteDetails           *SiteDetails           `db:"site_details" json:"siteDetails,omitempty"`
	PlanningDetails       *PlanningDetails       `db:"planning_details" json:"planningDetails,omitempty"`
	GeneralComments       *GeneralComments       `db:"general_comments" json:"generalComments,omitempty"`
	MarketEvidence        *MarketEvidence        `db:"market_evidence" json:"marketEvidence,omitempty"`
	Annexures             *Annexures             `db:"annexures" json:"annexures,omitempty"`
	CreatedAt             time.Time              `db:"created_at" json:"createdAt"`
	UpdatedAt             time.Time              `db:"updated_at" json:"updatedAt"`
}
