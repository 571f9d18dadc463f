package types

// Section structs for the valuation form. Every field is optional on the
// wire; validate tags only constrain a value once it is present.

type Overview struct {
	JobNumber          string `json:"jobNumber,omitempty" validate:"omitempty,max=64"`
	Client             string `json:"client,omitempty" validate:"omitempty,max=256"`
	ValuerName         string `json:"valuerName,omitempty" validate:"omitempty,max=256"`
	InspectionDate     string `json:"inspectionDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PropertyAddress    string `json:"propertyAddress,omitempty" validate:"omitempty,max=512"`
	PurposeOfValuation string `json:"purposeOfValuation,omitempty" validate:"omitempty,oneof=mortgage sale purchase taxation litigation internal"`
	InterestValued     string `json:"interestValued,omitempty" validate:"omitempty,max=128"`
}

type ValuationDetails struct {
	LandValue         *float64 `json:"landValue,omitempty" validate:"omitempty,gte=0"`
	ImprovementsValue *float64 `json:"improvementsValue,omitempty" validate:"omitempty,gte=0"`
	MarketValue       *float64 `json:"marketValue,omitempty" validate:"omitempty,gte=0"`
	ValuationDate     string   `json:"valuationDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	GSTTreatment      string   `json:"gstTreatment,omitempty" validate:"omitempty,oneof=inclusive exclusive not-applicable"`
}

type PropertyDetails struct {
	PropertyType  string   `json:"propertyType,omitempty" validate:"omitempty,max=128"`
	YearBuilt     *int     `json:"yearBuilt,omitempty" validate:"omitempty,gte=1800,lte=2100"`
	Bedrooms      *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms     *int     `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	CarSpaces     *int     `json:"carSpaces,omitempty" validate:"omitempty,gte=0"`
	LivingAreaSqm *float64 `json:"livingAreaSqm,omitempty" validate:"omitempty,gte=0"`
	Construction  string   `json:"construction,omitempty" validate:"omitempty,max=256"`
}

type LocationDetails struct {
	Suburb          string   `json:"suburb,omitempty" validate:"omitempty,max=128"`
	State           string   `json:"state,omitempty" validate:"omitempty,max=64"`
	Postcode        string   `json:"postcode,omitempty" validate:"omitempty,numeric,min=3,max=10"`
	Latitude        *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	DistanceToCBDKm *float64 `json:"distanceToCbdKm,omitempty" validate:"omitempty,gte=0"`
	LocationNotes   string   `json:"locationNotes,omitempty"`
}

type RoomFeature struct {
	Name     string   `json:"name" validate:"required,max=128"`
	Flooring string   `json:"flooring,omitempty" validate:"omitempty,max=128"`
	Walls    string   `json:"walls,omitempty" validate:"omitempty,max=128"`
	Ceiling  string   `json:"ceiling,omitempty" validate:"omitempty,max=128"`
	Fixtures []string `json:"fixtures,omitempty" validate:"dive,max=128"`
}

type RoomFeatures struct {
	Rooms []RoomFeature `json:"rooms,omitempty" validate:"dive"`
}

// DescriptorItem holds a free-form labelled value. Value preserves the
// mixed shapes the form produces (text, numbers, flags, lists).
type DescriptorItem struct {
	Label string `json:"label" validate:"required,max=128"`
	Value Value  `json:"value"`
}

type Descriptors struct {
	Items []DescriptorItem `json:"items,omitempty" validate:"dive"`
}

type AncillaryItem struct {
	Description string `json:"description" validate:"required,max=256"`
	Condition   string `json:"condition,omitempty" validate:"omitempty,oneof=poor fair good excellent"`
}

type AncillaryImprovements struct {
	Items []AncillaryItem `json:"items,omitempty" validate:"dive"`
}

type StatutoryDetails struct {
	Zoning            string `json:"zoning,omitempty" validate:"omitempty,max=128"`
	LocalAuthority    string `json:"localAuthority,omitempty" validate:"omitempty,max=256"`
	TitleReference    string `json:"titleReference,omitempty" validate:"omitempty,max=128"`
	EasementsNoted    *bool  `json:"easementsNoted,omitempty"`
	LandTaxApplicable *bool  `json:"landTaxApplicable,omitempty"`
}

type SiteDetails struct {
	SiteAreaSqm *float64 `json:"siteAreaSqm,omitempty" validate:"omitempty,gte=0"`
	FrontageM   *float64 `json:"frontageM,omitempty" validate:"omitempty,gte=0"`
	DepthM      *float64 `json:"depthM,omitempty" validate:"omitempty,gte=0"`
	Topography  string   `json:"topography,omitempty" validate:"omitempty,max=256"`
	Services    []string `json:"services,omitempty" validate:"dive,max=128"`
}

type PlanningDetails struct {
	ZoneCode       string   `json:"zoneCode,omitempty" validate:"omitempty,max=64"`
	OverlayCodes   []string `json:"overlayCodes,omitempty" validate:"dive,max=64"`
	HeritageListed *bool    `json:"heritageListed,omitempty"`
	FloodProne     *bool    `json:"floodProne,omitempty"`
	PlanningNotes  string   `json:"planningNotes,omitempty"`
}

type GeneralComments struct {
	Comments            string   `json:"comments,omitempty"`
	CriticalAssumptions []string `json:"criticalAssumptions,omitempty" validate:"dive,max=512"`
}

// ComparableSale is one entry of market evidence. Entries are ordered and
// independent; no uniqueness is enforced.
type ComparableSale struct {
	Address         string   `json:"address" validate:"required,max=512"`
	SalePrice       *float64 `json:"salePrice,omitempty" validate:"omitempty,gte=0"`
	SaleDate        string   `json:"saleDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AdjustmentNotes string   `json:"adjustmentNotes,omitempty"`
	Attributes      Value    `json:"attributes,omitzero"`
}

type MarketEvidence struct {
	Sales []ComparableSale `json:"sales,omitempty" validate:"dive"`
}

type Annexure struct {
	Title string `json:"title" validate:"required,max=256"`
	URL   string `json:"url,omitempty" validate:"omitempty,url"`
}

type Annexures struct {
	Items []Annexure `json:"items,omitempty" validate:"dive"`
}
