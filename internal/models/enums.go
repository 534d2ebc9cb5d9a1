package models

// Gender is the self-described gender shown on a profile.
type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "Non-Binary"
)

// Valid reports whether g is one of the supported values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonBinary:
		return true
	}
	return false
}

// RelationshipStatus is the relationship status shown on a profile.
type RelationshipStatus string

const (
	RelationshipSingle             RelationshipStatus = "Single"
	RelationshipMarried            RelationshipStatus = "Married"
	RelationshipInRelationship     RelationshipStatus = "In a relationship"
	RelationshipInOpenRelationship RelationshipStatus = "In an open relationship"
	RelationshipCasuallyDating     RelationshipStatus = "Casually dating"
)

func (s RelationshipStatus) Valid() bool {
	switch s {
	case RelationshipSingle, RelationshipMarried, RelationshipInRelationship,
		RelationshipInOpenRelationship, RelationshipCasuallyDating:
		return true
	}
	return false
}

// Sexuality is the sexuality shown on a profile.
type Sexuality string

const (
	SexualityStraight  Sexuality = "Straight"
	SexualityGay       Sexuality = "Gay"
	SexualityLesbian   Sexuality = "Lesbian"
	SexualityBisexual  Sexuality = "Bisexual"
	SexualityFluid     Sexuality = "Fluid"
	SexualityPansexual Sexuality = "Pansexual"
	SexualityQueer     Sexuality = "Queer"
	SexualityOther     Sexuality = "Other"
)

func (s Sexuality) Valid() bool {
	switch s {
	case SexualityStraight, SexualityGay, SexualityLesbian, SexualityBisexual,
		SexualityFluid, SexualityPansexual, SexualityQueer, SexualityOther:
		return true
	}
	return false
}

// Ethnicity is the ethnicity shown on a profile.
type Ethnicity string

const (
	EthnicityAmericanIndian  Ethnicity = "American Indian"
	EthnicityBlack           Ethnicity = "Black/African Decent"
	EthnicityEastAsian       Ethnicity = "East Asian"
	EthnicityHispanic        Ethnicity = "Hispanic/Latino"
	EthnicityMiddleEastern   Ethnicity = "Middle Eastern"
	EthnicityPacificIslander Ethnicity = "Pacific Islander"
	EthnicitySoutheastAsian  Ethnicity = "Southeast Asian"
	EthnicityWhite           Ethnicity = "White/Caucasian"
	EthnicityOther           Ethnicity = "Other"
)

func (e Ethnicity) Valid() bool {
	switch e {
	case EthnicityAmericanIndian, EthnicityBlack, EthnicityEastAsian, EthnicityHispanic,
		EthnicityMiddleEastern, EthnicityPacificIslander, EthnicitySoutheastAsian,
		EthnicityWhite, EthnicityOther:
		return true
	}
	return false
}

// PronounName is one entry of a user's pronoun set.
type PronounName string

const (
	PronounShe    PronounName = "she"
	PronounHer    PronounName = "her"
	PronounHers   PronounName = "hers"
	PronounHe     PronounName = "he"
	PronounHim    PronounName = "him"
	PronounHis    PronounName = "his"
	PronounThey   PronounName = "they"
	PronounThem   PronounName = "them"
	PronounTheirs PronounName = "theirs"
	PronounVe     PronounName = "ve"
	PronounVer    PronounName = "ver"
	PronounVis    PronounName = "vis"
	PronounZe     PronounName = "ze"
	PronounHir    PronounName = "hir"
	PronounHirs   PronounName = "hirs"
	PronounOther  PronounName = "other"
)

// MaxPronouns is the largest pronoun set an account may hold.
const MaxPronouns = 4

func (p PronounName) Valid() bool {
	switch p {
	case PronounShe, PronounHer, PronounHers, PronounHe, PronounHim, PronounHis,
		PronounThey, PronounThem, PronounTheirs, PronounVe, PronounVer, PronounVis,
		PronounZe, PronounHir, PronounHirs, PronounOther:
		return true
	}
	return false
}
