package form

// Canonical field keys shared by the validators, the wizard views and the
// review assembler.
const (
	KeyLegalEntityName = "legalEntityName"
	KeyDoingBusinessAs = "doingBusinessAs"
	KeySameAsLegal     = "sameAsLegal"
	KeyFirstName       = "primary.firstName"
	KeyLastName        = "primary.lastName"
	KeyTitle           = "primary.title"
	KeyWorkPhone       = "primary.workPhone"
	KeyCellPhone       = "primary.cellPhone"
	KeyEmail           = "primary.email"

	KeyFacilityType = "facilityType"

	KeyBillingStreet = "billing.street"
	KeyBillingCity   = "billing.city"
	KeyBillingState  = "billing.state"
	KeyBillingZIP    = "billing.zip"

	KeyStrokeCertExpiry = "strokeCertExpiry"
	KeyApplicationDate  = "applicationDate"
	KeyThrombolytics    = "thrombolytics"
	KeyThrombectomies   = "thrombectomies"
	KeyOtherServices    = "otherServices"
)

// Contact field suffixes, joined to a Role key.
const (
	SuffixFirstName     = "firstName"
	SuffixLastName      = "lastName"
	SuffixPhone         = "phone"
	SuffixEmail         = "email"
	SuffixSameAsPrimary = "sameAsPrimary"
)

// ContactKey builds the key of a leadership contact field, e.g. "ceo.email".
func ContactKey(role Role, suffix string) string {
	return role.Key() + "." + suffix
}
