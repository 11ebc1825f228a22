package form

// FacilityRequiredMessage is shown when no facility type is selected.
const FacilityRequiredMessage = "Please select a facility type."

// ValidateIdentity checks step 1.
func ValidateIdentity(id Identity) Result[Identity] {
	return Validate(id,
		Field(KeyLegalEntityName, func(i Identity) string { return i.LegalEntityName }, Required("Legal Entity Name")),
		Field(KeyDoingBusinessAs, func(i Identity) string { return i.DoingBusinessAs }, Required("Doing Business As (d/b/a) Name")),
		Field(KeyFirstName, func(i Identity) string { return i.Primary.FirstName }, Required("First Name")),
		Field(KeyLastName, func(i Identity) string { return i.Primary.LastName }, Required("Last Name")),
		Field(KeyTitle, func(i Identity) string { return i.Primary.Title }, Required("Title")),
		Field(KeyWorkPhone, func(i Identity) string { return i.Primary.WorkPhone }, Required("Work Phone")),
		Field(KeyEmail, func(i Identity) string { return i.Primary.Email }, Required("Email"), EmailShaped),
	)
}

// ValidateFacility checks step 2.
func ValidateFacility(f Facility) Result[Facility] {
	return Validate(f, func(f Facility) error {
		if _, err := ParseFacilityType(string(f.Type)); err != nil {
			return ValidationError{Field: KeyFacilityType, Message: FacilityRequiredMessage}
		}
		return nil
	})
}

// ValidateLeadership checks step 3. The CEO and invoicing contacts and the
// billing address are always required; the Director of Quality only when
// directorRequired is set. Optional contacts still get an email shape check.
func ValidateLeadership(l Leadership, directorRequired bool) Result[Leadership] {
	validators := []Validator[Leadership]{
		contactRules(RoleCEO, true),
		contactRules(RoleDirector, directorRequired),
		contactRules(RoleInvoicing, true),
		Field(KeyBillingStreet, func(l Leadership) string { return l.Billing.Street }, Required("Street address")),
		Field(KeyBillingCity, func(l Leadership) string { return l.Billing.City }, Required("City")),
		Field(KeyBillingState, func(l Leadership) string { return l.Billing.State }, Required("State"), OneOfStates),
		Field(KeyBillingZIP, func(l Leadership) string { return l.Billing.ZIP }, Required("ZIP Code")),
	}
	return Validate(l, validators...)
}

func contactRules(role Role, required bool) Validator[Leadership] {
	get := func(l Leadership) Contact { return *l.Contact(role) }
	var rules []Validator[Leadership]
	if required {
		rules = append(rules,
			Field(ContactKey(role, SuffixFirstName), func(l Leadership) string { return get(l).FirstName }, Required("First name")),
			Field(ContactKey(role, SuffixLastName), func(l Leadership) string { return get(l).LastName }, Required("Last name")),
			Field(ContactKey(role, SuffixPhone), func(l Leadership) string { return get(l).Phone }, Required("Phone")),
			Field(ContactKey(role, SuffixEmail), func(l Leadership) string { return get(l).Email }, Required("Email"), EmailShaped),
		)
	} else {
		rules = append(rules,
			Field(ContactKey(role, SuffixEmail), func(l Leadership) string { return get(l).Email }, EmailShaped),
		)
	}
	return func(l Leadership) error {
		return Errors(Validate(l, rules...)).orNil()
	}
}

// orNil keeps a nil ValidationErrors from turning into a non-nil error.
func (e ValidationErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidateSites checks step 4, which has no required fields.
func ValidateSites(s Sites) Result[Sites] {
	return Validate(s)
}

// ValidateServices checks step 5. Nothing is required; the two single dates
// must be well formed when present.
func ValidateServices(s Services) Result[Services] {
	return Validate(s,
		Field(KeyStrokeCertExpiry, func(s Services) string { return s.StrokeCertExpiry }, ISODateValue),
		Field(KeyApplicationDate, func(s Services) string { return s.ApplicationDate }, ISODateValue),
	)
}
