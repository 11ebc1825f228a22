package form

// sampleDraft is a fully populated draft used across tests.
func sampleDraft() Draft {
	d := New()
	d.Identity = Identity{
		LegalEntityName: "Acme General Hospital",
		DoingBusinessAs: "Acme General",
		Primary: PrimaryContact{
			FirstName: "Jane",
			LastName:  "Doe",
			Title:     "Administrator",
			WorkPhone: "555-0100",
			CellPhone: "555-0101",
			Email:     "jane@acme.example",
		},
	}
	d.Facility.Type = FacilityCriticalAccess
	d.Leadership = Leadership{
		CEO:       Contact{FirstName: "Carl", LastName: "Exec", Phone: "555-0200", Email: "ceo@acme.example"},
		Director:  Contact{FirstName: "Dana", LastName: "Quality", Phone: "555-0300", Email: "dq@acme.example"},
		Invoicing: Contact{FirstName: "Ivan", LastName: "Voice", Phone: "555-0400", Email: "ap@acme.example"},
		Billing:   Address{Street: "1 Main St", City: "Austin", State: "TX", ZIP: "73301"},
	}
	d.Sites.Mode = SiteMultiple
	d.Sites.Files.Add(FileDescriptor{Name: "sites.csv", Size: 1024})
	d.Services.ToggleService("Cardiac Services", "Open Heart")
	d.Services.AddOther("Telemetry")
	d.Services.ToggleStandard("Action2")
	d.Services.StrokeCertExpiry = "2027-01-31"
	d.Services.ApplicationDate = "2026-10-01"
	_, _ = d.Services.AddThrombolytic("2026-09-01")
	_, _ = d.Services.AddThrombectomy("2026-08-15")
	return d
}
