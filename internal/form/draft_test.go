package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	d := New()
	require.Equal(t, SiteSingle, d.Sites.Mode)
	require.Empty(t, d.Sites.Files)
	require.Empty(t, d.Identity.LegalEntityName)
	require.Empty(t, d.Services.SelectedNames())
}

func TestDraft_JSONRoundTrip(t *testing.T) {
	for name, d := range map[string]Draft{
		"empty":     New(),
		"populated": sampleDraft(),
	} {
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(d)
			require.NoError(t, err)

			var restored Draft
			require.NoError(t, json.Unmarshal(data, &restored))
			require.Equal(t, d, restored)
		})
	}
}

func TestDraft_CloneIsDeep(t *testing.T) {
	d := sampleDraft()
	c := d.Clone()
	require.Equal(t, d, c)

	c.Sites.Files.Add(FileDescriptor{Name: "more.xlsx", Size: 2048})
	c.Services.ToggleService("Cardiac Services", "Open Heart")
	c.Services.AddOther("Dialysis")
	_, _ = c.Services.AddThrombolytic("2026-09-02")

	require.Len(t, d.Sites.Files, 1)
	require.True(t, d.Services.IsSelected("Cardiac Services", "Open Heart"))
	require.Equal(t, []string{"Telemetry"}, d.Services.Other)
	require.Len(t, d.Services.Thrombolytics, 1)
}

func TestFullName(t *testing.T) {
	require.Equal(t, "Jane Doe", PrimaryContact{FirstName: "Jane", LastName: "Doe"}.FullName())
	require.Equal(t, "Jane", PrimaryContact{FirstName: "Jane"}.FullName())
	require.Equal(t, "Doe", Contact{LastName: "Doe"}.FullName())
	require.Equal(t, "", Contact{}.FullName())
}

func TestLeadershipContact(t *testing.T) {
	var l Leadership
	l.Contact(RoleDirector).FirstName = "Dana"
	require.Equal(t, "Dana", l.Director.FirstName)
	require.Nil(t, l.Contact(Role(9)))
}

func TestParseFacilityType(t *testing.T) {
	for _, ft := range FacilityTypes {
		got, err := ParseFacilityType(string(ft))
		require.NoError(t, err)
		require.Equal(t, ft, got)
	}
	_, err := ParseFacilityType("")
	require.Error(t, err)
	_, err = ParseFacilityType("Short-Term Acute Care")
	require.Error(t, err)
}

func TestIsStateCode(t *testing.T) {
	require.True(t, IsStateCode("CA"))
	require.True(t, IsStateCode("DC"))
	require.False(t, IsStateCode("ca"))
	require.False(t, IsStateCode(""))
	require.Len(t, States, 51)
}
