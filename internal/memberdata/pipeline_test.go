package memberdata_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/memberdata"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
	sharedError "github.com/changhyeonkim/member-directory/go-api-server/internal/shared/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFinder serves records from a map and counts lookups.
type fakeFinder struct {
	records map[string]*model.MemberData
	err     error
	calls   int
}

func (f *fakeFinder) FindExisting(_ context.Context, memberID string) (*model.MemberData, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records[memberID], nil
}

func strPtr(s string) *string {
	return &s
}

func decodeInput(t *testing.T, raw string) *memberdata.RawMemberInput {
	t.Helper()

	var input memberdata.RawMemberInput
	require.NoError(t, json.Unmarshal([]byte(raw), &input))
	return &input
}

func TestValidateCoreMemberData(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		input    *memberdata.RawMemberInput
		expected bool
	}{
		{name: "nil input", input: nil, expected: false},
		{name: "missing memberid", input: &memberdata.RawMemberInput{Email: "a@b.com", Memberships: []string{"x"}}, expected: false},
		{name: "missing email", input: &memberdata.RawMemberInput{MemberID: "m1", Memberships: []string{"x"}}, expected: false},
		{name: "blank email", input: &memberdata.RawMemberInput{MemberID: "m1", Email: "   ", Memberships: []string{"x"}}, expected: false},
		{name: "missing memberships", input: &memberdata.RawMemberInput{MemberID: "m1", Email: "a@b.com"}, expected: false},
		{name: "empty memberships", input: &memberdata.RawMemberInput{MemberID: "m1", Email: "a@b.com", Memberships: []string{}}, expected: false},
		{name: "valid", input: &memberdata.RawMemberInput{MemberID: "m1", Email: "a@b.com", Memberships: []string{"x"}}, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, memberdata.ValidateCoreMemberData(ctx, tc.input))
			if !tc.expected {
				assert.Nil(t, memberdata.CreateCoreMemberData(ctx, tc.input, nil, 1))
			}
		})
	}
}

func TestCreateCoreMemberData_DropAndTrim(t *testing.T) {
	// Given: a dropped member with a padded email
	input := decodeInput(t, `{"memberid":"m1","email":" a@b.com ","memberships":["x"],"action":"drop"}`)

	// When
	record := memberdata.CreateCoreMemberData(context.Background(), input, nil, 3)

	// Then
	require.NotNil(t, record)
	assert.False(t, record.IsVisible)
	assert.Equal(t, "a@b.com", record.Email)
	assert.Equal(t, 3, record.PageNumber)
	assert.Equal(t, []string{}, record.Phones)
	assert.Empty(t, record.Licenses)
	assert.NotNil(t, record.Licenses)
	assert.Equal(t, []string{}, record.LocHash)
	assert.Equal(t, "", record.FullName)
	assert.Equal(t, "", record.ToShowPhone)
	assert.False(t, record.OptOut)
	assert.False(t, record.ShowABMP)
	assert.Equal(t, "", record.BookingURL)
	assert.Nil(t, record.APIBookingURL)
}

func TestCreateCoreMemberData_Defaults(t *testing.T) {
	input := decodeInput(t, `{
		"memberid":"m2",
		"email":"jane@example.com",
		"memberships":["massage"],
		"firstname":"  Jane ",
		"lastname":" Doe  ",
		"phones":["555-123-4567"],
		"action":"update",
		"url":"https://example.com/jane",
		"addresses":[{"key":"a","latitude":40.7128,"longitude":-74.006}],
		"migrationData":{"schedule_code":"https://book.example.com/jane","show_phone":true,"opted_out":true,"show_member_since":true}
	}`)

	record := memberdata.CreateCoreMemberData(context.Background(), input, nil, 1)

	require.NotNil(t, record)
	assert.Equal(t, "m2", record.MemberID)
	assert.Equal(t, "Jane", record.FirstName)
	assert.Equal(t, "Doe", record.LastName)
	assert.Equal(t, "Jane Doe", record.FullName)
	assert.Equal(t, []string{"555-123-4567"}, record.Phones)
	assert.Equal(t, "true", record.ToShowPhone)
	assert.Equal(t, "update", record.Action)
	assert.True(t, record.IsVisible)
	assert.True(t, record.OptOut)
	assert.True(t, record.ShowABMP)
	assert.Equal(t, []string{"dr5"}, record.LocHash)
	assert.True(t, record.ShowLicenseNo)
	assert.True(t, record.ShowName)
	assert.False(t, record.ShowBookingURL)
	assert.False(t, record.ShowWebsite)
	assert.True(t, record.ShowWixURL)
	assert.Equal(t, "https://example.com/jane", *record.URL)
	assert.Equal(t, "https://book.example.com/jane", record.BookingURL)
	assert.Equal(t, "https://book.example.com/jane", *record.APIBookingURL)
}

func TestCreateCoreMemberData_NonURLScheduleCode(t *testing.T) {
	input := decodeInput(t, `{"memberid":"m3","email":"a@b.com","memberships":["x"],"migrationData":{"schedule_code":"CALL-ME"}}`)

	record := memberdata.CreateCoreMemberData(context.Background(), input, nil, 1)

	require.NotNil(t, record)
	assert.Equal(t, "", record.BookingURL)
	require.NotNil(t, record.APIBookingURL)
	assert.Equal(t, "CALL-ME", *record.APIBookingURL)
}

func TestCreateCoreMemberData_MergesExisting(t *testing.T) {
	// Given: a persisted record with fields a migration run never writes
	existing := &model.MemberData{
		MemberID:        "m4",
		Email:           "old@example.com",
		FullName:        "Old Name",
		ShowWebsite:     true,
		ShowContactForm: true,
		ContactID:       strPtr("contact-1"),
		Website:         strPtr("https://old.example.com"),
	}
	input := decodeInput(t, `{"memberid":"m4","email":"new@example.com","memberships":["x"],"firstname":"New"}`)

	// When
	record := memberdata.CreateCoreMemberData(context.Background(), input, existing, 2)

	// Then: canonical fields shadow, untouched fields survive
	require.NotNil(t, record)
	assert.Equal(t, "new@example.com", record.Email)
	assert.Equal(t, "New", record.FullName)
	assert.False(t, record.ShowWebsite)
	assert.True(t, record.ShowContactForm)
	assert.Equal(t, "contact-1", *record.ContactID)
	assert.Equal(t, "https://old.example.com", *record.Website)

	// And: the baseline itself is not modified
	assert.Equal(t, "old@example.com", existing.Email)
	assert.True(t, existing.ShowWebsite)
}

func TestCreateCoreMemberData_Idempotent(t *testing.T) {
	existing := &model.MemberData{MemberID: "m5", ContactID: strPtr("c")}
	input := decodeInput(t, `{"memberid":"m5","email":"a@b.com","memberships":["x"],"phones":["1"],"addresses":[{"key":"a","latitude":1,"longitude":2}]}`)

	first := memberdata.CreateCoreMemberData(context.Background(), input, existing, 7)
	second := memberdata.CreateCoreMemberData(context.Background(), input, existing, 7)

	assert.Equal(t, first, second)
}

func TestEnrichWithMigrationData(t *testing.T) {
	t.Run("no-op without migration data", func(t *testing.T) {
		record := &model.MemberData{LogoImage: strPtr("logo.png")}

		memberdata.EnrichWithMigrationData(record, nil)

		assert.Equal(t, "logo.png", *record.LogoImage)
	})

	t.Run("always overwrites logo, about and address info", func(t *testing.T) {
		record := &model.MemberData{
			LogoImage:    strPtr("logo.png"),
			AboutYouHTML: strPtr("<p>hi</p>"),
			AddressInfo:  map[string]string{"a": "all"},
		}

		memberdata.EnrichWithMigrationData(record, &memberdata.MigrationData{})

		assert.Nil(t, record.LogoImage)
		assert.Nil(t, record.AboutYouHTML)
		assert.Nil(t, record.AddressInfo)
	})

	t.Run("website and interests only when present", func(t *testing.T) {
		record := &model.MemberData{Website: strPtr("https://keep.example.com"), AreasOfPractices: []string{"keep"}}

		memberdata.EnrichWithMigrationData(record, &memberdata.MigrationData{Website: strPtr(""), Interests: strPtr("")})

		assert.Equal(t, "https://keep.example.com", *record.Website)
		assert.False(t, record.ShowWebsite)
		assert.Equal(t, []string{"keep"}, record.AreasOfPractices)

		memberdata.EnrichWithMigrationData(record, &memberdata.MigrationData{
			Website:   strPtr("https://new.example.com"),
			Interests: strPtr("law, family ,, estate"),
		})

		assert.Equal(t, "https://new.example.com", *record.Website)
		assert.True(t, record.ShowWebsite)
		assert.Equal(t, []string{"law", "family", "estate"}, record.AreasOfPractices)
	})
}

func TestEnrichWithAddressData_LeavesAddressesWhenEmpty(t *testing.T) {
	existing := decodeAddresses(t, `[{"key":"old","addressStatus":"full_address"}]`)
	record := &model.MemberData{Addresses: existing}

	memberdata.EnrichWithAddressData(record, nil, map[string]string{"old": "none"})

	assert.Equal(t, existing, record.Addresses)
}

func TestGenerateUpdatedMemberData_InvalidInput(t *testing.T) {
	finder := &fakeFinder{}
	generator := memberdata.NewGenerator(finder)

	record, err := generator.GenerateUpdatedMemberData(context.Background(), &memberdata.RawMemberInput{MemberID: "m1"}, 1, true)

	assert.Nil(t, record)
	require.Error(t, err)
	assert.ErrorIs(t, err, memberdata.ErrInvalidMemberData)
	assert.Equal(t, 0, finder.calls)

	resp, ok := sharedError.ResolveDomainError(err)
	require.True(t, ok)
	assert.Equal(t, "MEMBER-003", resp.Code)
}

func TestGenerateUpdatedMemberData_OfflineSkipsLookup(t *testing.T) {
	finder := &fakeFinder{records: map[string]*model.MemberData{"m1": {MemberID: "m1", ContactID: strPtr("c1")}}}
	generator := memberdata.NewGenerator(finder)
	input := decodeInput(t, `{"memberid":"m1","email":"a@b.com","memberships":["x"]}`)

	record, err := generator.GenerateUpdatedMemberData(context.Background(), input, 1, false)

	require.NoError(t, err)
	assert.Equal(t, 0, finder.calls)
	assert.Nil(t, record.ContactID)
}

func TestGenerateUpdatedMemberData_LookupErrorPropagates(t *testing.T) {
	lookupErr := errors.New("data store unavailable")
	generator := memberdata.NewGenerator(&fakeFinder{err: lookupErr})
	input := decodeInput(t, `{"memberid":"m1","email":"a@b.com","memberships":["x"]}`)

	record, err := generator.GenerateUpdatedMemberData(context.Background(), input, 1, true)

	assert.Nil(t, record)
	assert.Same(t, lookupErr, err)
}

func TestGenerateUpdatedMemberData_FullPipeline(t *testing.T) {
	// Given
	generator := memberdata.NewGenerator(&fakeFinder{})
	input := decodeInput(t, `{
		"memberid":"m6",
		"email":"pat@example.com",
		"memberships":["x"],
		"firstname":"Pat",
		"lastname":"Lee",
		"addresses":[
			{"key":"home","latitude":40.7128,"longitude":-74.006,"street":"1 Main St"},
			{"key":"office","latitude":"bad","longitude":"bad"}
		],
		"migrationData":{
			"logo_url":"https://cdn.example.com/logo.png",
			"detailtext":"<p>About</p>",
			"addressinfo":{"home":"ALL","office":"none"},
			"website":"https://pat.example.com",
			"interests":"sports, prenatal"
		}
	}`)

	// When
	record, err := generator.GenerateUpdatedMemberData(context.Background(), input, 4, true)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Pat Lee", record.FullName)
	assert.Equal(t, []string{"dr5"}, record.LocHash)
	assert.Equal(t, "https://cdn.example.com/logo.png", *record.LogoImage)
	assert.Equal(t, "<p>About</p>", *record.AboutYouHTML)
	assert.Equal(t, map[string]string{"home": "ALL", "office": "none"}, record.AddressInfo)
	assert.True(t, record.ShowWebsite)
	assert.Equal(t, []string{"sports", "prenatal"}, record.AreasOfPractices)
	require.Len(t, record.Addresses, 2)
	assert.Equal(t, model.AddressStatusFullAddress, record.Addresses[0].AddressStatus)
	assert.Equal(t, model.AddressStatusDontShow, record.Addresses[1].AddressStatus)
}

func TestGenerateUpdatedMemberData_RoundTrip(t *testing.T) {
	// Given: a first run produces a record with migration fields
	finder := &fakeFinder{records: map[string]*model.MemberData{}}
	generator := memberdata.NewGenerator(finder)
	first := decodeInput(t, `{
		"memberid":"m7",
		"email":"sam@example.com",
		"memberships":["x"],
		"addresses":[{"key":"home","latitude":40.0,"longitude":-73.0}],
		"migrationData":{"website":"https://sam.example.com","interests":"neck, back","logo_url":"logo.png","addressinfo":{"home":"all"}}
	}`)
	baseline, err := generator.GenerateUpdatedMemberData(context.Background(), first, 1, true)
	require.NoError(t, err)
	baseline.ShowContactForm = true
	finder.records["m7"] = baseline

	// When: a second run only carries new interests
	second := decodeInput(t, `{"memberid":"m7","email":"sam@example.com","memberships":["x"],"migrationData":{"interests":"feet"}}`)
	updated, err := generator.GenerateUpdatedMemberData(context.Background(), second, 2, true)

	// Then: only the fields the second run touches change
	require.NoError(t, err)
	assert.Equal(t, []string{"feet"}, updated.AreasOfPractices)
	assert.Equal(t, 2, updated.PageNumber)
	assert.True(t, updated.ShowContactForm)
	assert.Equal(t, "https://sam.example.com", *updated.Website)
	assert.Equal(t, baseline.Addresses, updated.Addresses)
	assert.Equal(t, []string{}, updated.LocHash)
	assert.Nil(t, updated.LogoImage)
	assert.Nil(t, updated.AddressInfo)
	// showWebsite falls back to the builder default because no website was supplied
	assert.False(t, updated.ShowWebsite)
}
