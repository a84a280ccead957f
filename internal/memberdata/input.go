package memberdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
)

// RawMemberInput is one member record as delivered by the association's member API.
type RawMemberInput struct {
	MemberID      string            `json:"memberid"`
	Email         string            `json:"email"`
	Memberships   []string          `json:"memberships"`
	FirstName     string            `json:"firstname,omitempty"`
	LastName      string            `json:"lastname,omitempty"`
	Phones        []string          `json:"phones,omitempty"`
	Licenses      []json.RawMessage `json:"licenses,omitempty"`
	Action        MemberAction      `json:"action,omitempty"`
	URL           *string           `json:"url,omitempty"`
	Addresses     []model.Address   `json:"addresses,omitempty"`
	MigrationData *MigrationData    `json:"migrationData,omitempty"`
}

// MigrationData carries the legacy-system fields attached to a member record.
type MigrationData struct {
	ScheduleCode    *string           `json:"schedule_code,omitempty"`
	ShowPhone       LooseString       `json:"show_phone,omitempty"`
	OptedOut        bool              `json:"opted_out,omitempty"`
	ShowMemberSince bool              `json:"show_member_since,omitempty"`
	LogoURL         *string           `json:"logo_url,omitempty"`
	DetailText      *string           `json:"detailtext,omitempty"`
	AddressInfo     map[string]string `json:"addressinfo,omitempty"`
	Website         *string           `json:"website,omitempty"`
	Interests       *string           `json:"interests,omitempty"`
}

// Accessors below are safe on a nil *MigrationData.

func (m *MigrationData) scheduleCode() *string {
	if m == nil {
		return nil
	}
	return m.ScheduleCode
}

func (m *MigrationData) showPhone() string {
	if m == nil {
		return ""
	}
	return string(m.ShowPhone)
}

func (m *MigrationData) optedOut() bool {
	return m != nil && m.OptedOut
}

func (m *MigrationData) showMemberSince() bool {
	return m != nil && m.ShowMemberSince
}

func (m *MigrationData) addressInfo() map[string]string {
	if m == nil {
		return nil
	}
	return m.AddressInfo
}

// LooseString decodes a JSON string, boolean or number into its string form.
// null and false decode to the empty string.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*s = ""
		return nil
	case bytes.Equal(data, []byte("true")):
		*s = "true"
		return nil
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}

	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("show_phone: unsupported value %s", data)
	}
	*s = LooseString(data)
	return nil
}
