package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(struct {
			Start Date `json:"start"`
		}{Start: NewDate(2025, time.January, 1)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"start":"2025-01-01"}`, string(data))
	})

	t.Run("unmarshal calendar date", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2025-12-31"`), &d))
		assert.Equal(t, NewDate(2025, time.December, 31), d)
	})

	t.Run("unmarshal timestamp keeps the UTC day", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2025-03-10T23:30:00-02:00"`), &d))
		assert.Equal(t, "2025-03-11", d.String())
	})

	t.Run("unmarshal rejects garbage", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"31/12/2025"`), &d))
		assert.Error(t, json.Unmarshal([]byte(`20251231`), &d))
	})
}

func TestDateScanAndValue(t *testing.T) {
	d := NewDate(2025, time.June, 15)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", v)

	testCases := []struct {
		name  string
		input interface{}
	}{
		{"time", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"string", "2025-06-15"},
		{"bytes", []byte("2025-06-15")},
		{"sqlite timestamp text", "2025-06-15 00:00:00+00:00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var scanned Date
			require.NoError(t, scanned.Scan(tc.input))
			assert.Equal(t, d, scanned)
		})
	}

	var scanned Date
	assert.Error(t, scanned.Scan(42))
}

func TestLicenseCovers(t *testing.T) {
	lic := &License{
		StartDate: NewDate(2025, time.January, 1),
		EndDate:   NewDate(2025, time.December, 31),
	}

	assert.True(t, lic.Covers(NewDate(2025, time.January, 1)))
	assert.True(t, lic.Covers(NewDate(2025, time.June, 15)))
	assert.True(t, lic.Covers(NewDate(2025, time.December, 31)))
	assert.False(t, lic.Covers(NewDate(2024, time.December, 31)))
	assert.False(t, lic.Covers(NewDate(2026, time.January, 1)))
}

func TestLicenseDeriveStatus(t *testing.T) {
	end := NewDate(2025, time.December, 31)

	testCases := []struct {
		name   string
		demo   bool
		today  Date
		status LicenseStatus
	}{
		{"well inside range", false, NewDate(2025, time.June, 1), LicenseStatusActive},
		{"within expiring window", false, NewDate(2025, time.December, 15), LicenseStatusExpiring},
		{"demo license", true, NewDate(2025, time.June, 1), LicenseStatusDemo},
		{"ended", false, NewDate(2026, time.January, 1), LicenseStatusPassive},
		{"ended demo", true, NewDate(2026, time.January, 1), LicenseStatusPassive},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lic := &License{StartDate: NewDate(2025, time.January, 1), EndDate: end, IsDemo: tc.demo}
			assert.Equal(t, tc.status, lic.DeriveStatus(tc.today))
		})
	}
}

func TestAuditFields(t *testing.T) {
	first := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	inst := &Institution{}
	var auditable Auditable = inst

	auditable.StampCreated("creator@school.test", first)
	auditable.StampCreated("someone-else@school.test", later)
	assert.Equal(t, first, inst.CreatedAt)
	assert.Equal(t, "creator@school.test", inst.CreatedBy)
	assert.Nil(t, inst.ModifiedAt)

	auditable.StampModified("editor@school.test", later)
	require.NotNil(t, inst.ModifiedAt)
	assert.Equal(t, later, *inst.ModifiedAt)
	assert.Equal(t, "editor@school.test", *inst.ModifiedBy)
	assert.Equal(t, first, inst.CreatedAt)
}

func TestBaseModelBeforeCreate(t *testing.T) {
	var school School
	require.NoError(t, school.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, school.ID)

	fixed := uuid.New()
	class := Class{BaseModel: BaseModel{ID: fixed}}
	require.NoError(t, class.BeforeCreate(nil))
	assert.Equal(t, fixed, class.ID)
}

func TestEnums(t *testing.T) {
	status, ok := ParseUserStatus(" Inactive ")
	assert.True(t, ok)
	assert.Equal(t, UserStatusInactive, status)

	_, ok = ParseUserStatus("banned")
	assert.False(t, ok)

	assert.True(t, InstitutionTypePrivate.IsValid())
	assert.False(t, InstitutionType("charter").IsValid())
	assert.True(t, LicenseStatusExpiring.IsValid())
}
