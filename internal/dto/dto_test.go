package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	var req dto.UpdateCustomerRequest

	require.NoError(t, json.Unmarshal([]byte(`{"active": false}`), &req))
	assert.True(t, req.Active.Set)
	assert.False(t, req.Active.Value)
	assert.False(t, req.Name.Set)

	err := json.Unmarshal([]byte(`{"name": null}`), &dto.UpdateCustomerRequest{})
	assert.ErrorIs(t, err, dto.ErrNullNotAllowed)
}

func TestNullable_ThreeStates(t *testing.T) {
	var absent, null, value dto.UpdateProjectRequest

	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"department_id": null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"department_id": 3}`), &value))

	assert.False(t, absent.DepartmentID.Set)

	assert.True(t, null.DepartmentID.Set)
	assert.Nil(t, null.DepartmentID.Value)

	assert.True(t, value.DepartmentID.Set)
	require.NotNil(t, value.DepartmentID.Value)
	assert.Equal(t, int64(3), *value.DepartmentID.Value)
}

func TestNullable_Apply(t *testing.T) {
	current := int64(7)
	dst := &current

	assert.False(t, dto.Nullable[int64]{}.Apply(&dst))
	require.NotNil(t, dst)
	assert.Equal(t, int64(7), *dst)

	assert.True(t, dto.NullableOf(int64(9)).Apply(&dst))
	require.NotNil(t, dst)
	assert.Equal(t, int64(9), *dst)

	assert.True(t, dto.NullOf[int64]().Apply(&dst))
	assert.Nil(t, dst)
}

func TestValidator_CreateRequests(t *testing.T) {
	v := dto.NewValidator()

	tests := []struct {
		name    string
		req     any
		wantErr bool
	}{
		{"customer ok", &dto.CreateCustomerRequest{Name: "Acme"}, false},
		{"customer blank name", &dto.CreateCustomerRequest{Name: "   "}, true},
		{"customer empty name", &dto.CreateCustomerRequest{}, true},
		{"customer free-form contact", &dto.CreateCustomerRequest{Name: "Acme", ContactEmail: strPtr("bob at acme")}, false},
		{"customer empty contact", &dto.CreateCustomerRequest{Name: "Acme", ContactEmail: strPtr("")}, false},
		{"customer long contact", &dto.CreateCustomerRequest{Name: "Acme", ContactEmail: strPtr(strings.Repeat("a", 256))}, true},
		{"department missing customer", &dto.CreateDepartmentRequest{Name: "R&D"}, true},
		{"project ok", &dto.CreateProjectRequest{Name: "P", CustomerID: 1}, false},
		{"project bad department", &dto.CreateProjectRequest{Name: "P", CustomerID: 1, DepartmentID: int64Ptr(0)}, true},
		{"entry ok", &dto.CreateTimeEntryRequest{ProjectID: 1, WorkDate: "2024-01-01", Hours: 0.01}, false},
		{"entry zero hours", &dto.CreateTimeEntryRequest{ProjectID: 1, WorkDate: "2024-01-01", Hours: 0}, true},
		{"entry negative hours", &dto.CreateTimeEntryRequest{ProjectID: 1, WorkDate: "2024-01-01", Hours: -1}, true},
		{"entry bad date", &dto.CreateTimeEntryRequest{ProjectID: 1, WorkDate: "01/02/2024", Hours: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UpdateRequests(t *testing.T) {
	v := dto.NewValidator()

	tests := []struct {
		name    string
		req     any
		wantErr bool
	}{
		{"empty customer update", &dto.UpdateCustomerRequest{}, false},
		{"blank name", &dto.UpdateCustomerRequest{Name: dto.Some(" ")}, true},
		{"null email", &dto.UpdateCustomerRequest{ContactEmail: dto.NullOf[string]()}, false},
		{"free-form email", &dto.UpdateCustomerRequest{ContactEmail: dto.NullableOf("bad")}, false},
		{"empty email", &dto.UpdateCustomerRequest{ContactEmail: dto.NullableOf("")}, false},
		{"long email", &dto.UpdateCustomerRequest{ContactEmail: dto.NullableOf(strings.Repeat("a", 256))}, true},
		{"zero hours", &dto.UpdateTimeEntryRequest{Hours: dto.Some(0.0)}, true},
		{"negative hours", &dto.UpdateTimeEntryRequest{Hours: dto.Some(-2.0)}, true},
		{"positive hours", &dto.UpdateTimeEntryRequest{Hours: dto.Some(0.5)}, false},
		{"bad work date", &dto.UpdateTimeEntryRequest{WorkDate: dto.Some("2024-02-30")}, true},
		{"zero project", &dto.UpdateTimeEntryRequest{ProjectID: dto.Some(int64(0))}, true},
		{"detach department", &dto.UpdateProjectRequest{DepartmentID: dto.NullOf[int64]()}, false},
		{"zero department", &dto.UpdateProjectRequest{DepartmentID: dto.NullableOf(int64(0))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_PageQuery(t *testing.T) {
	v := dto.NewValidator()

	assert.NoError(t, v.Struct(&dto.ListCustomersQuery{PageQuery: dto.PageQuery{Limit: domain.MaxLimit}}))
	assert.Error(t, v.Struct(&dto.ListCustomersQuery{PageQuery: dto.PageQuery{Limit: domain.MaxLimit + 1}}))
	assert.Error(t, v.Struct(&dto.ListCustomersQuery{PageQuery: dto.PageQuery{Skip: -1, Limit: 10}}))
	assert.Error(t, v.Struct(&dto.ListCustomersQuery{PageQuery: dto.PageQuery{Limit: 0}}))
}

func TestParseDate(t *testing.T) {
	d, err := dto.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", dto.FormatDate(d))

	_, err = dto.ParseDate("2023-02-29")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
