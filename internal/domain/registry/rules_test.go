package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Matches(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		ok    bool
	}{
		{"tax id with 11 digits", FieldTaxID, "25845675391", true},
		{"tax id with a letter", FieldTaxID, "2584567539a", false},
		{"tax id too short", FieldTaxID, "2584567539", false},
		{"tax id too long", FieldTaxID, "258456753910", false},
		{"registration id with 14 digits", FieldRegistrationID, "12345678000199", true},
		{"registration id with 13 digits", FieldRegistrationID, "1234567800019", false},
		{"state registration with 9 digits", FieldStateRegistration, "123456789", true},
		{"state registration with 12 digits", FieldStateRegistration, "123456789012", false},
		{"postal code with 8 digits", FieldPostalCode, "12345678", true},
		{"postal code with dash", FieldPostalCode, "12345-678", false},
		{"phone with 10 digits", FieldPhoneNumber, "1123456789", true},
		{"phone with 12 digits", FieldPhoneNumber, "551123456789", true},
		{"phone with 9 digits", FieldPhoneNumber, "123456789", false},
		{"phone with 13 digits", FieldPhoneNumber, "5511234567890", false},
		{"owner id with 11 digits", FieldOwnerID, "25845675391", true},
		{"owner id with 14 digits", FieldOwnerID, "12345678000199", true},
		{"owner id with 15 digits", FieldOwnerID, "123456780001990", false},
		{"owner id with spaces", FieldOwnerID, " 25845675391", false},
		{"unicode digits are not digits", FieldPostalCode, "１２３４５６７８", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := Rules[tt.field]
			require.True(t, ok, tt.field)
			assert.Equal(t, tt.ok, rule.Matches(tt.value))
			assert.NotEmpty(t, rule.Message)
		})
	}
}

func TestRules_ByTag(t *testing.T) {
	t.Run("every rule is reachable by its tag", func(t *testing.T) {
		for _, rule := range Rules.Sorted() {
			got, ok := Rules.ByTag(rule.Tag)
			require.True(t, ok, rule.Tag)
			assert.Equal(t, rule.Field, got.Field)
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, ok := Rules.ByTag("nope")
		assert.False(t, ok)
	})
}

func TestRules_EmailIsNotAPatternRule(t *testing.T) {
	_, ok := Rules[FieldEmail]
	assert.False(t, ok)
}

func TestNewRuleSet_PanicsOnDuplicateField(t *testing.T) {
	rule := Rules[FieldTaxID]
	assert.Panics(t, func() { newRuleSet(rule, rule) })
}

func TestFieldErrors(t *testing.T) {
	t.Run("empty set is nil error", func(t *testing.T) {
		errs := FieldErrors{}
		assert.False(t, errs.HasErrors())
		assert.NoError(t, errs.OrNil())
	})

	t.Run("collects reasons per field", func(t *testing.T) {
		errs := FieldErrors{}
		errs.Add(FieldTaxID, "Must be exactly 11 digits.")
		errs.Add(FieldEmail, "Enter a valid email address.")

		require.Error(t, errs.OrNil())
		assert.Equal(t, []string{FieldEmail, FieldTaxID}, errs.Fields())
		assert.Equal(t, "validation failed: email: Enter a valid email address.; taxId: Must be exactly 11 digits.", errs.Error())
	})

	t.Run("unique violation names the kind and field", func(t *testing.T) {
		errs := NewUniqueViolation(KindNaturalPerson, FieldTaxID)
		assert.Equal(t, []string{"natural person with this taxId already exists."}, errs[FieldTaxID])
	})
}

func TestGoodType(t *testing.T) {
	assert.True(t, GoodTypeRealEstate.IsValid())
	assert.True(t, GoodTypeVehicle.IsValid())
	assert.True(t, GoodTypeCompany.IsValid())
	assert.False(t, GoodType("imovel").IsValid())
	assert.False(t, GoodType("").IsValid())
	assert.Equal(t, []GoodType{GoodTypeRealEstate, GoodTypeVehicle, GoodTypeCompany}, GoodTypes())
}
