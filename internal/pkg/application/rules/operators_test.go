package rules

import (
	"testing"

	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

func TestCondition(t *testing.T) {
	testCases := []struct {
		value     string
		threshold string
		operator  string
		expected  bool
	}{
		{"8.51", "8.5", types.OperatorGreaterThan, true},
		{"8.5", "8.5", types.OperatorGreaterThan, false},
		{"8.5", "8.5", types.OperatorGreaterThanOrEqual, true},
		{"8.4", "8.5", types.OperatorLessThan, true},
		{"8.5", "8.5", types.OperatorLessThan, false},
		{"8.5", "8.5", types.OperatorLessThanOrEqual, true},
		{"8.50", "8.5", types.OperatorEqual, true},
		{"0.1", "0.10000", types.OperatorEqual, true},
		{"8.5", "8.5", types.OperatorNotEqual, false},
		{"8.6", "8.5", types.OperatorNotEqual, true},
	}

	for _, tc := range testCases {
		t.Run(tc.value+tc.operator+tc.threshold, func(t *testing.T) {
			is := is.New(t)

			value, err := decimal.NewFromString(tc.value)
			is.NoErr(err)
			threshold, err := decimal.NewFromString(tc.threshold)
			is.NoErr(err)

			result, err := Condition(value, threshold, tc.operator)
			is.NoErr(err)
			is.Equal(result, tc.expected)
		})
	}
}

func TestConditionRejectsUnknownOperator(t *testing.T) {
	is := is.New(t)

	_, err := Condition(decimal.NewFromInt(1), decimal.NewFromInt(2), "between")
	is.True(err != nil)
}
