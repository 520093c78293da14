package rules

import (
	"fmt"

	"github.com/factoryedge/machine-rule-engine/pkg/types"
	"github.com/shopspring/decimal"
)

// Condition compares a reading value against a rule threshold. Values
// are exact decimals end to end, so equality at a threshold boundary is
// well defined and does not flicker the way float comparison would.
func Condition(value, threshold decimal.Decimal, operator string) (bool, error) {
	switch operator {
	case types.OperatorGreaterThan:
		return value.GreaterThan(threshold), nil
	case types.OperatorLessThan:
		return value.LessThan(threshold), nil
	case types.OperatorGreaterThanOrEqual:
		return value.GreaterThanOrEqual(threshold), nil
	case types.OperatorLessThanOrEqual:
		return value.LessThanOrEqual(threshold), nil
	case types.OperatorEqual:
		return value.Equal(threshold), nil
	case types.OperatorNotEqual:
		return !value.Equal(threshold), nil
	default:
		return false, fmt.Errorf("unknown operator %q", operator)
	}
}

func validOperator(operator string) bool {
	switch operator {
	case types.OperatorGreaterThan, types.OperatorLessThan,
		types.OperatorGreaterThanOrEqual, types.OperatorLessThanOrEqual,
		types.OperatorEqual, types.OperatorNotEqual:
		return true
	}
	return false
}
