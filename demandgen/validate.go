// Package demandgen provides validation helpers enforcing the parameter
// contracts documented on Config. Generate itself performs no validation;
// callers handling user input are expected to run Validate first.
package demandgen

import "fmt"

// Validate checks every Config field against its documented domain and
// returns the first violation as a wrapped sentinel error.
//
// Checked domains:
//   - Nodes, Items, Periods       > 0
//   - RawCapacity, UnitCapacityCost, ChangeoverCost ≥ 0
//   - Utilization                 ∈ (0,1]
//   - Intensity                   ∈ [0,1] (0 yields an empty set)
//   - concentrations, SizeVariance ∈ [0,1]
//
// The seed is unconstrained. Complexity: O(1) time and space.
func (c Config) Validate() error {
	if c.Nodes <= 0 || c.Items <= 0 || c.Periods <= 0 {
		return fmt.Errorf("%s: U=%d I=%d T=%d: %w",
			MethodValidate, c.Nodes, c.Items, c.Periods, ErrNonPositiveDimension)
	}
	if c.RawCapacity < 0 {
		return fmt.Errorf("%s: raw capacity %g: %w", MethodValidate, c.RawCapacity, ErrNegativeCapacity)
	}
	if c.UnitCapacityCost < 0 {
		return fmt.Errorf("%s: unit capacity cost %g: %w", MethodValidate, c.UnitCapacityCost, ErrNegativeCapacity)
	}
	if c.ChangeoverCost < 0 {
		return fmt.Errorf("%s: changeover cost %g: %w", MethodValidate, c.ChangeoverCost, ErrNegativeCapacity)
	}
	if c.Utilization <= 0 || c.Utilization > 1 {
		return fmt.Errorf("%s: utilization %g not in (0,1]: %w", MethodValidate, c.Utilization, ErrParameterOutOfRange)
	}
	if c.Intensity < MinIntensity || c.Intensity > MaxIntensity {
		return fmt.Errorf("%s: intensity %g not in [%g,%g]: %w",
			MethodValidate, c.Intensity, MinIntensity, MaxIntensity, ErrParameterOutOfRange)
	}
	if err := validateConcentration("time concentration", c.TimeConcentration); err != nil {
		return err
	}
	if err := validateConcentration("node concentration", c.NodeConcentration); err != nil {
		return err
	}
	if err := validateConcentration("item concentration", c.ItemConcentration); err != nil {
		return err
	}
	if c.SizeVariance < 0 || c.SizeVariance > 1 {
		return fmt.Errorf("%s: size variance %g not in [0,1]: %w", MethodValidate, c.SizeVariance, ErrParameterOutOfRange)
	}

	return nil
}

// validateConcentration enforces c ∈ [MinConcentration, MaxConcentration]
// for the named axis knob.
// Complexity: O(1) time and space.
func validateConcentration(name string, c float64) error {
	if c < MinConcentration || c > MaxConcentration {
		return fmt.Errorf("%s: %s %g not in [%g,%g]: %w",
			MethodValidate, name, c, MinConcentration, MaxConcentration, ErrParameterOutOfRange)
	}

	return nil
}
