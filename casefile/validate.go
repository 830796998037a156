// Package casefile: structural validation of a Case prior to serialization.
package casefile

import "fmt"

// Validate checks dimensions, vector lengths, value signs and the index
// bounds of every sparse entry, returning the first violation wrapped
// around its sentinel. WriteCSV calls it implicitly; call it directly to
// fail earlier.
// Complexity: O(I + |sparse entries|) time, O(1) space.
func (c *Case) Validate() error {
	if c.Nodes <= 0 || c.Items <= 0 || c.Periods <= 0 {
		return fmt.Errorf("Validate: U=%d I=%d T=%d: %w", c.Nodes, c.Items, c.Periods, ErrBadDimension)
	}

	vectors := []struct {
		name string
		vec  []float64
	}{
		{keyProductionCost, c.ProductionCost},
		{keySetupCost, c.SetupCost},
		{keyHoldingCost, c.HoldingCost},
		{keyUnitUsage, c.UnitUsage},
		{keyChangeoverUse, c.ChangeoverUse},
	}
	for _, v := range vectors {
		if len(v.vec) != c.Items {
			return fmt.Errorf("Validate: len(%s)=%d, want %d: %w", v.name, len(v.vec), c.Items, ErrVectorLength)
		}
		for i, val := range v.vec {
			if val < 0 {
				return fmt.Errorf("Validate: %s[%d]=%g: %w", v.name, i, val, ErrNegativeValue)
			}
		}
	}

	if c.DefaultCapacity < 0 {
		return fmt.Errorf("Validate: default capacity %g: %w", c.DefaultCapacity, ErrNegativeValue)
	}
	if c.DefaultInventory < 0 {
		return fmt.Errorf("Validate: default inventory %g: %w", c.DefaultInventory, ErrNegativeValue)
	}

	for _, d := range c.Demand {
		if d.Node < 0 || d.Node >= c.Nodes || d.Item < 0 || d.Item >= c.Items || d.Period < 0 || d.Period >= c.Periods {
			return fmt.Errorf("Validate: demand (%d,%d,%d): %w", d.Node, d.Item, d.Period, ErrIndexOutOfRange)
		}
		if d.Amount < 0 {
			return fmt.Errorf("Validate: demand (%d,%d,%d) amount %g: %w", d.Node, d.Item, d.Period, d.Amount, ErrNegativeValue)
		}
	}

	for _, o := range c.CapacityOverrides {
		if o.Node < 0 || o.Node >= c.Nodes || o.Period < 0 || o.Period >= c.Periods {
			return fmt.Errorf("Validate: capacity override (%d,%d): %w", o.Node, o.Period, ErrIndexOutOfRange)
		}
		if o.Value < 0 {
			return fmt.Errorf("Validate: capacity override (%d,%d) value %g: %w", o.Node, o.Period, o.Value, ErrNegativeValue)
		}
	}
	for _, o := range c.InventoryOverrides {
		if o.Node < 0 || o.Node >= c.Nodes || o.Item < 0 || o.Item >= c.Items {
			return fmt.Errorf("Validate: inventory override (%d,%d): %w", o.Node, o.Item, ErrIndexOutOfRange)
		}
		if o.Value < 0 {
			return fmt.Errorf("Validate: inventory override (%d,%d) value %g: %w", o.Node, o.Item, o.Value, ErrNegativeValue)
		}
	}

	if err := c.validateTransfer(); err != nil {
		return err
	}

	return c.validateSolver()
}

// validateTransfer enforces the transfer/bigM consistency rules: both
// sections are forbidden while transfer is disabled, and every entry must
// stay inside the declared dimensions.
func (c *Case) validateTransfer() error {
	if !c.EnableTransfer {
		if len(c.TransferCosts) > 0 || len(c.BigM) > 0 {
			return fmt.Errorf("Validate: %d transfer / %d bigM entries: %w",
				len(c.TransferCosts), len(c.BigM), ErrTransferDisabled)
		}

		return nil
	}

	for _, tc := range c.TransferCosts {
		if tc.From < 0 || tc.From >= c.Nodes || tc.To < 0 || tc.To >= c.Nodes ||
			tc.Item < 0 || tc.Item >= c.Items || tc.Period < 0 || tc.Period >= c.Periods {
			return fmt.Errorf("Validate: transfer (%d,%d,%d,%d): %w", tc.From, tc.To, tc.Item, tc.Period, ErrIndexOutOfRange)
		}
		if tc.Cost < 0 {
			return fmt.Errorf("Validate: transfer (%d,%d,%d,%d) cost %g: %w",
				tc.From, tc.To, tc.Item, tc.Period, tc.Cost, ErrNegativeValue)
		}
	}
	for _, m := range c.BigM {
		if m.Item < 0 || m.Item >= c.Items || m.Period < 0 || m.Period >= c.Periods {
			return fmt.Errorf("Validate: bigM (%d,%d): %w", m.Item, m.Period, ErrIndexOutOfRange)
		}
		if m.Value <= 0 {
			return fmt.Errorf("Validate: bigM (%d,%d) value %g: %w", m.Item, m.Period, m.Value, ErrNegativeValue)
		}
	}

	return nil
}

// validateSolver enforces the solver parameter domains.
func (c *Case) validateSolver() error {
	s := c.Solver
	if s.MIPGap < 0 {
		return fmt.Errorf("Validate: mip_gap %g: %w", s.MIPGap, ErrBadSolverParam)
	}
	if s.TimeLimitSec <= 0 {
		return fmt.Errorf("Validate: time_limit_sec %d: %w", s.TimeLimitSec, ErrBadSolverParam)
	}
	if s.Threads < 0 {
		return fmt.Errorf("Validate: threads %d: %w", s.Threads, ErrBadSolverParam)
	}
	if s.SepViolationEps < 0 {
		return fmt.Errorf("Validate: sep_violation_eps %g: %w", s.SepViolationEps, ErrBadSolverParam)
	}
	if s.MaxIters <= 0 {
		return fmt.Errorf("Validate: max_iters %d: %w", s.MaxIters, ErrBadSolverParam)
	}

	return nil
}
