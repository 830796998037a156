// SPDX-License-Identifier: MIT
// Package: lsgen/cmd/lsgen
//
// main.go — the lsgen command line: generate one lot-sizing instance file
// from flags, environment or a YAML scenario.
//
// Output layout per run: case_YYYYMMDD_HHMMSS.csv plus a matching
// log_YYYYMMDD_HHMMSS.txt under --output.dir.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lsgen/casefile"
	"github.com/katalvlaran/lsgen/demandgen"
)

// CaseConfig holds the structural and cost parameters of the emitted case.
type CaseConfig struct {
	Nodes          int     `long:"nodes" env:"NODES" default:"5" description:"Number of production nodes (U)"`
	Items          int     `long:"items" env:"ITEMS" default:"300" description:"Number of item types (I)"`
	Periods        int     `long:"periods" env:"PERIODS" default:"20" description:"Number of time periods (T)"`
	EnableTransfer bool    `long:"enable-transfer" env:"ENABLE_TRANSFER" description:"Emit transfer-cost and big-M sections"`
	ProductionCost float64 `long:"production-cost" env:"PRODUCTION_COST" default:"1.0" description:"Uniform per-unit production cost (cX)"`
	SetupCost      float64 `long:"setup-cost" env:"SETUP_COST" default:"60.0" description:"Uniform per-item setup cost (cY)"`
	HoldingCost    float64 `long:"holding-cost" env:"HOLDING_COST" default:"1.0" description:"Uniform per-unit holding cost (cI)"`
	UnitUsage      float64 `long:"unit-usage" env:"UNIT_USAGE" default:"1.0" description:"Capacity consumed per produced unit (sX)"`
	ChangeoverUse  float64 `long:"changeover-use" env:"CHANGEOVER_USE" default:"10.0" description:"Capacity consumed per changeover (sY)"`
	Capacity       float64 `long:"capacity" env:"CAPACITY" default:"1440" description:"Default per-(node,period) capacity"`
	Inventory      float64 `long:"inventory" env:"INVENTORY" default:"0" description:"Default initial inventory"`

	TransferCostMin float64 `long:"transfer-cost-min" env:"TRANSFER_COST_MIN" default:"0.5" description:"Lower bound of generated transfer costs"`
	TransferCostMax float64 `long:"transfer-cost-max" env:"TRANSFER_COST_MAX" default:"3.0" description:"Upper bound of generated transfer costs"`
	TransferSeed    int64   `long:"transfer-seed" env:"TRANSFER_SEED" default:"42" description:"Seed of the transfer-cost stream"`
	BigMFloor       float64 `long:"bigm-floor" env:"BIGM_FLOOR" default:"1.0" description:"Minimum big-M value for items without demand"`
}

// DemandConfig holds the demand-generation parameters. Mode "capacity"
// selects the feasibility-preserving generator; the remaining modes are the
// legacy layouts without a capacity model.
type DemandConfig struct {
	Mode string `long:"mode" env:"MODE" default:"capacity" choice:"capacity" choice:"all" choice:"sparse" choice:"per-item" choice:"per-node" description:"Demand generation mode"`
	Seed int64  `long:"seed" env:"SEED" default:"42" description:"Seed of the demand stream"`

	Utilization       float64 `long:"utilization" env:"UTILIZATION" default:"0.85" description:"Capacity mode: target utilization ratio in (0,1]"`
	Intensity         float64 `long:"intensity" env:"INTENSITY" default:"0.15" description:"Capacity mode: fraction of the U*I*T space materialized"`
	TimeConcentration float64 `long:"time-concentration" env:"TIME_CONCENTRATION" default:"0.2" description:"Capacity mode: period concentration in [0,1]"`
	NodeConcentration float64 `long:"node-concentration" env:"NODE_CONCENTRATION" default:"0.3" description:"Capacity mode: node concentration in [0,1]"`
	ItemConcentration float64 `long:"item-concentration" env:"ITEM_CONCENTRATION" default:"0.3" description:"Capacity mode: item concentration in [0,1]"`
	SizeVariance      float64 `long:"size-variance" env:"SIZE_VARIANCE" default:"0.3" description:"Capacity mode: amount spread around the mean in [0,1]"`

	MinAmount float64 `long:"min-amount" env:"MIN_AMOUNT" default:"10" description:"Legacy modes: minimum demand amount"`
	MaxAmount float64 `long:"max-amount" env:"MAX_AMOUNT" default:"100" description:"Legacy modes: maximum demand amount"`
	Density   float64 `long:"density" env:"DENSITY" default:"0.3" description:"Legacy modes: cell fill probability in [0,1]"`
}

// OutputConfig holds the file-emission parameters.
type OutputConfig struct {
	Dir string `long:"dir" env:"DIR" default:"output" description:"Directory receiving case and log files"`
}

// Config is the top-level configuration object of lsgen.
var Config = new(struct {
	Case   CaseConfig   `group:"Case" namespace:"case" env-namespace:"CASE"`
	Demand DemandConfig `group:"Demand" namespace:"demand" env-namespace:"DEMAND"`
	Output OutputConfig `group:"Output" namespace:"output" env-namespace:"OUTPUT"`

	Scenario string `long:"scenario" env:"SCENARIO" description:"YAML scenario file; when set, its values replace all case and demand flags"`

	Log LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
})

type cmdGenerate struct{}

func (cmdGenerate) Execute(args []string) error {
	InitLog(Config.Log)

	if Config.Scenario != "" {
		scenario, err := LoadScenario(Config.Scenario)
		if err != nil {
			return fmt.Errorf("loading scenario: %w", err)
		}
		scenario.Apply(&Config.Case, &Config.Demand)
		log.WithField("path", Config.Scenario).Info("applied scenario file")
	}

	if err := os.MkdirAll(Config.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	casePath := filepath.Join(Config.Output.Dir, "case_"+stamp+".csv")
	logPath := filepath.Join(Config.Output.Dir, "log_"+stamp+".txt")

	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer logFile.Close()
	TeeLog(os.Stderr, logFile)

	log.WithFields(log.Fields{
		"U": Config.Case.Nodes, "I": Config.Case.Items, "T": Config.Case.Periods,
		"mode": Config.Demand.Mode, "transfer": Config.Case.EnableTransfer,
	}).Info("starting case generation")

	demand, err := generateDemand(Config.Case, Config.Demand)
	if err != nil {
		return fmt.Errorf("generating demand: %w", err)
	}
	log.WithField("points", len(demand)).Info("demand generated")

	c := buildCase(Config.Case, demand)

	caseFile, err := os.Create(casePath)
	if err != nil {
		return fmt.Errorf("creating case file: %w", err)
	}
	if err = c.WriteCSV(caseFile); err != nil {
		caseFile.Close()

		return fmt.Errorf("writing case file: %w", err)
	}
	if err = caseFile.Close(); err != nil {
		return fmt.Errorf("closing case file: %w", err)
	}

	printSummary(c)
	log.WithFields(log.Fields{"case": casePath, "log": logPath}).Info("case generation complete")

	return nil
}

// generateDemand dispatches on the demand mode, mapping the legacy mode
// names onto their layouts.
func generateDemand(cc CaseConfig, dc DemandConfig) (demandgen.DemandSet, error) {
	if dc.Mode == "capacity" {
		cfg := demandgen.Config{
			Nodes:             cc.Nodes,
			Items:             cc.Items,
			Periods:           cc.Periods,
			RawCapacity:       cc.Capacity,
			UnitCapacityCost:  cc.UnitUsage,
			ChangeoverCost:    cc.ChangeoverUse,
			Utilization:       dc.Utilization,
			Intensity:         dc.Intensity,
			TimeConcentration: dc.TimeConcentration,
			NodeConcentration: dc.NodeConcentration,
			ItemConcentration: dc.ItemConcentration,
			SizeVariance:      dc.SizeVariance,
			Seed:              dc.Seed,
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		return demandgen.Generate(cfg)
	}

	var mode demandgen.Mode
	switch dc.Mode {
	case "all":
		mode = demandgen.AllCombinations
	case "sparse":
		mode = demandgen.SparseRandom
	case "per-item":
		mode = demandgen.PerItemPerTime
	case "per-node":
		mode = demandgen.PerNodePerTime
	}
	log.WithField("layout", mode.String()).Info("using legacy demand mode")

	return demandgen.GenerateSimple(demandgen.SimpleConfig{
		Nodes:     cc.Nodes,
		Items:     cc.Items,
		Periods:   cc.Periods,
		MinAmount: dc.MinAmount,
		MaxAmount: dc.MaxAmount,
		Density:   dc.Density,
		Seed:      dc.Seed,
		Mode:      mode,
	})
}

// buildCase assembles the full instance record from the resolved
// configuration and the generated demand.
func buildCase(cc CaseConfig, demand demandgen.DemandSet) *casefile.Case {
	c := casefile.NewUniform(cc.Nodes, cc.Items, cc.Periods,
		cc.ProductionCost, cc.SetupCost, cc.HoldingCost, cc.UnitUsage, cc.ChangeoverUse)
	c.DefaultCapacity = cc.Capacity
	c.DefaultInventory = cc.Inventory
	c.AttachDemand(demand)

	if cc.EnableTransfer {
		c.EnableTransfer = true
		c.GenerateTransferCosts(cc.TransferCostMin, cc.TransferCostMax, cc.TransferSeed)
		c.GenerateBigM(cc.BigMFloor)
	}

	return c
}

// printSummary renders the per-section row counts and the per-node demand
// load against raw capacity.
func printSummary(c *casefile.Case) {
	sections := tablewriter.NewWriter(os.Stdout)
	sections.SetHeader([]string{"Section", "Rows"})
	sections.Append([]string{"meta", "4"})
	sections.Append([]string{"cost", fmt.Sprint(3 * c.Items)})
	sections.Append([]string{"cap_usage", fmt.Sprint(2 * c.Items)})
	sections.Append([]string{"capacity", fmt.Sprint(c.Nodes*c.Periods + len(c.CapacityOverrides))})
	sections.Append([]string{"init", fmt.Sprint(c.Nodes*c.Items + len(c.InventoryOverrides))})
	sections.Append([]string{"demand", fmt.Sprint(len(c.Demand))})
	if c.EnableTransfer {
		sections.Append([]string{"transfer", fmt.Sprint(len(c.TransferCosts))})
		sections.Append([]string{"bigM", fmt.Sprint(len(c.BigM))})
	}
	sections.Append([]string{"solver", "5"})
	sections.Render()

	perNode := make([]float64, c.Nodes)
	for _, d := range c.Demand {
		perNode[d.Node] += d.Amount
	}

	load := tablewriter.NewWriter(os.Stdout)
	load.SetHeader([]string{"Node", "Demand", "Raw Capacity", "Load"})
	for u := 0; u < c.Nodes; u++ {
		raw := c.DefaultCapacity * float64(c.Periods)
		ratio := 0.0
		if raw > 0 {
			ratio = perNode[u] / raw
		}
		load.Append([]string{
			fmt.Sprint(u),
			fmt.Sprintf("%.1f", perNode[u]),
			fmt.Sprintf("%.1f", raw),
			fmt.Sprintf("%.1f%%", 100*ratio),
		})
	}
	load.Render()
}

func main() {
	parser := flags.NewParser(Config, flags.Default)

	_, _ = parser.AddCommand("generate", "Generate a lot-sizing case file", `
Generate one capacitated lot-sizing instance as a sectioned CSV, with
demand produced by the capacity-driven generator (default) or one of the
legacy layouts. A per-run log file is written next to the case file.
`, &cmdGenerate{})

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}
