package bdd

import (
	"testing"

	"github.com/andrescamacho/spaceminer-go/test/bdd/steps"
	"github.com/cucumber/godog"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// Domain layer
	steps.InitializeMiningScenario(sc)
	steps.InitializeRefineryEconomyScenario(sc)

	// Application layer
	// NOTE: journal steps share no wording with the economy steps, so order is free here
	steps.InitializeTransactionJournalScenario(sc)
}
