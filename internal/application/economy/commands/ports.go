package commands

import (
	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/spaceminer-go/internal/domain/economy"
	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// Economy is the set of request operations the engine accepts. Each one is
// atomic and returns false, changing nothing, when refused.
type Economy interface {
	DepositOre(mineral shared.Mineral, quantity int) bool
	StartRefiningJob(mineral shared.Mineral, quantity int, tier refinery.JobTier) bool
	WithdrawRefined(mineral shared.Mineral, quantity int) bool
	SellRefinedMineral(mineral shared.Mineral, quantity, unitPrice int) bool
	BuyUpgrade(kind economy.UpgradeKind, cost int) bool
}

// EconomyResponse reports whether the engine accepted the operation
type EconomyResponse struct {
	Accepted bool
}

var validate = newValidator()

// mineralOf resolves a validated mineral field to its canonical name
func mineralOf(name string) shared.Mineral {
	m, _ := shared.ParseMineral(name)
	return m
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("mineral", func(fl validator.FieldLevel) bool {
		_, err := shared.ParseMineral(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("jobtier", func(fl validator.FieldLevel) bool {
		return refinery.JobTier(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("upgrade", func(fl validator.FieldLevel) bool {
		return economy.UpgradeKind(fl.Field().String()).IsValid()
	})
	return v
}
