package commands

import (
	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
)

// Register binds every economy command handler to m
func Register(m mediator.Mediator, economy Economy) error {
	regs := []error{
		mediator.RegisterHandler[*DepositOreCommand](m, NewDepositOreHandler(economy)),
		mediator.RegisterHandler[*StartRefiningJobCommand](m, NewStartRefiningJobHandler(economy)),
		mediator.RegisterHandler[*WithdrawRefinedCommand](m, NewWithdrawRefinedHandler(economy)),
		mediator.RegisterHandler[*SellRefinedMineralCommand](m, NewSellRefinedMineralHandler(economy)),
		mediator.RegisterHandler[*BuyUpgradeCommand](m, NewBuyUpgradeHandler(economy)),
	}
	for _, err := range regs {
		if err != nil {
			return err
		}
	}
	return nil
}
