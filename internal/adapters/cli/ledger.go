package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spaceminer-go/internal/adapters/persistence"
	"github.com/andrescamacho/spaceminer-go/internal/application/ledger/queries"
	"github.com/andrescamacho/spaceminer-go/internal/infrastructure/database"
)

// NewLedgerCommand creates the ledger command with subcommands
func NewLedgerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Economy journal operations",
		Long: `View the economy journal written by 'spaceminer run'.

Every refining fee, refined-goods sale and upgrade purchase is recorded with
the balance before and after it. Sessions are identified by the ID printed
when a run starts.

Categories:
  TRADING_REVENUE      - Income from selling refined goods
  REFINING_COSTS       - Refining job fees
  UPGRADE_INVESTMENTS  - Ship upgrade purchases

Transaction Types:
  SELL_REFINED   - Refined goods sale
  REFINING_FEE   - Refining job fee
  BUY_UPGRADE    - Upgrade purchase`,
	}

	cmd.AddCommand(newLedgerSessionsCommand())
	cmd.AddCommand(newLedgerListCommand())
	cmd.AddCommand(newLedgerReportCommand())
	return cmd
}

func openJournal() (*persistence.GormTransactionRepository, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.NewConnection(&cfg.Database, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return persistence.NewGormTransactionRepository(db), func() { database.Close(db) }, nil
}

func newLedgerSessionsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List journalled play sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeFn, err := openJournal()
			if err != nil {
				return err
			}
			defer closeFn()

			sessions, err := repo.Sessions(cmd.Context(), limit)
			if err != nil {
				return err
			}
			displaySessions(cmd.OutOrStdout(), sessions)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to show")
	return cmd
}

func newLedgerListCommand() *cobra.Command {
	var (
		query    queries.GetTransactionsQuery
		since    string
		category string
		txType   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a session's transactions",
		Long: `List journal transactions for one session, newest first by default.

Examples:
  spaceminer ledger list --session 3f2a... --limit 10
  spaceminer ledger list --session 3f2a... --category REFINING_COSTS
  spaceminer ledger list --session 3f2a... --since 2026-01-15T10:00:00Z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if since != "" {
				parsed, err := time.Parse(time.RFC3339, since)
				if err != nil {
					return fmt.Errorf("invalid --since (want RFC3339): %w", err)
				}
				query.Since = &parsed
			}
			if category != "" {
				query.Category = &category
			}
			if txType != "" {
				query.TransactionType = &txType
			}

			repo, closeFn, err := openJournal()
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := queries.NewGetTransactionsHandler(repo).Handle(ctxOf(cmd), &query)
			if err != nil {
				return fmt.Errorf("failed to query transactions: %w", err)
			}
			displayTransactionList(cmd.OutOrStdout(), result.(*queries.GetTransactionsResponse))
			return nil
		},
	}

	cmd.Flags().StringVar(&query.SessionID, "session", "", "Session ID [required]")
	cmd.Flags().StringVar(&since, "since", "", "Only transactions at or after this RFC3339 time")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&txType, "type", "", "Filter by transaction type")
	cmd.Flags().IntVar(&query.Limit, "limit", 50, "Maximum number of transactions to return")
	cmd.Flags().IntVar(&query.Offset, "offset", 0, "Number of transactions to skip")
	cmd.Flags().StringVar(&query.OrderBy, "order-by", "timestamp DESC", "Sort order: 'timestamp DESC' or 'timestamp ASC'")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func newLedgerReportCommand() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Profit & loss statement for a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeFn, err := openJournal()
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := queries.NewGetProfitLossHandler(repo).Handle(ctxOf(cmd), &queries.GetProfitLossQuery{SessionID: sessionID})
			if err != nil {
				return fmt.Errorf("failed to generate P&L report: %w", err)
			}
			displayProfitLoss(cmd.OutOrStdout(), result.(*queries.GetProfitLossResponse))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID [required]")
	_ = cmd.MarkFlagRequired("session")
	return cmd
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func displaySessions(w io.Writer, sessions []persistence.SessionSummary) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions journalled")
		return
	}

	heading(w, "SESSIONS")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Session\tStarted\tLast Activity\tTransactions\tBalance")
	for _, s := range sessions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			s.SessionID,
			s.FirstSeen.Format("2006-01-02 15:04:05"),
			s.LastSeen.Format("2006-01-02 15:04:05"),
			s.Transactions,
			formatCredits(s.FinalBalance),
		)
	}
	tw.Flush()
}

func displayTransactionList(w io.Writer, response *queries.GetTransactionsResponse) {
	if len(response.Transactions) == 0 {
		fmt.Fprintln(w, "No transactions found")
		return
	}

	heading(w, fmt.Sprintf("TRANSACTIONS (Showing %d of %d total)", len(response.Transactions), response.Total))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Timestamp\tType\tAmount\tBalance\tDescription")
	for _, tx := range response.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			tx.Timestamp.Format("2006-01-02 15:04:05"),
			tx.Type,
			formatAmount(tx.Amount),
			formatCredits(tx.BalanceAfter),
			tx.Description,
		)
	}
	tw.Flush()
	fmt.Fprintln(w, rule)
}

func displayProfitLoss(w io.Writer, response *queries.GetProfitLossResponse) {
	heading(w, "PROFIT & LOSS STATEMENT")
	fmt.Fprintf(w, "Session: %s (%d transactions)\n", response.SessionID, response.Transactions)

	fmt.Fprintln(w, "\nREVENUE")
	for _, category := range sortedKeys(response.RevenueBreakdown) {
		fmt.Fprintf(w, "  %-25s %s\n", category+":", formatCredits(response.RevenueBreakdown[category]))
	}
	fmt.Fprintf(w, "  %-25s %s\n", "Total Revenue:", formatCredits(response.TotalRevenue))

	fmt.Fprintln(w, "\nEXPENSES")
	for _, category := range sortedKeys(response.ExpenseBreakdown) {
		fmt.Fprintf(w, "  %-25s %s\n", category+":", formatCredits(response.ExpenseBreakdown[category]))
	}
	fmt.Fprintf(w, "  %-25s %s\n", "Total Expenses:", formatCredits(response.TotalExpenses))

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %-25s %s\n\n", "NET PROFIT:", formatAmount(response.NetProfit))
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
