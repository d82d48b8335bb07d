package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// WalletsRenderer renders the balance table of a wallet refresh
type WalletsRenderer struct {
	out io.Writer
}

// NewWalletsRenderer creates a new wallets renderer
func NewWalletsRenderer(out io.Writer) *WalletsRenderer {
	return &WalletsRenderer{out: out}
}

// Render renders one row per wallet followed by the drop summary
func (r *WalletsRenderer) Render(result *usecase.RefreshWalletsResult) error {
	if len(result.Wallets) == 0 {
		fmt.Fprintln(r.out, FormatWarning("No accounts loaded"))
		return nil
	}

	fmt.Fprintf(r.out, "👛 Wallets on %s (chain %d):\n\n",
		Title(result.Network.Name), result.Network.ChainID)
	fmt.Fprintln(r.out, WalletTable(result.Wallets, result.Network.Decimals))

	if result.Dropped > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d invalid key line(s) skipped", result.Dropped)))
	}
	return nil
}

// WalletTable renders wallets as a borderless table
func WalletTable(wallets []domain.Wallet, decimals uint8) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{
		PaddingRight:     "   ",
		MiddleHorizontal: "─",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"#", "Address", "Balance", "Proxy"})
	for _, w := range wallets {
		balance := domain.FormatUnits(w.Balance, decimals, 6)
		if w.Err != nil {
			balance = color.New(color.FgRed).Sprint("error")
		}
		t.AppendRow(table.Row{w.Number(), w.Address.Hex(), balance, domain.RedactProxy(w.Proxy)})
	}

	return t.Render()
}
