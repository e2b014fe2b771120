package export

import (
	"strings"

	"github.com/pradana/duit/internal/model"
)

// CSVHeader is the fixed header row of a transaction export.
const CSVHeader = "Tanggal,Kategori,Tipe,Jumlah,Keterangan"

// CSV renders the transaction snapshot as comma-separated text: the header
// row plus one quoted row per transaction, in snapshot order.
func CSV(txs []model.Transaction) string {
	lines := make([]string, 0, len(txs)+1)
	lines = append(lines, CSVHeader)

	for _, t := range txs {
		info := model.CategoryInfo(t.Category, t.Type)

		tipe := "Pengeluaran"
		if t.Type == model.TypeIncome {
			tipe = "Pemasukan"
		}

		description := t.Description
		if description == "" {
			description = "-"
		}

		cells := []string{
			FormatDate(t.Date),
			info.Name,
			tipe,
			t.Amount.String(),
			description,
		}
		for i, c := range cells {
			cells[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n")
}
