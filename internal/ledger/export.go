package ledger

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/halalflow/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// Export contains all resources of the instance.
type Export struct {
	Version      string
	Data         map[string]json.RawMessage
	CreationTime time.Time
}

// Export returns all resources, keyed by the model name.
func (e *Engine) Export(ctx context.Context, version string) (Export, error) {
	resources := make(map[string]json.RawMessage)

	db := e.read(ctx)
	for _, model := range models.Registry {
		b, err := model.Export(db)
		if err != nil {
			return Export{}, classify(err)
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	return Export{
		Version:      version,
		Data:         resources,
		CreationTime: e.Now(),
	}, nil
}

var transactionColumns = []string{"Date", "Type", "Libellé", "Montant"}

func transactionRow(t models.Transaction) []string {
	kind := "Entrée"
	if t.Type == models.TransactionTypeOut {
		kind = "Sortie"
	}

	return []string{t.Date.Format(time.DateOnly), kind, t.Label, t.Amount.StringFixed(2)}
}

// WriteTransactionsCSV writes all transactions as CSV, newest first.
func (e *Engine) WriteTransactionsCSV(ctx context.Context, w io.Writer) error {
	page, err := e.Transactions(ctx, TransactionFilter{Limit: -1})
	if err != nil {
		return err
	}

	// UTF-8 BOM so that spreadsheet applications detect the encoding
	_, err = w.Write([]byte{0xEF, 0xBB, 0xBF})
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	writer.Comma = ';'

	err = writer.Write(transactionColumns)
	if err != nil {
		return err
	}

	for _, t := range page.Transactions {
		err = writer.Write(transactionRow(t))
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// TransactionsSheet is the name of the worksheet in the XLSX export.
const TransactionsSheet = "Transactions"

// WriteTransactionsXLSX writes all transactions as XLSX workbook, newest first.
func (e *Engine) WriteTransactionsXLSX(ctx context.Context, w io.Writer) error {
	page, err := e.Transactions(ctx, TransactionFilter{Limit: -1})
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	err = f.SetSheetName("Sheet1", TransactionsSheet)
	if err != nil {
		return fmt.Errorf("creating worksheet: %w", err)
	}

	err = f.SetSheetRow(TransactionsSheet, "A1", &transactionColumns)
	if err != nil {
		return err
	}

	for i, t := range page.Transactions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := transactionRow(t)
		values := []any{t.Date, row[1], row[2], t.Amount.InexactFloat64()}
		err = f.SetSheetRow(TransactionsSheet, cell, &values)
		if err != nil {
			return err
		}
	}

	err = f.SetColWidth(TransactionsSheet, "A", "A", 12)
	if err != nil {
		return err
	}

	err = f.SetColWidth(TransactionsSheet, "C", "C", 40)
	if err != nil {
		return err
	}

	return f.Write(w)
}
